package game

// Kind is a closed enumeration of obstacle archetypes. Each kind belongs
// to one of two collision-policy groups: ground obstacles are cleared by
// jumping over them, flying obstacles by staying under or above them.
type Kind int

const (
	KindBarrier Kind = iota
	KindCrate
	KindBoulder
	KindCone
	KindDrone
	KindDart

	numKinds // Sentinel for uniform random selection
)

// Flying returns true if this kind uses the flying collision policy.
func (k Kind) Flying() bool {
	return k == KindDrone || k == KindDart
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBarrier:
		return "barrier"
	case KindCrate:
		return "crate"
	case KindBoulder:
		return "boulder"
	case KindCone:
		return "cone"
	case KindDrone:
		return "drone"
	case KindDart:
		return "dart"
	default:
		return "unknown"
	}
}

// Obstacle is a spawned hazard advancing along the track toward the player.
type Obstacle struct {
	ID   int     // Unique within a run, assigned in spawn order
	Kind Kind    // Archetype, fixed at spawn
	Lane int     // Lane index, fixed at spawn
	Z    float64 // Longitudinal position; increases from SpawnZ toward PassedZ
}
