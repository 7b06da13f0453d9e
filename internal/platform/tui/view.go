package tui

import (
	"fmt"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/game"
)

// Track layout constants
const (
	laneWidth = 9 // Track columns per lane
	hudRows   = 2 // Rows reserved above the track
)

// obstacleSprites maps obstacle kinds to their glyph and color.
var obstacleSprites = map[game.Kind]core.Cell{
	game.KindBarrier: {Rune: '█', Color: core.ColorRed},
	game.KindCrate:   {Rune: '▣', Color: core.ColorYellow},
	game.KindBoulder: {Rune: '●', Color: core.ColorOrange},
	game.KindCone:    {Rune: '▲', Color: core.ColorBrightYellow},
	game.KindDrone:   {Rune: '◇', Color: core.ColorCyan},
	game.KindDart:    {Rune: '»', Color: core.ColorMagenta},
}

// TrackView renders a run session into a screen buffer.
// Obstacles scroll from the top of the track toward the player row near
// the bottom, mirroring their travel from spawn depth to pass depth.
type TrackView struct {
	cfg config.RunnerConfig
}

// NewTrackView creates a view for sessions running under cfg.
func NewTrackView(cfg config.RunnerConfig) *TrackView {
	return &TrackView{cfg: cfg}
}

// Render draws the session state into dst. The buffer is cleared first.
func (v *TrackView) Render(dst *core.Screen, s *game.Session) {
	dst.Clear()

	lanes := v.cfg.Track.Lanes()
	trackW := lanes * laneWidth
	trackX := (dst.Width() - trackW) / 2
	if trackX < 0 {
		trackX = 0
	}
	trackTop := hudRows
	trackRows := dst.Height() - hudRows - 1
	if trackRows < 4 {
		trackRows = 4
	}

	// Lane dividers
	for i := 0; i <= lanes; i++ {
		dst.DrawVLine(trackX+i*laneWidth, trackTop, trackRows, '┊', core.ColorGray)
	}

	// Obstacles, in depth order as stored
	for _, o := range s.Obstacles() {
		row := v.zToRow(o.Z, trackTop, trackRows)
		if row < trackTop || row >= trackTop+trackRows {
			continue
		}
		sprite, ok := obstacleSprites[o.Kind]
		if !ok {
			sprite = core.Cell{Rune: '?', Color: core.ColorWhite}
		}
		x := trackX + o.Lane*laneWidth + laneWidth/2
		dst.SetCell(x, row, sprite)
		if !o.Kind.Flying() {
			// Ground obstacles get a footprint across the lane
			dst.SetCell(x-1, row, core.Cell{Rune: sprite.Rune, Color: sprite.Color})
			dst.SetCell(x+1, row, core.Cell{Rune: sprite.Rune, Color: sprite.Color})
		}
	}

	v.drawPlayer(dst, s, trackX, trackTop, trackRows)
	v.drawHUD(dst, s)

	state := s.State()
	if state.Paused {
		v.drawOverlay(dst, "PAUSED", "Press P to resume")
	}
	if state.GameOver {
		v.drawOverlay(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  R restart  |  B menu", state.Score))
	}
}

// zToRow maps simulation depth to a track row: spawn depth at the top,
// pass depth at the bottom.
func (v *TrackView) zToRow(z float64, trackTop, trackRows int) int {
	spawnZ := v.cfg.Track.SpawnZ
	passedZ := v.cfg.Track.PassedZ
	frac := (z - spawnZ) / (passedZ - spawnZ)
	return trackTop + int(frac*float64(trackRows-1))
}

// worldXToCol maps continuous player X to a track column, so lane
// easing is visible as smooth horizontal motion.
func (v *TrackView) worldXToCol(x float64, trackX int) int {
	laneX := v.cfg.Track.LaneX
	left := laneX[0]
	right := laneX[len(laneX)-1]
	span := right - left
	if span == 0 {
		return trackX + laneWidth/2
	}
	frac := (x - left) / span
	trackW := v.cfg.Track.Lanes() * laneWidth
	return trackX + laneWidth/2 + int(frac*float64(trackW-laneWidth))
}

func (v *TrackView) drawPlayer(dst *core.Screen, s *game.Session, trackX, trackTop, trackRows int) {
	p := s.Player()

	// The player sits at the middle of the collision band.
	bandMid := (v.cfg.Collision.PlayerZMin + v.cfg.Collision.PlayerZMax) / 2
	row := v.zToRow(bandMid, trackTop, trackRows)
	col := v.worldXToCol(p.X, trackX)

	// Jump height lifts the glyph and leaves a shadow on the ground.
	lift := int(p.JumpHeight)
	glyph := core.Cell{Rune: '@', Color: core.ColorBrightGreen}
	if p.Phase != game.Grounded {
		dst.SetCell(col, row, core.Cell{Rune: '·', Color: core.ColorGray})
	}
	dst.SetCell(col, row-lift, glyph)
}

func (v *TrackView) drawHUD(dst *core.Screen, s *game.Session) {
	state := s.State()
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", state.Score), core.ColorBrightWhite)

	lvl := fmt.Sprintf(" Lvl %d  Spd %.0f ", state.Difficulty, s.Speed())
	dst.DrawText(dst.Width()-len(lvl)-2, 0, lvl, core.ColorCyan)

	dst.DrawText(2, 1, fmt.Sprintf(" Avoided: %d ", state.Avoided), core.ColorGray)
}

func (v *TrackView) drawOverlay(dst *core.Screen, title, subtitle string) {
	w := core.Max(len(title), len(subtitle)) + 6
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			dst.Set(i, j, ' ')
		}
	}
	dst.DrawBox(x, y, w, h, core.ColorBrightWhite)
	dst.DrawTextCentered(y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(y+3, subtitle, core.ColorWhite)
}
