package dirtbikes

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-dirtbikes/internal/core"
	"github.com/vovakirdan/tui-dirtbikes/internal/stats"
)

const controlsHint = "S engine  D throttle  A brake  Space jump  P pause  R restart  H home  Q quit"

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	switch snap.State {
	case StateHome:
		g.renderHome(dst, snap)
	case StateCountdown:
		g.renderField(dst, snap)
		msg, color := "GO!", colorPlayer
		if snap.Countdown > 0 {
			msg, color = fmt.Sprint(snap.Countdown), colorDanger
		}
		dst.DrawTextCenteredColored(2, msg, color)
	case StateRace:
		g.renderField(dst, snap)
	case StatePause:
		g.renderField(dst, snap)
		drawCenteredMessage(dst, "[PAUSED]", "P resume   R restart   H home")
	case StateEnd:
		g.renderEnd(dst, snap)
	}
}

// laneRow is the screen row of a lane's ground line.
func laneRow(h, lane int) int {
	return min(h-3, 6+lane*2)
}

func (g *Game) renderField(dst *core.Screen, snap Snapshot) {
	w, h := dst.Width(), dst.Height()

	for lane := range snap.Lanes {
		dst.DrawHLine(0, laneRow(h, lane), w, g.theme.Ground, colorGround)
	}

	for _, o := range snap.Obstacles {
		col := int(o.X - snap.Camera)
		dst.SetColored(col, laneRow(h, o.Lane)-1, o.Kind.Glyph(g.theme), o.Kind.Color())
	}

	for _, p := range snap.Particles {
		col := int(p.X - snap.Camera)
		dst.SetColored(col, laneRow(h, p.Lane)-int(p.Y), p.Glyph, p.Color)
	}

	// Bots first so the player stays visible when sharing a cell.
	player, hasPlayer := snap.Player()
	for _, r := range snap.Racers {
		if !r.IsPlayer {
			g.drawRacer(dst, snap.Camera, r, g.theme.Bot, colorBot)
		}
	}
	if hasPlayer {
		g.drawRacer(dst, snap.Camera, player, g.theme.Player, colorPlayer)
	}

	g.renderHUD(dst, snap)
}

func (g *Game) drawRacer(dst *core.Screen, camera float64, r Racer, glyph rune, color core.Color) {
	row := laneRow(dst.Height(), r.Lane) - int(min(2, r.Y))
	if r.Y > 0 {
		row--
	}
	dst.SetColored(int(r.X-camera), row, glyph, color)
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	h := dst.Height()
	player, ok := snap.Player()
	if !ok {
		return
	}

	engine := "ON"
	if !player.EngineOn {
		engine = "OFF"
	}
	motion := "SMOOTH"
	if snap.ReducedMotion {
		motion = "STEADY"
	}

	hud := strings.Join([]string{
		"Time: " + formatTime(snap.Clock, true),
		fmt.Sprintf("Speed: %05.1f", player.VX),
		fmt.Sprintf("Pos: %04d/%d", int(player.X), int(snap.TrackLength)),
		"Engine: " + engine,
		"Motion: " + motion,
		fmt.Sprintf("Bots: %d", snap.Bots),
	}, "  ")

	dst.DrawTextColored(1, h-2, hud, colorHUD)
	dst.DrawTextColored(1, h-1, controlsHint, colorHint)
}

func (g *Game) renderHome(dst *core.Screen, snap Snapshot) {
	dst.DrawTextCenteredColored(2, strings.ToUpper(g.mode.Title), colorTitle)
	dst.DrawTextCenteredColored(4, "Fast-paced neon dirt racing in your terminal.", colorHUD)

	dst.DrawTextCentered(6, fmt.Sprintf("Total races: %d", snap.Stats.TotalRaces))
	dst.DrawTextCentered(7, fmt.Sprintf("Wins: %d", snap.Stats.Wins))
	dst.DrawTextCentered(8, "Best time: "+formatBest(snap.Stats))

	bots := fmt.Sprintf("Bots: %d   (+ / - to adjust)", snap.Bots)
	if g.mode.FixedBots >= 0 {
		bots = fmt.Sprintf("Bots: %d   (time trial)", snap.Bots)
	}
	dst.DrawTextCenteredColored(10, bots, colorBot)

	reduced := "OFF"
	if snap.ReducedMotion {
		reduced = "ON"
	}
	dst.DrawTextCenteredColored(11, fmt.Sprintf("Reduced motion: %s   (M to toggle)", reduced), colorPlayer)

	dst.DrawTextCenteredColored(13, "Enter start   Q quit", colorHUD)
}

func (g *Game) renderEnd(dst *core.Screen, snap Snapshot) {
	dst.DrawTextCenteredColored(2, "Race Results", colorTitle)

	y := 4
	limit := max(0, dst.Height()-10)
	for i, st := range snap.Standings {
		if i >= limit {
			break
		}
		line := fmt.Sprintf("%2d. %-8s  time: %-10s", st.Place, st.Name, formatTime(st.Time, st.Finished))
		color := colorHUD
		if st.IsPlayer {
			color = colorPlayer
		}
		dst.DrawTextCenteredColored(y, line, color)
		y++
	}

	totals := fmt.Sprintf("Total races: %d   Wins: %d   Best: %s",
		snap.Stats.TotalRaces, snap.Stats.Wins, formatBest(snap.Stats))
	dst.DrawTextCenteredColored(y+1, totals, colorBot)
	dst.DrawTextCenteredColored(y+3, "Enter rematch    H home", colorHUD)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, colorHint)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, colorTitle)
	dst.DrawTextColored(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, colorHint)
}

func formatTime(t float64, ok bool) string {
	if !ok {
		return "--"
	}
	return fmt.Sprintf("%0.2fs", t)
}

func formatBest(s stats.Stats) string {
	if s.BestTime == nil {
		return "--"
	}
	return formatTime(*s.BestTime, true)
}
