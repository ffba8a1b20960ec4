package artifact2

import (
	"fmt"

	"gameforge/internal/core"
)

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	viewTop := 1
	viewH := g.screenH - 3
	camX := core.Clamp(g.px-g.screenW/2, 0, core.Max(0, g.world.width-g.screenW))
	camY := core.Clamp(g.py-viewH/2, 0, core.Max(0, g.world.height-viewH))

	glitching := g.hasQuakeEffect(quakeGlitch)
	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < g.screenW; sx++ {
			p := pos{camX + sx, camY + sy}
			t, ok := g.world.tiles[p]
			if !ok {
				continue
			}
			if glitching && (uint64(p.X*7+p.Y*13)+g.tick)%97 == 0 {
				continue
			}
			r, c := g.tileGlyph(p, t)
			dst.SetCell(sx, sy+viewTop, r, c)
		}
	}

	for _, rf := range g.rifts {
		if rf.Active {
			g.renderRift(dst, rf, camX, camY, viewTop, viewH)
		}
	}

	for _, c := range g.clones {
		sx, sy := c.X-camX, c.Y-camY
		if sx >= 0 && sx < g.screenW && sy >= 0 && sy < viewH {
			dst.SetCell(sx, sy+viewTop, '&', core.ColorBrightRed)
		}
	}

	playerColor := core.ColorBrightBlue
	if g.cursed {
		playerColor = core.ColorBrightRed
	} else if g.inRift {
		playerColor = core.ColorBrightCyan
	}
	dst.SetCell(g.px-camX, g.py-camY+viewTop, '@', playerColor)

	g.renderInventory(dst)
	if g.message != "" {
		dst.DrawTextColor(1, g.screenH-1, g.message, core.ColorWhite)
	}

	if g.labOpen {
		g.renderLab(dst)
	}
	if g.paused {
		dst.DrawTextCentered(g.screenH/2, "= PAUSED =")
	}
	if g.won {
		dst.DrawTextCentered(g.screenH/2-1, "TEMPLE SECRETS UNLOCKED!")
		dst.DrawTextCentered(g.screenH/2, fmt.Sprintf("Score: %d", g.score))
		dst.DrawTextCentered(g.screenH/2+1, "Press R to start a new expedition")
	}
	if g.dead {
		dst.DrawTextCentered(g.screenH/2-1, "EXPEDITION FAILED")
		dst.DrawTextCentered(g.screenH/2, fmt.Sprintf("Score: %d", g.score))
		dst.DrawTextCentered(g.screenH/2+1, "Press R to try again")
	}
}

func (g *Game) tileGlyph(p pos, t *tile) (rune, core.Color) {
	switch {
	case t.paradox:
		return '✶', core.ColorBrightMagenta
	case t.artifact != nil:
		return '◆', t.artifact.Color
	case t.pedestal && t.pedestalArtifact != nil:
		return '◆', t.pedestalArtifact.Color
	case t.pedestal:
		return 'Π', core.ColorCyan
	case t.kind == tileWin:
		return '★', core.ColorBrightYellow
	case t.kind == tileWall:
		return '█', core.ColorGray
	case t.kind == tileWater:
		return '≈', core.ColorBlue
	case t.temple:
		return '▒', core.ColorMagenta
	default:
		return '·', core.ColorDarkGreen
	}
}

// renderRift overlays the rift's footprint: altered tiles show their
// alternate form, the rest shimmer.
func (g *Game) renderRift(dst *core.Screen, rf *rift, camX, camY, viewTop, viewH int) {
	rad := int(rf.Radius) + 1
	for dx := -rad; dx <= rad; dx++ {
		for dy := -rad; dy <= rad; dy++ {
			p := pos{rf.X + dx, rf.Y + dy}
			if !rf.contains(p) {
				continue
			}
			sx, sy := p.X-camX, p.Y-camY
			if sx < 0 || sx >= g.screenW || sy < 0 || sy >= viewH {
				continue
			}
			switch rf.AltReality[p] {
			case tileWall:
				dst.SetCell(sx, sy+viewTop, '▓', core.ColorBrightMagenta)
			case tileWater:
				dst.SetCell(sx, sy+viewTop, '≈', core.ColorBrightCyan)
			case tileParadox:
				dst.SetCell(sx, sy+viewTop, '✶', core.ColorBrightMagenta)
			default:
				dst.SetCell(sx, sy+viewTop, '~', core.ColorMagenta)
			}
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	status := fmt.Sprintf("HP: %d/%d  Score: %d", g.health, maxHealth, g.score)
	dst.DrawText(1, 0, status)

	x := len(status) + 3
	for _, flag := range g.statusFlags() {
		dst.DrawTextColor(x, 0, flag, core.ColorBrightYellow)
		x += len(flag) + 2
	}

	if g.selected >= 0 && g.selected < len(g.inventory) {
		a := g.inventory[g.selected]
		info := fmt.Sprintf("%s S:%d%% E:%d%%", a.Name, int(a.Stability), int(a.Evolution))
		color := core.ColorBrightGreen
		if a.Stability < minPedestalStability {
			color = core.ColorBrightRed
		} else if a.Stability < 70 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColor(g.screenW-len(info)-1, 0, info, color)
	}
}

func (g *Game) statusFlags() []string {
	var flags []string
	if g.invertedControls {
		flags = append(flags, "[INVERTED]")
	}
	if g.canPhase {
		flags = append(flags, "[PHASING]")
	}
	if g.cursed {
		flags = append(flags, "[CURSED]")
	}
	if g.inRift {
		flags = append(flags, "[RIFT]")
	}
	if g.quakeActive() {
		flags = append(flags, "[QUAKE]")
	}
	if g.sizeScale != 1.0 {
		if g.sizeScale > 1.0 {
			flags = append(flags, "[LARGE]")
		} else {
			flags = append(flags, "[SMALL]")
		}
	}
	return flags
}

func (g *Game) renderInventory(dst *core.Screen) {
	x := 1
	for i, a := range g.inventory {
		label := fmt.Sprintf("[%d]%s", i+1, a.Name)
		if a.Cursed && !a.Cleansed {
			label += "✗"
		}
		if a.Entangled != nil {
			label += "∞"
		}
		color := a.Color
		if i == g.selected {
			color = core.ColorBrightWhite
		} else if i == g.marks[0] || i == g.marks[1] {
			color = core.ColorBrightCyan
		}
		dst.DrawTextColor(x, g.screenH-2, label, color)
		x += len(label) + 2
	}
}

func (g *Game) renderLab(dst *core.Screen) {
	y := g.screenH/2 - 2
	dst.DrawTextCentered(y, "ARTIFACT LAB")
	dst.DrawTextCentered(y+1, "1-4 mark a pair, Enter fuse, X entangle, Esc close")

	names := [2]string{"-", "-"}
	for i, m := range g.marks {
		if m >= 0 && m < len(g.inventory) {
			names[i] = g.inventory[m].Name
		}
	}
	dst.DrawTextCentered(y+2, fmt.Sprintf("%s + %s", names[0], names[1]))
}
