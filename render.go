package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/colossus/engine"
	"github.com/lixenwraith/colossus/host"
	"github.com/lixenwraith/colossus/status"
	"github.com/lixenwraith/colossus/traction"
	"github.com/lixenwraith/colossus/vmath"
)

const (
	hudWidth = 36
	barWidth = 20
)

var (
	styleBody     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleShake    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	stylePoint    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleWeak     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorDarkKhaki)
	styleAttached = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleAirborne = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDepleted = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
)

// view maps the world X/Y plane onto screen cells, two columns per unit
type view struct {
	cx, cy  int
	originX float64
}

func (v view) project(p vmath.Vec3F) (int, int) {
	return v.cx + int(math.Round((p.X-v.originX)*2)), v.cy - int(math.Round(p.Y))
}

func (v view) unproject(x, y int) (float64, float64) {
	return float64(x-v.cx)/2 + v.originX, float64(v.cy - y)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func bar(current, capacity float64) string {
	if capacity <= 0 {
		return strings.Repeat(" ", barWidth)
	}
	n := int(math.Round(current / capacity * barWidth))
	n = min(max(n, 0), barWidth)
	return strings.Repeat("#", n) + strings.Repeat(".", barWidth-n)
}

// drawScene renders hosts, obstacles and actors; the caller holds the world read lock
func drawScene(s tcell.Screen, w *engine.World, focus *host.Host) {
	width, height := s.Size()
	v := view{cx: hudWidth + (width-hudWidth)/2, cy: height / 2}
	if focus != nil {
		v.originX = focus.Position().X
	}

	for _, o := range w.Index().Obstacles() {
		fillDisc(s, v, width, height, o.Center, o.Radius, '#', styleObstacle)
	}

	for _, h := range w.Hosts() {
		center := vmath.V3FAdd(h.Position(), h.ShakeOffset())
		body := styleBody
		if h.Shaking() {
			body = styleShake
		}
		if !h.Alive() {
			body = styleDim
		}
		fillDisc(s, v, width, height, center, h.CollisionRadius(), '.', body)

		for i := 0; i < h.PointCount(); i++ {
			p, _ := h.Point(i)
			x, y := v.project(p.WorldPosition())
			if x < hudWidth || x >= width || y < 0 || y >= height {
				continue
			}
			r, style := 'o', stylePoint
			if p.IsWeakPoint {
				r, style = '*', styleWeak
			}
			if p.Highlighted() {
				style = style.Reverse(true)
			}
			s.SetContent(x, y, r, nil, style)
		}
	}

	for _, a := range w.Actors() {
		x, y := v.project(a.Position())
		if x < hudWidth || x >= width || y < 0 || y >= height {
			continue
		}
		style := styleAirborne
		switch {
		case a.Depleted():
			style = styleDepleted
		case a.Attached():
			style = styleAttached
		}
		r := '@'
		if a.Charging() {
			r = '!'
		}
		s.SetContent(x, y, r, nil, style)
	}
}

func fillDisc(s tcell.Screen, v view, width, height int, center vmath.Vec3F, radius float64, r rune, style tcell.Style) {
	x0, y0 := v.project(vmath.Vec3F{X: center.X - radius, Y: center.Y + radius})
	x1, y1 := v.project(vmath.Vec3F{X: center.X + radius, Y: center.Y - radius})
	for y := max(y0, 0); y <= min(y1, height-1); y++ {
		for x := max(x0, hudWidth); x <= min(x1, width-1); x++ {
			wx, wy := v.unproject(x, y)
			dx, dy := wx-center.X, wy-center.Y
			if dx*dx+dy*dy <= radius*radius {
				s.SetContent(x, y, r, nil, style)
			}
		}
	}
}

// drawHUD renders pools and the live status registry in the left column
func drawHUD(s tcell.Screen, a *traction.Controller, h *host.Host, reg *status.Registry, paused bool) {
	_, height := s.Size()
	row := 0
	line := func(style tcell.Style, format string, args ...any) {
		if row < height {
			drawText(s, 0, row, style, fmt.Sprintf(format, args...))
		}
		row++
	}

	st, gr, hp := a.Stamina(), a.GripStrength(), h.Health()
	line(styleHUD, "stamina [%s] %5.1f", bar(st.Current, st.Max), st.Current)
	line(styleHUD, "grip    [%s] %5.1f", bar(gr.Current, gr.Max), gr.Current)
	line(styleHUD, "host    [%s] %5.0f", bar(hp.Current, hp.Max), hp.Current)
	state := a.State().String()
	if a.Depleted() {
		state += " (depleted)"
	}
	if a.Charging() {
		state += fmt.Sprintf(" charge %.1fs", a.ChargeTime().Seconds())
	}
	line(styleHUD, "state   %s", state)
	if h.Shaking() {
		line(styleShake, "HOST IS SHAKING")
	} else {
		now := time.Duration(reg.Floats.Get("world.time_s").Get() * float64(time.Second))
		line(styleDim, "next shake in %.1fs", max(0, (h.NextShakeAt()-now).Seconds()))
	}
	if paused {
		line(styleShake, "PAUSED")
	} else {
		row++
	}
	row++

	for _, e := range reg.Snapshot() {
		line(styleDim, "%-22s %s", e.Key, e.Value)
	}

	drawText(s, 0, height-1, styleDim, "g grip  r release  space jump  c/x charge  wasd climb  k shake  p pause  q quit")
}
