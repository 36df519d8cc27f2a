package animation

import (
	"fmt"
	"math"
	"strings"

	"github.com/younextz/screenshot-styler/pkg/render/markup"
)

const easeInOut = "0.42 0 0.58 1"

// Animator produces the animation fragments for one render. The zero value
// is inactive and every method on it returns "".
type Animator struct {
	cfg    Config
	active bool
}

// New returns an Animator for cfg. It is inactive when cfg is nil, cfg is
// disabled, or reducedMotion is set.
func New(cfg *Config, reducedMotion bool) Animator {
	if cfg == nil || !cfg.Enabled || reducedMotion {
		return Animator{}
	}
	c := *cfg
	if _, ok := ParseType(string(c.Type)); !ok {
		c.Type = Flow
	}
	if _, ok := ParseSpeed(string(c.Speed)); !ok {
		c.Speed = DefaultConfig(c.Type, true).Speed
	}
	return Animator{cfg: c, active: true}
}

// Active reports whether fragments will be emitted.
func (a Animator) Active() bool { return a.active }

// Type returns the effective animation type.
func (a Animator) Type() Type { return a.cfg.Type }

func (a Animator) dur() string { return Duration(a.cfg.Speed) }

// LinearGradient returns the children for a <linearGradient> whose vector
// runs from (x1,y1) to (x2,y2), in percent.
func (a Animator) LinearGradient(x1, y1, x2, y2 int) string {
	if !a.active {
		return ""
	}
	switch a.cfg.Type {
	case Pulse:
		return AnimateTransform(TransformParams{
			Params: Params{
				AttributeName: "gradientTransform",
				Values:        "1;1.15;1",
				Dur:           a.dur(),
				CalcMode:      Spline,
				KeyTimes:      "0;0.5;1",
				KeySplines:    splines(2),
			},
			Type: "scale",
		}) + "\n"
	case Rotate:
		return AnimateTransform(TransformParams{
			Params: Params{
				AttributeName: "gradientTransform",
				Values:        "0 0.5 0.5;360 0.5 0.5",
				Dur:           a.dur(),
			},
			Type: "rotate",
		}) + "\n"
	case Wave:
		return a.shift(x1, y1, x2, y2, []int{0, 15, 0, -15, 0}, Spline)
	case Shimmer:
		return a.shift(x1, y1, x2, y2, []int{-100, 100}, Spline)
	default:
		return a.shift(x1, y1, x2, y2, []int{0, 50, 0}, Linear)
	}
}

// shift moves the gradient vector along itself by each offset in turn.
// Horizontal and vertical vectors only animate their moving axis.
func (a Animator) shift(x1, y1, x2, y2 int, offsets []int, mode CalcMode) string {
	var b strings.Builder
	dx, dy := sign(x2-x1), sign(y2-y1)
	emit := func(attr string, base, dir int) {
		if dir == 0 {
			return
		}
		vals := make([]string, len(offsets))
		for i, off := range offsets {
			vals[i] = fmt.Sprintf("%d%%", base+dir*off)
		}
		p := Params{
			AttributeName: attr,
			Values:        strings.Join(vals, ";"),
			Dur:           a.dur(),
			CalcMode:      mode,
		}
		if mode == Spline {
			p.KeyTimes = keyTimes(len(offsets))
			p.KeySplines = splines(len(offsets) - 1)
		}
		b.WriteString(Animate(p))
		b.WriteString("\n")
	}
	emit("x1", x1, dx)
	emit("y1", y1, dy)
	emit("x2", x2, dx)
	emit("y2", y2, dy)
	return b.String()
}

// StopColor returns the child for the index-th stop of a gradient. Pulse and
// shimmer cycle the stop through colors starting at its own position; the
// other types leave stops alone.
func (a Animator) StopColor(index int, colors []string) string {
	if !a.active || len(colors) < 2 {
		return ""
	}
	if a.cfg.Type != Pulse && a.cfg.Type != Shimmer {
		return ""
	}
	n := len(colors)
	vals := make([]string, n+1)
	for i := 0; i <= n; i++ {
		vals[i] = colors[(index+i)%n]
	}
	return Animate(Params{
		AttributeName: "stop-color",
		Values:        strings.Join(vals, ";"),
		Dur:           a.dur(),
		CalcMode:      Spline,
		KeyTimes:      keyTimes(n + 1),
		KeySplines:    splines(n),
	}) + "\n"
}

// Blob returns the children for the index-th of count radial blobs centred
// at (cx,cy) percent with radius r percent. Blobs start half a second apart
// in total so they drift independently.
func (a Animator) Blob(index, count, cx, cy, r int) string {
	if !a.active {
		return ""
	}
	if count <= 0 {
		count = 1
	}
	begin := markup.Num(float64(index)/float64(count)*0.5) + "s"
	drift := 6 + 2*(index%3)

	switch a.cfg.Type {
	case Pulse, Shimmer:
		return Animate(Params{
			AttributeName: "r",
			Values:        fmt.Sprintf("%d%%;%d%%;%d%%", r, r+drift, r),
			Dur:           a.dur(),
			CalcMode:      Spline,
			KeyTimes:      "0;0.5;1",
			KeySplines:    splines(2),
			Begin:         begin,
		}) + "\n"
	case Rotate:
		return AnimateTransform(TransformParams{
			Params: Params{
				AttributeName: "gradientTransform",
				Values:        "0 0.5 0.5;360 0.5 0.5",
				Dur:           a.dur(),
				Begin:         begin,
			},
			Type: "rotate",
		}) + "\n"
	default:
		dirX, dirY := 1, -1
		if index%2 == 1 {
			dirX, dirY = -1, 1
		}
		var b strings.Builder
		b.WriteString(Animate(Params{
			AttributeName: "cx",
			Values:        fmt.Sprintf("%d%%;%d%%;%d%%", cx, cx+dirX*drift, cx),
			Dur:           a.dur(),
			CalcMode:      Spline,
			KeyTimes:      "0;0.5;1",
			KeySplines:    splines(2),
			Begin:         begin,
		}))
		b.WriteString("\n")
		b.WriteString(Animate(Params{
			AttributeName: "cy",
			Values:        fmt.Sprintf("%d%%;%d%%;%d%%", cy, cy+dirY*drift, cy),
			Dur:           a.dur(),
			CalcMode:      Spline,
			KeyTimes:      "0;0.5;1",
			KeySplines:    splines(2),
			Begin:         begin,
		}))
		b.WriteString("\n")
		return b.String()
	}
}

// Opacity returns a child that breathes an opacity attribute between base
// and a fraction of it.
func (a Animator) Opacity(attr string, base float64) string {
	if !a.active {
		return ""
	}
	low := math.Round(base*400) / 1000
	return Animate(Params{
		AttributeName: attr,
		Values:        markup.Num(base) + ";" + markup.Num(low) + ";" + markup.Num(base),
		Dur:           a.dur(),
		CalcMode:      Spline,
		KeyTimes:      "0;0.5;1",
		KeySplines:    splines(2),
	}) + "\n"
}

// Drift returns an <animateTransform> that translates a shape by (dx,dy) and
// back. Layers with different index values start at staggered times.
func (a Animator) Drift(index, count int, dx, dy float64) string {
	if !a.active {
		return ""
	}
	if count <= 0 {
		count = 1
	}
	return AnimateTransform(TransformParams{
		Params: Params{
			AttributeName: "transform",
			Values:        "0 0;" + markup.Num(dx) + " " + markup.Num(dy) + ";0 0",
			Dur:           a.dur(),
			CalcMode:      Spline,
			KeyTimes:      "0;0.5;1",
			KeySplines:    splines(2),
			Begin:         markup.Num(float64(index)/float64(count)*0.5) + "s",
		},
		Type: "translate",
	}) + "\n"
}

func keyTimes(n int) string {
	if n < 2 {
		return "0;1"
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = markup.Num(float64(i) / float64(n-1))
	}
	return strings.Join(parts, ";")
}

func splines(intervals int) string {
	if intervals < 1 {
		intervals = 1
	}
	parts := make([]string, intervals)
	for i := range parts {
		parts[i] = easeInOut
	}
	return strings.Join(parts, ";")
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
