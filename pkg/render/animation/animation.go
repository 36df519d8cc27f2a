// Package animation emits SMIL <animate> and <animateTransform> fragments for
// animated backgrounds.
//
// Generators never build animation markup directly. They ask an [Animator]
// for the fragment that belongs inside a gradient, stop or shape, and the
// Animator returns the empty string when animation is disabled or the
// viewer prefers reduced motion, so a static render contains no animation
// elements at all.
package animation

import (
	"fmt"
	"strings"
	"time"
)

// Type selects the motion applied to a background.
type Type string

const (
	Flow    Type = "flow"
	Pulse   Type = "pulse"
	Rotate  Type = "rotate"
	Wave    Type = "wave"
	Shimmer Type = "shimmer"
)

// Speed selects the loop duration.
type Speed string

const (
	Slow   Speed = "slow"
	Medium Speed = "medium"
	Fast   Speed = "fast"
)

// Config is the user-facing animation setting.
type Config struct {
	Type    Type  `json:"type" toml:"type" yaml:"type" validate:"omitempty,oneof=flow pulse rotate wave shimmer"`
	Speed   Speed `json:"speed" toml:"speed" yaml:"speed" validate:"omitempty,oneof=slow medium fast"`
	Enabled bool  `json:"enabled" toml:"enabled" yaml:"enabled"`
}

// Info describes an animation type.
type Info struct {
	Type         Type
	Description  string
	DefaultSpeed Speed
}

var types = []Info{
	{Flow, "Gradient flows smoothly across the canvas", Medium},
	{Pulse, "Gentle pulsing opacity or scale effect", Slow},
	{Rotate, "Continuous rotation around center point", Slow},
	{Wave, "Sinusoidal wave-like movement", Medium},
	{Shimmer, "Quick highlight pass effect", Fast},
}

var timings = map[Speed]time.Duration{
	Slow:   10 * time.Second,
	Medium: 6 * time.Second,
	Fast:   3 * time.Second,
}

// Types lists every animation type with its description.
func Types() []Info {
	out := make([]Info, len(types))
	copy(out, types)
	return out
}

// Speeds lists the speeds from slowest to fastest.
func Speeds() []Speed { return []Speed{Slow, Medium, Fast} }

// Describe returns the Info for t.
func Describe(t Type) (Info, bool) {
	for _, info := range types {
		if info.Type == t {
			return info, true
		}
	}
	return Info{}, false
}

// ParseType reports whether s names an animation type.
func ParseType(s string) (Type, bool) {
	info, ok := Describe(Type(s))
	return info.Type, ok
}

// ParseSpeed reports whether s names a speed.
func ParseSpeed(s string) (Speed, bool) {
	_, ok := timings[Speed(s)]
	return Speed(s), ok
}

// DurationOf returns the loop length for speed; unknown speeds use medium.
func DurationOf(speed Speed) time.Duration {
	if d, ok := timings[speed]; ok {
		return d
	}
	return timings[Medium]
}

// Duration returns the SMIL dur value for speed, e.g. "6s".
func Duration(speed Speed) string {
	return fmt.Sprintf("%ds", int(DurationOf(speed)/time.Second))
}

// DefaultConfig returns a config for t using its default speed.
func DefaultConfig(t Type, enabled bool) Config {
	info, ok := Describe(t)
	if !ok {
		info, _ = Describe(Flow)
	}
	return Config{Type: info.Type, Speed: info.DefaultSpeed, Enabled: enabled}
}

// Validate checks the type and speed, allowing either to be empty.
func (c Config) Validate() error {
	if c.Type != "" {
		if _, ok := ParseType(string(c.Type)); !ok {
			return fmt.Errorf("invalid animation type: %q (must be one of: flow, pulse, rotate, wave, shimmer)", c.Type)
		}
	}
	if c.Speed != "" {
		if _, ok := ParseSpeed(string(c.Speed)); !ok {
			return fmt.Errorf("invalid animation speed: %q (must be one of: slow, medium, fast)", c.Speed)
		}
	}
	return nil
}

// CalcMode is the SMIL interpolation mode.
type CalcMode string

const (
	Linear   CalcMode = "linear"
	Discrete CalcMode = "discrete"
	Paced    CalcMode = "paced"
	Spline   CalcMode = "spline"
)

// Params describes one <animate> element. Empty RepeatCount and CalcMode
// default to indefinite and linear.
type Params struct {
	AttributeName string
	Values        string
	Dur           string
	RepeatCount   string
	CalcMode      CalcMode
	KeyTimes      string
	KeySplines    string
	Begin         string
}

// TransformParams describes one <animateTransform> element.
type TransformParams struct {
	Params
	Type string // translate, scale, rotate, skewX or skewY
}

// Animate renders an <animate> element.
func Animate(p Params) string {
	return element("animate", p, "")
}

// AnimateTransform renders an <animateTransform> element.
func AnimateTransform(p TransformParams) string {
	if p.AttributeName == "" {
		p.AttributeName = "transform"
	}
	return element("animateTransform", p.Params, p.Type)
}

func element(tag string, p Params, kind string) string {
	repeat := p.RepeatCount
	if repeat == "" {
		repeat = "indefinite"
	}
	mode := p.CalcMode
	if mode == "" {
		mode = Linear
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<%s attributeName="%s"`, tag, p.AttributeName)
	if kind != "" {
		fmt.Fprintf(&b, ` type="%s"`, kind)
	}
	fmt.Fprintf(&b, ` values="%s" dur="%s" repeatCount="%s" calcMode="%s"`, p.Values, p.Dur, repeat, mode)
	if p.KeyTimes != "" {
		fmt.Fprintf(&b, ` keyTimes="%s"`, p.KeyTimes)
	}
	if p.KeySplines != "" {
		fmt.Fprintf(&b, ` keySplines="%s"`, p.KeySplines)
	}
	if p.Begin != "" {
		fmt.Fprintf(&b, ` begin="%s"`, p.Begin)
	}
	b.WriteString(" />")
	return b.String()
}
