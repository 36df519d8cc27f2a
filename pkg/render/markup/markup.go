// Package markup holds the small text helpers shared by every SVG writer in
// the render tree: number formatting and XML escaping.
package markup

import (
	"strconv"
	"strings"
)

// Num formats f the shortest way that round-trips: integers print without a
// decimal point and fractions keep only the digits they need (e.g. 940, 412.5).
func Num(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Int is Num for integers.
func Int(i int) string { return strconv.Itoa(i) }

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape escapes the five XML special characters.
func Escape(s string) string {
	return xmlEscaper.Replace(s)
}
