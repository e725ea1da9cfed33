// Package hovertext animates text one character at a time, each character
// growing heavier the closer the pointer is to it.
package hovertext

import (
	"math"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// NBSP replaces literal spaces so they remain individually addressable.
const NBSP = '\u00a0'

// Unit is a single, individually addressable character.
type Unit struct {
	Rune rune
	// Index is the unit's position in reading order.
	Index int
	// Col is the cell offset of the unit from the start of the text.
	Col int
	// Space is true if the unit stands in for a literal space.
	Space bool
}

// Glyph returns the character to draw for the unit.
func (u Unit) Glyph() rune {
	if u.Space {
		return ' '
	}
	return u.Rune
}

// Split splits text into one unit per character, substituting spaces with
// non-breaking spaces.
func Split(text string) []Unit {
	units := make([]Unit, 0, len(text))
	var col int
	for _, r := range text {
		u := Unit{Rune: r, Index: len(units), Col: col}
		if r == ' ' {
			u.Rune = NBSP
			u.Space = true
		}
		units = append(units, u)
		col += runewidth.RuneWidth(r)
	}
	return units
}

// Join reverses Split, reproducing the original text.
func Join(units []Unit) string {
	var b strings.Builder
	for _, u := range units {
		if u.Space {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(u.Rune)
	}
	return b.String()
}

// Width returns the number of cells the units occupy.
func Width(units []Unit) int {
	if len(units) == 0 {
		return 0
	}
	last := units[len(units)-1]
	return last.Col + runewidth.RuneWidth(last.Glyph())
}

// Profile bounds the weight of a piece of text.
type Profile struct {
	Min, Max float64
	// Base is the resting weight, when the pointer is elsewhere.
	Base float64
}

var (
	SubtitleProfile = Profile{Min: 100, Max: 400, Base: 100}
	TitleProfile    = Profile{Min: 400, Max: 900, Base: 400}
)

// Spread controls how quickly intensity falls off with distance, in units of
// squared cells.
const Spread = 200

// Intensity maps the distance between a character and the pointer to a value
// in (0, 1], 1 being directly underneath the pointer. Rows count double
// because a terminal cell is roughly twice as tall as it is wide.
func Intensity(dx, dy float64) float64 {
	dy *= 2
	return math.Exp(-(dx*dx + dy*dy) / Spread)
}

// Weight computes the weight of the character at (x, y) given the pointer at
// (px, py).
func Weight(p Profile, x, y, px, py float64) float64 {
	return p.Min + (p.Max-p.Min)*Intensity(x-px, y-py)
}

// Ease moves current towards target, covering roughly 63% of the remaining
// distance every duration.
func Ease(current, target float64, elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= 8*duration {
		return target
	}
	k := 1 - math.Exp(-float64(elapsed)/float64(duration))
	next := current + (target-current)*k
	if math.Abs(target-next) < 0.5 {
		return target
	}
	return next
}
