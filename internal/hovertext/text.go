package hovertext

import "time"

// EaseDuration is the time constant for weights approaching their target.
const EaseDuration = 250 * time.Millisecond

// Text is the animation state of a line of text. It is local to whatever
// renders it and has no effect on anything else.
type Text struct {
	Units   []Unit
	Profile Profile

	weights []float64
	targets []float64
}

// New constructs text at rest.
func New(text string, profile Profile) *Text {
	t := &Text{
		Units:   Split(text),
		Profile: profile,
	}
	t.weights = make([]float64, len(t.Units))
	t.targets = make([]float64, len(t.Units))
	for i := range t.Units {
		t.weights[i] = profile.Base
		t.targets[i] = profile.Base
	}
	return t
}

// Move sets target weights for the pointer at (px, py), relative to the first
// cell of the text.
func (t *Text) Move(px, py int) {
	for i, u := range t.Units {
		t.targets[i] = Weight(t.Profile, float64(u.Col), 0, float64(px), float64(py))
	}
}

// Leave returns every character to its resting weight.
func (t *Text) Leave() {
	for i := range t.targets {
		t.targets[i] = t.Profile.Base
	}
}

// Tick advances the animation, returning true if any character is still in
// motion.
func (t *Text) Tick(elapsed time.Duration) bool {
	var moving bool
	for i := range t.weights {
		t.weights[i] = Ease(t.weights[i], t.targets[i], elapsed, EaseDuration)
		if t.weights[i] != t.targets[i] {
			moving = true
		}
	}
	return moving
}

// Weight returns the current weight of the ith character.
func (t *Text) Weight(i int) float64 {
	return t.weights[i]
}

// Level quantizes the current weight of the ith character into one of n
// levels, 0 being the lightest.
func (t *Text) Level(i, n int) int {
	span := t.Profile.Max - t.Profile.Min
	if span <= 0 || n <= 1 {
		return 0
	}
	frac := (t.weights[i] - t.Profile.Min) / span
	level := int(frac * float64(n))
	return max(0, min(n-1, level))
}

// Width returns the number of cells the text occupies.
func (t *Text) Width() int {
	return Width(t.Units)
}

// String returns the original text.
func (t *Text) String() string {
	return Join(t.Units)
}
