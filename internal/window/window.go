// Package window is the single source of truth for the state of every window
// on the desktop: whether it is open, its stacking order, and the payload it
// displays.
package window

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnknownWindow is returned when an identifier does not name one of the
// desktop's windows. It is always a programming error.
var ErrUnknownWindow = errors.New("unknown window")

// BaseZIndex is the z-index every window starts with.
const BaseZIndex = 1000

// ID identifies a window slot. The set of IDs is fixed.
type ID string

const (
	Finder   ID = "finder"
	Contact  ID = "contact"
	Resume   ID = "resume"
	Safari   ID = "safari"
	Photos   ID = "photos"
	Terminal ID = "terminal"
	TxtFile  ID = "txtfile"
	ImgFile  ID = "imgfile"
)

// IDs lists every window ID, in a stable order.
var IDs = []ID{
	Finder,
	Contact,
	Resume,
	Safari,
	Photos,
	Terminal,
	TxtFile,
	ImgFile,
}

// Valid determines whether id is one of the known window IDs.
func (id ID) Valid() bool {
	return id.order() >= 0
}

func (id ID) order() int {
	for i, known := range IDs {
		if id == known {
			return i
		}
	}
	return -1
}

// ParseID parses a string into a window ID.
func ParseID(s string) (ID, error) {
	id := ID(s)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownWindow, s)
	}
	return id, nil
}

// State is a snapshot of a window's state.
type State struct {
	ID     ID
	IsOpen bool
	// ZIndex is the stacking order; higher is on top.
	ZIndex int
	// Data is an optional payload, e.g. the file a viewer displays. Nil if
	// there is no payload.
	Data any `json:",omitempty"`
}

func (s State) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", string(s.ID)),
		slog.Bool("open", s.IsOpen),
		slog.Int("z", s.ZIndex),
	)
}
