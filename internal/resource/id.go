package resource

import (
	"fmt"
	"log/slog"

	"github.com/btcsuite/btcutil/base58"
	"github.com/google/uuid"
)

// IDEncodedMaxLen is the max length of an encoded ID (it can sometimes encode
// to something shorter).
const IDEncodedMaxLen = 27

// ID uniquely identifies an entity, e.g. each time a window is mounted it is
// assigned a new ID.
type ID struct {
	id uuid.UUID
	// Kind of entity, e.g. mount
	kind Kind
}

func NewID(k Kind) ID {
	return ID{
		id:   uuid.New(),
		kind: k,
	}
}

func (id ID) Kind() Kind {
	return id.kind
}

func (id ID) String() string {
	return fmt.Sprintf("%s-%s", id.kind.String(), base58.Encode(id.id[:]))
}

func (id ID) LogValue() slog.Value {
	return slog.StringValue(id.String())
}
