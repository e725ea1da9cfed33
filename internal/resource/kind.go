package resource

// Kind differentiates identifiers belonging to different types of entity.
type Kind int

const (
	// Mount identifies a single mounting of a window's content.
	Mount Kind = iota
)

var kindNames = [...]string{
	"mnt",
}

func (k Kind) String() string {
	return kindNames[k]
}
