package resource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID_String(t *testing.T) {
	id := NewID(Mount)

	assert.True(t, strings.HasPrefix(id.String(), "mnt-"))
	assert.LessOrEqual(t, len(id.String()), len("mnt-")+IDEncodedMaxLen)
	assert.Equal(t, Mount, id.Kind())
}

func TestNewID_Unique(t *testing.T) {
	assert.NotEqual(t, NewID(Mount), NewID(Mount))
}
