package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniverse(t *testing.T) {
	u := NewUniverse("b", "a", "b")

	assert.Equal(t, 2, u.Len())
	assert.True(t, u.Contains("a"))
	assert.False(t, u.Contains("c"))
	assert.Equal(t, []string{"a", "b"}, u.Sorted())
	assert.Equal(t, 0, Universe{}.Len())
}

func TestSnapshot_Containing(t *testing.T) {
	s := NewSnapshot(PhasePre, map[Path]Universe{
		"b.py": NewUniverse("x"),
		"a.py": NewUniverse("x", "y"),
	})

	assert.Equal(t, []Path{"a.py", "b.py"}, s.Containing("x"))
	assert.Equal(t, []Path{"a.py"}, s.Containing("y"))
	assert.Equal(t, 0, s.Universe("c.py").Len())
}
