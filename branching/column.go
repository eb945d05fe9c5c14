package branching

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// SetColumn is a Column whose candidate is an element set, backed by a
// compressed bitmap. The zero value is the empty candidate.
type SetColumn struct {
	members *roaring.Bitmap
}

// NewSetColumn builds a candidate containing exactly the given element ids.
func NewSetColumn(ids ...uint32) SetColumn {
	return SetColumn{members: roaring.BitmapOf(ids...)}
}

// Contains reports whether element id is part of the candidate.
func (c SetColumn) Contains(id uint32) bool {
	return c.members != nil && c.members.Contains(id)
}

// Cardinality returns the number of elements in the candidate.
func (c SetColumn) Cardinality() uint64 {
	if c.members == nil {
		return 0
	}

	return c.members.GetCardinality()
}

func (c SetColumn) String() string {
	if c.members == nil {
		return "SetColumn{}"
	}

	return fmt.Sprintf("SetColumn%v", c.members.ToArray())
}
