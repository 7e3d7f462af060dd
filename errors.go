package slotarena

import (
	"errors"
	"fmt"
)

var (
	// ErrStaleHandle is reported when a handle no longer refers to a live
	// element: it was destroyed, swept by Refresh, cleared, or is the zero
	// Handle.
	ErrStaleHandle = errors.New("slotarena: stale handle")
	// ErrReleased is reported when an arena is used after Release.
	ErrReleased = errors.New("slotarena: use after Release()")
	// ErrDeadAtom is reported when reading the data of an atom that holds
	// no constructed element.
	ErrDeadAtom = errors.New("slotarena: access to dead atom")
)

// IndexError reports an indexed access outside the live range [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("slotarena: index %d out of range [0, %d)", e.Index, e.Len)
}
