package vocab

import (
	"sync/atomic"
)

// Holder publishes a vocabulary Index with an atomic pointer swap so
// readers never block on a rebuild. Current returns nil until the first
// Publish.
type Holder struct {
	current atomic.Pointer[Index]
}

// NewHolder returns a Holder with no published index.
func NewHolder() *Holder {
	return &Holder{}
}

// Publish atomically replaces the current index. In-flight readers keep
// the index they already loaded.
func (h *Holder) Publish(index *Index) {
	h.current.Store(index)
}

// Current returns the most recently published index, or nil if none
// has been published yet.
func (h *Holder) Current() *Index {
	return h.current.Load()
}
