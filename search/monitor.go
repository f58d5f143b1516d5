package search

import (
	"github.com/tastory/tastory/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterSpellCorrection(correction core.Correction)
	AfterVectorSearch(ids []uint64)
	Scored(id core.ID, vectorScore, lexicalScore, blended float64)
	Finish(page *core.SearchPage)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                              {}
func (n *noopMonitor) AfterSpellCorrection(_ core.Correction)      {}
func (n *noopMonitor) AfterVectorSearch(_ []uint64)                {}
func (n *noopMonitor) Scored(_ core.ID, _, _, _ float64)           {}
func (n *noopMonitor) Finish(_ *core.SearchPage)                   {}
