// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package nickname

import "slices"

// Phase is the state of the fetch cycle.
type Phase int

const (
	// PhaseIdle means no fetch has been issued yet.
	PhaseIdle Phase = iota
	// PhaseLoading means a fetch is outstanding; the cache is not shown.
	PhaseLoading
	// PhaseLoaded means the cache holds the latest fetch result.
	PhaseLoaded
	// PhaseFailed means the latest fetch failed. The cache still holds
	// the previous result but is not presented as current.
	PhaseFailed
)

func (phase Phase) String() string {
	switch phase {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ViewState is the complete state of the nickname list. The zero value
// is not ready for use; call [NewViewState].
type ViewState struct {
	filter      string
	cache       []Record
	phase       Phase
	seq         uint64
	err         error
	revealCount int
}

// NewViewState returns an idle state with an empty cache, no filter
// and a reveal window of one page.
func NewViewState() ViewState {
	return ViewState{
		filter:      NoFilter,
		phase:       PhaseIdle,
		revealCount: PageSize,
	}
}

// SetFilter makes filter active and starts a fetch cycle for it,
// returning the cycle's sequence number. The second result is false
// when filter is already active and a cycle has already been started
// for it; nothing changes in that case.
//
// The reveal window resets to one page when the filter changes.
// Refreshing the same filter keeps the window.
func (state *ViewState) SetFilter(filter string) (uint64, bool) {
	if filter == state.filter && state.phase != PhaseIdle {
		return state.seq, false
	}
	if filter != state.filter {
		state.revealCount = PageSize
	}
	state.filter = filter
	return state.begin(), true
}

// Refresh starts a new fetch cycle for the active filter.
func (state *ViewState) Refresh() uint64 {
	return state.begin()
}

func (state *ViewState) begin() uint64 {
	state.seq++
	state.phase = PhaseLoading
	state.err = nil
	return state.seq
}

// ApplyFetch delivers the outcome of the fetch cycle seq. Results for
// any cycle other than the latest issued one, or arriving when no
// cycle is outstanding, are ignored and applied is false.
//
// On success the cache is replaced wholesale by records with repeated
// identifiers removed; their IDs are returned as duplicates. On
// failure the cache is retained and the phase becomes PhaseFailed.
func (state *ViewState) ApplyFetch(seq uint64, records []Record, err error) (applied bool, duplicates []string) {
	if seq != state.seq || state.phase != PhaseLoading {
		return false, nil
	}
	if err != nil {
		state.phase = PhaseFailed
		state.err = err
		return true, nil
	}
	state.cache, duplicates = Unique(records)
	state.phase = PhaseLoaded
	state.err = nil
	return true, duplicates
}

// RemoveRecord drops the record with id from the cache in place,
// preserving order. Reports whether a record was removed.
func (state *ViewState) RemoveRecord(id string) bool {
	kept, removed := RemoveByID(state.cache, id)
	if removed {
		state.cache = kept
	}
	return removed
}

// Reveal widens the reveal window by one page. The window is not
// clamped to the visible set; [ViewState.Rendered] bounds it.
func (state *ViewState) Reveal() {
	state.revealCount += PageSize
}

// Filter returns the active filter.
func (state ViewState) Filter() string { return state.filter }

// Phase returns the fetch cycle state.
func (state ViewState) Phase() Phase { return state.phase }

// Loading reports whether a fetch cycle is outstanding.
func (state ViewState) Loading() bool { return state.phase == PhaseLoading }

// Err returns the error of the latest failed cycle, or nil.
func (state ViewState) Err() error { return state.err }

// Seq returns the sequence number of the latest issued cycle.
func (state ViewState) Seq() uint64 { return state.seq }

// RevealCount returns the current reveal window size.
func (state ViewState) RevealCount() int { return state.revealCount }

// Records returns a copy of the cache.
func (state ViewState) Records() []Record { return slices.Clone(state.cache) }

// Visible returns the cache filtered by the active filter.
func (state ViewState) Visible() []Record { return Visible(state.cache, state.filter) }

// Rendered returns the prefix of the visible set inside the reveal
// window.
func (state ViewState) Rendered() []Record {
	visible := state.Visible()
	return visible[:RenderCount(state.revealCount, len(visible))]
}

// HasMore reports whether visible records lie beyond the reveal
// window.
func (state ViewState) HasMore() bool {
	return state.revealCount < len(state.Visible())
}

// Lookup returns the cached record with id.
func (state ViewState) Lookup(id string) (Record, bool) {
	if id == "" {
		return Record{}, false
	}
	for _, record := range state.cache {
		if record.ID == id {
			return record, true
		}
	}
	return Record{}, false
}
