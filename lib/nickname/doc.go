// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

// Package nickname holds the view state behind the nickname list: the
// cached record set, the active owner filter, the fetch state machine
// and the reveal window.
//
// Records arrive from the store with two spellings for their
// identifier (_id or id) and for their owner (created_by or user_id).
// [Record.UnmarshalJSON] resolves both once, so everything past the
// decode boundary reads [Record.ID] and [Record.Owner] only.
//
// [ViewState] is a plain value owned by a single event loop. Each
// fetch cycle is tagged with a sequence number; [ViewState.ApplyFetch]
// accepts only the result of the most recently issued cycle, so a slow
// response for an old filter can never overwrite a newer one.
//
//	SetFilter / Refresh -> seq
//	        | (store request)
//	ApplyFetch(seq, records, err)
//	        |
//	Visible -> Rendered (bounded by the reveal count)
package nickname
