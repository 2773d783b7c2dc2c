// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

// Package nickui implements the terminal nickname list. Built on
// bubbletea (Elm architecture), it shows nickname records as a grid of
// cards, six at a time, with an owner filter, delete with confirmation
// and an edit hand-off.
//
// All view state lives in [nickname.ViewState] inside the [Model].
// Store requests run as tea.Cmd closures and come back as messages;
// only Update changes state. Each nickname fetch carries the sequence
// number [nickname.ViewState.SetFilter] issued for it, so a response
// that was overtaken by a newer filter selection is dropped.
//
// Data flow:
//
//	[record store] <- Store interface -> fetch / delete commands
//	        |
//	    [Model] <- bubbletea event loop
//	        |
//	  [terminal output]       Navigator -> edit page (/create/{id})
package nickui
