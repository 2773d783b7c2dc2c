// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package nickui

import (
	"context"

	"github.com/ani-nick/nickview/lib/nickname"
)

// Store is the record store the list reads from and deletes through.
// Implemented by [store.Client]; tests use an in-memory fake.
type Store interface {
	Users(ctx context.Context) ([]nickname.UserRef, error)
	Nicknames(ctx context.Context) ([]nickname.Record, error)
	NicknamesByUser(ctx context.Context, userID string) ([]nickname.Record, error)
	DeleteNickname(ctx context.Context, id string) error
}

// Navigator hands a route of the web application to whatever can show
// it. The list only ever navigates to the edit route of one record.
type Navigator interface {
	Navigate(path string) error
}

// EditPath returns the route of the edit form for the record with id.
func EditPath(id string) string {
	return "/create/" + id
}
