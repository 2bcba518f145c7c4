// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "sessionID", SessionIDCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{
			name:   "present",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, int64(42)),
			wantID: 42,
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "wrong type",
			ctx:  context.WithValue(context.Background(), UserIDCtxKey, "42"),
		},
		{
			name: "plain string key does not collide",
			ctx:  context.WithValue(context.Background(), "userID", int64(42)), //nolint:staticcheck
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestSessionIDContext(t *testing.T) {
	_, ok := GetSessionIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetSessionIDFromContext(WithSessionID(context.Background(), ""))
	assert.False(t, ok)

	id, ok := GetSessionIDFromContext(WithSessionID(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}
