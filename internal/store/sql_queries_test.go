// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildCreateUserQuery_Postgres(t *testing.T) {
	db := newPostgresDB(nil, logger.Nop())
	user := models.User{Username: "ChefJohn", PasswordHash: "hash", Bio: strPtr("bio")}

	query, args, err := db.buildCreateUserQuery(user)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO users (username,password_hash,image_url,bio) VALUES ($1,$2,$3,$4) RETURNING id",
		query)
	assert.Equal(t, []any{"ChefJohn", "hash", (*string)(nil), strPtr("bio")}, args)
}

func TestBuildCreateUserQuery_SQLite(t *testing.T) {
	db := newSQLiteDB(nil, logger.Nop())

	query, _, err := db.buildCreateUserQuery(models.User{Username: "a", PasswordHash: "b"})
	require.NoError(t, err)

	assert.Contains(t, query, "VALUES (?,?,?,?)")
	assert.NotContains(t, query, "$1")
}

func TestBuildFindUserQuery(t *testing.T) {
	db := newPostgresDB(nil, logger.Nop())

	query, args, err := db.buildFindUserQuery(map[string]any{"username": "ChefJohn"})
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, username, password_hash, image_url, bio FROM users WHERE username = $1 LIMIT 1", query)
	assert.Equal(t, []any{"ChefJohn"}, args)
}

func TestBuildCreateRecipeQuery(t *testing.T) {
	db := newPostgresDB(nil, logger.Nop())
	minutes := 30

	query, args, err := db.buildCreateRecipeQuery(models.Recipe{
		Title:             "Soup",
		Instructions:      "boil",
		MinutesToComplete: &minutes,
		UserID:            7,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO recipes (title,instructions,minutes_to_complete,user_id) VALUES ($1,$2,$3,$4) RETURNING id",
		query)
	assert.Equal(t, []any{"Soup", "boil", &minutes, int64(7)}, args)
}

// TestBuildListRecipesByOwnerQuery verifies that recipes are loaded together
// with their owner in one query, filtered and ordered.
func TestBuildListRecipesByOwnerQuery(t *testing.T) {
	db := newPostgresDB(nil, logger.Nop())

	query, args, err := db.buildListRecipesByOwnerQuery(42)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from recipes r join users u on u.id = r.user_id")
	assert.Contains(t, q, "where r.user_id = $1")
	assert.True(t, strings.HasSuffix(q, "order by r.id"))
	assert.Equal(t, []any{int64(42)}, args)
}

func TestQueriesUseModelTableNames(t *testing.T) {
	db := newPostgresDB(nil, logger.Nop())

	userQuery, _, err := db.buildCreateUserQuery(models.User{Username: "a", PasswordHash: "b"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(userQuery, "INSERT INTO "+models.User{}.TableName()+" "))

	recipeQuery, _, err := db.buildCreateRecipeQuery(models.Recipe{Title: "t", Instructions: "i", UserID: 1})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(recipeQuery, "INSERT INTO "+models.Recipe{}.TableName()+" "))
}
