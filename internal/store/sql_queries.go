// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-recipe-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	usersTable   = models.User{}.TableName()
	recipesTable = models.Recipe{}.TableName()
)

var userColumns = []string{"id", "username", "password_hash", "image_url", "bio"}

var recipeWithOwnerColumns = []string{
	"r.id",
	"r.title",
	"r.instructions",
	"r.minutes_to_complete",
	"r.user_id",
	"u.id",
	"u.username",
	"u.image_url",
	"u.bio",
}

func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns("username", "password_hash", "image_url", "bio").
		Values(user.Username, user.PasswordHash, user.ImageURL, user.Bio).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildFindUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func (db *DB) buildCreateRecipeQuery(recipe models.Recipe) (string, []any, error) {
	return db.builder.
		Insert(recipesTable).
		Columns("title", "instructions", "minutes_to_complete", "user_id").
		Values(recipe.Title, recipe.Instructions, recipe.MinutesToComplete, recipe.UserID).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildListRecipesByOwnerQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select(recipeWithOwnerColumns...).
		From(recipesTable + " r").
		Join(usersTable + " u ON u.id = r.user_id").
		Where(sq.Eq{"r.user_id": userID}).
		OrderBy("r.id").
		ToSql()
}
