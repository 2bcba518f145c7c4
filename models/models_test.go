package models

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONNeverContainsPasswordHash(t *testing.T) {
	u := User{ID: 1, Username: "ChefJohn", PasswordHash: "$2a$10$secret"}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "password")
}

func TestProfile_NullOptionalFields(t *testing.T) {
	data, err := json.Marshal(User{ID: 3, Username: "ann"}.Profile())
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":3,"username":"ann","image_url":null,"bio":null}`, string(data))
}

func TestRecipeWithOwner_JSONShape(t *testing.T) {
	minutes := 30
	bio := "cooks"
	r := RecipeWithOwner{
		Recipe: Recipe{ID: 7, Title: "Soup", Instructions: "boil", MinutesToComplete: &minutes, UserID: 2},
		User:   Profile{ID: 2, Username: "bob", Bio: &bio},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 7,
		"title": "Soup",
		"instructions": "boil",
		"minutes_to_complete": 30,
		"user": {"id": 2, "username": "bob", "image_url": null, "bio": "cooks"}
	}`, string(data))
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Session{ExpiresAt: now.Add(time.Second)}.Expired(now))
	assert.True(t, Session{ExpiresAt: now}.Expired(now))
	assert.True(t, Session{ExpiresAt: now.Add(-time.Minute)}.Expired(now))
}

func TestCreateRecipeRequest_Recipe(t *testing.T) {
	minutes := 5
	req := CreateRecipeRequest{Title: "t", Instructions: "i", MinutesToComplete: &minutes}

	r := req.Recipe(9)

	assert.Equal(t, int64(9), r.UserID)
	assert.Equal(t, "t", r.Title)
	assert.Equal(t, &minutes, r.MinutesToComplete)
}

func TestAppBuildInfo_Print(t *testing.T) {
	var buf bytes.Buffer
	NewAppBuildInfo("1.0.0", "", "abc").Print(&buf)

	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: abc\n", buf.String())
}
