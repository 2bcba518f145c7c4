// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Recipe is a user-owned record. The owner is fixed at creation.
type Recipe struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
	UserID            int64  `json:"-"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}

// RecipeWithOwner is a [Recipe] together with its owner's [Profile],
// serialized with the owner nested under "user".
type RecipeWithOwner struct {
	Recipe
	User Profile `json:"user"`
}
