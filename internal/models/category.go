// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"
)

// Category represents a hierarchical product category as returned by the
// catalog service. Subcategory is only populated in the nested (tree) form.
type Category struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ParentID    *string    `json:"parentId,omitempty"`
	Depth       int        `json:"depth"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitzero"`
	Subcategory []Category `json:"subcategory,omitempty"`
}

// IsRoot returns true if the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil || *c.ParentID == ""
}

// ParentKey returns the parent id, or "" for a root category.
func (c *Category) ParentKey() string {
	if c.IsRoot() {
		return ""
	}
	return *c.ParentID
}

// UnmarshalJSON accepts both spellings the catalog services emit for the
// parent reference (parentId / parent_id) and the image (imageUrl / image).
func (c *Category) UnmarshalJSON(b []byte) error {
	type plain Category
	aux := struct {
		*plain
		ParentIDSnake *string `json:"parent_id"`
		Image         *string `json:"image"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if c.ParentID == nil && aux.ParentIDSnake != nil {
		c.ParentID = aux.ParentIDSnake
	}
	if c.ImageURL == nil && aux.Image != nil {
		c.ImageURL = aux.Image
	}
	if c.ParentID != nil && *c.ParentID == "" {
		c.ParentID = nil
	}
	return nil
}

// CreateCategoryInput is the request body for creating a category.
// The parent is sent under both names; the services disagree on casing.
type CreateCategoryInput struct {
	Name          string  `json:"name"`
	ParentID      *string `json:"parentId"`
	ParentIDSnake *string `json:"parent_id"`
	ImageURL      *string `json:"imageUrl,omitempty"`
}

// NewCreateCategoryInput builds a create request, normalizing an empty
// parent id or image URL to nil.
func NewCreateCategoryInput(name, parentID, imageURL string) CreateCategoryInput {
	in := CreateCategoryInput{Name: name}
	if parentID != "" {
		in.ParentID = &parentID
		in.ParentIDSnake = &parentID
	}
	if imageURL != "" {
		in.ImageURL = &imageURL
	}
	return in
}
