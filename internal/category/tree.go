// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package category holds the pure transformations the admin and storefront
// pages apply to the catalog's category list: nesting, flattening for
// selects, locale-aware ordering, and visible-row computation for the
// collapsible tree.
package category

import (
	"strings"

	"blackshop/internal/models"
)

// MaxDepth is the deepest level the catalog service accepts. A category at
// depth MaxDepth cannot have children.
const MaxDepth = 2

// depthMarker prefixes flattened labels once per level.
const depthMarker = "—"

// Option is one entry of a flattened tree, ready for a <select>.
type Option struct {
	ID       string
	Label    string
	Depth    int
	Category models.Category
}

// Flatten walks a nested tree depth-first (pre-order) and returns one
// Option per node. The category values are copied without their children;
// depth and parent are left as the service sent them.
func Flatten(tree []models.Category) []Option {
	var result []Option
	flattenTree(tree, 0, &result)
	return result
}

func flattenTree(cats []models.Category, depth int, result *[]Option) {
	for _, c := range cats {
		children := c.Subcategory
		c.Subcategory = nil
		*result = append(*result, Option{
			ID:       c.ID,
			Label:    strings.Repeat(depthMarker, depth) + " " + c.Name,
			Depth:    depth,
			Category: c,
		})
		if len(children) > 0 {
			flattenTree(children, depth+1, result)
		}
	}
}

// BuildTree nests a flat list by ParentID. Children keep their input order.
// A category whose parent is not in the list becomes a root, and members of
// a parent cycle are emitted once, as roots.
func BuildTree(flat []models.Category) []models.Category {
	g := newGraph(flat)
	var roots []models.Category
	for _, i := range g.roots {
		roots = append(roots, g.nest(i))
	}
	for i := range flat {
		if !g.visited[i] {
			roots = append(roots, g.nest(i))
		}
	}
	return roots
}

// graph indexes a flat list by parent for tree walks.
type graph struct {
	flat     []models.Category
	children map[string][]int
	roots    []int
	orphans  []int
	visited  []bool
}

func newGraph(flat []models.Category) *graph {
	g := &graph{
		flat:     flat,
		children: make(map[string][]int),
		visited:  make([]bool, len(flat)),
	}
	known := make(map[string]bool, len(flat))
	for _, c := range flat {
		known[c.ID] = true
	}
	for i, c := range flat {
		if c.IsRoot() {
			g.roots = append(g.roots, i)
			continue
		}
		if !known[c.ParentKey()] {
			g.roots = append(g.roots, i)
			g.orphans = append(g.orphans, i)
			continue
		}
		g.children[c.ParentKey()] = append(g.children[c.ParentKey()], i)
	}
	return g
}

// nest returns flat[i] with its unvisited descendants attached.
func (g *graph) nest(i int) models.Category {
	g.visited[i] = true
	c := g.flat[i]
	c.Subcategory = nil
	for _, j := range g.children[c.ID] {
		if g.visited[j] {
			continue
		}
		c.Subcategory = append(c.Subcategory, g.nest(j))
	}
	return c
}

// ParentOptions returns the categories that may still receive a child.
func ParentOptions(flat []models.Category) []models.Category {
	var result []models.Category
	for _, c := range flat {
		if c.Depth < MaxDepth {
			result = append(result, c)
		}
	}
	return result
}

// Find returns the category with the given id.
func Find(flat []models.Category, id string) (models.Category, bool) {
	for _, c := range flat {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// FlattenList returns a flat list as-is if it is already flat, or the
// pre-order flattening of a nested one. Catalog versions differ in which
// form ListCategories returns.
func FlattenList(cats []models.Category) []models.Category {
	nested := false
	for _, c := range cats {
		if len(c.Subcategory) > 0 {
			nested = true
			break
		}
	}
	if !nested {
		return cats
	}
	opts := Flatten(cats)
	result := make([]models.Category, len(opts))
	for i, o := range opts {
		result[i] = o.Category
	}
	return result
}
