package category

import (
	"maps"
	"slices"
	"strings"

	"blackshop/internal/models"
)

// Set is the set of collapsed category ids of the tree view. It travels in
// the "collapsed" query parameter as a comma-separated list and is never
// stored server-side. The zero value is an empty set.
type Set map[string]struct{}

// ParseSet decodes a comma-separated id list. Blank entries are ignored.
func ParseSet(raw string) Set {
	s := Set{}
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

// Has reports whether id is collapsed.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle returns a copy of s with id added if absent or removed if present.
func (s Set) Toggle(id string) Set {
	out := maps.Clone(s)
	if out == nil {
		out = Set{}
	}
	if out.Has(id) {
		delete(out, id)
	} else {
		out[id] = struct{}{}
	}
	return out
}

// Encode returns the ids sorted and comma-joined.
func (s Set) Encode() string {
	return strings.Join(slices.Sorted(maps.Keys(s)), ",")
}

// Row is one visible line of the tree view.
type Row struct {
	Category    models.Category
	Level       int
	HasChildren bool
	Expanded    bool
	// Toggle is the encoded collapsed set after toggling this row, for
	// building the expand/collapse link.
	Toggle string
}

// Rows returns the visible rows of a nested tree. Nodes are expanded unless
// their id is in collapsed; a collapsed node hides its whole subtree.
func Rows(tree []models.Category, collapsed Set) []Row {
	var rows []Row
	appendRows(tree, 0, collapsed, &rows)
	return rows
}

func appendRows(cats []models.Category, level int, collapsed Set, rows *[]Row) {
	for _, c := range cats {
		children := c.Subcategory
		expanded := !collapsed.Has(c.ID)
		row := Row{
			Category:    c,
			Level:       level,
			HasChildren: len(children) > 0,
			Expanded:    expanded,
		}
		row.Category.Subcategory = nil
		if row.HasChildren {
			row.Toggle = collapsed.Toggle(c.ID).Encode()
		}
		*rows = append(*rows, row)
		if row.HasChildren && expanded {
			appendRows(children, level+1, collapsed, rows)
		}
	}
}
