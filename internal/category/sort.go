package category

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"blackshop/internal/models"
)

// Report is the result of GroupAndSortReport.
type Report struct {
	// Categories is the display order: every input category exactly once,
	// each parent before its children.
	Categories []models.Category
	// Orphans lists categories placed at root level because their parent
	// is missing from the list or unreachable through a parent cycle.
	Orphans []models.Category
}

// GroupAndSort orders a flat list for display. Categories are grouped by
// parent, each group is sorted by name using the collation rules of tag,
// and the groups are emitted depth-first starting from the roots. The
// result is stable and applying it twice yields the same order.
func GroupAndSort(flat []models.Category, tag language.Tag) []models.Category {
	return GroupAndSortReport(flat, tag).Categories
}

// GroupAndSortReport is GroupAndSort that also reports the categories it
// had to promote to the root group.
func GroupAndSortReport(flat []models.Category, tag language.Tag) Report {
	// Collators keep internal buffers and are not safe for concurrent use.
	col := collate.New(tag)
	byName := func(a, b int) int {
		return col.CompareString(flat[a].Name, flat[b].Name)
	}

	g := newGraph(flat)
	slices.SortStableFunc(g.roots, byName)
	for id := range g.children {
		slices.SortStableFunc(g.children[id], byName)
	}

	var rep Report
	out := make([]models.Category, 0, len(flat))
	for _, i := range g.roots {
		g.walk(i, &out)
	}
	for _, i := range g.orphans {
		rep.Orphans = append(rep.Orphans, flat[i])
	}

	// Whatever is left hangs off a parent cycle.
	var rest []int
	for i := range flat {
		if !g.visited[i] {
			rest = append(rest, i)
		}
	}
	slices.SortStableFunc(rest, byName)
	for _, i := range rest {
		if g.visited[i] {
			continue
		}
		rep.Orphans = append(rep.Orphans, flat[i])
		g.walk(i, &out)
	}

	rep.Categories = out
	return rep
}

// walk appends flat[i] and its unvisited descendants in pre-order.
func (g *graph) walk(i int, out *[]models.Category) {
	g.visited[i] = true
	c := g.flat[i]
	c.Subcategory = nil
	*out = append(*out, c)
	for _, j := range g.children[c.ID] {
		if !g.visited[j] {
			g.walk(j, out)
		}
	}
}
