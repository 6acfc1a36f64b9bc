// Package contenttree turns a flat list of wiki pages and folders into a
// display-ready hierarchy: parent/child adjacency, hasChildren flags, depths and
// a stable display order.
package contenttree

import (
	"sort"

	"golang.org/x/text/collate"

	"meeting-minutes/internal/model"
)

// Tree is the result of Build.
type Tree struct {
	// Items are the input items annotated with Depth and HasChildren, in input order.
	Items []model.ContentItem
	// Children maps a parent id to its children, ordered by title then position.
	// Parents that are absent from Items may still appear as keys.
	Children map[string][]model.ContentItem
}

// Build annotates items with depth and hasChildren. The input slice is not modified.
// A nil collator compares titles byte-wise.
func Build(items []model.ContentItem, coll *collate.Collator) Tree {
	out := make([]model.ContentItem, len(items))
	copy(out, items)

	index := make(map[string]int, len(out))
	for i, it := range out {
		if it.Type == "" {
			out[i].Type = model.ContentTypePage
		}
		if _, dup := index[it.ID]; !dup {
			index[it.ID] = i
		}
	}

	children := make(map[string][]model.ContentItem)
	for _, it := range out {
		if it.ParentID == "" {
			continue
		}
		if i, ok := index[it.ParentID]; ok {
			out[i].HasChildren = true
		}
	}

	for i := range out {
		out[i].Depth = depthOf(out[i], out, index)
	}

	for _, it := range out {
		if it.ParentID != "" {
			children[it.ParentID] = append(children[it.ParentID], it)
		}
	}
	for parent := range children {
		sortChildren(children[parent], coll)
	}

	return Tree{Items: out, Children: children}
}

// depthOf counts the present ancestors of it. A chain that revisits an id, or
// that is longer than the collection itself, yields 0.
func depthOf(it model.ContentItem, items []model.ContentItem, index map[string]int) int {
	visited := map[string]struct{}{it.ID: {}}
	depth := 0
	current := it.ParentID

	for current != "" {
		i, ok := index[current]
		if !ok {
			break
		}
		if _, seen := visited[current]; seen {
			return 0
		}
		visited[current] = struct{}{}
		depth++
		if depth > len(items) {
			return 0
		}
		current = items[i].ParentID
	}
	return depth
}

func sortChildren(list []model.ContentItem, coll *collate.Collator) {
	sort.SliceStable(list, func(i, j int) bool {
		if c := compareTitles(coll, list[i].Title, list[j].Title); c != 0 {
			return c < 0
		}
		if list[i].Position != nil && list[j].Position != nil {
			return *list[i].Position < *list[j].Position
		}
		return false
	})
}

// Sort orders items for display in place: folders first, then by ascending
// depth, then by position when both items carry one, else by title, then by id.
//
// Mixing positioned and unpositioned siblings makes the comparison
// non-transitive, so items are first put in id order. The result then depends
// only on the set of items, not on the order the wiki returned them in.
func Sort(items []model.ContentItem, coll *collate.Collator) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.IsFolder() != b.IsFolder() {
			return a.IsFolder()
		}
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		if a.Position != nil && b.Position != nil && *a.Position != *b.Position {
			return *a.Position < *b.Position
		}
		if c := compareTitles(coll, a.Title, b.Title); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})
}

// ContainersOnly keeps the items a destination picker shows by default:
// folders, items with children, and anything at depth 2 or shallower.
func ContainersOnly(items []model.ContentItem) []model.ContentItem {
	out := make([]model.ContentItem, 0, len(items))
	for _, it := range items {
		if it.IsFolder() || it.HasChildren || it.Depth <= 2 {
			out = append(out, it)
		}
	}
	return out
}

// ChildrenOf returns the direct children of parentID in child-list order.
func (t Tree) ChildrenOf(parentID string) []model.ContentItem {
	list := t.Children[parentID]
	out := make([]model.ContentItem, len(list))
	copy(out, list)
	return out
}

func compareTitles(coll *collate.Collator, a, b string) int {
	if coll == nil {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
	return coll.CompareString(a, b)
}
