package database

import (
	"sort"

	"github.com/fulldump/gamedb/games"
)

// QueryResult is an ordered, counted, re-queryable wrapper around a
// query's games. It is built fresh by every operation and always sorted
// by the games' ordering key on construction; query composition relies
// on that deterministic order at every stage.
type QueryResult struct {
	Count int           `json:"count"`
	Items []*games.Game `json:"items"`
}

// NewQueryResult sorts the given games by ordering key and wraps them.
func NewQueryResult(items []*games.Game) *QueryResult {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Less(items[j])
	})
	return &QueryResult{
		Count: len(items),
		Items: items,
	}
}

// Get returns the item at the given position, or nil when out of range.
func (q *QueryResult) Get(index int) *games.Game {
	if index < 0 || index >= len(q.Items) {
		return nil
	}
	return q.Items[index]
}

// IntoInner returns the underlying slice.
func (q *QueryResult) IntoInner() []*games.Game {
	return q.Items
}

// GetGameByName returns the last game matching name after sorting, or
// nil.
func (q *QueryResult) GetGameByName(name string, mode games.SearchMode) *games.Game {
	filter := &GameFilter{Name: name}
	matches := filter.FilterGames(q.Items, mode)
	if len(matches) == 0 {
		return nil
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Less(matches[j])
	})
	return matches[len(matches)-1]
}

// SearchGamesByName narrows the result to games whose name contains
// name.
func (q *QueryResult) SearchGamesByName(name string, mode games.SearchMode) *QueryResult {
	filter := &GameFilter{Name: name}
	return NewQueryResult(filter.FilterGames(q.Items, mode))
}

// FilterByCategory narrows the result to games whose category values
// contain value.
func (q *QueryResult) FilterByCategory(c games.Category, value string, mode games.SearchMode) *QueryResult {
	filter := newCategoryFilter(c, value)
	return NewQueryResult(filter.FilterGames(q.Items, mode))
}

// ItemResult is the string counterpart of QueryResult, used for index
// keys (tags, genres, ...). Always sorted lexicographically on
// construction.
type ItemResult struct {
	Count int      `json:"count"`
	Items []string `json:"items"`
}

// NewItemResult sorts the given items and wraps them.
func NewItemResult(items []string) *ItemResult {
	sort.Strings(items)
	return &ItemResult{
		Count: len(items),
		Items: items,
	}
}

// Get returns the item at the given position, or "" when out of range.
func (r *ItemResult) Get(index int) (string, bool) {
	if index < 0 || index >= len(r.Items) {
		return "", false
	}
	return r.Items[index], true
}

// IntoInner returns the underlying slice.
func (r *ItemResult) IntoInner() []string {
	return r.Items
}

// GetItemByName returns the item exactly equal to name.
func (r *ItemResult) GetItemByName(name string) (string, bool) {
	for _, item := range r.Items {
		if item == name {
			return item, true
		}
	}
	return "", false
}

// FilterItemsByName narrows the result to items containing name, case
// insensitively.
func (r *ItemResult) FilterItemsByName(name string) *ItemResult {
	items := []string{}
	for _, item := range r.Items {
		if containsFold(item, name) {
			items = append(items, item)
		}
	}
	return NewItemResult(items)
}
