package database

import (
	"strings"

	"github.com/fulldump/gamedb/games"
)

// GameFilter is a multi-field predicate over games. An empty string
// means the field is not set. CheckGame is an OR across the set fields:
// a game matches as soon as one set pattern is contained in its field.
// A filter with nothing set matches no game at all; callers wanting
// "everything" must skip filtering instead of passing an empty filter.
type GameFilter struct {
	Name    string `json:"name,omitempty"`
	Engine  string `json:"engine,omitempty"`
	Runtime string `json:"runtime,omitempty"`
	Genre   string `json:"genre,omitempty"`
	Tag     string `json:"tag,omitempty"`
	Year    string `json:"year,omitempty"`
	Dev     string `json:"dev,omitempty"`
	Pub     string `json:"pub,omitempty"`
	Status  string `json:"status,omitempty"`
}

// newCategoryFilter returns a filter with only the given category's
// pattern set.
func newCategoryFilter(c games.Category, value string) *GameFilter {
	f := &GameFilter{}
	switch c {
	case games.CategoryEngine:
		f.Engine = value
	case games.CategoryRuntime:
		f.Runtime = value
	case games.CategoryGenre:
		f.Genre = value
	case games.CategoryTag:
		f.Tag = value
	case games.CategoryYear:
		f.Year = value
	case games.CategoryDev:
		f.Dev = value
	case games.CategoryPub:
		f.Pub = value
	}
	return f
}

// categoryPatterns pairs each set category pattern with its category.
func (f *GameFilter) categoryPatterns() map[games.Category]string {
	patterns := map[games.Category]string{}
	set := func(c games.Category, value string) {
		if value != "" {
			patterns[c] = value
		}
	}
	set(games.CategoryEngine, f.Engine)
	set(games.CategoryRuntime, f.Runtime)
	set(games.CategoryGenre, f.Genre)
	set(games.CategoryTag, f.Tag)
	set(games.CategoryYear, f.Year)
	set(games.CategoryDev, f.Dev)
	set(games.CategoryPub, f.Pub)
	return patterns
}

// IsEmpty reports whether no pattern is set.
func (f *GameFilter) IsEmpty() bool {
	return f.Name == "" && f.Status == "" && len(f.categoryPatterns()) == 0
}

// CheckGame reports whether the game satisfies at least one set
// pattern.
func (f *GameFilter) CheckGame(game *games.Game, mode games.SearchMode) bool {
	if f.Name != "" && game.NameContains(f.Name, mode) {
		return true
	}
	if f.Status != "" && game.StatusContains(f.Status, mode) {
		return true
	}
	for c, pattern := range f.categoryPatterns() {
		if game.CategoryContains(c, pattern, mode) {
			return true
		}
	}
	return false
}

// FilterGames keeps the games passing CheckGame, preserving input
// order.
func (f *GameFilter) FilterGames(in []*games.Game, mode games.SearchMode) []*games.Game {
	out := []*games.Game{}
	for _, game := range in {
		if f.CheckGame(game, mode) {
			out = append(out, game)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
