package games

import (
	"strings"
	"time"
)

// SearchMode selects whether substring searches honor case.
type SearchMode int

const (
	CaseSensitive SearchMode = iota
	NotCaseSensitive
)

// Game is one record of the database. All fields except Name are
// optional; absent strings are empty, absent lists are nil. Status is
// never absent (it defaults to the unknown status) and Added/Updated
// default to the epoch. A Game is fully built by the parser and not
// modified afterwards.
type Game struct {
	// UID is derived from the name and the added date once the whole
	// input has been parsed. Two games with the same name added the
	// same day collide; that is a known limitation, not a key
	// guarantee.
	UID     uint32      `json:"uid"`
	Name    string      `json:"name"`
	Cover   string      `json:"cover,omitempty"`
	Engine  string      `json:"engine,omitempty"`
	Setup   string      `json:"setup,omitempty"`
	Runtime string      `json:"runtime,omitempty"`
	Stores  StoreLinks  `json:"stores,omitempty"`
	Hints   string      `json:"hints,omitempty"`
	Genres  []string    `json:"genres,omitempty"`
	Tags    []string    `json:"tags,omitempty"`
	Year    string      `json:"year,omitempty"`
	Devs    []string    `json:"devs,omitempty"`
	Pubs    []string    `json:"pubs,omitempty"`
	Version string      `json:"version,omitempty"`
	Status  GameStatus  `json:"status"`
	Added   time.Time   `json:"added"`
	Updated time.Time   `json:"updated"`
	IgdbID  *int        `json:"igdb_id,omitempty"`
}

// SortKey is the normalized ordering key: the lowercased name with a
// literal leading "The " or "A " stripped. The prefix strip requires the
// following space, so "Achampion" keeps its initial letter. Name itself
// is never touched.
func (g *Game) SortKey() string {
	name := strings.ToLower(g.Name)
	if rest, ok := strings.CutPrefix(name, "the "); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(name, "a "); ok {
		return rest
	}
	return name
}

// Less orders games by SortKey.
func (g *Game) Less(other *Game) bool {
	return g.SortKey() < other.SortKey()
}

func contains(haystack, needle string, mode SearchMode) bool {
	if mode == NotCaseSensitive {
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}
	return strings.Contains(haystack, needle)
}

// NameContains reports whether the name contains value.
func (g *Game) NameContains(value string, mode SearchMode) bool {
	return contains(g.Name, value, mode)
}

// StatusContains matches value against the rendered status line
// (level digit plus comment). Games with the unknown status never
// match.
func (g *Game) StatusContains(value string, mode SearchMode) bool {
	if g.Status.IsUnknown() {
		return false
	}
	return contains(g.Status.String(), value, mode)
}

// CategoryContains reports whether any value of the category contains
// value. Absent fields never match.
func (g *Game) CategoryContains(c Category, value string, mode SearchMode) bool {
	for _, item := range g.Values(c) {
		if contains(item, value, mode) {
			return true
		}
	}
	return false
}

// String renders the game as its 17 lines in the database, in field
// order.
func (g *Game) String() string {
	lines := []string{
		Field{Kind: FieldGame, Value: g.Name}.String(),
		Field{Kind: FieldCover, Value: g.Cover}.String(),
		Field{Kind: FieldEngine, Value: g.Engine}.String(),
		Field{Kind: FieldSetup, Value: g.Setup}.String(),
		Field{Kind: FieldRuntime, Value: g.Runtime}.String(),
		Field{Kind: FieldStore, Stores: g.Stores}.String(),
		Field{Kind: FieldHints, Value: g.Hints}.String(),
		Field{Kind: FieldGenre, List: g.Genres}.String(),
		Field{Kind: FieldTags, List: g.Tags}.String(),
		Field{Kind: FieldYear, Value: g.Year}.String(),
		Field{Kind: FieldDev, List: g.Devs}.String(),
		Field{Kind: FieldPub, List: g.Pubs}.String(),
		Field{Kind: FieldVersion, Value: g.Version}.String(),
		Field{Kind: FieldStatus, Status: g.Status}.String(),
		Field{Kind: FieldAdded, Date: g.Added}.String(),
		Field{Kind: FieldUpdated, Date: g.Updated}.String(),
		Field{Kind: FieldIgdbID, ID: g.IgdbID}.String(),
	}
	return strings.Join(lines, "\n")
}

// SteamID returns the id of the game's first Steam store link, or nil.
func (g *Game) SteamID() *int {
	return g.Stores.SteamID()
}
