package games

// Category enumerates the indexable field categories of a game. Every
// secondary index of the database and every generic filter operation is
// parameterized by one of these instead of carrying one near-identical
// method per field.
type Category string

const (
	CategoryEngine  Category = "engines"
	CategoryRuntime Category = "runtimes"
	CategoryGenre   Category = "genres"
	CategoryTag     Category = "tags"
	CategoryYear    Category = "years"
	CategoryDev     Category = "devs"
	CategoryPub     Category = "pubs"
)

// Categories lists all indexable categories in a fixed order.
var Categories = []Category{
	CategoryEngine,
	CategoryRuntime,
	CategoryGenre,
	CategoryTag,
	CategoryYear,
	CategoryDev,
	CategoryPub,
}

// ParseCategory returns the category named by s, or false when s does
// not name one.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Values returns the game's values for the category: a single-element
// slice for the scalar categories (engine, runtime, year), the whole
// list for the list-valued ones. Absent fields yield nil.
func (g *Game) Values(c Category) []string {
	switch c {
	case CategoryEngine:
		return scalar(g.Engine)
	case CategoryRuntime:
		return scalar(g.Runtime)
	case CategoryYear:
		return scalar(g.Year)
	case CategoryGenre:
		return g.Genres
	case CategoryTag:
		return g.Tags
	case CategoryDev:
		return g.Devs
	case CategoryPub:
		return g.Pubs
	}
	return nil
}

func scalar(value string) []string {
	if value == "" {
		return nil
	}
	return []string{value}
}
