package database

import (
	"github.com/fulldump/gamedb/games"
)

// GetGameByID returns the game with the given uid, or nil.
func (db *GameDataBase) GetGameByID(uid uint32) *games.Game {
	return db.games[uid]
}

// GetGamesByIDs looks up each uid, silently dropping the missing ones.
func (db *GameDataBase) GetGamesByIDs(uids []uint32) *QueryResult {
	out := []*games.Game{}
	for _, uid := range uids {
		if game, ok := db.games[uid]; ok {
			out = append(out, game)
		}
	}
	return NewQueryResult(out)
}

// GetGameByName returns the first game whose name contains name,
// scanning in ascending uid order so the answer is deterministic.
func (db *GameDataBase) GetGameByName(name string, mode games.SearchMode) *games.Game {
	filter := &GameFilter{Name: name}
	for _, game := range db.all() {
		if filter.CheckGame(game, mode) {
			return game
		}
	}
	return nil
}

// GetGameBySteamID scans every game's store links for a Steam link with
// the given id.
func (db *GameDataBase) GetGameBySteamID(steamID int) *games.Game {
	for _, game := range db.all() {
		id := game.SteamID()
		if id != nil && *id == steamID {
			return game
		}
	}
	return nil
}

// MatchGamesBy returns the games whose category index bucket holds
// exactly value.
func (db *GameDataBase) MatchGamesBy(c games.Category, value string) *QueryResult {
	out := []*games.Game{}
	for _, uid := range db.indexes[c].get(value) {
		if game, ok := db.games[uid]; ok {
			out = append(out, game)
		}
	}
	return NewQueryResult(out)
}

// SearchGamesBy scans all games for category values containing pattern.
func (db *GameDataBase) SearchGamesBy(c games.Category, pattern string, mode games.SearchMode) *QueryResult {
	filter := newCategoryFilter(c, pattern)
	return NewQueryResult(filter.FilterGames(db.all(), mode))
}

// SearchGamesByName scans all games for names containing pattern.
func (db *GameDataBase) SearchGamesByName(pattern string, mode games.SearchMode) *QueryResult {
	filter := &GameFilter{Name: pattern}
	return NewQueryResult(filter.FilterGames(db.all(), mode))
}

// SearchGamesByFilter applies an arbitrary filter to all games.
func (db *GameDataBase) SearchGamesByFilter(filter *GameFilter, mode games.SearchMode) *QueryResult {
	return NewQueryResult(filter.FilterGames(db.all(), mode))
}

// GetAllGames returns every game.
func (db *GameDataBase) GetAllGames() *QueryResult {
	return NewQueryResult(db.all())
}

// GetAll returns every distinct index key of the category,
// lexicographically sorted.
func (db *GameDataBase) GetAll(c games.Category) *ItemResult {
	return NewItemResult(db.indexes[c].keys())
}

// GetAllWithIDs returns every (key, uids) pair of the category, keys
// sorted, buckets in load order.
func (db *GameDataBase) GetAllWithIDs(c games.Category) []IndexEntry {
	return db.indexes[c].entries()
}
