// Package database holds the in-memory, read-only indexed store built
// from the parsed games. It owns the canonical uid to game mapping plus
// one ordered secondary index per indexable category, and answers point
// lookups, exact index matches, substring searches and whole-category
// listings, all as freshly built result sets.
package database

import (
	"sort"

	"github.com/fulldump/gamedb/games"
)

// GameDataBase is built once from a complete slice of games and never
// mutated afterwards, so concurrent readers can share one instance
// without locking.
type GameDataBase struct {
	games   map[uint32]*games.Game
	indexes map[games.Category]*index

	// uids ascending, for deterministic full scans
	sortedUIDs []uint32
}

// New builds the database. Games are loaded in input order; a later
// game with a colliding uid silently replaces the earlier one
// (last-write-wins, the accepted collision policy).
func New(all []*games.Game) *GameDataBase {
	db := &GameDataBase{
		games:   map[uint32]*games.Game{},
		indexes: map[games.Category]*index{},
	}
	for _, c := range games.Categories {
		db.indexes[c] = newIndex()
	}

	for _, game := range all {
		db.loadGame(game)
	}

	db.sortedUIDs = make([]uint32, 0, len(db.games))
	for uid := range db.games {
		db.sortedUIDs = append(db.sortedUIDs, uid)
	}
	sort.Slice(db.sortedUIDs, func(i, j int) bool {
		return db.sortedUIDs[i] < db.sortedUIDs[j]
	})

	return db
}

func (db *GameDataBase) loadGame(game *games.Game) {
	db.games[game.UID] = game
	indexGame(db.indexes, game)
}

// Len returns the number of games.
func (db *GameDataBase) Len() int {
	return len(db.games)
}

// all returns every game in ascending uid order.
func (db *GameDataBase) all() []*games.Game {
	out := make([]*games.Game, 0, len(db.games))
	for _, uid := range db.sortedUIDs {
		out = append(out, db.games[uid])
	}
	return out
}
