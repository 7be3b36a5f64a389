package service

import (
	"errors"

	"github.com/fulldump/gamedb/database"
	"github.com/fulldump/gamedb/games"
)

var ErrorGameNotFound = errors.New("game not found")

type Servicer interface {
	GetStatus() string
	CountGames() int
	ErrorLines() []int
	Reload() error

	GetAllGames() *database.QueryResult
	GetGameByID(uid uint32) (*games.Game, error)
	GetGamesByIDs(uids []uint32) *database.QueryResult
	GetGameByName(name string, mode games.SearchMode) (*games.Game, error)
	GetGameBySteamID(steamID int) (*games.Game, error)
	SearchGames(filter *database.GameFilter, mode games.SearchMode) *database.QueryResult
	MatchGamesBy(c games.Category, value string) *database.QueryResult
	SearchGamesBy(c games.Category, pattern string, mode games.SearchMode) *database.QueryResult
	ListCategory(c games.Category) *database.ItemResult
	ListCategoryWithIDs(c games.Category) []database.IndexEntry
}
