package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/fulldump/gamedb/database"
	"github.com/fulldump/gamedb/games"
	"github.com/fulldump/gamedb/parser"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

type Config struct {
	Filename string
	Mode     parser.Mode
}

type Service struct {
	config *Config
	exit   chan struct{}

	mu         sync.RWMutex
	status     string
	db         *database.GameDataBase
	errorLines []int
}

func NewService(config *Config) *Service {
	return &Service{
		config: config,
		status: StatusOpening,
		exit:   make(chan struct{}),
		db:     database.New(nil),
	}
}

func (s *Service) GetStatus() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Service) setStatus(status string) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// Load parses the configured file and swaps the whole database in one
// shot, so readers never observe a partially loaded state.
func (s *Service) Load() error {

	fmt.Printf("Loading games database %s...\n", s.config.Filename) // todo: move to logger

	t0 := time.Now()
	result, err := parser.New(s.config.Mode).LoadFromFile(s.config.Filename)
	if err != nil {
		s.setStatus(StatusClosing)
		return fmt.Errorf("load '%s': %w", s.config.Filename, err)
	}

	db := database.New(result.Games)

	s.mu.Lock()
	s.db = db
	s.errorLines = result.ErrorLines
	s.status = StatusOperating
	s.mu.Unlock()

	fmt.Println(s.config.Filename, db.Len(), time.Since(t0)) // todo: move to logger
	if result.HasErrors() {
		fmt.Printf("WARNING: %d lines could not be parsed: %v\n", len(result.ErrorLines), result.ErrorLines)
	}

	return nil
}

// Reload re-reads the configured file. The previous database keeps
// serving until the new one is ready.
func (s *Service) Reload() error {
	return s.Load()
}

func (s *Service) Start() error {

	go s.Load()

	<-s.exit

	return nil
}

func (s *Service) Stop() error {

	defer close(s.exit)

	s.setStatus(StatusClosing)

	return nil
}

func (s *Service) database() *database.GameDataBase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db
}

func (s *Service) CountGames() int {
	return s.database().Len()
}

func (s *Service) ErrorLines() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errorLines
}

func (s *Service) GetAllGames() *database.QueryResult {
	return s.database().GetAllGames()
}

func (s *Service) GetGameByID(uid uint32) (*games.Game, error) {
	game := s.database().GetGameByID(uid)
	if game == nil {
		return nil, ErrorGameNotFound
	}
	return game, nil
}

func (s *Service) GetGamesByIDs(uids []uint32) *database.QueryResult {
	return s.database().GetGamesByIDs(uids)
}

func (s *Service) GetGameByName(name string, mode games.SearchMode) (*games.Game, error) {
	game := s.database().GetGameByName(name, mode)
	if game == nil {
		return nil, ErrorGameNotFound
	}
	return game, nil
}

func (s *Service) GetGameBySteamID(steamID int) (*games.Game, error) {
	game := s.database().GetGameBySteamID(steamID)
	if game == nil {
		return nil, ErrorGameNotFound
	}
	return game, nil
}

func (s *Service) SearchGames(filter *database.GameFilter, mode games.SearchMode) *database.QueryResult {
	return s.database().SearchGamesByFilter(filter, mode)
}

func (s *Service) MatchGamesBy(c games.Category, value string) *database.QueryResult {
	return s.database().MatchGamesBy(c, value)
}

func (s *Service) SearchGamesBy(c games.Category, pattern string, mode games.SearchMode) *database.QueryResult {
	return s.database().SearchGamesBy(c, pattern, mode)
}

func (s *Service) ListCategory(c games.Category) *database.ItemResult {
	return s.database().GetAll(c)
}

func (s *Service) ListCategoryWithIDs(c games.Category) []database.IndexEntry {
	return s.database().GetAllWithIDs(c)
}
