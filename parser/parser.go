// Package parser assembles the line-oriented games database into typed
// records. A finite state machine expects the 17 fields of each record
// in a fixed order; malformed stretches are skipped and reported as
// error line numbers instead of failing the whole load.
package parser

import (
	"fmt"
	"hash/fnv"
	"os"
	"strings"

	"github.com/fulldump/gamedb/games"
)

// Mode selects how the parser reacts to a malformed line.
type Mode int

const (
	// Relaxed keeps parsing after an error, recovering at the next
	// Game line and collecting every skipped line number.
	Relaxed Mode = iota
	// Strict stops at the first malformed line, returning the records
	// completed before it plus that single line number.
	Strict
)

// ParseMode reads a mode name, as written in configuration.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "relaxed", "":
		return Relaxed, nil
	case "strict":
		return Strict, nil
	}
	return Relaxed, fmt.Errorf("bad mode '%s', must be [relaxed|strict]", s)
}

// Result is the outcome of a load: the assembled games plus the 1-based
// input lines that were skipped. The two outcomes of the parsing
// contract are told apart with HasErrors.
type Result struct {
	Games      []*games.Game
	ErrorLines []int
}

// HasErrors reports whether any input line was skipped.
func (r *Result) HasErrors() bool {
	return len(r.ErrorLines) > 0
}

// fieldSequence is the fixed order of fields within one record.
var fieldSequence = []games.FieldKind{
	games.FieldGame,
	games.FieldCover,
	games.FieldEngine,
	games.FieldSetup,
	games.FieldRuntime,
	games.FieldStore,
	games.FieldHints,
	games.FieldGenre,
	games.FieldTags,
	games.FieldYear,
	games.FieldDev,
	games.FieldPub,
	games.FieldVersion,
	games.FieldStatus,
	games.FieldAdded,
	games.FieldUpdated,
	games.FieldIgdbID,
}

const (
	stateError      = -1
	stateRecovering = -2
)

// Parser drives the record assembly. Each Load call runs on fresh
// machine state, so one Parser can be reused.
type Parser struct {
	mode Mode
}

// New returns a parser in the given mode.
func New(mode Mode) *Parser {
	return &Parser{mode: mode}
}

// Default returns a relaxed parser.
func Default() *Parser {
	return New(Relaxed)
}

// LoadFromFile reads the whole file and parses it. The only propagated
// failure of the package: a path that does not name a readable regular
// file.
func (p *Parser) LoadFromFile(filename string) (*Result, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("open database: '%s' is not a regular file", filename)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read database: %w", err)
	}

	return p.LoadFromString(string(data)), nil
}

// LoadFromString parses in-memory data. It cannot fail: malformed
// content becomes skipped lines in the result.
func (p *Parser) LoadFromString(data string) *Result {
	m := &machine{}

	lines := strings.Split(data, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1] // optional trailing newline
	}
	for i, line := range lines {
		m.consume(i+1, line)
		if p.mode == Strict && len(m.errorLines) > 0 {
			break
		}
	}

	for _, game := range m.games {
		game.UID = uid(game)
	}

	return &Result{Games: m.games, ErrorLines: m.errorLines}
}

type machine struct {
	state      int // index into fieldSequence, or stateError/stateRecovering
	games      []*games.Game
	errorLines []int
}

func (m *machine) consume(lineNumber int, line string) {
	field := games.ClassifyLine(line)

	if m.state == stateError || m.state == stateRecovering {
		if field.Kind == games.FieldGame {
			m.begin(field)
			return
		}
		m.errorLines = append(m.errorLines, lineNumber)
		return
	}

	expected := fieldSequence[m.state]
	if field.Kind != expected {
		m.errorLines = append(m.errorLines, lineNumber)
		if expected == games.FieldGame {
			m.state = stateError
			return
		}
		// Drop the half-built record and skip until the next one.
		m.games = m.games[:len(m.games)-1]
		m.state = stateRecovering
		return
	}

	if field.Kind == games.FieldGame {
		m.begin(field)
		return
	}

	m.assign(field)
	m.advance()
}

// begin starts a new record from a Game line and resumes normal
// sequencing at Cover.
func (m *machine) begin(field games.Field) {
	m.games = append(m.games, &games.Game{
		Name:    field.Value,
		Added:   games.Epoch,
		Updated: games.Epoch,
	})
	m.state = 1
}

func (m *machine) advance() {
	m.state++
	if m.state == len(fieldSequence) {
		m.state = 0
	}
}

func (m *machine) assign(field games.Field) {
	game := m.games[len(m.games)-1]

	switch field.Kind {
	case games.FieldCover:
		game.Cover = field.Value
	case games.FieldEngine:
		game.Engine = field.Value
	case games.FieldSetup:
		game.Setup = field.Value
	case games.FieldRuntime:
		game.Runtime = field.Value
	case games.FieldStore:
		game.Stores = field.Stores
	case games.FieldHints:
		game.Hints = field.Value
	case games.FieldGenre:
		game.Genres = field.List
	case games.FieldTags:
		game.Tags = field.List
	case games.FieldYear:
		game.Year = field.Value
	case games.FieldDev:
		game.Devs = field.List
	case games.FieldPub:
		game.Pubs = field.List
	case games.FieldVersion:
		game.Version = field.Value
	case games.FieldStatus:
		game.Status = field.Status
	case games.FieldAdded:
		game.Added = field.Date
	case games.FieldUpdated:
		game.Updated = field.Date
	case games.FieldIgdbID:
		game.IgdbID = field.ID
	}
}

// uid derives the stable 32-bit identifier of a game: FNV-1a over the
// canonical added date followed by the name. Stable across runs; games
// sharing name and added date collide.
func uid(game *games.Game) uint32 {
	h := fnv.New32a()
	h.Write([]byte(game.Added.Format(games.DateFormat)))
	h.Write([]byte(game.Name))
	return h.Sum32()
}
