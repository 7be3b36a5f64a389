package service

import (
	"os"
	"path"
	"sync"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/fulldump/gamedb/games"
	"github.com/fulldump/gamedb/parser"
)

func record(name string) string {
	return "Game\t" + name + "\n" +
		"Cover\n" +
		"Engine\tGodot\n" +
		"Setup\n" +
		"Runtime\n" +
		"Store\n" +
		"Hints\n" +
		"Genre\n" +
		"Tags\tindie\n" +
		"Year\n" +
		"Dev\n" +
		"Pub\n" +
		"Version\n" +
		"Status\n" +
		"Added\t2022-05-01\n" +
		"Updated\t2022-05-01\n" +
		"IgdbId\n"
}

func writeDatabase(t *testing.T, content string) string {
	filename := path.Join(t.TempDir(), "games.db")
	AssertNil(os.WriteFile(filename, []byte(content), 0666))
	return filename
}

func TestServiceLoad(t *testing.T) {

	s := NewService(&Config{
		Filename: writeDatabase(t, record("Aeternum")),
		Mode:     parser.Relaxed,
	})

	AssertEqual(s.GetStatus(), StatusOpening)

	AssertNil(s.Load())

	AssertEqual(s.GetStatus(), StatusOperating)
	AssertEqual(s.CountGames(), 1)
	AssertNil(s.ErrorLines())
}

func TestServiceLoadMissingFile(t *testing.T) {

	s := NewService(&Config{
		Filename: "/does/not/exist",
		Mode:     parser.Relaxed,
	})

	AssertNotNil(s.Load())
	AssertEqual(s.GetStatus(), StatusClosing)
}

func TestServiceReload(t *testing.T) {

	filename := writeDatabase(t, record("Aeternum"))

	s := NewService(&Config{Filename: filename, Mode: parser.Relaxed})
	AssertNil(s.Load())
	AssertEqual(s.CountGames(), 1)

	AssertNil(os.WriteFile(filename, []byte(record("Aeternum")+record("Bravery")), 0666))

	AssertNil(s.Reload())
	AssertEqual(s.CountGames(), 2)
}

// Readers poll the status and the data while loads swap them in.
func TestServiceStatusConcurrency(t *testing.T) {

	s := NewService(&Config{
		Filename: writeDatabase(t, record("Aeternum")),
		Mode:     parser.Relaxed,
	})

	wg := &sync.WaitGroup{}

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.GetStatus()
				s.CountGames()
				s.ErrorLines()
			}
		}()
	}

	for i := 0; i < 10; i++ {
		AssertNil(s.Load())
	}

	wg.Wait()

	AssertEqual(s.GetStatus(), StatusOperating)
}

func TestServiceQueries(t *testing.T) {

	s := NewService(&Config{
		Filename: writeDatabase(t, record("Aeternum")),
		Mode:     parser.Relaxed,
	})
	AssertNil(s.Load())

	g, err := s.GetGameByName("aeternum", games.NotCaseSensitive)
	AssertNil(err)
	AssertEqual(g.Name, "Aeternum")

	_, err = s.GetGameByName("nope", games.CaseSensitive)
	AssertEqual(err, ErrorGameNotFound)

	AssertEqual(s.MatchGamesBy(games.CategoryTag, "indie").Count, 1)
	AssertEqual(s.ListCategory(games.CategoryTag).Items, []string{"indie"})
}
