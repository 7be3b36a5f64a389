package games

import (
	"testing"
	"time"

	. "github.com/fulldump/biff"
)

func TestClassifyLine(t *testing.T) {

	f := ClassifyLine("Game\tAeternum")
	AssertEqual(f.Kind, FieldGame)
	AssertEqual(f.Value, "Aeternum")

	f = ClassifyLine("Tags\tindie, manga")
	AssertEqual(f.Kind, FieldTags)
	AssertEqual(f.List, []string{"indie", "manga"})

	f = ClassifyLine("Status\t3 crashes on save")
	AssertEqual(f.Kind, FieldStatus)
	AssertEqual(f.Status.Status, StatusMediumImpact)
	AssertEqual(f.Status.Comment, "crashes on save")

	f = ClassifyLine("Added\t2021-05-06")
	AssertEqual(f.Kind, FieldAdded)
	AssertEqual(f.Date, time.Date(2021, time.May, 6, 0, 0, 0, 0, time.UTC))

	f = ClassifyLine("IgdbId\t1234")
	AssertEqual(f.Kind, FieldIgdbID)
	AssertEqual(*f.ID, 1234)
}

func TestClassifyLineNoPayload(t *testing.T) {

	// A bare label is the field with no payload
	f := ClassifyLine("Cover")
	AssertEqual(f.Kind, FieldCover)
	AssertEqual(f.Value, "")

	f = ClassifyLine("Genre")
	AssertEqual(f.Kind, FieldGenre)
	AssertNil(f.List)
}

func TestClassifyLineUnknown(t *testing.T) {

	// Unrecognized label carries the offending label
	f := ClassifyLine("Gameplay\twhatever")
	AssertEqual(f.Kind, FieldUnknown)
	AssertEqual(f.Value, "Gameplay")

	// Empty line carries nothing
	f = ClassifyLine("")
	AssertEqual(f.Kind, FieldUnknown)
	AssertEqual(f.Value, "")

	// Labels are case sensitive
	f = ClassifyLine("game\tAeternum")
	AssertEqual(f.Kind, FieldUnknown)
	AssertEqual(f.Value, "game")
}

func TestClassifyLineBadPayloads(t *testing.T) {

	// Bad date falls back to the epoch
	f := ClassifyLine("Updated\tnot-a-date")
	AssertEqual(f.Kind, FieldUpdated)
	AssertEqual(f.Date, Epoch)

	// Bad numeric id is absent
	f = ClassifyLine("IgdbId\tbanana")
	AssertEqual(f.Kind, FieldIgdbID)
	AssertNil(f.ID)

	// Status digit out of range is the unknown status
	f = ClassifyLine("Status\t9 what")
	AssertEqual(f.Kind, FieldStatus)
	AssertEqual(f.Status.IsUnknown(), true)
}

func TestFieldRoundTrip(t *testing.T) {

	lines := []string{
		"Game\tAeternum",
		"Cover",
		"Engine\tGodot",
		"Store\thttps://store.steampowered.com/app/1234/Foo/ https://www.gog.com/game/foo",
		"Genre\tRPG, Adventure",
		"Year\tearly access",
		"Status\t3 crashes on save",
		"Added\t2021-05-06",
		"Updated\t1970-01-01",
		"IgdbId\t1234",
		"Tags",
	}

	for _, line := range lines {
		f := ClassifyLine(line)
		AssertEqual(f.String(), line)
		AssertEqual(ClassifyLine(f.String()), f)
	}
}
