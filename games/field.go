package games

import (
	"strconv"
	"strings"
	"time"
)

// FieldKind enumerates every line label recognized in the database, plus
// FieldUnknown for anything else.
type FieldKind int

const (
	FieldUnknown FieldKind = iota
	FieldGame
	FieldCover
	FieldEngine
	FieldSetup
	FieldRuntime
	FieldStore
	FieldHints
	FieldGenre
	FieldTags
	FieldYear
	FieldDev
	FieldPub
	FieldVersion
	FieldStatus
	FieldAdded
	FieldUpdated
	FieldIgdbID
)

var fieldLabels = map[FieldKind]string{
	FieldGame:    "Game",
	FieldCover:   "Cover",
	FieldEngine:  "Engine",
	FieldSetup:   "Setup",
	FieldRuntime: "Runtime",
	FieldStore:   "Store",
	FieldHints:   "Hints",
	FieldGenre:   "Genre",
	FieldTags:    "Tags",
	FieldYear:    "Year",
	FieldDev:     "Dev",
	FieldPub:     "Pub",
	FieldVersion: "Version",
	FieldStatus:  "Status",
	FieldAdded:   "Added",
	FieldUpdated: "Updated",
	FieldIgdbID:  "IgdbId",
}

var labelKinds = func() map[string]FieldKind {
	m := map[string]FieldKind{}
	for kind, label := range fieldLabels {
		m[label] = kind
	}
	return m
}()

// Label returns the canonical left hand side of the line, or "Unknown
// field" for unclassified lines.
func (k FieldKind) Label() string {
	if label, ok := fieldLabels[k]; ok {
		return label
	}
	return "Unknown field"
}

// Field is one classified line of the database. Only the members
// matching the kind are meaningful: Value for the single-valued kinds
// (and the offending label for FieldUnknown), List for Genre/Tags/Dev/Pub,
// Stores for Store, Status for Status, Date for Added/Updated and ID for
// IgdbId.
type Field struct {
	Kind   FieldKind
	Value  string
	List   []string
	Stores StoreLinks
	Status GameStatus
	Date   time.Time
	ID     *int
}

// Epoch is the fallback date used when an Added or Updated payload is
// absent or does not parse.
var Epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateFormat is the canonical calendar date form used by Added and
// Updated lines.
const DateFormat = "2006-01-02"

// splitLine separates a raw line into its label and payload on the first
// tab. A missing tab or an empty payload after the tab both mean no
// payload.
func splitLine(line string) (label, payload string) {
	label, payload, _ = strings.Cut(line, "\t")
	return label, payload
}

// ClassifyLine converts one line of the database into a Field.
func ClassifyLine(line string) Field {
	if line == "" {
		return Field{Kind: FieldUnknown}
	}

	label, payload := splitLine(line)

	kind, ok := labelKinds[label]
	if !ok {
		return Field{Kind: FieldUnknown, Value: label}
	}

	f := Field{Kind: kind}
	switch kind {
	case FieldGame, FieldCover, FieldEngine, FieldSetup, FieldRuntime,
		FieldHints, FieldYear, FieldVersion:
		f.Value = payload
	case FieldGenre, FieldTags, FieldDev, FieldPub:
		if payload != "" {
			f.List = splitList(payload)
		}
	case FieldStore:
		if payload != "" {
			f.Stores = ParseStoreLinks(payload)
		}
	case FieldStatus:
		f.Status = ParseGameStatus(payload)
	case FieldAdded, FieldUpdated:
		f.Date = parseDate(payload)
	case FieldIgdbID:
		f.ID = parseID(payload)
	}

	return f
}

// splitList splits a comma separated payload, trimming each item. A
// non-empty payload always yields at least one item.
func splitList(payload string) []string {
	parts := strings.Split(payload, ",")
	items := make([]string, len(parts))
	for i, part := range parts {
		items[i] = strings.TrimSpace(part)
	}
	return items
}

func parseDate(payload string) time.Time {
	date, err := time.Parse(DateFormat, payload)
	if err != nil {
		return Epoch
	}
	return date
}

func parseID(payload string) *int {
	id, err := strconv.Atoi(payload)
	if err != nil || id < 0 {
		return nil
	}
	return &id
}

// String renders the field back into its line form. A field with no
// payload renders as just the label, with no trailing tab. Added and
// Updated always render a date (the epoch stands in for the absent one).
func (f Field) String() string {
	label := f.Kind.Label()

	switch f.Kind {
	case FieldUnknown:
		if f.Value == "" {
			return "Unexpected pattern"
		}
		return label + " " + f.Value
	case FieldGenre, FieldTags, FieldDev, FieldPub:
		if len(f.List) == 0 {
			return label
		}
		return label + "\t" + strings.Join(f.List, ", ")
	case FieldStore:
		if len(f.Stores) == 0 {
			return label
		}
		return label + "\t" + f.Stores.String()
	case FieldStatus:
		if f.Status.IsUnknown() {
			return label
		}
		return label + "\t" + f.Status.String()
	case FieldAdded, FieldUpdated:
		date := f.Date
		if date.IsZero() {
			date = Epoch
		}
		return label + "\t" + date.Format(DateFormat)
	case FieldIgdbID:
		if f.ID == nil {
			return label
		}
		return label + "\t" + strconv.Itoa(*f.ID)
	}

	if f.Value == "" {
		return label
	}
	return label + "\t" + f.Value
}
