package games

import "strings"

// Status is the numerical status level of a game as recorded in the
// database, from 0 (does not run) to 6 (100% playable). The zero value
// is the unknown status.
type Status int

const (
	StatusUnknown Status = iota
	StatusDoesNotRun
	StatusLaunches
	StatusMajorBugs
	StatusMediumImpact
	StatusMinorBugs
	StatusCompletable
	StatusPerfect
)

func (s Status) String() string {
	switch s {
	case StatusDoesNotRun:
		return "doesnotrun"
	case StatusLaunches:
		return "launches"
	case StatusMajorBugs:
		return "majorbugs"
	case StatusMediumImpact:
		return "mediumimpact"
	case StatusMinorBugs:
		return "minorbugs"
	case StatusCompletable:
		return "completable"
	case StatusPerfect:
		return "perfect"
	}
	return "unknown"
}

// Level returns the digit used on the Status line, or -1 for the
// unknown status.
func (s Status) Level() int {
	if s < StatusDoesNotRun || s > StatusPerfect {
		return -1
	}
	return int(s - StatusDoesNotRun)
}

// GameStatus is the status level plus the free-text comment that follows
// it on the Status line.
type GameStatus struct {
	Status  Status `json:"status"`
	Comment string `json:"comment,omitempty"`
}

// ParseGameStatus reads the payload of a Status line: a leading digit 0-6
// selects the level, the rest (trimmed) is the comment. Anything else is
// the unknown status with no comment.
func ParseGameStatus(payload string) GameStatus {
	if payload == "" {
		return GameStatus{Status: StatusUnknown}
	}
	d := payload[0]
	if d < '0' || d > '6' {
		return GameStatus{Status: StatusUnknown}
	}
	return GameStatus{
		Status:  StatusDoesNotRun + Status(d-'0'),
		Comment: strings.TrimSpace(payload[1:]),
	}
}

// String renders the status as it appears after the tab on a Status
// line. The unknown status renders empty (the line is just "Status").
func (g GameStatus) String() string {
	if g.Status == StatusUnknown {
		return ""
	}
	digit := string('0' + byte(g.Status.Level()))
	if g.Comment == "" {
		return digit
	}
	return digit + " " + g.Comment
}

// IsUnknown reports whether the status carries no level.
func (g GameStatus) IsUnknown() bool {
	return g.Status == StatusUnknown
}
