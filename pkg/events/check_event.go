package events

import "time"

const (
	TypeCheckEvent = "CHECK_EVENT"
)

// Outcomes of a recorded breach check.
const (
	OutcomeBreached = "breached"
	OutcomeClean    = "clean"
	OutcomeFailed   = "failed"
)

// CheckEvent records a single breach check. Only the five-character hash
// prefix is kept; the password, the full hash, and the suffix are never
// stored or logged.
type CheckEvent struct {
	Timestamp  time.Time
	HashPrefix string
	Outcome    string
	Count      int
}
