package domain

import "time"

// ResetActor records what triggered a demo reset.
type ResetActor string

const (
	ActorScheduled ResetActor = "scheduled"
	ActorManual    ResetActor = "manual"
	ActorAPI       ResetActor = "api"
)

// ParseResetActor maps a caller supplied tag onto the actor set. Older tags used by the
// cron route and the automation script fold into scheduled, manual_api into manual and
// anything unrecognised into api.
func ParseResetActor(tag string) ResetActor {
	switch tag {
	case string(ActorScheduled), "vercel_cron", "automation_script", "cron":
		return ActorScheduled
	case string(ActorManual), "manual_api":
		return ActorManual
	default:
		return ActorAPI
	}
}

// ResetCounts holds per-entity row counts of one reset. Projects, Notes and Bills count
// seeded rows; the *Deleted fields count the rows swept beforehand.
type ResetCounts struct {
	Projects        int `json:"projects"`
	Notes           int `json:"notes"`
	Bills           int `json:"bills"`
	ProjectsDeleted int `json:"projectsDeleted"`
	NotesDeleted    int `json:"notesDeleted"`
	BillsDeleted    int `json:"billsDeleted"`
}

// ResetCommand is a request to run the reset procedure.
type ResetCommand struct {
	TriggeredBy ResetActor
	Force       bool
	DryRun      bool
}

// ResetResult is what the reset procedure reports back.
type ResetResult struct {
	Success         bool
	Timestamp       time.Time
	Duration        time.Duration
	RecordsAffected ResetCounts
	Message         string
	DryRun          bool
}

// ResetLog is one row of the append-only audit trail of reset executions.
type ResetLog struct {
	ResetLogID      string      `json:"id" db:"id"`
	Timestamp       time.Time   `json:"timestamp" db:"timestamp"`
	Success         bool        `json:"success" db:"success"`
	DurationMs      int64       `json:"durationMs" db:"duration_ms"`
	RecordsAffected ResetCounts `json:"recordsAffected" db:"records_affected"` // stored as jsonb
	TriggeredBy     ResetActor  `json:"triggeredBy" db:"triggered_by"`
	ErrorMessage    *string     `json:"error,omitempty" db:"error_message"`
}
