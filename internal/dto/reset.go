package dto

import "github.com/SscSPs/freelanceos/internal/core/domain"

// --- Reset trigger DTOs ---

// TriggerResetRequest is the body of the manual trigger.
type TriggerResetRequest struct {
	Force    bool   `json:"force"`
	AdminKey string `json:"adminKey"`
	DryRun   bool   `json:"dryRun"`
}

// CronResetRequest is the (optional) body of the scheduler trigger.
type CronResetRequest struct {
	Force bool `json:"force"`
}

// WouldReset describes the call a dry run skipped.
type WouldReset struct {
	Endpoint string               `json:"endpoint"`
	Payload  ResetFunctionRequest `json:"payload"`
}

// TriggerResetResponse is returned by both trigger routes.
type TriggerResetResponse struct {
	Success         bool                `json:"success"`
	Message         string              `json:"message"`
	Timestamp       string              `json:"timestamp"`
	Duration        int64               `json:"duration"`                // ms from entry to response
	ResetDuration   *int64              `json:"resetDuration,omitempty"` // ms as reported by the procedure
	RecordsAffected *domain.ResetCounts `json:"recordsAffected,omitempty"`
	Skipped         bool                `json:"skipped,omitempty"`
	DryRun          bool                `json:"dryRun,omitempty"`
	WouldReset      *WouldReset         `json:"wouldReset,omitempty"`
	TriggeredBy     domain.ResetActor   `json:"triggeredBy"`
	Force           bool                `json:"force"`
	Error           string              `json:"error,omitempty"`
}

// --- Reset procedure DTOs ---

// ResetFunctionRequest is the body the procedure accepts.
type ResetFunctionRequest struct {
	TriggeredBy string `json:"triggeredBy"`
	Force       bool   `json:"force"`
	DryRun      bool   `json:"dryRun,omitempty"`
}

// ResetFunctionResponse is the body the procedure returns.
type ResetFunctionResponse struct {
	Success         bool                `json:"success"`
	Timestamp       string              `json:"timestamp"`
	Duration        int64               `json:"duration"`
	RecordsAffected *domain.ResetCounts `json:"recordsAffected,omitempty"`
	Error           string              `json:"error,omitempty"`
	Message         string              `json:"message"`
	DryRun          bool                `json:"dryRun,omitempty"`
}

// ResetFunctionReply is a procedure response as seen by a caller: the decoded body, which
// may be empty when the server did not answer with JSON, plus the HTTP status.
type ResetFunctionReply struct {
	StatusCode int
	ResetFunctionResponse
}

// --- Reset status DTOs ---

type ResetConfiguration struct {
	Enabled              bool                 `json:"enabled"`
	Interval             domain.ResetInterval `json:"interval"`
	NotifyUsers          bool                 `json:"notifyUsers"`
	SupabaseConfigured   bool                 `json:"supabaseConfigured"`
	ServiceKeyConfigured bool                 `json:"serviceKeyConfigured"`
}

type SystemInfo struct {
	Platform         string `json:"platform"`
	Environment      string `json:"environment"`
	CronConfigured   bool   `json:"cronConfigured"`
	SchedulerEnabled bool   `json:"schedulerEnabled"`
}

// ResetFunctionProbe is the outcome of the dry probe against the procedure.
type ResetFunctionProbe struct {
	Available  bool   `json:"available"`
	StatusCode int    `json:"statusCode,omitempty"`
	Accessible bool   `json:"accessible"`
	Error      string `json:"error,omitempty"`
}

type LastResetInfo struct {
	Available bool             `json:"available"`
	Log       *domain.ResetLog `json:"log,omitempty"`
	Message   string           `json:"message,omitempty"`
}

type ResetSchedule struct {
	NextReset      string `json:"nextReset"`
	TimeUntilNext  int64  `json:"timeUntilNext"` // ms
	CronExpression string `json:"cronExpression"`
}

// Health values.
const (
	HealthHealthy  = "healthy"
	HealthDegraded = "degraded"
	HealthError    = "error"
)

type Health struct {
	Overall string   `json:"overall"`
	Issues  []string `json:"issues"`
}

// ResetStatusResponse is the body of the status route.
type ResetStatusResponse struct {
	Timestamp     string              `json:"timestamp"`
	Configuration ResetConfiguration  `json:"configuration"`
	System        SystemInfo          `json:"system"`
	ResetFunction *ResetFunctionProbe `json:"resetFunction,omitempty"`
	LastReset     *LastResetInfo      `json:"lastReset,omitempty"`
	Schedule      *ResetSchedule      `json:"schedule,omitempty"`
	Health        Health              `json:"health"`
}

// ResetStatusErrorResponse is returned when the status check itself fails.
type ResetStatusErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Health    Health `json:"health"`
}
