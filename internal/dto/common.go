package dto

import "time"

// timestampLayout renders instants the way browsers print Date.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp formats t as an ISO-8601 UTC timestamp with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
