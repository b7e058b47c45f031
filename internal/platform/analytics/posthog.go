// Package analytics wraps the PostHog client so callers need not care whether it is configured.
package analytics

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// Tracker sends product events. A zero Tracker, or one built without an API key, drops
// every event.
type Tracker struct {
	client posthog.Client
	logger *slog.Logger
}

// NewTracker creates a tracker posting to endpoint. An empty apiKey yields a disabled tracker.
func NewTracker(apiKey, endpoint string, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, not initializing posthog client.")
		return &Tracker{logger: logger}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client", slog.String("error", err.Error()))
		return &Tracker{logger: logger}
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", endpoint))
	return &Tracker{client: client, logger: logger}
}

// NewTrackerWithClient wraps an existing client.
func NewTrackerWithClient(client posthog.Client, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{client: client, logger: logger}
}

func (t *Tracker) IsInitialized() bool {
	return t != nil && t.client != nil
}

// Enqueue queues event for distinctID. Delivery happens in the background.
func (t *Tracker) Enqueue(distinctID, event string, properties map[string]any) {
	if !t.IsInitialized() {
		return
	}
	t.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctID), slog.String("event", event))
	if err := t.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil {
		t.logger.Warn("Failed to enqueue event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (t *Tracker) Close() {
	if !t.IsInitialized() {
		return
	}
	if err := t.client.Close(); err != nil {
		t.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
