package repositories

import (
	"context"

	"github.com/SscSPs/freelanceos/internal/core/domain"
)

// DemoDataResetter replaces a user's data with a seed plan.
type DemoDataResetter interface {
	// ResetDemoData deletes the user's bills, notes and projects (children first) and then
	// inserts plan (parents first), all or nothing. At most one reset runs at a time
	// system-wide; a concurrent call fails with apperrors.ErrResetInProgress.
	ResetDemoData(ctx context.Context, userID string, plan domain.SeedPlan) (*domain.ResetCounts, error)
}

// ResetLogWriter appends to the reset audit trail.
type ResetLogWriter interface {
	SaveResetLog(ctx context.Context, log domain.ResetLog) error
}

// ResetLogReader reads the reset audit trail.
type ResetLogReader interface {
	// FindLastResetLog returns the most recent entry; ErrNotFound when there is none.
	FindLastResetLog(ctx context.Context) (*domain.ResetLog, error)
}

// ResetRepositoryFacade combines all reset-related repository interfaces
type ResetRepositoryFacade interface {
	DemoDataResetter
	ResetLogWriter
	ResetLogReader
}
