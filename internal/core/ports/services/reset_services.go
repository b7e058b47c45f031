package services

import (
	"context"

	"github.com/SscSPs/freelanceos/internal/core/domain"
	"github.com/SscSPs/freelanceos/internal/dto"
)

// ResetProcedureSvc is the procedure that actually sweeps and reseeds the demo data.
type ResetProcedureSvc interface {
	// Execute runs one reset. Refusals are reported as apperrors.ErrResetDisabled,
	// apperrors.ErrDemoUserNotFound or apperrors.ErrResetInProgress. The result is non-nil
	// whenever the procedure got far enough to measure a duration.
	Execute(ctx context.Context, cmd domain.ResetCommand) (*domain.ResetResult, error)
}

// TriggerRequest asks the orchestrator for a reset on behalf of actor.
type TriggerRequest struct {
	Actor  domain.ResetActor
	Force  bool
	DryRun bool
}

// ResetOrchestratorSvc decides whether a reset goes ahead and forwards it to the procedure.
type ResetOrchestratorSvc interface {
	// Trigger always returns a response body. A non-nil error means the caller should
	// answer with a server error; the body then carries the failure details.
	Trigger(ctx context.Context, req TriggerRequest) (*dto.TriggerResetResponse, error)

	// Status reports configuration, reachability of the procedure and the next scheduled reset.
	Status(ctx context.Context) (*dto.ResetStatusResponse, error)
}

// ResetFunctionInvoker calls the reset procedure over its HTTP contract.
type ResetFunctionInvoker interface {
	// Endpoint is the URL the invoker posts to.
	Endpoint() string

	// Invoke posts payload. Only transport failures are returned as errors; any HTTP
	// status, including non-2xx, comes back in the reply.
	Invoke(ctx context.Context, payload dto.ResetFunctionRequest) (*dto.ResetFunctionReply, error)
}
