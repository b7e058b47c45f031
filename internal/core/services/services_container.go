package services

import (
	portsrepo "github.com/SscSPs/freelanceos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freelanceos/internal/core/ports/services"
	"github.com/SscSPs/freelanceos/internal/platform/analytics"
	"github.com/SscSPs/freelanceos/internal/platform/config"
	"github.com/SscSPs/freelanceos/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	invoker portssvc.ResetFunctionInvoker,
	m *metrics.Metrics,
	tracker *analytics.Tracker,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Project = NewProjectService(repos.ProjectRepo)
	container.Note = NewNoteService(repos.NoteRepo, repos.ProjectRepo)
	container.Bill = NewBillService(repos.BillRepo, repos.ProjectRepo)

	// The procedure runs against the local store; the orchestrator reaches it over HTTP
	// through invoker, which may point at this process or at a remote deployment.
	container.ResetProcedure = NewResetProcedureService(
		repos.UserRepo,
		repos.ResetRepo,
		cfg.ResetEnabled,
		cfg.DemoUserEmail,
		WithProcedureMetrics(m),
		WithProcedureAnalytics(tracker),
	)
	container.ResetOrchestrator = NewResetOrchestratorService(
		cfg,
		invoker,
		WithResetLogReader(repos.ResetRepo),
		WithOrchestratorMetrics(m),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ProjectSvcFacade     = (*projectService)(nil)
	_ portssvc.NoteSvcFacade        = (*noteService)(nil)
	_ portssvc.BillSvcFacade        = (*billService)(nil)
	_ portssvc.ResetProcedureSvc    = (*resetProcedureService)(nil)
	_ portssvc.ResetOrchestratorSvc = (*resetOrchestratorService)(nil)
)
