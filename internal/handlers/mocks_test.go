package handlers_test

import (
	"context"

	"github.com/SscSPs/freelanceos/internal/core/domain"
	portssvc "github.com/SscSPs/freelanceos/internal/core/ports/services"
	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ResetOrchestrator ---
type MockResetOrchestrator struct {
	mock.Mock
}

func (m *MockResetOrchestrator) Trigger(ctx context.Context, req portssvc.TriggerRequest) (*dto.TriggerResetResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TriggerResetResponse), args.Error(1)
}

func (m *MockResetOrchestrator) Status(ctx context.Context) (*dto.ResetStatusResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ResetStatusResponse), args.Error(1)
}

var _ portssvc.ResetOrchestratorSvc = (*MockResetOrchestrator)(nil)

// --- Mock ResetProcedure ---
type MockResetProcedure struct {
	mock.Mock
}

func (m *MockResetProcedure) Execute(ctx context.Context, cmd domain.ResetCommand) (*domain.ResetResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResetResult), args.Error(1)
}

var _ portssvc.ResetProcedureSvc = (*MockResetProcedure)(nil)

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) GetProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectService) CreateProject(ctx context.Context, userID string, req dto.CreateProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) UpdateProject(ctx context.Context, userID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, userID, projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) DeleteProject(ctx context.Context, userID, projectID string) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}

var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

// --- Mock NoteService ---
type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) CreateNote(ctx context.Context, userID, projectID string, req dto.CreateNoteRequest) (*domain.Note, error) {
	args := m.Called(ctx, userID, projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteService) ListNotes(ctx context.Context, userID, projectID string) ([]domain.Note, error) {
	args := m.Called(ctx, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Note), args.Error(1)
}

var _ portssvc.NoteSvcFacade = (*MockNoteService)(nil)

// --- Mock BillService ---
type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) CreateBill(ctx context.Context, userID, projectID string, req dto.CreateBillRequest) (*domain.Bill, error) {
	args := m.Called(ctx, userID, projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) ListBills(ctx context.Context, userID, projectID string) ([]domain.Bill, error) {
	args := m.Called(ctx, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillService) UpdateBillStatus(ctx context.Context, userID, projectID, billID string, status domain.BillStatus) (*domain.Bill, error) {
	args := m.Called(ctx, userID, projectID, billID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

var _ portssvc.BillSvcFacade = (*MockBillService)(nil)
