package services_test

import (
	"context"

	"github.com/SscSPs/freelanceos/internal/core/domain"
	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock ResetRepository ---
type MockResetRepository struct {
	mock.Mock
}

func (m *MockResetRepository) ResetDemoData(ctx context.Context, userID string, plan domain.SeedPlan) (*domain.ResetCounts, error) {
	args := m.Called(ctx, userID, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResetCounts), args.Error(1)
}

func (m *MockResetRepository) SaveResetLog(ctx context.Context, log domain.ResetLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockResetRepository) FindLastResetLog(ctx context.Context) (*domain.ResetLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResetLog), args.Error(1)
}

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjectsByUserID(ctx context.Context, userID string) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	args := m.Called(ctx, project)
	if fn, ok := args.Get(0).(func(context.Context, domain.Project) *domain.Project); ok {
		return fn(ctx, project), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// --- Mock BillRepository ---
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) ListBillsByProjectID(ctx context.Context, projectID string) ([]domain.Bill, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillRepository) SaveBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error) {
	args := m.Called(ctx, bill)
	if fn, ok := args.Get(0).(func(context.Context, domain.Bill) *domain.Bill); ok {
		return fn(ctx, bill), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) UpdateBillStatus(ctx context.Context, billID string, status domain.BillStatus) error {
	args := m.Called(ctx, billID, status)
	return args.Error(0)
}

// --- Mock ResetFunctionInvoker ---
type MockResetFunctionInvoker struct {
	mock.Mock
}

func (m *MockResetFunctionInvoker) Endpoint() string {
	return "https://demo.supabase.co/functions/v1/database-reset"
}

func (m *MockResetFunctionInvoker) Invoke(ctx context.Context, payload dto.ResetFunctionRequest) (*dto.ResetFunctionReply, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ResetFunctionReply), args.Error(1)
}
