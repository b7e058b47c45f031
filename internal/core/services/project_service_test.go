package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/freelanceos/internal/apperrors"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	"github.com/SscSPs/freelanceos/internal/core/services"
	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	projectRepo *MockProjectRepository
	billRepo    *MockBillRepository
	ownerID     string
	project     *domain.Project
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.projectRepo = new(MockProjectRepository)
	suite.billRepo = new(MockBillRepository)
	suite.ownerID = uuid.NewString()
	suite.project = &domain.Project{
		ProjectID: uuid.NewString(),
		UserID:    suite.ownerID,
		Name:      "Mobile Banking App",
		Status:    domain.ProjectStatusActive,
	}
}

func (suite *ProjectServiceTestSuite) TestCreateProject_DefaultsToActive() {
	svc := services.NewProjectService(suite.projectRepo)
	suite.projectRepo.On("SaveProject", mock.Anything, mock.MatchedBy(func(p domain.Project) bool {
		return p.Name == "Portfolio" && p.Status == domain.ProjectStatusActive && p.UserID == suite.ownerID && p.ProjectID != ""
	})).Return(func(_ context.Context, p domain.Project) *domain.Project { return &p }, nil).Once()

	project, err := svc.CreateProject(context.Background(), suite.ownerID, dto.CreateProjectRequest{Name: "  Portfolio "})

	suite.Require().NoError(err)
	suite.Equal("Portfolio", project.Name)
	suite.projectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestGetProject_OtherOwnerIsNotFound() {
	svc := services.NewProjectService(suite.projectRepo)
	suite.projectRepo.On("FindProjectByID", mock.Anything, suite.project.ProjectID).Return(suite.project, nil).Once()

	project, err := svc.GetProject(context.Background(), uuid.NewString(), suite.project.ProjectID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(project)
}

func (suite *ProjectServiceTestSuite) TestUpdateProject_RejectsEmptyName() {
	svc := services.NewProjectService(suite.projectRepo)
	suite.projectRepo.On("FindProjectByID", mock.Anything, suite.project.ProjectID).Return(suite.project, nil).Once()
	empty := " "

	_, err := svc.UpdateProject(context.Background(), suite.ownerID, suite.project.ProjectID, dto.UpdateProjectRequest{Name: &empty})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.projectRepo.AssertNotCalled(suite.T(), "UpdateProject", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestDeleteProject() {
	svc := services.NewProjectService(suite.projectRepo)
	suite.projectRepo.On("FindProjectByID", mock.Anything, suite.project.ProjectID).Return(suite.project, nil).Once()
	suite.projectRepo.On("DeleteProject", mock.Anything, suite.project.ProjectID).Return(nil).Once()

	err := svc.DeleteProject(context.Background(), suite.ownerID, suite.project.ProjectID)

	suite.Require().NoError(err)
	suite.projectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateBill_NegativeAmount() {
	svc := services.NewBillService(suite.billRepo, suite.projectRepo)
	suite.projectRepo.On("FindProjectByID", mock.Anything, suite.project.ProjectID).Return(suite.project, nil).Once()

	_, err := svc.CreateBill(context.Background(), suite.ownerID, suite.project.ProjectID, dto.CreateBillRequest{
		Amount:      decimal.NewFromInt(-5),
		Description: "Refund",
		DueDate:     "2026-11-01",
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.billRepo.AssertNotCalled(suite.T(), "SaveBill", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestCreateBill_Success() {
	svc := services.NewBillService(suite.billRepo, suite.projectRepo)
	suite.projectRepo.On("FindProjectByID", mock.Anything, suite.project.ProjectID).Return(suite.project, nil).Once()
	suite.billRepo.On("SaveBill", mock.Anything, mock.MatchedBy(func(b domain.Bill) bool {
		return b.InvoiceNumber == "" && b.Status == domain.BillStatusPending &&
			b.DueDate.Equal(time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC))
	})).Return(func(_ context.Context, b domain.Bill) *domain.Bill {
		b.InvoiceNumber = "INV-2026-000001"
		return &b
	}, nil).Once()

	bill, err := svc.CreateBill(context.Background(), suite.ownerID, suite.project.ProjectID, dto.CreateBillRequest{
		Amount:      decimal.RequireFromString("1250.50"),
		Description: "Sprint 1",
		DueDate:     "2026-11-01",
	})

	suite.Require().NoError(err)
	suite.Equal("INV-2026-000001", bill.InvoiceNumber)
	suite.True(bill.Amount.Equal(decimal.RequireFromString("1250.5")))
}

func (suite *ProjectServiceTestSuite) TestUpdateBillStatus_BillOfAnotherProject() {
	svc := services.NewBillService(suite.billRepo, suite.projectRepo)
	billID := uuid.NewString()
	suite.projectRepo.On("FindProjectByID", mock.Anything, suite.project.ProjectID).Return(suite.project, nil).Once()
	suite.billRepo.On("FindBillByID", mock.Anything, billID).Return(&domain.Bill{BillID: billID, ProjectID: uuid.NewString()}, nil).Once()

	_, err := svc.UpdateBillStatus(context.Background(), suite.ownerID, suite.project.ProjectID, billID, domain.BillStatusPaid)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.billRepo.AssertNotCalled(suite.T(), "UpdateBillStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
