package memory

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/freelanceos/internal/apperrors"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "5ef288d4-e9eb-4e17-8d8a-bbe41073441a"

func newTestStore() *Store {
	return NewStore(
		domain.User{UserID: testUserID, Email: "user@demo.com"},
		domain.User{UserID: "other-user", Email: "someone@example.com"},
	)
}

func demoPlan() domain.SeedPlan {
	return domain.BuildSeedPlan(domain.DemoSeedCatalog(), testUserID, time.Now())
}

func TestResetDemoData_SerializedResetsConverge(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	first, err := s.ResetDemoData(ctx, testUserID, demoPlan())
	require.NoError(t, err)
	assert.Equal(t, domain.ResetCounts{Projects: 6, Notes: 15, Bills: 9}, *first)

	second, err := s.ResetDemoData(ctx, testUserID, demoPlan())
	require.NoError(t, err)
	assert.Equal(t, domain.ResetCounts{
		Projects: 6, Notes: 15, Bills: 9,
		ProjectsDeleted: 6, NotesDeleted: 15, BillsDeleted: 9,
	}, *second)

	projects, err := s.ListProjectsByUserID(ctx, testUserID)
	require.NoError(t, err)
	assert.Len(t, projects, 6)
	assert.Len(t, s.notes, 15)
	assert.Len(t, s.bills, 9)
}

func TestResetDemoData_LeavesOtherUsersAlone(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	now := time.Now()
	_, err := s.SaveProject(ctx, domain.Project{
		ProjectID:  uuid.NewString(),
		UserID:     "other-user",
		Name:       "Private",
		Status:     domain.ProjectStatusActive,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	})
	require.NoError(t, err)

	_, err = s.ResetDemoData(ctx, testUserID, demoPlan())
	require.NoError(t, err)

	others, err := s.ListProjectsByUserID(ctx, "other-user")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestResetDemoData_ConcurrentResetRefused(t *testing.T) {
	s := newTestStore()
	s.resetMu.Lock()
	defer s.resetMu.Unlock()

	_, err := s.ResetDemoData(context.Background(), testUserID, demoPlan())

	assert.ErrorIs(t, err, apperrors.ErrResetInProgress)
}

func TestResetDemoData_InvoiceClashLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	now := time.Now()
	project, err := s.SaveProject(ctx, domain.Project{ProjectID: uuid.NewString(), UserID: "other-user", Name: "Clash", Status: domain.ProjectStatusActive, Timestamps: domain.Timestamps{CreatedAt: now}})
	require.NoError(t, err)
	_, err = s.SaveBill(ctx, domain.Bill{BillID: uuid.NewString(), ProjectID: project.ProjectID, InvoiceNumber: "DEM-2023-0001", Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)

	_, err = s.ResetDemoData(ctx, testUserID, demoPlan())

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	demoProjects, _ := s.ListProjectsByUserID(ctx, testUserID)
	assert.Empty(t, demoProjects)
}

func TestSaveBill_AssignsInvoiceNumbers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	s.now = func() time.Time { return time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC) }
	project, err := s.SaveProject(ctx, domain.Project{ProjectID: uuid.NewString(), UserID: testUserID, Name: "Billing", Status: domain.ProjectStatusActive})
	require.NoError(t, err)

	first, err := s.SaveBill(ctx, domain.Bill{BillID: uuid.NewString(), ProjectID: project.ProjectID})
	require.NoError(t, err)
	second, err := s.SaveBill(ctx, domain.Bill{BillID: uuid.NewString(), ProjectID: project.ProjectID})
	require.NoError(t, err)

	assert.Equal(t, "INV-2026-000001", first.InvoiceNumber)
	assert.Equal(t, "INV-2026-000002", second.InvoiceNumber)
}

func TestDeleteProject_CascadesChildren(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	_, err := s.ResetDemoData(ctx, testUserID, demoPlan())
	require.NoError(t, err)
	projects, _ := s.ListProjectsByUserID(ctx, testUserID)

	for _, p := range projects {
		require.NoError(t, s.DeleteProject(ctx, p.ProjectID))
	}

	assert.Empty(t, s.notes)
	assert.Empty(t, s.bills)
	assert.ErrorIs(t, s.DeleteProject(ctx, projects[0].ProjectID), apperrors.ErrNotFound)
}

func TestFindLastResetLog(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	_, err := s.FindLastResetLog(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	t0 := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveResetLog(ctx, domain.ResetLog{ResetLogID: "a", Timestamp: t0}))
	require.NoError(t, s.SaveResetLog(ctx, domain.ResetLog{ResetLogID: "b", Timestamp: t0.Add(time.Hour)}))

	last, err := s.FindLastResetLog(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", last.ResetLogID)
}
