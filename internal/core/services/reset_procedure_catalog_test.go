package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/freelanceos/internal/core/domain"
	"github.com/SscSPs/freelanceos/internal/core/services"
	"github.com/SscSPs/freelanceos/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two entries share a display name; children must still land under their own parent.
func TestExecute_CustomCatalogCorrelatesChildrenByKey(t *testing.T) {
	catalog := []domain.SeedProject{
		{
			Key:         "alpha",
			Name:        "Website",
			Description: "alpha",
			Status:      domain.ProjectStatusActive,
			Notes:       []domain.SeedNote{{Content: "alpha note"}},
			Bills: []domain.SeedBill{{
				InvoiceNumber: "TST-ALPHA", Amount: decimal.RequireFromString("10.00"),
				Description: "alpha", Status: domain.BillStatusPending, DueInDays: 7,
			}},
		},
		{
			Key:         "beta",
			Name:        "Website",
			Description: "beta",
			Status:      domain.ProjectStatusActive,
			Notes:       []domain.SeedNote{{Content: "beta note"}, {Content: "beta note"}},
			Bills: []domain.SeedBill{{
				InvoiceNumber: "TST-BETA", Amount: decimal.RequireFromString("20.00"),
				Description: "beta", Status: domain.BillStatusPending, DueInDays: 7,
			}},
		},
	}

	store := memory.NewStore(domain.User{UserID: demoUserID, Email: demoEmail})
	svc := services.NewResetProcedureService(store, store, true, demoEmail,
		services.WithSeedCatalog(catalog),
		services.WithProcedureClock(func() time.Time { return fixedNow }),
	)

	result, err := svc.Execute(context.Background(), domain.ResetCommand{TriggeredBy: domain.ActorManual})
	require.NoError(t, err)
	assert.Equal(t, 2, result.RecordsAffected.Projects)
	assert.Equal(t, 3, result.RecordsAffected.Notes)
	assert.Equal(t, 2, result.RecordsAffected.Bills)

	ctx := context.Background()
	projects, err := store.ListProjectsByUserID(ctx, demoUserID)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	for _, p := range projects {
		assert.Equal(t, "Website", p.Name)
		require.NotNil(t, p.Description)
		key := *p.Description

		notes, err := store.ListNotesByProjectID(ctx, p.ProjectID)
		require.NoError(t, err)
		for _, n := range notes {
			assert.Equal(t, key+" note", n.Content)
		}

		bills, err := store.ListBillsByProjectID(ctx, p.ProjectID)
		require.NoError(t, err)
		require.Len(t, bills, 1)
		assert.Equal(t, key, bills[0].Description)

		switch key {
		case "alpha":
			assert.Len(t, notes, 1)
		case "beta":
			assert.Len(t, notes, 2)
		default:
			t.Fatalf("unexpected project %q", key)
		}
	}
}
