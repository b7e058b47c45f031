package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeedNote is a catalog note, dated relative to the moment of the reset.
type SeedNote struct {
	Content string
	DaysAgo int
}

// SeedBill is a catalog bill. DueInDays is negative for invoices already due.
type SeedBill struct {
	InvoiceNumber  string
	Amount         decimal.Decimal
	Description    string
	Status         BillStatus
	DueInDays      int
	CreatedDaysAgo int
}

// SeedProject is a catalog project together with its children. Key identifies the entry
// independently of its display name.
type SeedProject struct {
	Key            string
	Name           string
	Description    string
	Status         ProjectStatus
	CreatedDaysAgo int
	Notes          []SeedNote
	Bills          []SeedBill
}

// SeededProject is one catalog entry materialised for a user at a point in time.
// ProjectID of its notes and bills is unset until the parent row has been inserted.
type SeededProject struct {
	Key     string
	Project Project
	Notes   []Note
	Bills   []Bill
}

// SeedPlan is the full set of rows a reset inserts, parents first.
type SeedPlan struct {
	Projects []SeededProject
}

// Counts returns the number of rows the plan inserts per entity.
func (p SeedPlan) Counts() ResetCounts {
	counts := ResetCounts{Projects: len(p.Projects)}
	for _, sp := range p.Projects {
		counts.Notes += len(sp.Notes)
		counts.Bills += len(sp.Bills)
	}
	return counts
}

// BuildSeedPlan materialises catalog for userID with timestamps computed from now, so
// seeded data always has a plausible history.
func BuildSeedPlan(catalog []SeedProject, userID string, now time.Time) SeedPlan {
	now = now.UTC()
	daysAgo := func(days int) time.Time { return now.Add(-time.Duration(days) * 24 * time.Hour) }

	plan := SeedPlan{Projects: make([]SeededProject, 0, len(catalog))}
	for _, entry := range catalog {
		description := entry.Description
		created := daysAgo(entry.CreatedDaysAgo)
		sp := SeededProject{
			Key: entry.Key,
			Project: Project{
				UserID:      userID,
				Name:        entry.Name,
				Description: &description,
				Status:      entry.Status,
				Timestamps:  Timestamps{CreatedAt: created, UpdatedAt: created},
			},
		}
		for _, n := range entry.Notes {
			at := daysAgo(n.DaysAgo)
			sp.Notes = append(sp.Notes, Note{
				Content:    n.Content,
				Timestamps: Timestamps{CreatedAt: at, UpdatedAt: at},
			})
		}
		for _, b := range entry.Bills {
			at := daysAgo(b.CreatedDaysAgo)
			due := now.AddDate(0, 0, b.DueInDays)
			sp.Bills = append(sp.Bills, Bill{
				InvoiceNumber: b.InvoiceNumber,
				Amount:        b.Amount,
				Description:   b.Description,
				Status:        b.Status,
				DueDate:       time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC),
				Timestamps:    Timestamps{CreatedAt: at, UpdatedAt: at},
			})
		}
		plan.Projects = append(plan.Projects, sp)
	}
	return plan
}

// DemoSeedCatalog is the fixed dataset restored for the demo account.
func DemoSeedCatalog() []SeedProject {
	return []SeedProject{
		{
			Key:            "ecommerce-redesign",
			Name:           "E-commerce Website Redesign",
			Description:    "Complete redesign and development of a modern e-commerce platform for a fashion retailer. Includes responsive design, payment integration, inventory management, and customer portal.",
			Status:         ProjectStatusActive,
			CreatedDaysAgo: 15,
			Notes: []SeedNote{
				{Content: "Initial client meeting completed. Discussed requirements for the new e-commerce platform. Client wants modern design with focus on mobile experience.", DaysAgo: 14},
				{Content: "Wireframes and mockups approved by client. Moving forward with development phase. Using React.js for frontend and Node.js for backend.", DaysAgo: 10},
				{Content: "Payment gateway integration completed. Stripe and PayPal both working correctly. Testing phase begins next week.", DaysAgo: 5},
			},
			Bills: []SeedBill{
				{InvoiceNumber: "DEM-2023-0001", Amount: decimal.RequireFromString("3500.00"), Description: "E-commerce Website Redesign - Phase 1: Design and Wireframing", Status: BillStatusPaid, DueInDays: -10, CreatedDaysAgo: 12},
				{InvoiceNumber: "DEM-2023-0002", Amount: decimal.RequireFromString("4200.00"), Description: "E-commerce Website Redesign - Phase 2: Frontend Development", Status: BillStatusPending, DueInDays: 15, CreatedDaysAgo: 5},
			},
		},
		{
			Key:            "mobile-banking",
			Name:           "Mobile Banking App",
			Description:    "Development of a secure mobile banking application with features like account management, money transfers, bill payments, and investment tracking. Built with React Native.",
			Status:         ProjectStatusActive,
			CreatedDaysAgo: 30,
			Notes: []SeedNote{
				{Content: "Security audit completed. All encryption protocols meet banking standards. Ready for beta testing with select users.", DaysAgo: 25},
				{Content: "Beta testing feedback received. Users love the intuitive interface. Minor UI adjustments needed for accessibility compliance.", DaysAgo: 15},
				{Content: "App store submission prepared. All documentation and compliance requirements met. Expecting approval within 2 weeks.", DaysAgo: 7},
			},
			Bills: []SeedBill{
				{InvoiceNumber: "DEM-2023-0003", Amount: decimal.RequireFromString("8500.00"), Description: "Mobile Banking App Development - Complete app development", Status: BillStatusPaid, DueInDays: -20, CreatedDaysAgo: 25},
				{InvoiceNumber: "DEM-2023-0004", Amount: decimal.RequireFromString("2800.00"), Description: "Mobile Banking App - Security Audit and Testing", Status: BillStatusPaid, DueInDays: -5, CreatedDaysAgo: 10},
			},
		},
		{
			Key:            "brand-identity",
			Name:           "Corporate Brand Identity",
			Description:    "Complete brand identity design for a tech startup including logo design, color palette, typography, business cards, letterheads, and brand guidelines.",
			Status:         ProjectStatusCompleted,
			CreatedDaysAgo: 45,
			Notes: []SeedNote{
				{Content: "Brand discovery session completed. Client vision: modern, trustworthy, innovative. Target audience: tech-savvy professionals aged 25-45.", DaysAgo: 40},
				{Content: "Logo concepts presented. Client selected option 2 with minor modifications. Color palette finalized: deep blue, silver, white.", DaysAgo: 35},
				{Content: "All brand materials delivered. Client extremely satisfied with the final result. Brand guidelines document completed and approved.", DaysAgo: 30},
			},
			Bills: []SeedBill{
				{InvoiceNumber: "DEM-2023-0005", Amount: decimal.RequireFromString("2200.00"), Description: "Corporate Brand Identity Package - Complete branding", Status: BillStatusPaid, DueInDays: -35, CreatedDaysAgo: 40},
			},
		},
		{
			Key:            "restaurant-management",
			Name:           "Restaurant Management System",
			Description:    "Custom restaurant management system with POS integration, inventory tracking, staff scheduling, and customer loyalty program. Web-based dashboard with mobile app.",
			Status:         ProjectStatusOnHold,
			CreatedDaysAgo: 60,
			Notes: []SeedNote{
				{Content: "Project on hold due to client budget constraints. Will resume in Q2 2024. 60% of development completed.", DaysAgo: 45},
				{Content: "Client requested to pause project temporarily. All work backed up and documented for future continuation.", DaysAgo: 30},
			},
			Bills: []SeedBill{
				{InvoiceNumber: "DEM-2023-0006", Amount: decimal.RequireFromString("4500.00"), Description: "Restaurant Management System - Phase 1 Development", Status: BillStatusPending, DueInDays: 30, CreatedDaysAgo: 50},
			},
		},
		{
			Key:            "real-estate-platform",
			Name:           "Real Estate Platform",
			Description:    "Modern real estate listing platform with advanced search filters, virtual tours, agent profiles, and lead management system. Includes both web and mobile versions.",
			Status:         ProjectStatusActive,
			CreatedDaysAgo: 10,
			Notes: []SeedNote{
				{Content: "Project kickoff meeting scheduled. Requirements gathering phase begins. Client wants integration with MLS database.", DaysAgo: 9},
				{Content: "Database schema designed. Property listing structure finalized. Starting with search functionality implementation.", DaysAgo: 5},
				{Content: "Advanced search filters implemented. Map integration working perfectly. Client very happy with progress so far.", DaysAgo: 2},
			},
			Bills: []SeedBill{
				{InvoiceNumber: "DEM-2023-0007", Amount: decimal.RequireFromString("3200.00"), Description: "Real Estate Platform - Initial Development Phase", Status: BillStatusPending, DueInDays: 20, CreatedDaysAgo: 8},
			},
		},
		{
			Key:            "healthcare-dashboard",
			Name:           "Healthcare Dashboard",
			Description:    "Patient management dashboard for healthcare providers with appointment scheduling, medical records, billing integration, and telemedicine features.",
			Status:         ProjectStatusCompleted,
			CreatedDaysAgo: 90,
			Notes: []SeedNote{
				{Content: "HIPAA compliance review completed. All security measures implemented correctly. Dashboard ready for production deployment.", DaysAgo: 85},
			},
			Bills: []SeedBill{
				{InvoiceNumber: "DEM-2023-0008", Amount: decimal.RequireFromString("6800.00"), Description: "Healthcare Dashboard Development - Complete system", Status: BillStatusPaid, DueInDays: -85, CreatedDaysAgo: 90},
				{InvoiceNumber: "DEM-2023-0009", Amount: decimal.RequireFromString("1500.00"), Description: "Healthcare Dashboard - Maintenance and Support Package", Status: BillStatusPaid, DueInDays: -75, CreatedDaysAgo: 80},
			},
		},
	}
}
