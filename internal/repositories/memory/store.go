// Package memory is a process-local implementation of every repository port, used for
// local development without PostgreSQL and by the HTTP tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/freelanceos/internal/apperrors"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	portsrepo "github.com/SscSPs/freelanceos/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// Store keeps all entities in maps guarded by one lock. Writes of a reset are swapped in
// under that lock, so readers see either the old or the new dataset.
type Store struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	projects map[string]domain.Project
	notes    map[string]domain.Note
	bills    map[string]domain.Bill
	logs     []domain.ResetLog
	invoices int

	// resetMu is only ever try-locked; a held lock means a reset is running.
	resetMu sync.Mutex
	now     func() time.Time
}

// NewStore creates an empty store knowing the given users.
func NewStore(users ...domain.User) *Store {
	s := &Store{
		users:    make(map[string]domain.User, len(users)),
		projects: make(map[string]domain.Project),
		notes:    make(map[string]domain.Note),
		bills:    make(map[string]domain.Bill),
		now:      time.Now,
	}
	for _, u := range users {
		s.users[u.UserID] = u
	}
	return s
}

// NewRepositoryProvider exposes s through every repository port.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    s,
		ProjectRepo: s,
		NoteRepo:    s,
		BillRepo:    s,
		ResetRepo:   s,
	}
}

var (
	_ portsrepo.UserRepositoryFacade    = (*Store)(nil)
	_ portsrepo.ProjectRepositoryFacade = (*Store)(nil)
	_ portsrepo.NoteRepositoryFacade    = (*Store)(nil)
	_ portsrepo.BillRepositoryFacade    = (*Store)(nil)
	_ portsrepo.ResetRepositoryFacade   = (*Store)(nil)
)

// --- users ---

func (s *Store) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return &u, nil
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

// --- projects ---

func (s *Store) FindProjectByID(_ context.Context, projectID string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[projectID]
	if !ok {
		return nil, apperrors.NewNotFoundError("project not found")
	}
	return &p, nil
}

func (s *Store) ListProjectsByUserID(_ context.Context, userID string) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Project
	for _, p := range s.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) SaveProject(_ context.Context, project domain.Project) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[project.UserID]; !ok {
		return nil, apperrors.NewValidationFailedError("unknown user " + project.UserID)
	}
	if _, ok := s.projects[project.ProjectID]; ok {
		return nil, apperrors.NewConflictError("project " + project.ProjectID + " already exists")
	}
	s.projects[project.ProjectID] = project
	return &project, nil
}

func (s *Store) UpdateProject(_ context.Context, project domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.projects[project.ProjectID]
	if !ok {
		return apperrors.NewNotFoundError("project not found")
	}
	existing.Name = project.Name
	existing.Description = project.Description
	existing.Status = project.Status
	existing.UpdatedAt = project.UpdatedAt
	s.projects[project.ProjectID] = existing
	return nil
}

func (s *Store) DeleteProject(_ context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[projectID]; !ok {
		return apperrors.NewNotFoundError("project not found")
	}
	delete(s.projects, projectID)
	for id, n := range s.notes {
		if n.ProjectID == projectID {
			delete(s.notes, id)
		}
	}
	for id, b := range s.bills {
		if b.ProjectID == projectID {
			delete(s.bills, id)
		}
	}
	return nil
}

// --- notes ---

func (s *Store) ListNotesByProjectID(_ context.Context, projectID string) ([]domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Note
	for _, n := range s.notes {
		if n.ProjectID == projectID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) SaveNote(_ context.Context, note domain.Note) (*domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[note.ProjectID]; !ok {
		return nil, apperrors.NewNotFoundError("project not found")
	}
	s.notes[note.NoteID] = note
	return &note, nil
}

// --- bills ---

func (s *Store) FindBillByID(_ context.Context, billID string) (*domain.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bills[billID]
	if !ok {
		return nil, apperrors.NewNotFoundError("bill not found")
	}
	return &b, nil
}

func (s *Store) ListBillsByProjectID(_ context.Context, projectID string) ([]domain.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Bill
	for _, b := range s.bills {
		if b.ProjectID == projectID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].DueDate.Before(out[j].DueDate)
		}
		return out[i].InvoiceNumber < out[j].InvoiceNumber
	})
	return out, nil
}

func (s *Store) SaveBill(_ context.Context, bill domain.Bill) (*domain.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[bill.ProjectID]; !ok {
		return nil, apperrors.NewNotFoundError("project not found")
	}
	if bill.InvoiceNumber == "" {
		s.invoices++
		bill.InvoiceNumber = fmt.Sprintf("INV-%d-%06d", s.now().UTC().Year(), s.invoices)
	}
	for _, existing := range s.bills {
		if existing.InvoiceNumber == bill.InvoiceNumber {
			return nil, apperrors.NewConflictError("invoice number " + bill.InvoiceNumber + " already exists")
		}
	}
	s.bills[bill.BillID] = bill
	return &bill, nil
}

func (s *Store) UpdateBillStatus(_ context.Context, billID string, status domain.BillStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bills[billID]
	if !ok {
		return apperrors.NewNotFoundError("bill not found")
	}
	b.Status = status
	b.UpdatedAt = s.now().UTC()
	s.bills[billID] = b
	return nil
}

// --- resets ---

func (s *Store) ResetDemoData(ctx context.Context, userID string, plan domain.SeedPlan) (*domain.ResetCounts, error) {
	if !s.resetMu.TryLock() {
		return nil, apperrors.ErrResetInProgress
	}
	defer s.resetMu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	counts := &domain.ResetCounts{}
	projects := make(map[string]domain.Project, len(s.projects))
	owned := make(map[string]bool)
	for id, p := range s.projects {
		if p.UserID == userID {
			owned[id] = true
			counts.ProjectsDeleted++
			continue
		}
		projects[id] = p
	}
	bills := make(map[string]domain.Bill, len(s.bills))
	for id, b := range s.bills {
		if owned[b.ProjectID] {
			counts.BillsDeleted++
			continue
		}
		bills[id] = b
	}
	notes := make(map[string]domain.Note, len(s.notes))
	for id, n := range s.notes {
		if owned[n.ProjectID] {
			counts.NotesDeleted++
			continue
		}
		notes[id] = n
	}

	invoiceTaken := make(map[string]bool, len(bills))
	for _, b := range bills {
		invoiceTaken[b.InvoiceNumber] = true
	}

	for _, sp := range plan.Projects {
		project := sp.Project
		project.ProjectID = uuid.NewString()
		projects[project.ProjectID] = project
		counts.Projects++

		for _, n := range sp.Notes {
			n.NoteID = uuid.NewString()
			n.ProjectID = project.ProjectID
			notes[n.NoteID] = n
			counts.Notes++
		}
		for _, b := range sp.Bills {
			if invoiceTaken[b.InvoiceNumber] {
				// Nothing has been swapped in yet, so the store is unchanged.
				return nil, apperrors.NewConflictError("invoice number " + b.InvoiceNumber + " already exists")
			}
			invoiceTaken[b.InvoiceNumber] = true
			b.BillID = uuid.NewString()
			b.ProjectID = project.ProjectID
			bills[b.BillID] = b
			counts.Bills++
		}
	}

	s.projects, s.notes, s.bills = projects, notes, bills
	return counts, nil
}

func (s *Store) SaveResetLog(_ context.Context, entry domain.ResetLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entry)
	return nil
}

func (s *Store) FindLastResetLog(_ context.Context) (*domain.ResetLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.logs) == 0 {
		return nil, apperrors.NewNotFoundError("no reset log")
	}
	last := s.logs[0]
	for _, l := range s.logs[1:] {
		if !l.Timestamp.Before(last.Timestamp) {
			last = l
		}
	}
	return &last, nil
}
