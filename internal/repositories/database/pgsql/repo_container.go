package pgsql

import (
	portsrepo "github.com/SscSPs/freelanceos/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(dbPool),
		ProjectRepo: newPgxProjectRepository(dbPool),
		NoteRepo:    newPgxNoteRepository(dbPool),
		BillRepo:    newPgxBillRepository(dbPool),
		ResetRepo:   newPgxResetRepository(dbPool),
	}
}
