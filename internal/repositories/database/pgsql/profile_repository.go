package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxProfileRepository reads profiles written by the identity provider.
type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileReader {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProfileReader = (*PgxProfileRepository)(nil)

const profileSelect = `SELECT profile_id, email, display_name FROM profiles `

func (r *PgxProfileRepository) findProfile(ctx context.Context, filter string, arg any) (*domain.Profile, error) {
	var p domain.Profile
	err := r.Pool.QueryRow(ctx, profileSelect+filter, arg).Scan(&p.ProfileID, &p.Email, &p.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query profile", err)
	}
	return &p, nil
}

func (r *PgxProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	return r.findProfile(ctx, `WHERE profile_id = $1`, profileID)
}

func (r *PgxProfileRepository) FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.findProfile(ctx, `WHERE LOWER(email) = LOWER($1)`, email)
}
