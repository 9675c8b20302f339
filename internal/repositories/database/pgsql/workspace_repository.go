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

type PgxWorkspaceRepository struct {
	BaseRepository
}

// newPgxWorkspaceRepository creates a new repository for workspace data.
func newPgxWorkspaceRepository(pool *pgxpool.Pool) portsrepo.WorkspaceRepositoryFacade {
	return &PgxWorkspaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

func (r *PgxWorkspaceRepository) CreateWorkspaceWithOwner(ctx context.Context, workspace domain.Workspace, owner domain.WorkspaceMember) error {
	return r.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO workspaces (workspace_id, name, created_at, created_by)
			VALUES ($1, $2, $3, $4);`,
			workspace.WorkspaceID, workspace.Name, workspace.CreatedAt, workspace.CreatedBy,
		)
		if err != nil {
			if pgErr, ok := asPgError(err); ok {
				if pgErr.Code == pgUniqueViolation {
					return apperrors.NewDuplicateError("workspace " + workspace.WorkspaceID + " already exists")
				}
				if pgErr.Code == pgForeignKeyViolation {
					return apperrors.NewNotFoundError("creator profile not found")
				}
			}
			return translateError(err, "failed to save workspace")
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO workspace_members (workspace_id, profile_id, role, joined_at)
			VALUES ($1, $2, $3, $4);`,
			owner.WorkspaceID, owner.ProfileID, owner.Role, owner.JoinedAt,
		)
		if err != nil {
			return translateError(err, "failed to add workspace owner")
		}
		return nil
	})
}

func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	var w domain.Workspace
	err := r.Pool.QueryRow(ctx, `
		SELECT workspace_id, name, created_at, created_by
		FROM workspaces WHERE workspace_id = $1;`, workspaceID,
	).Scan(&w.WorkspaceID, &w.Name, &w.CreatedAt, &w.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("workspace not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query workspace "+workspaceID, err)
	}
	return &w, nil
}

func (r *PgxWorkspaceRepository) ListWorkspacesByProfileID(ctx context.Context, profileID string) ([]domain.WorkspaceWithRole, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT w.workspace_id, w.name, w.created_at, w.created_by, wm.role
		FROM workspaces w
		JOIN workspace_members wm ON wm.workspace_id = w.workspace_id
		WHERE wm.profile_id = $1
		ORDER BY w.name, w.workspace_id;`, profileID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workspaces", err)
	}
	defer rows.Close()

	workspaces := []domain.WorkspaceWithRole{}
	for rows.Next() {
		var w domain.WorkspaceWithRole
		if err := rows.Scan(&w.WorkspaceID, &w.Name, &w.CreatedAt, &w.CreatedBy, &w.Role); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan workspace row", err)
		}
		workspaces = append(workspaces, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating workspace rows", err)
	}
	return workspaces, nil
}

func (r *PgxWorkspaceRepository) UpdateWorkspaceName(ctx context.Context, workspaceID, name string) (*domain.Workspace, error) {
	var w domain.Workspace
	err := r.Pool.QueryRow(ctx, `
		UPDATE workspaces SET name = $2
		WHERE workspace_id = $1
		RETURNING workspace_id, name, created_at, created_by;`, workspaceID, name,
	).Scan(&w.WorkspaceID, &w.Name, &w.CreatedAt, &w.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("workspace not found")
		}
		return nil, translateError(err, "failed to rename workspace "+workspaceID)
	}
	return &w, nil
}

func (r *PgxWorkspaceRepository) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM workspaces WHERE workspace_id = $1;`, workspaceID)
	if err != nil {
		if pgErr, ok := asPgError(err); ok && pgErr.Code == pgForeignKeyViolation {
			return apperrors.NewConflictError("workspace still has months")
		}
		return translateError(err, "failed to delete workspace "+workspaceID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("workspace not found")
	}
	return nil
}

func (r *PgxWorkspaceRepository) FindMember(ctx context.Context, workspaceID, profileID string) (*domain.WorkspaceMember, error) {
	var m domain.WorkspaceMember
	err := r.Pool.QueryRow(ctx, `
		SELECT wm.workspace_id, wm.profile_id, wm.role, wm.joined_at, p.email, p.display_name
		FROM workspace_members wm
		JOIN profiles p ON p.profile_id = wm.profile_id
		WHERE wm.workspace_id = $1 AND wm.profile_id = $2;`, workspaceID, profileID,
	).Scan(&m.WorkspaceID, &m.ProfileID, &m.Role, &m.JoinedAt, &m.Email, &m.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("member not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find member "+profileID+" in workspace "+workspaceID, err)
	}
	return &m, nil
}

func (r *PgxWorkspaceRepository) ListMembers(ctx context.Context, workspaceID string) ([]domain.WorkspaceMember, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT wm.workspace_id, wm.profile_id, wm.role, wm.joined_at, p.email, p.display_name
		FROM workspace_members wm
		JOIN profiles p ON p.profile_id = wm.profile_id
		WHERE wm.workspace_id = $1
		ORDER BY wm.joined_at, wm.profile_id;`, workspaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query members for workspace "+workspaceID, err)
	}
	defer rows.Close()

	members := []domain.WorkspaceMember{}
	for rows.Next() {
		var m domain.WorkspaceMember
		if err := rows.Scan(&m.WorkspaceID, &m.ProfileID, &m.Role, &m.JoinedAt, &m.Email, &m.DisplayName); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan member row", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating member rows", err)
	}
	return members, nil
}

func (r *PgxWorkspaceRepository) AddMember(ctx context.Context, member domain.WorkspaceMember) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO workspace_members (workspace_id, profile_id, role, joined_at)
		VALUES ($1, $2, $3, $4);`,
		member.WorkspaceID, member.ProfileID, member.Role, member.JoinedAt,
	)
	if err != nil {
		if pgErr, ok := asPgError(err); ok {
			if pgErr.Code == pgUniqueViolation {
				return apperrors.NewDuplicateError("profile is already a member of this workspace")
			}
			if pgErr.Code == pgForeignKeyViolation {
				return apperrors.NewNotFoundError("workspace or profile not found")
			}
		}
		return translateError(err, "failed to add member "+member.ProfileID+" to workspace "+member.WorkspaceID)
	}
	return nil
}

// lockOwners locks every OWNER row of the workspace so concurrent downgrades
// or removals cannot both pass the last-owner check.
func lockOwners(ctx context.Context, tx pgx.Tx, workspaceID string) (map[string]bool, error) {
	rows, err := tx.Query(ctx, `
		SELECT profile_id FROM workspace_members
		WHERE workspace_id = $1 AND role = $2
		FOR UPDATE;`, workspaceID, domain.RoleOwner)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock workspace owners", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect workspace owners", err)
	}
	owners := make(map[string]bool, len(ids))
	for _, id := range ids {
		owners[id] = true
	}
	return owners, nil
}

func (r *PgxWorkspaceRepository) UpdateMemberRole(ctx context.Context, workspaceID, profileID string, role domain.WorkspaceRole) (*domain.WorkspaceMember, error) {
	var updated domain.WorkspaceMember
	err := r.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		owners, err := lockOwners(ctx, tx, workspaceID)
		if err != nil {
			return err
		}
		if owners[profileID] && role != domain.RoleOwner && len(owners) == 1 {
			return apperrors.NewConflictError("workspace must keep at least one owner")
		}

		err = tx.QueryRow(ctx, `
			WITH wm AS (
				UPDATE workspace_members SET role = $3
				WHERE workspace_id = $1 AND profile_id = $2
				RETURNING workspace_id, profile_id, role, joined_at
			)
			SELECT wm.workspace_id, wm.profile_id, wm.role, wm.joined_at, p.email, p.display_name
			FROM wm
			JOIN profiles p ON p.profile_id = wm.profile_id;`, workspaceID, profileID, role,
		).Scan(&updated.WorkspaceID, &updated.ProfileID, &updated.Role, &updated.JoinedAt, &updated.Email, &updated.DisplayName)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("member not found")
			}
			return translateError(err, "failed to update role for "+profileID+" in workspace "+workspaceID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PgxWorkspaceRepository) RemoveMember(ctx context.Context, workspaceID, profileID string) error {
	return r.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		owners, err := lockOwners(ctx, tx, workspaceID)
		if err != nil {
			return err
		}
		if owners[profileID] && len(owners) == 1 {
			return apperrors.NewConflictError("workspace must keep at least one owner")
		}

		tag, err := tx.Exec(ctx, `
			DELETE FROM workspace_members
			WHERE workspace_id = $1 AND profile_id = $2;`, workspaceID, profileID)
		if err != nil {
			return translateError(err, "failed to remove "+profileID+" from workspace "+workspaceID)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("member not found")
		}
		return nil
	})
}
