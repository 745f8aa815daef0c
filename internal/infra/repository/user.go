package repository

import (
	"context"

	"toolshare/internal/domain/user"
	"toolshare/internal/infra"
	"toolshare/internal/infra/db"
	"toolshare/internal/infra/repository/converter"
	"toolshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_hash, role, bio, security_score::float8 AS security_score, created_at, updated_at`

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, bio, security_score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID(), u.Name().String(), u.Email().Value(), u.PasswordHash(), u.Role().String(),
		pgconv.StringPtrToPgtype(u.Bio()), u.SecurityScore(),
		pgconv.TimeToPgtype(u.CreatedAt()), pgconv.TimeToPgtype(u.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, "failed to find user by id", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, "failed to find user by email", `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) findOne(ctx context.Context, msg, query string, args ...any) (*user.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.UserRow])
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	u, err := converter.UserToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user is invalid", err, infra.KindDBFailure)
	}
	return u, nil
}

func (r *UserRepository) EmailTaken(ctx context.Context, email string, exceptID uuid.UUID) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		email, exceptID,
	).Scan(&taken)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check email", err)
	}
	return taken, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET name = $2, email = $3, bio = $4, updated_at = $5
		WHERE id = $1`,
		u.ID(), u.Name().String(), u.Email().Value(), pgconv.StringPtrToPgtype(u.Bio()), pgconv.TimeToPgtype(u.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`,
		u.ID(), u.PasswordHash(), pgconv.TimeToPgtype(u.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) RefreshSecurityScore(ctx context.Context, ownerID uuid.UUID) (float64, error) {
	var score float64
	err := r.db.QueryRow(ctx, `
		UPDATE users SET security_score = COALESCE((
			SELECT AVG(rv.rating) * 2
			FROM reviews rv
			JOIN reservations r ON r.id = rv.reservation_id
			JOIN tools t ON t.id = r.tool_id
			WHERE t.owner_id = $1
		), $2)
		WHERE id = $1
		RETURNING security_score::float8`,
		ownerID, user.DefaultSecurityScore,
	).Scan(&score)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to refresh security score", err)
	}
	return score, nil
}
