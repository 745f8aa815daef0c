package converter

import (
	"toolshare/internal/domain/user"
	"toolshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRow struct {
	ID            uuid.UUID          `db:"id"`
	Name          string             `db:"name"`
	Email         string             `db:"email"`
	PasswordHash  string             `db:"password_hash"`
	Role          string             `db:"role"`
	Bio           pgtype.Text        `db:"bio"`
	SecurityScore float64            `db:"security_score"`
	CreatedAt     pgtype.Timestamptz `db:"created_at"`
	UpdatedAt     pgtype.Timestamptz `db:"updated_at"`
}

func UserToDomain(row UserRow) (*user.User, error) {
	name, err := user.NewName(row.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}

	return user.ReconstructUser(
		row.ID,
		name,
		email,
		row.PasswordHash,
		role,
		pgconv.StringPtrFromPgtype(row.Bio),
		row.SecurityScore,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
