//go:build unit || e2e

package builder

import (
	"time"

	"toolshare/internal/domain/user"
	reqdto "toolshare/internal/handler/dto/request"
	"toolshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID            uuid.UUID
	Name          string
	Email         string
	PasswordHash  string
	Role          user.Role
	Bio           *string
	SecurityScore float64
	CreatedAt     time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:            uuid.New(),
		Name:          "Test User",
		Email:         "test@example.com",
		PasswordHash:  "hashed_password",
		Role:          user.RoleUser,
		SecurityScore: user.DefaultSecurityScore,
		CreatedAt:     time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	b.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	b.PasswordHash = hash
	return b
}

func (b *UserBuilder) WithRole(role user.Role) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) WithBio(bio string) *UserBuilder {
	b.Bio = &bio
	return b
}

func (b *UserBuilder) WithSecurityScore(score float64) *UserBuilder {
	b.SecurityScore = score
	return b
}

func (b *UserBuilder) BuildDomain() *user.User {
	name, _ := user.NewName(b.Name)
	email, _ := user.NewEmail(b.Email)
	return user.ReconstructUser(b.ID, name, email, b.PasswordHash, b.Role, b.Bio, b.SecurityScore, b.CreatedAt, b.CreatedAt)
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:            b.ID,
		Name:          b.Name,
		Email:         b.Email,
		Role:          b.Role.String(),
		Bio:           b.Bio,
		SecurityScore: b.SecurityScore,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *UserBuilder) BuildRegisterDTO(password string) reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     b.Name,
		Email:    b.Email,
		Password: password,
		Role:     b.Role.String(),
	}
}

func (b *UserBuilder) BuildProfileDTO() reqdto.UpdateProfileRequest {
	return reqdto.UpdateProfileRequest{
		Name:  b.Name,
		Email: b.Email,
		Bio:   b.Bio,
	}
}
