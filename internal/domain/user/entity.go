package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id            uuid.UUID
	name          Name
	email         Email
	passwordHash  string
	role          Role
	bio           *string
	securityScore float64
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(name Name, email Email, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:            uuid.New(),
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		securityScore: DefaultSecurityScore,
		createdAt:     now,
		updatedAt:     now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	name Name,
	email Email,
	passwordHash string,
	role Role,
	bio *string,
	securityScore float64,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		bio:           bio,
		securityScore: securityScore,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (u *User) UpdateProfile(name Name, email Email, bio *string, now time.Time) {
	u.name = name
	u.email = email
	u.bio = bio
	u.updatedAt = now
}

func (u *User) ChangePasswordHash(hash string, now time.Time) {
	u.passwordHash = hash
	u.updatedAt = now
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Name() Name             { return u.name }
func (u *User) Email() Email           { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Role() Role             { return u.role }
func (u *User) Bio() *string           { return u.bio }
func (u *User) SecurityScore() float64 { return u.securityScore }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }
