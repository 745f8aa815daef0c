package request

import (
	"toolshare/internal/domain/user"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

type RegisterInput struct {
	Name     user.Name
	Email    user.Email
	Password user.Password
	Role     user.Role
}

func (r *RegisterRequest) ToDomain() (*RegisterInput, error) {
	name, err := user.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	creds, err := user.NewCredentials(r.Email, r.Password)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return nil, err
	}
	return &RegisterInput{
		Name:     name,
		Email:    creds.Email(),
		Password: creds.Password(),
		Role:     role,
	}, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ToDomain skips the password strength rule; login only compares against the stored hash.
func (r *LoginRequest) ToDomain() (user.Email, string, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Email{}, "", err
	}
	return email, r.Password, nil
}
