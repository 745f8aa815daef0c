package request

import (
	"toolshare/internal/domain/user"
)

type UpdateProfileRequest struct {
	Name  string  `json:"name" binding:"required,max=100"`
	Email string  `json:"email" binding:"required,email"`
	Bio   *string `json:"bio" binding:"omitempty,max=2000"`
}

type ProfileInput struct {
	Name  user.Name
	Email user.Email
	Bio   *string
}

func (r *UpdateProfileRequest) ToDomain() (*ProfileInput, error) {
	name, err := user.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	bio, err := user.NormalizeBio(r.Bio)
	if err != nil {
		return nil, err
	}
	return &ProfileInput{Name: name, Email: email, Bio: bio}, nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

func (r *ChangePasswordRequest) ToDomain() (user.Password, error) {
	return user.NewPassword(r.NewPassword)
}
