package commands

import "toolshare/internal/pkg/errs"

var (
	ErrInvalidCredentials     = errs.New("invalid credentials")
	ErrEmailTaken             = errs.New("email already registered")
	ErrWrongPassword          = errs.New("current password is incorrect")
	ErrTokenGeneration        = errs.New("token generation failed")
	ErrCannotDeleteSelf       = errs.New("cannot delete yourself")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
)
