package queries

import "toolshare/internal/pkg/errs"

var (
	ErrInvalidCursor = errs.New("invalid cursor")
	ErrQueryFailed   = errs.New("query failed")
)
