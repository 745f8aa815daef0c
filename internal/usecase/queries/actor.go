package queries

import "github.com/google/uuid"

// Actor is the authenticated caller a query runs on behalf of.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}
