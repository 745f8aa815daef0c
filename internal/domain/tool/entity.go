package tool

import (
	"time"

	"toolshare/internal/domain/pricing"

	"github.com/google/uuid"
)

type Tool struct {
	id         uuid.UUID
	ownerID    uuid.UUID
	details    Details
	dailyPrice pricing.Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewTool(ownerID uuid.UUID, details Details, dailyPrice pricing.Money, status Status, now time.Time) (*Tool, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	if !dailyPrice.IsPositive() {
		return nil, ErrNonPositivePrice
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Tool{
		id:         uuid.New(),
		ownerID:    ownerID,
		details:    d,
		dailyPrice: dailyPrice,
		status:     status,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructTool(
	id, ownerID uuid.UUID,
	details Details,
	dailyPrice pricing.Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Tool {
	return &Tool{
		id:         id,
		ownerID:    ownerID,
		details:    details,
		dailyPrice: dailyPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Patch carries the fields an owner may change; nil means unchanged.
type Patch struct {
	Name        *string
	Description *string
	Category    *string
	ImageURL    *string
	DailyPrice  *pricing.Money
	Status      *Status
}

func (t *Tool) Apply(actorID uuid.UUID, p Patch, now time.Time) error {
	if !t.IsOwnedBy(actorID) {
		return ErrNotOwner
	}

	next := t.details
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.Category != nil {
		next.Category = *p.Category
	}
	if p.ImageURL != nil {
		next.ImageURL = p.ImageURL
	}
	d, err := next.normalize()
	if err != nil {
		return err
	}

	price := t.dailyPrice
	if p.DailyPrice != nil {
		if !p.DailyPrice.IsPositive() {
			return ErrNonPositivePrice
		}
		price = *p.DailyPrice
	}

	status := t.status
	if p.Status != nil {
		if !p.Status.IsValid() {
			return ErrInvalidStatus
		}
		status = *p.Status
	}

	t.details = d
	t.dailyPrice = price
	t.status = status
	t.updatedAt = now
	return nil
}

func (t *Tool) IsOwnedBy(userID uuid.UUID) bool {
	return t.ownerID == userID
}

// CanBeDeletedBy allows the owner or an admin.
func (t *Tool) CanBeDeletedBy(userID uuid.UUID, isAdmin bool) bool {
	return isAdmin || t.IsOwnedBy(userID)
}

func (t *Tool) IsReservable() bool {
	return t.status == StatusAvailable
}

func (t *Tool) ID() uuid.UUID             { return t.id }
func (t *Tool) OwnerID() uuid.UUID        { return t.ownerID }
func (t *Tool) Name() string              { return t.details.Name }
func (t *Tool) Description() string       { return t.details.Description }
func (t *Tool) Category() string          { return t.details.Category }
func (t *Tool) ImageURL() *string         { return t.details.ImageURL }
func (t *Tool) DailyPrice() pricing.Money { return t.dailyPrice }
func (t *Tool) Status() Status            { return t.status }
func (t *Tool) CreatedAt() time.Time      { return t.createdAt }
func (t *Tool) UpdatedAt() time.Time      { return t.updatedAt }
