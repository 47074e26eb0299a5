package superbill

import (
	"context"

	"github.com/google/uuid"
)

// Repository provides persistence for superbills, their visits and service
// lines. Get/List always return visits (with lines) in position order.
type Repository interface {
	Create(ctx context.Context, s *Superbill) error
	GetByID(ctx context.Context, id uuid.UUID) (*Superbill, error)
	Update(ctx context.Context, s *Superbill) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Superbill, int, error)

	AddVisit(ctx context.Context, v *Visit) error
	UpdateVisit(ctx context.Context, v *Visit) error
	DeleteVisit(ctx context.Context, id uuid.UUID) error
	GetVisit(ctx context.Context, id uuid.UUID) (*Visit, error)
}

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	PatientID uuid.UUID
	Status    string
}
