package lettertemplate

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, t *LetterTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*LetterTemplate, error)
	Update(ctx context.Context, t *LetterTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, category string, limit, offset int) ([]*LetterTemplate, int, error)
	CountDefaults(ctx context.Context) (int, error)
}
