package lettertemplate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/superbill/superbill/internal/docgen/render"
	"github.com/superbill/superbill/internal/domain/superbill"
)

var validCategories = map[string]bool{
	CategoryCoverLetter:  true,
	CategoryAppealLetter: true,
	CategoryGeneral:      true,
}

// SuperbillGetter is the slice of the superbill service template rendering
// needs.
type SuperbillGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*superbill.Superbill, error)
}

type Service struct {
	repo       Repository
	superbills SuperbillGetter
}

func NewService(repo Repository, superbills SuperbillGetter) *Service {
	return &Service{repo: repo, superbills: superbills}
}

func (s *Service) Create(ctx context.Context, t *LetterTemplate) error {
	if err := s.validate(t); err != nil {
		return err
	}
	return s.repo.Create(ctx, t)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*LetterTemplate, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, t *LetterTemplate) error {
	if err := s.validate(t); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, t.ID); err != nil {
		return fmt.Errorf("letter template not found")
	}
	return s.repo.Update(ctx, t)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, category string, limit, offset int) ([]*LetterTemplate, int, error) {
	if category != "" && !validCategories[category] {
		return nil, 0, fmt.Errorf("invalid category %q", category)
	}
	return s.repo.List(ctx, category, limit, offset)
}

// Render resolves the template's placeholders against the superbill's
// variable context. Unknown placeholders pass through verbatim.
func (s *Service) Render(ctx context.Context, templateID, superbillID uuid.UUID) (string, error) {
	t, err := s.repo.GetByID(ctx, templateID)
	if err != nil {
		return "", fmt.Errorf("letter template not found")
	}
	sb, err := s.superbills.Get(ctx, superbillID)
	if err != nil {
		return "", fmt.Errorf("superbill not found")
	}
	return render.Process(t.Content, render.BuildContext(sb)), nil
}

// SeedDefaults installs the built-in templates once; an install that already
// has defaults is left alone.
func (s *Service) SeedDefaults(ctx context.Context) (int, error) {
	n, err := s.repo.CountDefaults(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	seeded := 0
	for _, t := range DefaultTemplates() {
		if err := s.repo.Create(ctx, t); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}

func (s *Service) validate(t *LetterTemplate) error {
	if t.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !validCategories[t.Category] {
		return fmt.Errorf("invalid category %q", t.Category)
	}
	if t.Content == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}
