package lettertemplate

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/superbill/superbill/internal/domain/superbill"
)

type mockRepo struct {
	items map[uuid.UUID]*LetterTemplate
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*LetterTemplate)}
}

func (m *mockRepo) Create(_ context.Context, t *LetterTemplate) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
	m.items[t.ID] = t
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*LetterTemplate, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return t, nil
}

func (m *mockRepo) Update(_ context.Context, t *LetterTemplate) error {
	m.items[t.ID] = t
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.items, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, category string, limit, offset int) ([]*LetterTemplate, int, error) {
	var out []*LetterTemplate
	for _, t := range m.items {
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepo) CountDefaults(_ context.Context) (int, error) {
	n := 0
	for _, t := range m.items {
		if t.IsDefault {
			n++
		}
	}
	return n, nil
}

type stubSuperbills struct {
	items map[uuid.UUID]*superbill.Superbill
}

func (s *stubSuperbills) Get(_ context.Context, id uuid.UUID) (*superbill.Superbill, error) {
	sb, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return sb, nil
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMockRepo(), &stubSuperbills{})

	cases := []*LetterTemplate{
		{Category: CategoryGeneral, Content: "x"},
		{Title: "T", Category: "newsletter", Content: "x"},
		{Title: "T", Category: CategoryGeneral},
	}
	for i, tpl := range cases {
		if err := svc.Create(context.Background(), tpl); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}

	ok := &LetterTemplate{Title: "T", Category: CategoryCoverLetter, Content: "Dear {{patient.name}}"}
	if err := svc.Create(context.Background(), ok); err != nil {
		t.Errorf("valid template rejected: %v", err)
	}
}

func TestRenderSubstitutesAndRoundTrips(t *testing.T) {
	repo := newMockRepo()
	sbID := uuid.New()
	superbills := &stubSuperbills{items: map[uuid.UUID]*superbill.Superbill{
		sbID: {
			ID:          sbID,
			PatientName: "Jane Doe",
			Clinic:      superbill.Clinic{Name: "Back In Line Chiropractic"},
			IssueDate:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			Visits: []*superbill.Visit{
				{Date: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), Fee: 125},
			},
		},
	}}
	svc := NewService(repo, superbills)

	tpl := &LetterTemplate{
		Title:    "T",
		Category: CategoryCoverLetter,
		Content:  "Dear {{patient.firstName}}, total {{superbill.totalFee}} at {{clinic.name}}. {{unknown.thing}}",
	}
	if err := svc.Create(context.Background(), tpl); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Render(context.Background(), tpl.ID, sbID)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "Dear Jane, total $125.00 at Back In Line Chiropractic. {{unknown.thing}}"
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestRenderUnknownIDs(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &stubSuperbills{})

	if _, err := svc.Render(context.Background(), uuid.New(), uuid.New()); err == nil {
		t.Error("expected error for unknown template")
	}

	tpl := &LetterTemplate{Title: "T", Category: CategoryGeneral, Content: "x"}
	if err := svc.Create(context.Background(), tpl); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Render(context.Background(), tpl.ID, uuid.New()); err == nil {
		t.Error("expected error for unknown superbill")
	}
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &stubSuperbills{})

	n, err := svc.SeedDefaults(context.Background())
	if err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}
	if n != len(DefaultTemplates()) {
		t.Errorf("seeded %d, want %d", n, len(DefaultTemplates()))
	}

	n, err = svc.SeedDefaults(context.Background())
	if err != nil {
		t.Fatalf("second SeedDefaults: %v", err)
	}
	if n != 0 {
		t.Errorf("second seed inserted %d templates", n)
	}
}

func TestDefaultTemplatesUsePlaceholderSyntax(t *testing.T) {
	for _, tpl := range DefaultTemplates() {
		if !strings.Contains(tpl.Content, "{{") {
			t.Errorf("%q carries no placeholders", tpl.Title)
		}
		if !tpl.IsDefault {
			t.Errorf("%q not flagged as default", tpl.Title)
		}
	}
}
