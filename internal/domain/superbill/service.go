package superbill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	StatusDraft: true, StatusReady: true, StatusSubmitted: true, StatusReimbursed: true,
}

var validVisitStatuses = map[string]bool{
	VisitStatusDraft: true, VisitStatusComplete: true, VisitStatusBilled: true,
}

// statusRank orders the lifecycle; a superbill may move forward any number of
// steps or back to draft, but never backward between the later stages.
var statusRank = map[string]int{
	StatusDraft: 0, StatusReady: 1, StatusSubmitted: 2, StatusReimbursed: 3,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, sb *Superbill) error {
	if sb.Status == "" {
		sb.Status = StatusDraft
	}
	if !validStatuses[sb.Status] {
		return fmt.Errorf("invalid superbill status: %s", sb.Status)
	}
	if sb.IssueDate.IsZero() {
		sb.IssueDate = time.Now()
	}
	for _, v := range sb.Visits {
		if err := normalizeVisit(v); err != nil {
			return err
		}
	}
	return s.repo.Create(ctx, sb)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Superbill, error) {
	return s.repo.GetByID(ctx, id)
}

// GetMany fetches superbills by id, preserving the order of ids. Missing ids
// are errors; grouped documents must not silently drop records.
func (s *Service) GetMany(ctx context.Context, ids []uuid.UUID) ([]*Superbill, error) {
	items := make([]*Superbill, 0, len(ids))
	for _, id := range ids {
		sb, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("superbill %s: %w", id, err)
		}
		items = append(items, sb)
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, sb *Superbill) error {
	if sb.Status != "" && !validStatuses[sb.Status] {
		return fmt.Errorf("invalid superbill status: %s", sb.Status)
	}
	current, err := s.repo.GetByID(ctx, sb.ID)
	if err != nil {
		return err
	}
	if sb.Status != "" && sb.Status != StatusDraft &&
		statusRank[sb.Status] < statusRank[current.Status] {
		return fmt.Errorf("cannot move superbill from %s back to %s", current.Status, sb.Status)
	}
	return s.repo.Update(ctx, sb)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Superbill, int, error) {
	return s.repo.List(ctx, filter, limit, offset)
}

// -- Visits --

func (s *Service) AddVisit(ctx context.Context, v *Visit) error {
	if v.SuperbillID == uuid.Nil {
		return fmt.Errorf("superbill_id is required")
	}
	if err := normalizeVisit(v); err != nil {
		return err
	}
	sb, err := s.repo.GetByID(ctx, v.SuperbillID)
	if err != nil {
		return fmt.Errorf("superbill %s: %w", v.SuperbillID, err)
	}
	v.Position = len(sb.Visits)
	return s.repo.AddVisit(ctx, v)
}

func (s *Service) UpdateVisit(ctx context.Context, v *Visit) error {
	if err := normalizeVisit(v); err != nil {
		return err
	}
	return s.repo.UpdateVisit(ctx, v)
}

func (s *Service) DeleteVisit(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteVisit(ctx, id)
}

func (s *Service) GetVisit(ctx context.Context, id uuid.UUID) (*Visit, error) {
	return s.repo.GetVisit(ctx, id)
}

func normalizeVisit(v *Visit) error {
	if v.Status == "" {
		v.Status = VisitStatusDraft
	}
	if !validVisitStatuses[v.Status] {
		return fmt.Errorf("invalid visit status: %s", v.Status)
	}
	if v.Date.IsZero() {
		return fmt.Errorf("visit date is required")
	}
	for _, l := range v.Lines {
		if l.Code == "" {
			return fmt.Errorf("service line code is required")
		}
		if l.Fee < 0 {
			return fmt.Errorf("service line fee cannot be negative")
		}
	}
	return nil
}
