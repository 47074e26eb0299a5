// Package document exposes the generation pipeline over the API: cover
// letters, reimbursement guides, the printable view, and the PDF export.
package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/superbill/superbill/internal/docgen/letter"
	"github.com/superbill/superbill/internal/docgen/pdf"
	"github.com/superbill/superbill/internal/docgen/printable"
	"github.com/superbill/superbill/internal/domain/superbill"
)

// SuperbillSource is the slice of the superbill service the generators need.
type SuperbillSource interface {
	Get(ctx context.Context, id uuid.UUID) (*superbill.Superbill, error)
	GetMany(ctx context.Context, ids []uuid.UUID) ([]*superbill.Superbill, error)
}

// RenderError marks a failure in the external rasterization step so the
// handler can distinguish it from a missing record.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return "rasterizing document: " + e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }

type Service struct {
	superbills SuperbillSource
	rasterizer pdf.Rasterizer
	writer     *pdf.Writer
	logger     zerolog.Logger
}

func NewService(superbills SuperbillSource, rasterizer pdf.Rasterizer, writer *pdf.Writer, logger zerolog.Logger) *Service {
	return &Service{
		superbills: superbills,
		rasterizer: rasterizer,
		writer:     writer,
		logger:     logger,
	}
}

// CoverLetter renders the single-patient cover letter for one superbill.
func (s *Service) CoverLetter(ctx context.Context, id uuid.UUID, includeInvoiceNote bool) (string, error) {
	sb, err := s.superbills.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return letter.Generate(letter.OptionsFromSuperbill(sb, includeInvoiceNote)), nil
}

// GroupedCoverLetter renders one letter covering several superbills, grouped
// by patient. Ids resolve in order; the grouped generator returns an empty
// string when the list is empty.
func (s *Service) GroupedCoverLetter(ctx context.Context, ids []uuid.UUID, includeInvoiceNote bool) (string, error) {
	if len(ids) == 0 {
		return "", nil
	}
	records, err := s.superbills.GetMany(ctx, ids)
	if err != nil {
		return "", err
	}
	return letter.GenerateGrouped(records, includeInvoiceNote), nil
}

// ReimbursementGuide renders the patient reimbursement guide.
func (s *Service) ReimbursementGuide(ctx context.Context, id uuid.UUID) (string, error) {
	sb, err := s.superbills.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return letter.GenerateReimbursementGuide(sb), nil
}

// Printable renders the combined printable document (cover letter plus
// itemized superbill with screen and print style sheets).
func (s *Service) Printable(ctx context.Context, id uuid.UUID, includeInvoiceNote bool) (string, error) {
	sb, err := s.superbills.Get(ctx, id)
	if err != nil {
		return "", err
	}
	doc := printable.Generate(sb, printable.Options{IncludeInvoiceNote: includeInvoiceNote})
	return doc.Combined(), nil
}

// ExportPDF rasterizes the printable document and paginates it into an A4
// PDF. It returns the download filename alongside the bytes. The operation
// runs once per call with no retry; a rasterization failure surfaces to the
// caller.
func (s *Service) ExportPDF(ctx context.Context, id uuid.UUID, includeInvoiceNote bool) (string, []byte, error) {
	sb, err := s.superbills.Get(ctx, id)
	if err != nil {
		return "", nil, err
	}

	doc := printable.Generate(sb, printable.Options{IncludeInvoiceNote: includeInvoiceNote})

	img, err := s.rasterizer.Rasterize(ctx, doc.Combined())
	if err != nil {
		s.logger.Error().Err(err).Str("superbill_id", id.String()).Msg("rasterization failed")
		return "", nil, &RenderError{Err: err}
	}

	data, err := s.writer.Write(img)
	if err != nil {
		return "", nil, fmt.Errorf("assembling pdf: %w", err)
	}

	s.logger.Info().
		Str("superbill_id", id.String()).
		Int("bytes", len(data)).
		Msg("superbill exported")

	return pdf.ExportFilename(sb), data, nil
}
