// Package pipeline runs an uploaded schedule through parse, baseline load
// and validation, and renders exports and templates.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/viiteer2708/mega-energia-sub001/internal/baseline"
	"github.com/viiteer2708/mega-energia-sub001/internal/fingerprint"
	"github.com/viiteer2708/mega-energia-sub001/internal/identity"
	"github.com/viiteer2708/mega-energia-sub001/internal/parsers/xlsx"
	"github.com/viiteer2708/mega-energia-sub001/internal/pkg/cuid2"
	"github.com/viiteer2708/mega-energia-sub001/internal/storage"
	"github.com/viiteer2708/mega-energia-sub001/internal/telemetry"
	"github.com/viiteer2708/mega-energia-sub001/internal/types"
	"github.com/viiteer2708/mega-energia-sub001/internal/validation"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Report is the outcome of one validation run
type Report struct {
	ImportID    string                  `json:"importId"`
	Fingerprint string                  `json:"fingerprint"`
	ArchiveKey  string                  `json:"archiveKey,omitempty"`
	Stats       *xlsx.Stats             `json:"stats,omitempty"`
	Schedule    *types.ParsedSchedule   `json:"schedule"`
	Result      *types.ValidationResult `json:"result"`
}

// Options tunes the service
type Options struct {
	// ArchiveUploads keeps the raw upload of every accepted schedule
	ArchiveUploads bool
}

// Service validates, exports and templates commission schedules
type Service struct {
	store   baseline.Store
	archive storage.Storage
	opts    Options
	metrics *MetricsRecorder
	now     func() time.Time
}

// NewService creates a service. archive may be nil, which disables archiving.
func NewService(store baseline.Store, archive storage.Storage, opts Options) *Service {
	return &Service{
		store:   store,
		archive: archive,
		opts:    opts,
		metrics: NewMetricsRecorder(),
		now:     time.Now,
	}
}

// Parse runs the parser on a workbook
func (s *Service) Parse(ctx context.Context, content []byte) (*xlsx.Result, error) {
	_, span := telemetry.StartSpan(ctx, "schedule.parse", attribute.Int("bytes", len(content)))
	defer span.End()

	result, err := xlsx.ParseWithStats(content)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.String("company", result.Schedule.Company.Name),
		attribute.Int("products", len(result.Schedule.Products)),
		attribute.Int("dropped_rows", result.Stats.DroppedRows),
	)
	return result, nil
}

// Validate parses an uploaded workbook and validates it against the stored
// baseline of its company. Accepted uploads are archived when enabled.
// Only unreadable documents and baseline failures return an error; an
// invalid schedule is a Report with Result.Valid false.
func (s *Service) Validate(ctx context.Context, content []byte, filename string) (*Report, error) {
	started := s.now()

	parsed, err := s.Parse(ctx, content)
	if err != nil {
		s.metrics.RecordFailure()
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	report, err := s.validate(ctx, parsed.Schedule, started)
	if err != nil {
		return nil, err
	}
	report.Stats = &parsed.Stats

	if report.Result.Valid && s.opts.ArchiveUploads && s.archive != nil {
		key, err := s.archiveUpload(ctx, report, content, filename)
		if err != nil {
			// Archive failures never reject an otherwise valid schedule
			log.Warn().Err(err).Str("import_id", report.ImportID).Msg("Failed to archive upload")
		} else {
			report.ArchiveKey = key
		}
	}
	return report, nil
}

// ValidateSchedule validates an already parsed schedule. Nothing is archived.
func (s *Service) ValidateSchedule(ctx context.Context, parsed *types.ParsedSchedule) (*Report, error) {
	if parsed == nil {
		parsed = &types.ParsedSchedule{}
	}
	return s.validate(ctx, parsed, s.now())
}

func (s *Service) validate(ctx context.Context, parsed *types.ParsedSchedule, started time.Time) (*Report, error) {
	importID, err := cuid2.NewImportID()
	if err != nil {
		s.metrics.RecordFailure()
		return nil, fmt.Errorf("generate import id: %w", err)
	}

	bctx, span := telemetry.StartSpan(ctx, "schedule.baseline", attribute.String("company", parsed.Company.Name))
	snap, err := baseline.Load(bctx, s.store, parsed.Company.Name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		s.metrics.RecordFailure()
		return nil, fmt.Errorf("load baseline: %w", err)
	}
	span.SetAttributes(attribute.Bool("company_found", snap.Company != nil))
	span.End()

	_, span = telemetry.StartSpan(ctx, "schedule.validate", attribute.String("import_id", importID))
	result := validation.Validate(parsed, snap.Companies(), snap.Products, snap.Rates)
	span.SetAttributes(
		attribute.Bool("valid", result.Valid),
		attribute.Int("errors", len(result.Errors)),
		attribute.Int("warnings", len(result.Warnings)),
	)
	span.End()

	s.metrics.RecordValidation(result, result.Summary.TotalRates, s.now().Sub(started))

	logEvent := log.Info()
	if !result.Valid {
		logEvent = log.Warn()
	}
	logEvent.
		Str("import_id", importID).
		Str("company", parsed.Company.Name).
		Bool("valid", result.Valid).
		Int("errors", len(result.Errors)).
		Int("warnings", len(result.Warnings)).
		Int("rates", result.Summary.TotalRates).
		Msg("Schedule validated")

	return &Report{
		ImportID:    importID,
		Fingerprint: fingerprint.Schedule(parsed),
		Schedule:    parsed,
		Result:      result,
	}, nil
}

func (s *Service) archiveUpload(ctx context.Context, report *Report, content []byte, filename string) (string, error) {
	key := storage.BuildScheduleKey(identity.Slugify(report.Schedule.Company.Name), report.Fingerprint)
	meta := &storage.Metadata{
		ContentType:  xlsxContentType,
		OriginalName: filename,
		Company:      report.Schedule.Company.Name,
		ImportID:     report.ImportID,
		Fingerprint:  report.Fingerprint,
		ArchivedAt:   s.now().UTC(),
	}
	if err := s.archive.Put(ctx, key, content, meta); err != nil {
		return "", err
	}
	log.Info().Str("import_id", report.ImportID).Str("key", key).Msg("Archived schedule upload")
	return key, nil
}

// Export renders the stored schedule of a company.
// Unknown companies return baseline.ErrCompanyNotFound.
func (s *Service) Export(ctx context.Context, companyName string) ([]byte, error) {
	ctx, span := telemetry.StartSpan(ctx, "schedule.export", attribute.String("company", companyName))
	defer span.End()

	snap, err := baseline.Load(ctx, s.store, companyName)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load baseline: %w", err)
	}
	if snap.Company == nil {
		return nil, fmt.Errorf("%w: %s", baseline.ErrCompanyNotFound, companyName)
	}

	content, err := xlsx.Render(*snap.Company, snap.Products, snap.Rates)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("render schedule: %w", err)
	}
	s.metrics.RecordRender("export")
	return content, nil
}

// Template renders an empty schedule for a company
func (s *Service) Template(companyName string, model types.CommissionModel) ([]byte, error) {
	if companyName == "" {
		return nil, errors.New("company name is required")
	}
	content, err := xlsx.RenderSkeleton(companyName, model)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	s.metrics.RecordRender("template")
	return content, nil
}
