// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/replicator/internal/app/context"
	"github.com/jsamuelsen11/replicator/internal/app/fanout"
	"github.com/jsamuelsen11/replicator/internal/domain"
	"github.com/jsamuelsen11/replicator/internal/domain/provision"
	"github.com/jsamuelsen11/replicator/internal/platform/telemetry"
	"github.com/jsamuelsen11/replicator/internal/ports"
)

var _ ports.ProvisioningService = (*ProvisioningService)(nil)

// Settings is the run-invariant input of every provisioning run. It is built
// once at startup and never changes.
type Settings struct {
	Token         string
	ProjectID     string
	EnvironmentID string
	Source        provision.SourceBinding
	// Level is the level of this instance; children are created one deeper.
	Level provision.Level
	// Compensate deletes the created service when a later step fails.
	Compensate      bool
	MaxParallelRuns int
	MaxBatch        int
}

// Option customizes a ProvisioningService.
type Option func(*ProvisioningService)

// WithTokenSource replaces the random token source used for service names.
func WithTokenSource(ts provision.TokenSource) Option {
	return func(s *ProvisioningService) { s.tokens = ts }
}

// WithMetrics records run and step metrics. A nil metrics disables them.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *ProvisioningService) { s.metrics = m }
}

// ProvisioningService implements ports.ProvisioningService. Each Provision
// call is one independent pass of create → attach → expose against the
// ProvisioningClient port. The service holds only immutable settings, so it
// is safe for concurrent use.
type ProvisioningService struct {
	client   ports.ProvisioningClient
	settings Settings
	tokens   provision.TokenSource
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewProvisioningService creates a ProvisioningService. A nil logger
// discards output.
func NewProvisioningService(client ports.ProvisioningClient, settings Settings, logger *slog.Logger, opts ...Option) *ProvisioningService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ProvisioningService{
		client:   client,
		settings: settings,
		tokens:   provision.RandomToken,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Provision runs the workflow once. It returns the exposed domain, or the
// first error exactly as the failing step reported it.
func (s *ProvisioningService) Provision(ctx context.Context) (*provision.Result, error) {
	start := time.Now()

	identity := provision.Generate(s.settings.Level, s.tokens)
	payload := provision.BuildCreatePayload(identity,
		s.settings.ProjectID,
		s.settings.EnvironmentID,
		provision.ChildVariables(identity.Level, s.settings.Token),
	)

	logger := s.logger.With(
		slog.String("service_name", identity.Name),
		slog.Int("level", int(identity.Level)),
	)
	logger.InfoContext(ctx, "provisioning service")

	created := appctx.NewRef[provision.Service]()
	exposed := appctx.NewRef[provision.Domain]()

	rc := appctx.New(ctx,
		appctx.WithRollback(s.settings.Compensate),
		appctx.WithObserver(s.observeStep),
	)
	for _, step := range []domain.Action{
		&createServiceStep{client: s.client, payload: payload, created: created},
		&attachSourceStep{client: s.client, source: s.settings.Source, created: created},
		&exposeDomainStep{client: s.client, environmentID: s.settings.EnvironmentID, created: created, exposed: exposed},
	} {
		if err := rc.AddAction(step); err != nil {
			return nil, fmt.Errorf("staging %s: %w", step.Name(), err)
		}
	}

	err := rc.Commit(ctx)
	s.recordRun(ctx, start, err)
	if err != nil {
		logger.ErrorContext(ctx, "provisioning failed",
			slog.String("operation", "Provision"),
			slog.Any("error", err),
		)
		return nil, err
	}

	svc, _ := created.Get()
	d, _ := exposed.Get()

	logger.InfoContext(ctx, "service provisioned",
		slog.String("service_id", svc.ID),
		slog.String("domain", string(d)),
	)

	return &provision.Result{
		ServiceID:   svc.ID,
		ServiceName: identity.Name,
		Level:       identity.Level,
		Domain:      d,
	}, nil
}

// ProvisionBatch runs count independent workflows, at most MaxParallelRuns
// at a time. Each run succeeds or fails on its own.
func (s *ProvisioningService) ProvisionBatch(ctx context.Context, count int) (*ports.BatchResult, error) {
	if count < 1 || count > s.settings.MaxBatch {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"count": fmt.Sprintf("must be between 1 and %d", s.settings.MaxBatch),
		}}
	}

	s.logger.InfoContext(ctx, "provisioning batch", slog.Int("count", count))

	results := fanout.Run(ctx, s.settings.MaxParallelRuns, count, func(ctx context.Context, _ int) (*provision.Result, error) {
		return s.Provision(ctx)
	})

	batch := &ports.BatchResult{}
	for i, r := range results {
		if r.Err != nil {
			batch.Errors = append(batch.Errors, ports.BatchError{Index: i, Err: r.Err})
			continue
		}
		batch.Provisioned = append(batch.Provisioned, *r.Value)
	}

	return batch, nil
}

// Project returns the configured project.
func (s *ProvisioningService) Project(ctx context.Context) (*provision.Project, error) {
	p, err := s.client.GetProject(ctx, s.settings.ProjectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch project",
			slog.String("operation", "Project"),
			slog.String("project_id", s.settings.ProjectID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return p, nil
}

func (s *ProvisioningService) observeStep(ctx context.Context, step domain.Action, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.ProvisionStepTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrStep.String(step.Name()),
		telemetry.AttrResult.String(outcome(err)),
	))
}

func (s *ProvisioningService) recordRun(ctx context.Context, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(telemetry.AttrResult.String(outcome(err)))
	s.metrics.ProvisionRunDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.ProvisionRunTotal.Add(ctx, 1, attrs)
}

// outcome labels err for metrics: "success", "backend", "transport" or
// "error".
func outcome(err error) string {
	if err == nil {
		return "success"
	}
	var werr *domain.WorkflowError
	if errors.As(err, &werr) {
		return werr.Kind.String()
	}
	return "error"
}
