package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"clubledger/internal/club/metrics"
	"clubledger/internal/club/models"
	"clubledger/internal/club/ports"
	dErrors "clubledger/pkg/domain-errors"
	"clubledger/pkg/platform/tx"
)

const tracerName = "clubledger/internal/club/service"

// Service runs the club registry, membership ledger and treasury operations.
// Every mutation executes inside one StoreTx so a failure at any step leaves
// no partial writes behind.
type Service struct {
	clubs        ports.ClubStore
	memberships  ports.MembershipStore
	fees         ports.FeeGateway
	clock        ports.Clock
	params       models.Params
	tx           ports.StoreTx
	logger       *slog.Logger
	auditEmitter *auditEmitter
	metrics      *metrics.Metrics
	tracer       trace.Tracer
}

type serviceConfig struct {
	logger         *slog.Logger
	auditPublisher ports.AuditPublisher
	metrics        *metrics.Metrics
	tx             ports.StoreTx
	tracer         trace.Tracer
}

type Option func(*serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(c *serviceConfig) {
		c.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

// WithTx sets the transactional boundary. Without it the service serializes
// operations but cannot roll back stores that are not registered participants.
func WithTx(t ports.StoreTx) Option {
	return func(c *serviceConfig) {
		c.tx = t
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *serviceConfig) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// New constructs a Service. Params are validated once here.
func New(clubs ports.ClubStore, memberships ports.MembershipStore, fees ports.FeeGateway, clock ports.Clock, params models.Params, opts ...Option) (*Service, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if clubs == nil || memberships == nil || fees == nil || clock == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "club service requires stores, fee gateway and clock")
	}
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.tx == nil {
		cfg.tx = defaultTx(clubs, memberships, fees)
	}
	if cfg.tracer == nil {
		cfg.tracer = otel.Tracer(tracerName)
	}
	return &Service{
		clubs:        clubs,
		memberships:  memberships,
		fees:         fees,
		clock:        clock,
		params:       params,
		tx:           cfg.tx,
		logger:       cfg.logger,
		auditEmitter: newAuditEmitter(cfg.logger, cfg.auditPublisher, clock),
		metrics:      cfg.metrics,
		tracer:       cfg.tracer,
	}, nil
}

// defaultTx rolls back every collaborator that can snapshot itself.
func defaultTx(participants ...any) *tx.InMemory {
	t := tx.NewInMemory()
	for _, p := range participants {
		if snap, ok := p.(tx.Snapshotter); ok {
			t.Register(snap)
		}
	}
	return t
}

// Params returns the engine configuration.
func (s *Service) Params() models.Params {
	return s.params
}

// startOp opens a span and returns a finisher recording the outcome and duration.
func (s *Service) startOp(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "club."+op, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
		}
		span.End()
		if s.metrics != nil {
			s.metrics.ObserveOperation(op, start)
		}
	}
}
