package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"clubledger/internal/balances"
	"clubledger/internal/chain"
	clubhandler "clubledger/internal/club/handler"
	clubmetrics "clubledger/internal/club/metrics"
	"clubledger/internal/club/models"
	"clubledger/internal/club/ports"
	"clubledger/internal/club/service"
	clubmemory "clubledger/internal/club/store/memory"
	clubpostgres "clubledger/internal/club/store/postgres"
	jwttoken "clubledger/internal/jwt_token"
	"clubledger/internal/platform/config"
	"clubledger/internal/platform/kafka"
	"clubledger/internal/platform/metrics"
	"clubledger/internal/platform/redis"
	ratelimitmetrics "clubledger/internal/ratelimit/metrics"
	ratelimit "clubledger/internal/ratelimit/middleware"
	ratelimitmodels "clubledger/internal/ratelimit/models"
	"clubledger/internal/ratelimit/store/bucket"
	"clubledger/internal/storage"
	id "clubledger/pkg/domain"
	"clubledger/pkg/platform/audit"
	"clubledger/pkg/platform/audit/publisher"
	"clubledger/pkg/platform/audit/sink"
	auditmemory "clubledger/pkg/platform/audit/store/memory"
	auditpostgres "clubledger/pkg/platform/audit/store/postgres"
	"clubledger/pkg/platform/audit/worker"
	"clubledger/pkg/platform/tx"
)

const readyTimeout = 2 * time.Second

// app holds the wired collaborators and the resources to release on exit.
type app struct {
	backend   string
	clubs     clubhandler.Service
	validator *jwttoken.JWTServiceAdapter
	limiter   *ratelimit.Middleware
	metrics   http.Handler
	relay     *worker.Relay
	checks    []func(ctx context.Context) error
	closers   []func() error
}

// storeSet is the backend-specific part of the wiring.
type storeSet struct {
	clubs       ports.ClubStore
	memberships ports.MembershipStore
	fees        ports.FeeGateway
	tx          ports.StoreTx
	audit       audit.Store
	outbox      audit.Outbox
}

func buildApp(ctx context.Context, cfg config.Server, log *slog.Logger) (*app, error) {
	a := &app{}
	ok := false
	defer func() {
		if !ok {
			a.Close()
		}
	}()

	reg := metrics.NewRegistry()
	a.metrics = metrics.Handler(reg)
	clubMetrics := clubmetrics.New(reg)
	ledgerMetrics := balances.NewMetrics(reg)

	params := paramsFromConfig(cfg.Club)

	var (
		stores storeSet
		err    error
	)
	if cfg.DatabaseURL != "" {
		stores, err = a.postgresStores(ctx, cfg, ledgerMetrics)
	} else {
		stores, err = a.memoryStores(cfg, ledgerMetrics, log)
	}
	if err != nil {
		return nil, err
	}

	clock := chain.NewBlockTimeClock(cfg.Chain.Genesis, cfg.Chain.BlockTime)
	svc, err := service.New(stores.clubs, stores.memberships, stores.fees, clock, params,
		service.WithTx(stores.tx),
		service.WithAuditPublisher(publisher.NewPublisher(stores.audit)),
		service.WithMetrics(clubMetrics),
		service.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("build club service: %w", err)
	}
	a.clubs = svc
	a.validator = jwttoken.NewJWTServiceAdapter(
		jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience),
	)

	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rdb != nil {
		a.closers = append(a.closers, rdb.Close)
		a.checks = append(a.checks, rdb.Health)
	}

	a.limiter = buildLimiter(cfg.Limit, rdb, reg, log)

	sinks, err := a.buildSinks(ctx, cfg, rdb)
	if err != nil {
		return nil, err
	}
	if len(sinks) > 0 {
		a.relay = worker.NewRelay(stores.outbox, sinks,
			worker.WithLogger(log),
			worker.WithInterval(cfg.Relay.Interval),
			worker.WithBatchSize(cfg.Relay.BatchSize),
			worker.WithRelayHook(clubMetrics.ObserveRelayed),
		)
	}

	ok = true
	return a, nil
}

func paramsFromConfig(c config.ClubConfig) models.Params {
	return models.Params{
		MaxNameLength:       c.MaxNameLength,
		MaxMembershipYears:  c.MaxMembershipYears,
		ClubCreationDeposit: id.Balance(c.ClubCreationDeposit),
		YearLength:          id.BlockNumber(c.YearLength),
		Treasury:            id.DeriveAccountID(c.TreasurySeed),
	}
}

func (a *app) postgresStores(ctx context.Context, cfg config.Server, ledgerMetrics *balances.Metrics) (storeSet, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return storeSet{}, fmt.Errorf("open database: %w", err)
	}
	a.closers = append(a.closers, db.Close)
	a.checks = append(a.checks, db.PingContext)
	if err := db.PingContext(ctx); err != nil {
		return storeSet{}, fmt.Errorf("ping database: %w", err)
	}
	if err := storage.Migrate(ctx, db); err != nil {
		return storeSet{}, err
	}

	a.backend = "postgres"
	clubs := clubpostgres.New(db)
	auditStore := auditpostgres.New(db)
	return storeSet{
		clubs:       clubs,
		memberships: clubs,
		fees: balances.NewPostgresLedger(db,
			balances.WithPostgresExistentialDeposit(id.Balance(cfg.Club.ExistentialDeposit)),
			balances.WithPostgresMetrics(ledgerMetrics),
		),
		tx:     tx.NewPostgres(db),
		audit:  auditStore,
		outbox: auditStore,
	}, nil
}

func (a *app) memoryStores(cfg config.Server, ledgerMetrics *balances.Metrics, log *slog.Logger) (storeSet, error) {
	a.backend = "memory"
	clubs := clubmemory.New()
	ledger := balances.NewLedger(
		balances.WithExistentialDeposit(id.Balance(cfg.Club.ExistentialDeposit)),
		balances.WithMetrics(ledgerMetrics),
	)
	for seed, amount := range cfg.Club.DevEndowments {
		account := id.DeriveAccountID(seed)
		ledger.Endow(account, id.Balance(amount))
		log.Info("endowed dev account", "seed", seed, "account", account.String(), "amount", amount)
	}
	auditStore := auditmemory.NewInMemoryStore()
	return storeSet{
		clubs:       clubs,
		memberships: clubs,
		fees:        ledger,
		tx:          tx.NewInMemory(clubs, ledger, auditStore),
		audit:       auditStore,
		outbox:      auditStore,
	}, nil
}

func buildLimiter(cfg config.RateLimitConfig, rdb *redis.Client, reg prometheus.Registerer, log *slog.Logger) *ratelimit.Middleware {
	var store ratelimit.BucketStore = bucket.NewInMemoryBucketStore()
	if rdb != nil {
		store = bucket.NewRedisBucketStore(rdb.Client, "clubledger:ratelimit:")
	}
	return ratelimit.New(store, map[ratelimitmodels.EndpointClass]ratelimitmodels.Limit{
		ratelimitmodels.ClassRead:  {Requests: cfg.Reads, Window: cfg.Window},
		ratelimitmodels.ClassWrite: {Requests: cfg.Writes, Window: cfg.Window},
	}, log,
		ratelimit.WithDisabled(cfg.Disabled),
		ratelimit.WithMetrics(ratelimitmetrics.New(reg)),
	)
}

func (a *app) buildSinks(ctx context.Context, cfg config.Server, rdb *redis.Client) (sink.Fanout, error) {
	var sinks sink.Fanout
	if cfg.KafkaEnabled() {
		client, err := kafka.NewClient(cfg.Kafka)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error {
			client.Close()
			return nil
		})
		a.checks = append(a.checks, func(ctx context.Context) error {
			return kafka.Health(ctx, client)
		})
		if err := kafka.EnsureTopic(ctx, client, cfg.Kafka); err != nil {
			return nil, err
		}
		sinks = append(sinks, sink.NewKafka(client, cfg.Kafka.Topic))
	}
	if rdb != nil {
		sinks = append(sinks, sink.NewRedisStream(rdb.Client, cfg.Redis.Stream, cfg.Redis.StreamMaxLen))
	}
	return sinks, nil
}

// ready runs every dependency check under a short deadline.
func (a *app) ready(r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()
	var errs []error
	for _, check := range a.checks {
		if err := check(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}
