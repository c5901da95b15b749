package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/forgezone/internal/ai"
	"github.com/2beens/forgezone/internal/auth"
	"github.com/2beens/forgezone/internal/config"
	"github.com/2beens/forgezone/internal/db"
	"github.com/2beens/forgezone/internal/fitness/catalog"
	"github.com/2beens/forgezone/internal/fitness/handlers"
	"github.com/2beens/forgezone/internal/fitness/insights"
	"github.com/2beens/forgezone/internal/fitness/progress"
	"github.com/2beens/forgezone/internal/fitness/suggestions"
	"github.com/2beens/forgezone/internal/middleware"
	"github.com/2beens/forgezone/internal/store"
	"github.com/2beens/forgezone/internal/telemetry/metrics"
	"github.com/2beens/forgezone/internal/telemetry/tracing"
	"github.com/2beens/forgezone/pkg"
)

const serviceName = "forgezone-backend"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config *config.Config
	store  store.Store

	redisClient      *redis.Client
	authService      *auth.Service
	authChecker      *auth.Checker
	aiProvider       ai.Provider
	leaderboardCache *store.LeaderboardCache
	sessionCleanup   *cron.Cron

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config  *config.Config
	Secrets *config.Secrets
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.Secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.Secrets.HoneycombEnabled, serviceName, rdb)
	if err != nil {
		return nil, err
	}

	st, dbPool, err := newStore(ctx, cfg, params.Secrets)
	if err != nil {
		return nil, err
	}

	var collectors []prometheus.Collector
	if dbPool != nil {
		collectors = append(collectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	}
	promRegistry := metrics.SetupPrometheus(collectors...)
	metricsManager := metrics.NewManager("forgezone", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	aiProvider, err := ai.NewFromConfig(ctx, cfg, params.Secrets.AIAPIKey)
	if err != nil {
		return nil, fmt.Errorf("new ai provider: %w", err)
	}
	log.Printf("ai provider: %s", aiProvider.Name())

	authService := auth.NewService(auth.DefaultTTL, rdb, st)
	sessionCleanup := cron.New()
	if err := sessionCleanup.AddFunc(cfg.SessionCleanupSchedule, func() {
		authService.ScanAndClean(ctx)
	}); err != nil {
		return nil, fmt.Errorf("schedule session cleanup [%s]: %w", cfg.SessionCleanupSchedule, err)
	}

	return &Server{
		config:           cfg,
		store:            st,
		redisClient:      rdb,
		authService:      authService,
		authChecker:      auth.NewChecker(auth.DefaultTTL, rdb),
		aiProvider:       ai.NewInstrumented(aiProvider, metricsManager.HistAIRequestDuration),
		leaderboardCache: store.NewLeaderboardCache(st, cfg.LeaderboardCacheSizeMB, cfg.LeaderboardCacheTTLSeconds),
		sessionCleanup:   sessionCleanup,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// newStore picks the persistence backend. The pool is returned only for postgres.
func newStore(ctx context.Context, cfg *config.Config, secrets *config.Secrets) (store.Store, *pgxpool.Pool, error) {
	if cfg.StoreType == config.StoreTypeMemory {
		log.Warnln("using in-memory store, data is lost on restart")
		return store.NewMemory(), nil, nil
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     secrets.PostgresPassword,
		TracingEnabled: secrets.HoneycombEnabled,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if cfg.PostgresMigrate {
		if err := store.Migrate(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		log.Debugln("db schema ready")
	}

	return store.NewPostgres(dbPool), dbPool, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	fitnessHandler := handlers.NewHandler(handlers.NewHandlerParams{
		Store:          s.store,
		Auth:           s.authService,
		Suggestions:    suggestions.NewEngine(s.aiProvider, catalog.Default(), s.config.AITimeout.Duration),
		Tracker:        progress.NewTracker(s.store, s.metricsManager.CounterCompletions),
		Insights:       insights.NewGenerator(s.store),
		Leaderboard:    s.leaderboardCache,
		MetricsManager: s.metricsManager,
	})
	fitnessHandler.SetupRoutes(
		r,
		redis_rate.NewLimiter(s.redisClient),
		s.config.LoginRateLimitPerMin,
		s.config.SuggestionsRateLimitPerMin,
	)

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteJSONError(w, "Not found", http.StatusNotFound)
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.authChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest(middleware.DefaultDrainLimit))

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.sessionCleanup.Start()
	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)
	s.sessionCleanup.Stop()

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	log.Debugln("closing store ...")
	s.store.Close() // blocking for the db pool
	log.Debugln("store closed")

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
