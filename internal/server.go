package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/pointnetwork/PointBlogSoftware/internal/app_state"
	"github.com/pointnetwork/PointBlogSoftware/internal/blog"
	"github.com/pointnetwork/PointBlogSoftware/internal/comment"
	"github.com/pointnetwork/PointBlogSoftware/internal/config"
	"github.com/pointnetwork/PointBlogSoftware/internal/install"
	"github.com/pointnetwork/PointBlogSoftware/internal/like"
	"github.com/pointnetwork/PointBlogSoftware/internal/middleware"
	"github.com/pointnetwork/PointBlogSoftware/internal/point"
	"github.com/pointnetwork/PointBlogSoftware/internal/profile"
	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/metrics"
	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
	"github.com/pointnetwork/PointBlogSoftware/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	redisClient *redis.Client

	contract *point.ContractClient
	storage  *point.StorageClient
	identity *point.Identity
	wallet   *point.Wallet
	appState *app_state.State

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	if cfg.BlogIdentity == "" {
		return nil, errors.New("blog identity not set")
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("pointblog", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})
	rdb.AddHook(redisotel.NewTracingHook())

	// without redis the identity cache is skipped and rate limited send routes answer 500
	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "point-blog")
	if err != nil {
		return nil, fmt.Errorf("honeycomb setup: %w", err)
	}

	pointClient := point.NewClient(cfg.PointNodeURL, cfg.PointNodeTimeout.Duration, metricsManager)
	contract := point.NewContractClient(pointClient)
	storage := point.NewStorageClient(pointClient, cfg.StorageCacheSizeMB)
	identity := point.NewIdentity(pointClient, rdb, cfg.IdentityCacheTTL.Duration)
	wallet := point.NewWallet(pointClient)

	appState := app_state.NewState(
		cfg.BlogIdentity,
		wallet,
		identity,
		blog.NewRepo(contract, storage),
		profile.NewRepo(contract, storage),
	)
	if err := appState.Init(ctx); err != nil {
		// resolved again on first use
		log.Warnf("app state init: %s", err)
	}

	return &Server{
		versionInfo: params.VersionInfo,
		config:      cfg,
		redisClient: rdb,

		contract: contract,
		storage:  storage,
		identity: identity,
		wallet:   wallet,
		appState: appState,

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("blog-router"))

	var sendLimiter middleware.RequestRateLimiter
	if s.redisClient != nil {
		sendLimiter = redis_rate.NewLimiter(s.redisClient)
	}
	guards := middleware.RouteGuards{
		OwnerOnly: middleware.OwnerOnly(s.appState),
		SendLimit: middleware.RateLimit(
			sendLimiter,
			"contract-send",
			s.config.ContractSendsPerMin,
			s.metricsManager,
		),
	}

	blogRepo := blog.NewRepo(s.contract, s.storage)
	likesRepo := like.NewRepo(s.contract)
	commentsRepo := comment.NewRepo(s.contract, s.identity)

	blog.NewHandler(s.appState, blogRepo, likesRepo, commentsRepo).SetupRoutes(r, guards)
	like.NewHandler(likesRepo, s.appState).SetupRoutes(r, guards)
	comment.NewHandler(commentsRepo, s.appState).SetupRoutes(r, guards)

	profileService := profile.NewService(
		profile.NewRepo(s.contract, s.storage),
		s.appState,
		s.metricsManager,
	)
	profile.NewHandler(profileService, s.appState).SetupRoutes(r, guards)

	install.NewHandler(install.NewRepo(s.contract)).SetupRoutes(r, guards)

	r.HandleFunc("/identities", s.handleIdentities).Methods("GET").Name("identities")
	r.HandleFunc("/version", s.handleVersion).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	allowedOrigins := append([]string{s.config.PointNodeURL}, s.config.AllowedOrigins...)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(allowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleIdentities(w http.ResponseWriter, r *http.Request) {
	ids, err := s.appState.Identities(r.Context())
	if err != nil {
		log.Errorf("get identities: %s", err)
		http.Error(w, "failed to resolve identities", point.HTTPStatus(err))
		return
	}
	pkg.WriteJSON(w, ids, http.StatusOK)
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, s.versionInfo)
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
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
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

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var shutdownErr error
	if s.httpServer != nil {
		shutdownErr = multierr.Append(shutdownErr, s.httpServer.Shutdown(ctx))
	}
	if s.metricsHttpServer != nil {
		shutdownErr = multierr.Append(shutdownErr, s.metricsHttpServer.Shutdown(ctx))
	}
	if s.redisClient != nil {
		shutdownErr = multierr.Append(shutdownErr, s.redisClient.Close())
	}

	for _, err := range multierr.Errors(shutdownErr) {
		log.Errorf(" >>> shutdown: %s", err)
	}
	log.Warnln("server shut down")
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
