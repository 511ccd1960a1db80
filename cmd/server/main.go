package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/lumenstudio/backend/internal/config"
	"github.com/lumenstudio/backend/internal/dashboard"
	"github.com/lumenstudio/backend/internal/events"
	"github.com/lumenstudio/backend/internal/handler"
	"github.com/lumenstudio/backend/internal/logging"
	"github.com/lumenstudio/backend/internal/repository"
	"github.com/lumenstudio/backend/internal/service"
	"github.com/lumenstudio/backend/internal/telemetry"
	"github.com/lumenstudio/backend/pkg/auth"
)

const serviceName = "lumen-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(logging.Options{Level: cfg.LogLevel, Service: serviceName})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:      cfg.OTelEnabled,
		ServiceName:  serviceName,
		OTLPEndpoint: cfg.OTelEndpoint,
		SampleRatio:  cfg.OTelSamplingRate,
	})
	if err != nil {
		logging.Fatal("failed to set up tracing", "error", err)
	}

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL, repository.DefaultPoolConfig)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	h := handler.New(pool, cfg.FrontendURL)

	// Kafka は KAFKA_BROKERS 未設定なら無効化
	var publisher events.Publisher = events.NopPublisher{}
	if brokers := events.SplitBrokers(cfg.KafkaBrokers); len(brokers) > 0 {
		kp := events.NewKafkaPublisher(brokers, cfg.KafkaTopic)
		defer func() {
			if err := kp.Close(); err != nil {
				slog.Warn("kafka close failed", "error", err)
			}
		}()
		publisher = kp
		h.AddReadinessCheck("kafka", kp.Ping)
		slog.Info("publishing events to kafka", "brokers", brokers, "topic", cfg.KafkaTopic)
	}

	// Redis があればインスタンス間で共有するレート制限を使う
	var limiter handler.Limiter = handler.NewRateLimiter(cfg.RateLimitPerMinute)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logging.Fatal("invalid REDIS_URL", "error", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		limiter = handler.NewRedisRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute, "lumen:rl")
		h.AddReadinessCheck("redis", func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}
	rateLimit := handler.RateLimit(limiter, 1)

	contactService := service.NewContactService(repository.NewPgContactRepository(pool), publisher)
	appointmentService := service.NewAppointmentService(repository.NewPgAppointmentRepository(pool), publisher)
	caseStudyService := service.NewCaseStudyService(repository.NewPgCaseStudyRepository(pool))
	sessionKey := cfg.SessionKey()
	adminAuthService := service.NewAdminAuthService(service.AdminCredentials{
		Email:        cfg.AdminEmail,
		PasswordHash: cfg.AdminPasswordHash,
		Secret:       sessionKey,
		TTL:          cfg.SessionTTL,
	})

	renderer, err := dashboard.NewRenderer()
	if err != nil {
		logging.Fatal("failed to parse templates", "error", err)
	}

	contactHandler := handler.NewContactHandler(contactService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	caseStudyHandler := handler.NewCaseStudyHandler(caseStudyService)
	pageHandler := handler.NewPageHandler(renderer, appointmentService, contactService, caseStudyService)
	authHandler := handler.NewAuthHandler(adminAuthService, pageHandler, handler.AuthConfig{
		SessionTTL:   cfg.SessionTTL,
		SecureCookie: cfg.CookieSecure,
	})

	adminEmails := auth.ParseAdminEmails(cfg.AdminEmail)
	if !cfg.AuthRequired {
		adminEmails = append(adminEmails, auth.DevUserID)
		slog.Warn("AUTH_REQUIRED=false: admin routes accept every request")
	}
	markAdmin := auth.AdminMiddleware(adminEmails)

	// 認証必要エンドポイント
	wrapAdmin := func(next http.Handler) http.Handler {
		if cfg.AuthRequired {
			return auth.RequireAuth(sessionKey)(markAdmin(next))
		}
		return auth.DevAuth(markAdmin(next))
	}
	wrapAdminPage := func(next http.Handler) http.Handler {
		next = markAdmin(handler.AdminPage(next))
		if cfg.AuthRequired {
			return auth.RequireAuthRedirect(sessionKey, handler.LoginPath)(next)
		}
		return auth.DevAuth(next)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)

	// 公開 API
	mux.Handle("POST /api/contact", rateLimit(http.HandlerFunc(contactHandler.Submit)))
	mux.Handle("POST /api/appointments", rateLimit(http.HandlerFunc(appointmentHandler.Request)))
	mux.HandleFunc("GET /api/case-studies", caseStudyHandler.List)
	mux.Handle("POST /api/admin/login", rateLimit(http.HandlerFunc(authHandler.Login)))

	// Admin API (handler enforces IsAdminFromContext)
	mux.Handle("GET /api/admin/contacts", wrapAdmin(http.HandlerFunc(contactHandler.AdminList)))
	mux.Handle("GET /api/admin/appointments", wrapAdmin(http.HandlerFunc(appointmentHandler.AdminList)))
	mux.Handle("PATCH /api/admin/appointments/{id}/status", wrapAdmin(http.HandlerFunc(appointmentHandler.UpdateStatus)))

	// HTML pages; every form post carries a CSRF token
	pages := http.NewServeMux()
	pages.HandleFunc("GET /case-studies", pageHandler.CaseStudies)
	pages.HandleFunc("GET /admin/login", pageHandler.Login)
	pages.Handle("POST /admin/login", rateLimit(http.HandlerFunc(authHandler.Login)))
	pages.HandleFunc("POST /admin/logout", authHandler.Logout)
	pages.Handle("GET /admin/appointments", wrapAdminPage(http.HandlerFunc(pageHandler.Appointments)))
	pages.Handle("POST /admin/appointments/{id}/status", wrapAdminPage(http.HandlerFunc(pageHandler.UpdateAppointmentStatus)))
	pages.Handle("GET /admin/contacts", wrapAdminPage(http.HandlerFunc(pageHandler.Contacts)))

	protect := csrf.Protect(cfg.CSRFAuthKey(),
		csrf.Secure(cfg.CookieSecure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
	)
	mux.Handle("/", protect(pages))

	var root http.Handler = h.CORS(mux)
	root = handler.SecurityHeaders(root)
	root = handler.RequestLogger(root)
	root = otelhttp.NewHandler(root, serviceName)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           root,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Warn("tracer shutdown failed", "error", err)
	}
}
