package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/asconalumni/alumni-server/internal/api/grpc/health"
	grpcRouter "github.com/asconalumni/alumni-server/internal/api/grpc/router"
	grpcServer "github.com/asconalumni/alumni-server/internal/api/grpc/server"
	httpctx "github.com/asconalumni/alumni-server/internal/api/http/context"
	httpRouter "github.com/asconalumni/alumni-server/internal/api/http/router"
	httpServer "github.com/asconalumni/alumni-server/internal/api/http/server"
	"github.com/asconalumni/alumni-server/internal/config"
	"github.com/asconalumni/alumni-server/internal/hasher"
	"github.com/asconalumni/alumni-server/internal/identity"
	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/mail"
	"github.com/asconalumni/alumni-server/internal/metrics"
	"github.com/asconalumni/alumni-server/internal/model"
	"github.com/asconalumni/alumni-server/internal/repository/postgres"
	"github.com/asconalumni/alumni-server/internal/server"
	"github.com/asconalumni/alumni-server/internal/service"
	storage "github.com/asconalumni/alumni-server/internal/storage/minio"
	"github.com/asconalumni/alumni-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	logAppVersion()

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	accountRepo := postgres.NewAccountRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	programmeRepo := postgres.NewProgrammeRepository(db)

	passwordHasher := hasher.NewBcrypt(cfg.Hasher.Cost)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	storageClient, err := storage.Dial(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	mailer, closeMailer := newMailer(cfg.SMTP, logger)
	defer closeMailer()

	var identityVerifier model.IdentityVerifier
	if cfg.OIDC.ClientID != "" {
		v, err := identity.NewOIDCVerifier(ctx, cfg.OIDC)
		if err != nil {
			logger.Fatal("failed to initialize federated login", "error", err)
		}
		identityVerifier = v
	} else {
		logger.Info("federated login disabled, OIDC_CLIENT_ID is empty")
	}

	authService := service.NewAuth(accountRepo, passwordHasher, tokenManager, identityVerifier, cfg.Onboarding.AutoVerify, logger)
	resetService := service.NewReset(accountRepo, passwordHasher, mailer, cfg.Reset.TTL, cfg.Reset.LinkURL, logger)
	adminService := service.NewAdmin(accountRepo, authService, logger)
	profileService := service.NewProfile(accountRepo, storageClient, logger)
	directoryService := service.NewDirectory(accountRepo, logger)
	contentService := service.NewContent(eventRepo, programmeRepo, logger)

	router := httpRouter.New(
		httpRouter.Services{
			Auth:      authService,
			Reset:     resetService,
			Profile:   profileService,
			Directory: directoryService,
			Admin:     adminService,
			Content:   contentService,
			Tokens:    authService,
		},
		httpctx.NewManager(),
		appMetrics,
		httpRouter.Options{
			AllowedOrigins: cfg.HTTP.AllowedOrigins,
			MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
			MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
		},
		logger,
	)
	apiServer := httpServer.NewHTTPServer(router.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)

	checker := health.NewChecker(db, appMetrics, cfg.GRPC.CheckInterval, logger)
	healthServer := grpcServer.NewGRPCServer(grpcRouter.New(checker, logger).Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	apiLayer := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	healthLayer := server.NewPlainListener()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return checker.Run(gctx) })
	g.Go(func() error { return serve(logger, apiServer, apiLayer) })
	g.Go(func() error { return serve(logger, healthServer, healthLayer) })
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(
			stopServer(shutdownCtx, logger, apiServer),
			stopServer(shutdownCtx, logger, healthServer),
		)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
	}
	logger.Info("shutdown complete")
}

func serve(logger *logger.Logger, s model.Server, sl model.SecurityLayer) error {
	logger.Info("Starting server on", "address", s.Address())
	if err := s.Start(sl); err != nil {
		return fmt.Errorf("server %s: %w", s.Address(), err)
	}
	return nil
}

func stopServer(ctx context.Context, logger *logger.Logger, s model.Server) error {
	if err := s.Stop(ctx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", s.Address())
		return err
	}
	return nil
}

// newMailer delivers over SMTP when a relay is configured and only logs
// messages otherwise.
func newMailer(cfg config.SMTP, logger *logger.Logger) (model.MailSender, func()) {
	if cfg.Host == "" {
		logger.Warn("SMTP_HOST is empty, outgoing mail will only be logged")
		return mail.NewLogSender(logger), func() {}
	}

	sender, err := mail.NewSMTPSender(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize mail sender", "error", err)
	}
	return sender, sender.Close
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
