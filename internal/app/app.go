package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Stratton1/futurepreneurs-sub002/internal/cardnetwork"
	"github.com/Stratton1/futurepreneurs-sub002/internal/config"
	"github.com/Stratton1/futurepreneurs-sub002/internal/database"
	"github.com/Stratton1/futurepreneurs-sub002/internal/handlers"
	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/Stratton1/futurepreneurs-sub002/internal/notification"
	"github.com/Stratton1/futurepreneurs-sub002/internal/repository"
	"github.com/Stratton1/futurepreneurs-sub002/internal/secrets"
	"github.com/Stratton1/futurepreneurs-sub002/internal/service"
	"go.uber.org/zap"
)

type App struct {
	server *http.Server
	db     *sql.DB
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize("debug"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	cipher, err := secrets.NewCipher(cfg.DOBKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dob cipher: %w", err)
	}

	accountRepo := repository.NewAccountRepository(db)
	balanceRepo := repository.NewBalanceRepository(db)
	cardRepo := repository.NewCardRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	approvalRepo := repository.NewApprovalRepository(db)
	vendorRepo := repository.NewVendorRepository(db)

	provider := cardnetwork.NewClient(cfg.CardProviderAddress)
	notifier := notification.NewClient(cfg.NotifierAddress)

	limits := service.VelocityLimits{
		PerTx:  cfg.PerTxLimit,
		Daily:  cfg.DailyLimit,
		Weekly: cfg.WeeklyLimit,
	}

	ledgerService := service.NewLedgerService(balanceRepo)
	velocityService := service.NewVelocityService(requestRepo, cardRepo, limits)
	vendorPolicy := service.NewVendorPolicyService(vendorRepo)
	cardService := service.NewCardService(cardRepo, provider, cfg.CardWindowDuration, limits)
	accountService := service.NewAccountService(accountRepo, cipher)
	spendingService := service.NewSpendingService(
		requestRepo, accountRepo, balanceRepo, cardRepo, approvalRepo,
		velocityService, vendorPolicy, notifier, cfg.CoolingOffDuration)
	authorizer := service.NewAuthorizerService(
		requestRepo, cardRepo, balanceRepo, vendorPolicy, cardService, notifier)
	sweeps := service.NewSweepService(requestRepo, ledgerService, cardService, notifier)

	handler := handlers.NewHandler(spendingService, ledgerService, accountService, cardService, authorizer, sweeps)
	r := handlers.NewRouter(handler, handlers.RouterSecrets{
		JWTKey:    cfg.SecretKey,
		Scheduler: cfg.SchedulerSecret,
		Webhook:   cfg.WebhookSecret,
	})

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	return &App{
		server: server,
		db:     db,
	}, nil
}

func (a *App) Run() error {
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
