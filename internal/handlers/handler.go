package handlers

import (
	"net/http"

	"github.com/Stratton1/futurepreneurs-sub002/internal/middleware"
	"github.com/Stratton1/futurepreneurs-sub002/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

type Handler struct {
	spendingService service.SpendingService
	ledgerService   service.LedgerService
	accountService  service.AccountService
	cardService     service.CardService
	authorizer      service.AuthorizerService
	sweeps          service.SweepService
}

func NewHandler(
	spendingService service.SpendingService,
	ledgerService service.LedgerService,
	accountService service.AccountService,
	cardService service.CardService,
	authorizer service.AuthorizerService,
	sweeps service.SweepService,
) *Handler {
	return &Handler{
		spendingService: spendingService,
		ledgerService:   ledgerService,
		accountService:  accountService,
		cardService:     cardService,
		authorizer:      authorizer,
		sweeps:          sweeps,
	}
}

// RouterSecrets carries the three auth secrets used by the route groups.
type RouterSecrets struct {
	JWTKey    string
	Scheduler string
	Webhook   string
}

func NewRouter(handler *Handler, secrets RouterSecrets) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging())
	r.Use(middleware.WithGzip())

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	limiter := middleware.NewUserRateLimiter(rate.Limit(10), 20)

	r.Route("/api/wallet", func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(secrets.JWTKey))
		r.Use(middleware.RateLimitMiddleware(limiter))

		r.Post("/requests", handler.CreateSpendingRequest)
		r.Post("/requests/{id}/decision", handler.Decide)
		r.Post("/requests/{id}/reverse", handler.Reverse)
		r.Post("/requests/{id}/receipt", handler.UploadReceipt)
		r.Get("/requests/{id}/approvals", handler.ListApprovals)
		r.Get("/accounts/{id}/overview", handler.GetWalletOverview)
		r.Post("/accounts/{id}/acknowledge", handler.AcknowledgeFirstDrawdown)
	})

	r.Route("/api/internal", func(r chi.Router) {
		r.Use(middleware.SharedSecret(secrets.Scheduler))

		r.Post("/sweeps/funding", handler.RunFundingSweep)
		r.Post("/sweeps/receipts", handler.RunReceiptSweep)
		r.Post("/accounts", handler.CreateAccount)
		r.Post("/funds", handler.AddFunds)
	})

	r.Route("/api/webhooks", func(r chi.Router) {
		r.Use(middleware.SharedSecret(secrets.Webhook))

		r.Post("/card/authorization", handler.CardAuthorization)
		r.Post("/card/events", handler.CardEvent)
		r.Post("/processor", handler.ProcessorEvent)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
