package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/qawafel/crm-backend/api/controllers"
	"github.com/qawafel/crm-backend/api/middleware"
	"github.com/qawafel/crm-backend/api/responses"
	"github.com/qawafel/crm-backend/internal/bootstrap"
	"github.com/qawafel/crm-backend/internal/gateway"
	"github.com/qawafel/crm-backend/internal/intake"
	"github.com/qawafel/crm-backend/internal/messaging"
	"github.com/qawafel/crm-backend/pkg/config"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
)

// Deps is everything the router hands to its controllers. RateLimiter and
// Redis may be nil when redis is not configured.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pinger
	Redis       controllers.Pinger
	RateLimiter middleware.RateLimiterStore
	Gatherer    prometheus.Gatherer

	Gateway   gateway.Service
	Bootstrap bootstrap.Service
	Intake    intake.Service
	Messaging messaging.Service
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w,
			pkgerrors.New(pkgerrors.CodeMethodNotAllowed, req.Method+" not allowed"))
	})

	checks := []controllers.ReadinessCheck{{Name: "database", Pinger: d.DB}}
	if d.Redis != nil {
		checks = append(checks, controllers.ReadinessCheck{Name: "redis", Pinger: d.Redis})
	}
	r.Get("/health/live", controllers.HealthLive(cfg))
	r.Get("/health/ready", controllers.HealthReady(cfg, logg, checks...))

	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(api chi.Router) {
		// Public intake endpoints; the form token is the only credential.
		api.Group(func(public chi.Router) {
			policy := middleware.NewIntakeRateLimitPolicy(
				cfg.IntakeRateLimit.Window,
				cfg.IntakeRateLimit.IPLimit,
				cfg.IntakeRateLimit.TokenLimit,
			)
			public.Use(middleware.IntakeRateLimit(policy, d.RateLimiter, logg))
			public.Get("/get-lead-by-token", controllers.GetLeadByToken(d.Intake, logg))
			public.Post("/update-lead-from-form", controllers.UpdateLeadFromForm(d.Intake, logg))
		})

		api.Group(func(private chi.Router) {
			private.Use(middleware.OperatorAuth(cfg.JWT, logg))
			private.Get("/init", controllers.Init(d.Bootstrap, logg))
			private.Post("/mutate", controllers.Mutate(d.Gateway, logg))
			private.Get("/dashboard", controllers.Dashboard(d.Bootstrap, logg))
			private.Post("/generate-message", controllers.GenerateMessage(d.Messaging, logg))
		})
	})

	return r
}
