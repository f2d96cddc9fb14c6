package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	"github.com/MrJamesThe3rd/obrafin/internal/http/costcenter"
	"github.com/MrJamesThe3rd/obrafin/internal/http/httpx"
	"github.com/MrJamesThe3rd/obrafin/internal/http/importcsv"
	"github.com/MrJamesThe3rd/obrafin/internal/http/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/http/masterdata"
	"github.com/MrJamesThe3rd/obrafin/internal/http/product"
	"github.com/MrJamesThe3rd/obrafin/internal/http/report"
	"github.com/MrJamesThe3rd/obrafin/internal/observability"
)

// Options configures the middleware chain.
type Options struct {
	AllowedOrigins []string
	RateLimit      int
	RateWindow     time.Duration
	Timeout        time.Duration
	Production     bool
	Metrics        *observability.Metrics
}

func New(
	opts Options,
	costCentersV1 *costcenter.Handler,
	productsV1 *product.Handler,
	ledgerV1 *ledger.Handler,
	masterDataV1 *masterdata.Handler,
	reportsV1 *report.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(secureHeaders(opts.Production))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))
	router.Use(opts.Metrics.Middleware)

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "no such route")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httpx.Problem(w, http.StatusMethodNotAllowed, "Method Not Allowed", "")
	})

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Handle("/metrics", opts.Metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		if opts.RateLimit > 0 {
			r.Use(httprate.Limit(opts.RateLimit, opts.RateWindow, httprate.WithKeyFuncs(httprate.KeyByIP)))
		}

		r.Route("/cost-centers", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			costCentersV1.Routes(r)
		})

		r.Route("/products", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			productsV1.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			ledgerV1.ExpenseRoutes(r)
		})

		r.Route("/revenues", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			ledgerV1.RevenueRoutes(r)
		})

		r.Route("/settlements", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			ledgerV1.SettlementRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			masterDataV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)
		r.Route("/import", importV1.Routes)
	})

	return router
}

func secureHeaders(production bool) func(http.Handler) http.Handler {
	sm := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'none'",
		SSLRedirect:           production,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := sm.Process(w, r); err != nil {
				slog.Warn("secure headers blocked request", "error", err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
