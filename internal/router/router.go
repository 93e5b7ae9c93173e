package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "people-directory/docs"
	"people-directory/internal/domain/accounts"
	"people-directory/internal/domain/people"
	"people-directory/internal/middleware"
	"people-directory/internal/platform/logger"
	"people-directory/internal/platform/metrics"
	"people-directory/internal/ports/auth"
)

type Options struct {
	People   *people.Service
	Accounts *accounts.Service

	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	Logger  logger.Logger
	Metrics *metrics.Metrics // nil => sin /metrics

	// vacío => cualquier origen
	CORSAllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))
	r.Use(corsHandler(opts.CORSAllowedOrigins))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if opts.People != nil {
		people.RegisterRoutes(r, opts.People)
	}
	if opts.Accounts != nil {
		accounts.RegisterRoutes(r, opts.Accounts)
	}

	return r
}

func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "Route not found", http.StatusNotFound)
}
