package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pets-api/docs"
	mem "pets-api/internal/adapters/storage/memory"
	"pets-api/internal/domain/pets"
	"pets-api/internal/domain/users"
	"pets-api/internal/middleware"
	"pets-api/internal/platform/logger"
)

// Store es lo que el router necesita de un backend (memoria o Postgres).
type Store interface {
	Users() users.Repository
	Pets() pets.Repository
}

type Options struct {
	// Opcional: si viene nil se usa un store en memoria vacío.
	Store Store

	Logger    logger.Logger // default: descarta
	RateLimit middleware.RateLimitOptions
}

func NewRouter(opts Options) http.Handler {
	if opts.Store == nil {
		opts.Store = mem.NewStore(mem.Options{})
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.RateLimit(opts.RateLimit))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	usersSvc := users.NewService(opts.Store.Users())
	petsSvc := pets.NewService(opts.Store.Pets())

	r.Route("/api", func(api chi.Router) {
		users.RegisterRoutes(api, usersSvc)
		pets.RegisterRoutes(api, petsSvc)
	})

	return r
}
