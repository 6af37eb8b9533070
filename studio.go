// Package studio wires the marketing site: content client, cache,
// preview sessions and the full route table.
package studio

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/darko-kalany/studio/internal/assets"
	"github.com/darko-kalany/studio/internal/cache"
	"github.com/darko-kalany/studio/internal/config"
	"github.com/darko-kalany/studio/internal/preview"
	"github.com/darko-kalany/studio/internal/sanity"
	"github.com/darko-kalany/studio/internal/site"
)

// App is the assembled application.
type App struct {
	cfg  config.Config
	log  *slog.Logger
	site *site.Site
}

// New builds the app from config. The cache is in-memory unless a
// Redis address is configured.
func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if cfg.Dev {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var kv cache.KV = cache.NewMemory()
	if cfg.RedisAddr != "" {
		kv = cache.NewRedis(cfg.RedisAddr)
		log.Info("using redis response cache", "addr", cfg.RedisAddr)
	}

	client := sanity.NewClient(sanity.Config{
		ProjectID:  cfg.SanityProjectID,
		Dataset:    cfg.SanityDataset,
		APIVersion: cfg.SanityAPIVersion,
		Token:      cfg.SanityToken,
		BaseURL:    cfg.SanityBaseURL,
		CacheTTL:   cfg.CacheTTL,
	}, kv, log)

	return &App{
		cfg: cfg,
		log: log,
		site: &site.Site{
			Content:       client,
			SessionSecret: []byte(cfg.SessionSecret),
			PreviewSecret: cfg.PreviewSecret,
			SecureCookies: cfg.SecureCookies,
			Dev:           cfg.Dev,
			Log:           log,
		},
	}, nil
}

// Ping runs one cheap query against the CMS to confirm the dataset is
// reachable with the configured credentials.
func (a *App) Ping(ctx context.Context) error {
	_, err := a.site.Content.Layout(ctx, preview.Published())
	return err
}

// Handler builds the route table. Specific routes first, the generic
// page catch-all last.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if a.cfg.Dev {
		r.Use(middleware.Logger)
	}

	r.Get("/", a.site.Home)
	r.Get("/projects", a.site.Projects)
	r.Get("/projects/{slug}", a.site.ProjectDetail)
	r.Get("/blog", a.site.Blog)
	r.Get("/blog/{slug}", a.site.PostDetail)
	r.Post("/contact", a.site.ContactSubmit)

	api := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	})
	r.Route("/api", func(r chi.Router) {
		r.Use(api.Handler)
		r.Get("/projects", a.site.APIProjects)
		r.Get("/posts", a.site.APIPosts)
		r.Get("/preview-mode/enable", a.site.PreviewEnable)
		r.Get("/preview-mode/disable", a.site.PreviewDisable)
	})

	r.Get("/studio", a.site.Studio)
	r.Get("/studio/*", a.site.Studio)

	r.Handle("/static/*", assets.Handler())

	r.Get("/*", a.site.Page)

	return r
}

// Server returns a configured http.Server. The command layer owns the
// listen/shutdown lifecycle.
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Log exposes the app logger for the command layer.
func (a *App) Log() *slog.Logger {
	return a.log
}
