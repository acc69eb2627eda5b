package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"lg/fitcalc-api/internal/engine"
	"lg/fitcalc-api/internal/profile"
	"lg/fitcalc-api/internal/storage"
)

// newRouter builds the gin engine wrapped in CORS so the browser front end
// can call it from another origin.
func newRouter(h *Handler, origins []string) http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(router)
}

func serve(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, c.String("db-url"))
	if err != nil {
		return err
	}
	defer backend.Close()

	profiles := profile.NewService(backend)
	if p, ok := profiles.Load(ctx); ok {
		log.Info().Str("name", p.Name).Msg("profile loaded")
	} else {
		log.Info().Msg("no profile saved yet")
	}

	h := &Handler{
		engine:       engine.New(profiles),
		passwordHash: []byte(c.String("password-hash")),
		token:        uuid.NewString(),
	}
	if !h.authEnabled() {
		log.Warn().Msg("no password hash configured, API is open")
	}

	srv := &http.Server{
		Addr:              c.String("addr"),
		Handler:           newRouter(h, c.StringSlice("cors-origin")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		log.Info().Str("address", srv.Addr).Msg("serving")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	grp.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return grp.Wait()
}

func main() {
	// .env is optional; real environment variables still take effect.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("load .env")
	}

	app := &cli.App{
		Name:     "fitcalc",
		HelpName: "fitcalc",
		Usage:    "Fitness and nutrition metrics API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db-url",
				Value:   "fitcalc.db",
				Usage:   "SQLite file path or postgres:// URL",
				EnvVars: []string{"DB_URL"},
			},
			&cli.StringFlag{
				Name:    "addr",
				Value:   "localhost:3000",
				Usage:   "listen address",
				EnvVars: []string{"ADDR"},
			},
			&cli.StringFlag{
				Name:    "password-hash",
				Usage:   "bcrypt hash of the API password (see cmd/create-profile -hash-password)",
				EnvVars: []string{"FITCALC_PASSWORD_HASH"},
			},
			&cli.StringSliceFlag{
				Name:    "cors-origin",
				Value:   cli.NewStringSlice("*"),
				Usage:   "allowed CORS origin",
				EnvVars: []string{"CORS_ORIGINS"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "zerolog level",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			log.Error().Err(err).Msg(c.App.Name)
		},
		Before: func(c *cli.Context) error {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(level)
			zerolog.DurationFieldUnit = time.Millisecond
			zerolog.DurationFieldInteger = false
			log.Logger = log.Output(
				zerolog.ConsoleWriter{
					Out:        c.App.ErrWriter,
					NoColor:    false,
					TimeFormat: time.RFC3339,
				},
			)
			gin.SetMode(gin.ReleaseMode)
			return nil
		},
		Action: serve,
	}
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
