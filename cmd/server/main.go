package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/middleware"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/router"
	"github.com/iliyamo/fyyur/web"
)

func main() {
	_ = godotenv.Load() // a missing .env is fine; the environment wins
	cfg := config.Load()

	db, err := database.Open(cfg.DB)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(context.Background(), db); err != nil {
			log.Fatal(err)
		}
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal(err)
	}

	h := handler.New(repository.NewVenueRepo(db), repository.NewArtistRepo(db), repository.NewShowRepo(db))
	if p := queue.NewPublisher(cfg.RabbitMQURL, cfg.ListingQueue); p != nil {
		h.Events = p
	}

	rdb := config.NewRedisClient()
	cacheCfg := config.LoadCacheConfig()
	if rdb != nil && cacheCfg.Enabled {
		h.Invalidate = func(ctx context.Context) error {
			return middleware.Invalidate(ctx, rdb, cacheCfg.Prefix)
		}
	}

	e := router.New(h, router.Options{
		Renderer:  renderer,
		Sessions:  handler.NewSessionStore(cfg.SessionSecret),
		Redis:     rdb,
		Cache:     cacheCfg,
		RateLimit: config.LoadRateLimitConfig(),
	})
	e.Debug = cfg.Debug
	e.Logger.SetLevel(parseLevel(cfg.LogLevel))
	if cfg.SessionSecret == "" {
		e.Logger.Warn("SESSION_SECRET is not set; flash cookies are signed with a random key")
	}

	var out io.Writer = os.Stdout
	if cfg.ErrorLogPath != "" {
		f, err := os.OpenFile(cfg.ErrorLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("error log: %v", err)
		}
		defer f.Close()
		out = io.MultiWriter(os.Stdout, f)
	}
	e.Logger.SetOutput(out)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	go func() {
		e.Logger.Infof("listening on %s (env=%s, db=%s)", srv.Addr, cfg.Env, cfg.DB.Driver)
		if err := e.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Error(err)
	}
}

func parseLevel(s string) log.Lvl {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return log.DEBUG
	case "WARN", "WARNING":
		return log.WARN
	case "ERROR":
		return log.ERROR
	case "OFF":
		return log.OFF
	}
	return log.INFO
}
