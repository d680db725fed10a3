package main

import (
	"context"
	"crypto/rand"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/harlequingg/tasks-api/internal/auth"
	"github.com/harlequingg/tasks-api/internal/task"
)

const version = "1.0.0"

type config struct {
	Port int    `env:"PORT" envDefault:"3000"`
	Env  string `env:"ENV" envDefault:"development"`
	DB   struct {
		DSN          string        `env:"DATABASE_URL" envDefault:"tasks.db"`
		MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
		MaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"25"`
		MaxIdleTime  time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"15m"`
	}
	JWT struct {
		Secret string        `env:"JWT_SECRET"`
		TTL    time.Duration `env:"JWT_TTL" envDefault:"15m"`
	}
	// RequireAuth guards the task routes with a bearer token.
	RequireAuth bool `env:"REQUIRE_AUTH" envDefault:"false"`
	CORS        struct {
		TrustedOrigins []string `env:"CORS_TRUSTED_ORIGINS" envSeparator:" " envDefault:"*"`
	}
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// parseConfig reads the environment first; flags given in args override it.
func parseConfig(args []string, environ map[string]string) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("tasks-api", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "Server Port")
	fs.StringVar(&cfg.Env, "env", cfg.Env, "Environment [development|production]")

	fs.StringVar(&cfg.DB.DSN, "db-dsn", cfg.DB.DSN, "PostgreSQL DSN (postgres://...) or SQLite file path")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", cfg.DB.MaxOpenConns, "PostgreSQL max open connections")
	fs.IntVar(&cfg.DB.MaxIdleConns, "db-max-idle-conns", cfg.DB.MaxIdleConns, "PostgreSQL max idle connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", cfg.DB.MaxIdleTime, "PostgreSQL max connection idle time")

	fs.StringVar(&cfg.JWT.Secret, "jwt-secret", cfg.JWT.Secret, "JWT secret")
	fs.DurationVar(&cfg.JWT.TTL, "jwt-ttl", cfg.JWT.TTL, "JWT lifetime")
	fs.BoolVar(&cfg.RequireAuth, "require-auth", cfg.RequireAuth, "Require a bearer token on task routes")

	fs.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		cfg.CORS.TrustedOrigins = strings.Fields(val)
		return nil
	})
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

type application struct {
	config config
	store  store
	tasks  *task.Service
	auth   *auth.Service
}

func newApplication(cfg config, st store) *application {
	return &application{
		config: cfg,
		store:  st,
		tasks:  task.NewService(st),
		auth: auth.NewService(st,
			auth.NewPasswordHasher(auth.DefaultBcryptCost),
			auth.NewTokenManager([]byte(cfg.JWT.Secret), cfg.JWT.TTL),
		),
	}
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := parseConfig(os.Args[1:], env.ToMap(os.Environ()))
	if err != nil {
		log.Fatal(err)
	}

	if cfg.JWT.Secret == "" {
		secret := make([]byte, 32)
		_, err = rand.Read(secret)
		if err != nil {
			log.Fatal(err)
		}
		cfg.JWT.Secret = string(secret)
		log.Println("JWT_SECRET is not set, using a random secret; tokens will not survive a restart")
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("established a connection with %s database", storeKind(cfg.DB.DSN))

	app := newApplication(cfg, st)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Starting %s server on port %d (task routes require auth: %t)", cfg.Env, cfg.Port, cfg.RequireAuth)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Println("shutting down server")
				err := srv.Shutdown(ctx)
				if cerr := st.Close(); cerr != nil && err == nil {
					err = cerr
				}
				return err
			},
		},
	)

	exitCode := <-wait
	log.Printf("server exited with code %d", exitCode)
	os.Exit(exitCode)
}
