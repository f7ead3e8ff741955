package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/csrf"
	gorillamux "github.com/gorilla/mux"
	"github.com/passgauge/passgauge/config"
	"github.com/passgauge/passgauge/pkg/entropy"
	"github.com/passgauge/passgauge/pkg/hibp"
	"github.com/passgauge/passgauge/pkg/service/check"
	"github.com/passgauge/passgauge/pkg/service/health"
	"github.com/passgauge/passgauge/pkg/service/web"
	"github.com/passgauge/passgauge/pkg/storage"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()

	cfgPath := flag.String("config", "", "path to config file")
	logLevel := flag.String("log", "", "log level")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		logger.WithError(err).Fatal("error loading config")
	}

	levelToUse := cfg.Log.Level
	if *logLevel != "" {
		levelToUse = *logLevel
	}

	logrusLevel, err := logrus.ParseLevel(levelToUse)
	if err != nil {
		logger.WithError(err).Fatal("error parsing log level")
	}

	logger.WithField("level", logrusLevel.String()).Info("set log level")
	logger.SetLevel(logrusLevel)

	// --

	devMode := cfg.HTTP.Interface == "127.0.0.1" || cfg.HTTP.Interface == "localhost"

	// ---

	// Create storage
	storageDriver, err := storage.GetDriver(logger, cfg.Storage.Type, cfg.Storage.Properties)
	if err != nil {
		logger.WithError(err).Fatal("error loading storage driver")
	}
	logger.WithField("driver", cfg.Storage.Type).Info("registered storage driver")

	// Breach checker against the range API, with an in-process result cache
	hibpService := hibp.NewService(
		logger,
		cfg.HIBP.BaseURL,
		time.Duration(cfg.HIBP.TimeoutSeconds)*time.Second,
		time.Duration(cfg.HIBP.CacheTTLMinutes)*time.Minute,
	)
	logger.WithField("timeout_seconds", cfg.HIBP.TimeoutSeconds).Info("initialized breach checker")

	oracle := entropy.NewOracle()

	// CSRF protection for the browser-facing surface
	if !devMode && cfg.HTTP.CSRFSecret == "" {
		logger.WithError(errors.New("http.csrf_secret is required outside dev mode")).
			Fatal("error setting up CSRF protection")
	}

	logger.WithField("origin", cfg.HTTP.Origin).Info("setting up CSRF protection")
	sameSiteMode := csrf.SameSiteStrictMode
	if devMode {
		sameSiteMode = csrf.SameSiteLaxMode
	}

	csrfOptions := []csrf.Option{
		csrf.Secure(!devMode),
		csrf.CookieName("csrf"),
		csrf.RequestHeader("X-CSRF-Token"),
		csrf.Path("/"),
		csrf.FieldName("csrf"),
		csrf.SameSite(sameSiteMode),
		csrf.MaxAge(3600),
		csrf.TrustedOrigins([]string{cfg.HTTP.Origin}),
	}
	csrfMiddleware := csrf.Protect([]byte(cfg.HTTP.CSRFSecret), csrfOptions...)

	// Set up HTTP server
	mux := gorillamux.NewRouter()

	protected := mux.PathPrefix("/").Subrouter()
	if !devMode {
		protected.Use(csrfMiddleware)
	}

	protected.Path("/").HandlerFunc(web.GetCheckerPage(logger))
	protected.Path("/dashboard/").HandlerFunc(web.GetDashboard(logger, storageDriver))

	// API endpoints used by the checker page
	protected.PathPrefix("/api/").Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/health":
			health.HandleHealthCheck(logger).ServeHTTP(w, r)
		case "/api/password/strength":
			check.HandleStrength(logger, oracle).ServeHTTP(w, r)
		case "/api/password/breach":
			check.HandleBreach(logger, hibpService, storageDriver).ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	}))

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Interface, cfg.HTTP.Port)
	logger.WithField("listener", addr).WithField("dev_mode", devMode).
		Info("started server")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
