package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charan-271/ISS-Tracker/internal/handlers"
	"github.com/charan-271/ISS-Tracker/internal/indicator"
	"github.com/charan-271/ISS-Tracker/internal/logger"
	"github.com/charan-271/ISS-Tracker/internal/models"
	"github.com/charan-271/ISS-Tracker/internal/netlink"
	"github.com/charan-271/ISS-Tracker/internal/observability"
	"github.com/charan-271/ISS-Tracker/internal/opennotify"
	"github.com/charan-271/ISS-Tracker/internal/server"
	"github.com/charan-271/ISS-Tracker/internal/service"
	"github.com/charan-271/ISS-Tracker/internal/store"

	"github.com/spf13/viper"
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// position source
	source := opennotify.NewClient(
		viper.GetString("iss.api_url"),
		msDuration("iss.request_timeout_ms"),
	)

	// connectivity link toward the position endpoint
	probe, err := netlink.DialProber(source.URL(), msDuration("network.probe_timeout_ms"))
	if err != nil {
		log.Fatalw("failed to build connectivity probe", "err", err)
	}
	link := netlink.NewProbeLink(
		probe,
		msDuration("network.reconnect_window_ms"),
		msDuration("network.probe_step_ms"),
	)

	// indicator pins and driver
	renderer := indicator.NewDriver(
		indicator.NewStatePin(),
		indicator.NewStatePin(),
		indicator.NewStatePin(),
		msDuration("blink.fast_ms"),
		msDuration("blink.medium_ms"),
	)

	// in-memory state and diagnostics feed
	stateStore := store.NewStateStore()
	events := store.NewEventRing(viper.GetInt("events.capacity"))

	// metrics
	metrics, err := observability.NewTrackerCollector(nil)
	if err != nil {
		log.Fatalw("failed to register metrics", "err", err)
	}

	// wire dependencies
	services := service.NewService(service.Deps{
		Source:   source,
		Link:     link,
		Renderer: renderer,
		State:    stateStore,
		Events:   events,
		Log:      log,
		Metrics:  metrics,

		Observer: models.Coordinate{
			Latitude:  viper.GetFloat64("observer.latitude"),
			Longitude: viper.GetFloat64("observer.longitude"),
		},
		NearKm:     viper.GetFloat64("thresholds.near_km"),
		ApproachKm: viper.GetFloat64("thresholds.approach_km"),

		CheckInterval: msDuration("network.check_interval_ms"),
		PollInterval:  msDuration("iss.poll_interval_ms"),
		IdleDelay:     msDuration("loop.idle_ms"),
	})
	apiHandler := handlers.NewHandler(services, metrics, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start the tracker run loop
	go services.Tracker.Run(ctx)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// msDuration reads a millisecond config value as a time.Duration. Zero or
// missing values come back as 0, letting constructors apply their defaults.
func msDuration(key string) time.Duration {
	return time.Duration(viper.GetInt64(key)) * time.Millisecond
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop the run loop
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
