package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/wellness-hub/wellness/internal/consumer/journal"
	"github.com/wellness-hub/wellness/internal/health"
	"github.com/wellness-hub/wellness/internal/idgen"
	"github.com/wellness-hub/wellness/internal/metrics"
	"github.com/wellness-hub/wellness/internal/seed"
	"github.com/wellness-hub/wellness/internal/server"
	"github.com/wellness-hub/wellness/internal/service"
	"github.com/wellness-hub/wellness/internal/service/impl"
	"github.com/wellness-hub/wellness/internal/storage"
	"github.com/wellness-hub/wellness/internal/storage/badger"
	"github.com/wellness-hub/wellness/internal/storage/memory"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections"`
	RequestTimeout time.Duration `long:"http.request-timeout" env:"HTTP_REQUEST_TIMEOUT" default:"5s" description:"request processing timeout"`

	Storage string `long:"storage" env:"STORAGE" default:"memory" description:"session storage backend" choice:"memory" choice:"badger"`
	IDs     string `long:"ids" env:"IDS" default:"uuid" description:"identifier generator for new records" choice:"uuid" choice:"sequence"`
	Seed    string `long:"seed" env:"SEED" description:"path to seed yaml, embedded seed is used when empty"`
	Journal string `long:"journal" env:"JOURNAL" description:"path to ndjson journal of actions replayed before serving"`

	CacheTTL  time.Duration `long:"cache.ttl" env:"CACHE_TTL" default:"1m" description:"catalog responses cache ttl, 0 disables cache"`
	RateLimit float64       `long:"ratelimit.rps" env:"RATELIMIT_RPS" default:"0" description:"write requests per second allowed for one client, 0 disables limiting"`
	RateBurst int           `long:"ratelimit.burst" env:"RATELIMIT_BURST" default:"20" description:"write requests burst allowed for one client"`
	Metrics   bool          `long:"metrics" env:"METRICS" description:"serve prometheus metrics on /metrics"`

	LogLevel string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
}{}

var errTerminated = errors.New("terminated")

const shutdownTimeout = 5 * time.Second

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Wellness"
	parser.LongDescription = "Wellness session service"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Infof("%+v", opts)

	sd := mustGetSeed()

	s, closeStorage := mustGetStorage(sd)
	defer closeStorage()

	svc := impl.New(s, sd, mustGetIDs())

	pingers := []health.Pinger{health.SubjectPinger("storage", s.Ping)}
	if opts.Journal != "" {
		pingers = append(pingers, mustReplay(svc))
	}

	var m *metrics.Metrics
	if opts.Metrics {
		m = metrics.New()
	}

	r := chi.NewMux()
	server.SetupRouter(svc, r, server.Config{
		Timeout:   opts.RequestTimeout,
		CacheTTL:  opts.CacheTTL,
		RateLimit: opts.RateLimit,
		RateBurst: opts.RateBurst,
		Metrics:   m,
		Pingers:   pingers,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler:           r,
		ReadHeaderTimeout: opts.RequestTimeout,
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	logrus.Info("service started")

	if err := serve(srv, sigs); err != nil {
		logrus.WithError(err).Error("service unexpectedly closed")
		closeStorage()
		os.Exit(1) // nolint:gocritic
	}
}

// serve runs srv until a signal arrives or the listener fails, then shuts srv down.
func serve(srv *http.Server, sigs <-chan os.Signal) error {
	gr, ctx := errgroup.WithContext(context.Background())
	gr.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
		}
		return nil
	})
	gr.Go(func() error {
		select {
		case sig := <-sigs:
			logrus.Infof("terminating by %s signal", sig)
		case <-ctx.Done():
		}

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(sctx); err != nil {
			logrus.WithError(err).Error("failed to gracefully shutdown server")
		}

		return errTerminated
	})

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) {
		return err
	}

	return nil
}

func mustGetSeed() *seed.Seed {
	if opts.Seed == "" {
		return seed.Default()
	}

	sd, err := seed.LoadFile(opts.Seed)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load seed")
	}

	return sd
}

func mustGetStorage(sd *seed.Seed) (storage.Storage, func()) {
	switch opts.Storage {
	case "badger":
		db, err := badger.Open()
		if err != nil {
			logrus.WithError(err).Fatal("failed to open badger")
		}

		s, err := badger.New(db, sd.Snapshot())
		if err != nil {
			logrus.WithError(err).Fatal("failed to create badger storage")
		}

		closed := false
		return s, func() {
			if closed {
				return
			}
			closed = true
			if err := db.Close(); err != nil {
				logrus.WithError(err).Error("failed to close badger")
			}
		}
	default:
		return memory.New(sd.Snapshot()), func() {}
	}
}

func mustGetIDs() idgen.Provider {
	if opts.IDs == "sequence" {
		return idgen.NewSequence()
	}
	return idgen.NewUUID()
}

func mustReplay(svc service.Service) health.Pinger {
	f, err := os.Open(opts.Journal)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open journal")
	}
	defer f.Close() // nolint:errcheck

	c := journal.New(f, svc)
	if err := c.Run(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to replay journal")
	}

	return c
}
