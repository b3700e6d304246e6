// Command cachesim replays an address trace (from a file or a synthetic Zipf
// workload) through one or more replacement policies and prints a report per
// policy. Prometheus metrics are optionally served at -http.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/cachesim/cache"
	"github.com/IvanBrykalov/cachesim/config"
	"github.com/IvanBrykalov/cachesim/logger"
	pmet "github.com/IvanBrykalov/cachesim/metrics/prom"
	"github.com/IvanBrykalov/cachesim/trace"
)

// Contents are printed only for caches this small.
const maxPrintedContents = 16

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "cachesim:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	// ---- Flags ----
	fs := flag.NewFlagSet("cachesim", flag.ContinueOnError)
	var (
		cfgPath  = fs.String("config", "", "config file (default ./cachesim.yaml if present)")
		policies = fs.String("policy", "", "comma-separated policies: fifo,lru,lfu (overrides config)")
		capacity = fs.Int("cap", 0, "cache capacity in entries (overrides config)")
		path     = fs.String("trace", "", "trace file, one address per line (overrides config)")
		httpAddr = fs.String("http", "", "serve Prometheus metrics at addr and keep running (overrides config)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// ---- Config: defaults < file < env < flags ----
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *policies != "" {
		cfg.Sim.Policies = strings.Split(*policies, ",")
	}
	if *capacity != 0 {
		cfg.Sim.Capacity = *capacity
	}
	if *path != "" {
		cfg.Sim.Trace = *path
	}
	if *httpAddr != "" {
		cfg.Metrics.Enabled, cfg.Metrics.Addr = true, *httpAddr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if err := logger.Init(cfg.Logger()); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	log := logger.L()

	// ---- Workload (shared read-only by every simulator) ----
	addrs, source, err := workload(cfg)
	if err != nil {
		return err
	}
	kinds, _ := cfg.Kinds()

	// ---- Prometheus metrics ----
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	// ---- One simulator per policy, each owned by its own goroutine ----
	reports := make([]cache.Report, len(kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		opt := cache.Options{
			Capacity: cfg.Sim.Capacity,
			Policy:   kind,
			Logger:   log,
		}
		if cfg.Metrics.Enabled {
			m, err := pmet.New(reg, cfg.Metrics.Namespace, "", prometheus.Labels{"policy": kind.String()})
			if err != nil {
				return err
			}
			opt.Metrics = m
		}
		g.Go(func() error {
			sim, err := cache.New(opt)
			if err != nil {
				return err
			}
			rep, err := sim.Replay(gctx, addrs)
			if err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// ---- Report ----
	fmt.Fprintf(out, "trace=%s cap=%d line=%d\n", source, cfg.Sim.Capacity, cfg.Sim.LineSize)
	for _, rep := range reports {
		printReport(out, rep)
	}

	if !cfg.Metrics.Enabled {
		return nil
	}
	return serveMetrics(ctx, cfg.Metrics.Addr, reg, log)
}

// workload returns the configured address stream and a short description.
func workload(cfg *config.Config) (iter.Seq[string], string, error) {
	if cfg.Sim.Trace != "" {
		addrs, err := trace.ReadFile(cfg.Sim.Trace, cfg.Sim.LineSize)
		if err != nil {
			return nil, "", err
		}
		return slices.Values(addrs), cfg.Sim.Trace, nil
	}
	st := cfg.SyntheticTrace()
	seq, err := trace.Synthetic(st)
	if err != nil {
		return nil, "", err
	}
	return seq, fmt.Sprintf("zipf(s=%g,v=%g,keys=%d,n=%d,seed=%d)", st.ZipfS, st.ZipfV, st.Keys, st.Addresses, st.Seed), nil
}

func printReport(w io.Writer, rep cache.Report) {
	s := rep.Stats
	fmt.Fprintf(w, "%-4s run=%s accesses=%d hits=%d misses=%d evictions=%d hit-rate=%.2f%% (%v)\n",
		rep.Policy, rep.RunID, s.Accesses, s.Hits, s.Misses, s.Evictions, 100*s.HitRate(), rep.Elapsed.Round(time.Microsecond))
	if rep.Capacity <= maxPrintedContents && rep.Contents != "" {
		fmt.Fprintf(w, "     contents: %s\n", rep.Contents)
	}
}

// serveMetrics exposes /metrics until ctx is cancelled.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, log *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	log.Info("metrics: serving", zap.String("addr", addr))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
