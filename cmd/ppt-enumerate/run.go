package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/hyfi06/ppt4/ppconfig"
	"github.com/hyfi06/ppt4/ppmetrics"
	"github.com/hyfi06/ppt4/ptgraph"
	"github.com/hyfi06/ppt4/ptio"
	"github.com/hyfi06/ppt4/search"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func runEnumerate(cmd *cobra.Command, args []string) error {
	cfg := ppconfig.Default()
	if flagConfigPath != "" {
		loaded, err := ppconfig.LoadFile(flagConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if flagByteSize != 0 {
		cfg.ByteSize = flagByteSize
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	f, err := os.Open(flagInput)
	if err != nil {
		return fmt.Errorf("ppt-enumerate: %w", err)
	}
	defer f.Close()

	sets, err := ptio.ReadPointSets(f, flagPoints, cfg.ByteMode())
	if err != nil {
		return fmt.Errorf("ppt-enumerate: %w", err)
	}
	if flagSetIndex < 0 || flagSetIndex >= len(sets) {
		return fmt.Errorf("ppt-enumerate: set-index %d out of range (stream has %d sets)",
			flagSetIndex, len(sets))
	}

	g, err := ptgraph.NewFromPoints(sets[flagSetIndex], cfg.DegreeBoundsValue())
	if err != nil {
		return fmt.Errorf("ppt-enumerate: %w", err)
	}

	opts := search.Options{
		DisableShapePruning: cfg.DisableShapePruning,
		Parallel:            flagParallel,
	}

	if flagMetricsAddr != "" {
		collector := ppmetrics.NewCollector()
		opts.OnNodeVisited = collector.OnNodeVisited
		opts.OnPruned = collector.OnPruned
		opts.OnSolution = collector.OnSolution

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: flagMetricsAddr, Handler: mux}
		go func() {
			log.Info().Str("addr", flagMetricsAddr).Msg("serving metrics")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
		defer srv.Close()
	}

	if cfg.CancelTimeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.CancelTimeout)
		defer cancel()
		opts.ShouldStop = func() bool {
			select {
			case <-ctx.Done():
				return true
			default:
				return false
			}
		}
	}

	start := time.Now()
	res, err := search.Enumerate(g, opts)
	if err != nil {
		return fmt.Errorf("ppt-enumerate: %w", err)
	}

	log.Info().
		Int("solutions", len(res.Solutions)).
		Bool("stopped", res.Stopped).
		Dur("elapsed", time.Since(start)).
		Msg("enumeration complete")

	fmt.Printf("%d solutions\n", len(res.Solutions))
	for i, sol := range res.Solutions {
		fmt.Printf("%d: %s\n", i, search.Signature(sol))
	}

	return nil
}
