package main

import (
	"github.com/spf13/cobra"
)

var (
	flagInput       string
	flagPoints      int
	flagByteSize    int
	flagSetIndex    int
	flagConfigPath  string
	flagParallel    bool
	flagMetricsAddr string
)

var rootCmd = &cobra.Command{
	Use:   "ppt-enumerate",
	Short: "Enumerate pointed pseudo-triangulations of a planar point set",
	Long: `ppt-enumerate reads a binary stream of fixed-size point sets,
seeds a non-crossing planar graph from one set's convex hull, and
backtracks over the remaining candidate edges to enumerate every
4-regular-bounded pointed pseudo-triangulation (4-PPT).`,
	RunE: runEnumerate,
}

func init() {
	rootCmd.Flags().StringVar(&flagInput, "input", "", "path to the binary point-set stream (required)")
	rootCmd.Flags().IntVar(&flagPoints, "points", 0, "number of points per set (required)")
	rootCmd.Flags().IntVar(&flagByteSize, "byte-size", 0, "coordinate width in bits: 8 or 16 (overrides --config)")
	rootCmd.Flags().IntVar(&flagSetIndex, "set-index", 0, "index of the point set to enumerate within the stream")
	rootCmd.Flags().StringVar(&flagConfigPath, "config", "", "optional YAML configuration file")
	rootCmd.Flags().BoolVar(&flagParallel, "parallel", false, "enumerate using the concurrent frontier fan-out")
	rootCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this address while searching")

	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("points")
}
