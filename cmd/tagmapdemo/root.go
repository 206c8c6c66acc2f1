package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/davidroman0O/tagmap"
	"github.com/davidroman0O/tagmap/metrics"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "tagmapdemo",
		Short:             "Walk through the tagged map reference scenario",
		Long:              "Runs a fixed sequence of puts and removes on a tagged map and prints a snapshot after each step.",
		PersistentPreRunE: setupLogging,
		RunE:              runDemo,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().String("log-level", "info", `verbosity of logging ("debug", "info", "warn", "error")`)
	rootCmd.Flags().String("format", formatText, `snapshot format ("text", "json")`)
	rootCmd.Flags().Bool("metrics", false, "log the collected Prometheus metrics after the run")

	return rootCmd
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	levelName, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}

func runDemo(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	withMetrics, err := cmd.Flags().GetBool("metrics")
	if err != nil {
		return err
	}

	opts := []tagmap.Option{tagmap.WithLogger(newZerologLogger(log.Logger))}

	reg := prometheus.NewRegistry()
	if withMetrics {
		obs, err := metrics.NewPrometheus(reg, "tagmapdemo")
		if err != nil {
			return err
		}
		opts = append(opts, tagmap.WithObserver(obs))
	}

	m := tagmap.New[int, string, string](opts...)
	if err := runScenario(cmd.OutOrStdout(), m, format); err != nil {
		return err
	}

	if withMetrics {
		return logMetrics(reg)
	}
	return nil
}

func logMetrics(gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			event := log.Info().Str("metric", family.GetName())
			for _, label := range metric.GetLabel() {
				event = event.Str(label.GetName(), label.GetValue())
			}
			event.Float64("value", metricValue(metric)).Msg("collected metric")
		}
	}
	return nil
}

func metricValue(metric *dto.Metric) float64 {
	switch {
	case metric.GetCounter() != nil:
		return metric.GetCounter().GetValue()
	case metric.GetGauge() != nil:
		return metric.GetGauge().GetValue()
	default:
		return 0
	}
}
