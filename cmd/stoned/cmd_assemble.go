package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/stoned/frontier"
	"github.com/katalvlaran/stoned/internal/config"
	"github.com/katalvlaran/stoned/internal/dataset"
	"github.com/katalvlaran/stoned/internal/export"
	"github.com/katalvlaran/stoned/internal/logging"
	"github.com/katalvlaran/stoned/model"
)

type assembleOptions struct {
	configPath  string
	dataPath    string
	outPath     string
	metricsPath string
	taus        []float64
}

func newAssembleCommand() *cobra.Command {
	var opts assembleOptions

	cmd := &cobra.Command{
		Use:   "assemble",
		Short: "Assemble a frontier model from a run file",
		Long: `Load the dataset named in the run file, assemble the configured model and
print its summary. With --out the model is written as JSON lines
(zstd-compressed when the path ends in .zst).

--taus assembles one quantile or expectile model per value, concurrently;
each output file gets a ".tau<value>" suffix before its extension.

Keys in the run file can be overridden with STONED_* environment
variables, e.g. STONED_LOSS=quantile STONED_TAU=0.9.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return runAssemble(cmd, opts, verbose)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "run file (YAML)")
	cmd.Flags().StringVarP(&opts.dataPath, "data", "d", "", "CSV dataset (overrides data.path)")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "write the model as JSON lines to this path")
	cmd.Flags().StringVar(&opts.metricsPath, "metrics-out", "", "write assembly metrics in Prometheus text format")
	cmd.Flags().Float64SliceVar(&opts.taus, "taus", nil, "assemble one model per tau (quantile/expectile losses)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runAssemble(cmd *cobra.Command, opts assembleOptions, verbose bool) error {
	file, err := config.Load(opts.configPath, opts.dataPath)
	if err != nil {
		return err
	}
	if verbose {
		file.Logging.Level = "debug"
	}
	logger, err := logging.New(file.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	dataPath := file.Data.Path
	tab, err := dataset.LoadCSV(dataPath)
	if err != nil {
		return err
	}
	data, cfg, err := file.Build(tab)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded", zap.String("path", dataPath), zap.Int("dmus", tab.Len()))

	reg := prometheus.NewRegistry()
	metrics, err := frontier.NewMetrics(reg)
	if err != nil {
		return err
	}
	fopts := append(file.Options(), frontier.WithLogger(logger), frontier.WithMetrics(metrics))

	cfgs := []frontier.Config{cfg}
	if len(opts.taus) > 0 {
		if cfg.Loss.Kind == frontier.LossLeastSquares {
			return fmt.Errorf("--taus needs a quantile or expectile loss, got %s", cfg.Loss.Kind)
		}
		cfgs = cfgs[:0]
		for _, tau := range opts.taus {
			c := cfg
			c.Loss.Tau = tau
			cfgs = append(cfgs, c)
		}
	}

	models, err := frontier.AssembleAll(cmd.Context(), data, cfgs, fopts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, m := range models {
		if len(opts.taus) > 0 {
			fmt.Fprintf(out, "tau %s\n", strconv.FormatFloat(opts.taus[i], 'g', -1, 64))
		}
		fmt.Fprint(out, m.Summary())
		if opts.outPath == "" {
			continue
		}
		path := opts.outPath
		if len(opts.taus) > 0 {
			path = tauPath(path, opts.taus[i])
		}
		if err = writeModel(cmd.Context(), logger, path, m); err != nil {
			return err
		}
	}

	if opts.metricsPath != "" {
		if err = prometheus.WriteToTextfile(opts.metricsPath, reg); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	return nil
}

func writeModel(ctx context.Context, logger *zap.Logger, path string, m *model.Model) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := export.WriteFile(path, m); err != nil {
		return err
	}
	logger.Info("model written",
		zap.String("path", path),
		zap.String("model", m.Name()),
		zap.String("fingerprint", strconv.FormatUint(m.Fingerprint(), 16)),
	)

	return nil
}

// tauPath inserts ".tau<tau>" before the first extension of the file name:
// out/model.jsonl.zst becomes out/model.tau0.9.jsonl.zst.
func tauPath(path string, tau float64) string {
	dir, base := filepath.Split(path)
	suffix := ".tau" + strconv.FormatFloat(tau, 'g', -1, 64)
	if i := strings.IndexByte(base, '.'); i > 0 {
		return dir + base[:i] + suffix + base[i:]
	}

	return dir + base + suffix
}
