package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"omegraph/internal/codec"
	"omegraph/internal/config"
	"omegraph/internal/consolidate"
	"omegraph/internal/enums"
	"omegraph/internal/loader"
	"omegraph/internal/service"
	"omegraph/internal/watcher"
)

var (
	replayFormat string
	replayOut    string
	replayStrict bool
	replayWatch  bool
	replayJobs   int
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>...",
	Short: "Replay assertion logs and export the consolidated graphs",
	Long: `Replay one or more YAML assertion logs. Each file becomes an independent
unit: its assertions are applied in order, the unit is consolidated and its
graph is exported.

Without --out the graphs are written to stdout. With a single input --out
names the output file; with several it names a directory that receives one
<name>.<format> file per input.

Examples:
  omegraph replay widefield.yaml
  omegraph replay --strict --format yaml widefield.yaml
  omegraph replay -j 8 --out graphs/ logs/*.yaml
  omegraph replay --watch --out graph.json widefield.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("format") {
			cfg.Output.Format = replayFormat
		}
		if cmd.Flags().Changed("jobs") {
			cfg.Workers = replayJobs
		}
		if replayStrict {
			cfg.Enumerations.Policy = string(enums.PolicyStrict)
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()
		if path != "" {
			logger.Debug("Loaded config", zap.String("path", path))
		}

		s, err := newReplaySession(cfg, logger, replayOut, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer s.close()

		if !replayWatch {
			return s.run(cmd.Context(), args)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := s.run(ctx, args); err != nil {
			logger.Error("Replay failed", zap.Error(err))
		}

		w := watcher.New(args, func(path string) {
			if err := s.run(ctx, []string{path}); err != nil {
				logger.Error("Replay failed", zap.String("path", path), zap.Error(err))
			}
		}, logger).WithDebounce(cfg.Watch.Debounce.Duration())

		if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	replayCmd.Flags().StringVarP(&replayFormat, "format", "o", "json", "export format ("+strings.Join(codec.Formats(), ", ")+")")
	replayCmd.Flags().StringVar(&replayOut, "out", "", "output file, or directory for several inputs (default: stdout)")
	replayCmd.Flags().BoolVar(&replayStrict, "strict", false, "fail on vocabulary terms with no match")
	replayCmd.Flags().BoolVarP(&replayWatch, "watch", "w", false, "re-run when an input file changes")
	replayCmd.Flags().IntVarP(&replayJobs, "jobs", "j", 0, "units consolidated concurrently (default from config)")
	rootCmd.AddCommand(replayCmd)
}

// replaySession carries everything needed to turn assertion logs into
// exported graphs. It is reused across watch iterations.
type replaySession struct {
	logger   *zap.Logger
	replayer *loader.Replayer
	pipeline *consolidate.Pipeline
	bus      *service.EventBus
	events   chan service.Event
	drained  chan struct{}
	exporter codec.Exporter
	workers  int
	out      string
	stdout   io.Writer
}

func newReplaySession(cfg *config.Config, logger *zap.Logger, out string, stdout io.Writer) (*replaySession, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	enumPolicy, err := enums.ParsePolicy(cfg.Enumerations.Policy)
	if err != nil {
		return nil, err
	}
	exporter, err := codec.ForFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	s := &replaySession{
		logger:   logger,
		replayer: loader.NewReplayer(loader.NewNormalizer(enumPolicy), logger),
		pipeline: consolidate.New(policy, logger),
		bus:      service.NewEventBus(),
		events:   make(chan service.Event, 100),
		drained:  make(chan struct{}),
		exporter: exporter,
		workers:  cfg.Workers,
		out:      out,
		stdout:   stdout,
	}
	s.bus.Subscribe(s.events)
	go s.logEvents()
	return s, nil
}

func (s *replaySession) logEvents() {
	defer close(s.drained)
	for event := range s.events {
		s.logger.Debug("Unit event", zap.String("type", string(event.Type)), zap.Any("payload", event.Payload))
	}
}

// close stops event logging and waits for queued events to be logged
func (s *replaySession) close() {
	s.bus.Unsubscribe(s.events)
	close(s.events)
	<-s.drained
}

// run replays, consolidates and exports paths as independent units
func (s *replaySession) run(ctx context.Context, paths []string) error {
	units, err := s.load(paths)
	if err != nil {
		return err
	}
	if err := service.ConsolidateAll(ctx, units, s.workers); err != nil {
		return err
	}
	for _, u := range units {
		report, err := u.Report()
		if err != nil {
			return err
		}
		s.logger.Info("Consolidated unit",
			zap.String("source", u.Source),
			zap.Stringer("unit", u.ID),
			zap.Int("entities", u.Containers().Len()),
			zap.Int("materialized", len(report.Materialized)),
			zap.Int("pruned", len(report.Pruned)),
			zap.Int("channels", len(report.Channels)))
	}
	return s.export(units, paths)
}

func (s *replaySession) load(paths []string) ([]*service.Unit, error) {
	units := make([]*service.Unit, 0, len(paths))
	for _, path := range paths {
		log, err := loader.LoadYAML(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		unit := service.NewUnit(log.Source, s.pipeline, s.bus, s.logger)
		if err := s.replayer.Replay(log, unit); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		units = append(units, unit)
	}
	return units, nil
}

func (s *replaySession) export(units []*service.Unit, paths []string) error {
	if s.out == "" {
		for i, u := range units {
			if i > 0 && s.exporter.Format() == "yaml" {
				fmt.Fprintln(s.stdout, "---")
			}
			if err := s.write(u, s.stdout); err != nil {
				return err
			}
		}
		return nil
	}

	if len(units) == 1 && !isDir(s.out) {
		return s.writeFile(units[0], s.out)
	}

	if err := os.MkdirAll(s.out, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for i, u := range units {
		name := strings.TrimSuffix(filepath.Base(paths[i]), filepath.Ext(paths[i])) + "." + s.exporter.Format()
		if err := s.writeFile(u, filepath.Join(s.out, name)); err != nil {
			return err
		}
	}
	return nil
}

func (s *replaySession) writeFile(u *service.Unit, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := s.write(u, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	s.logger.Info("Exported graph", zap.String("source", u.Source), zap.String("path", path))
	return nil
}

func (s *replaySession) write(u *service.Unit, w io.Writer) error {
	graph, err := u.Snapshot()
	if err != nil {
		return err
	}
	if err := s.exporter.Export(graph, w); err != nil {
		return fmt.Errorf("export %s: %w", u.Source, err)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
