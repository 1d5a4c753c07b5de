// Command kartchar composes a kart's characteristics from layer files,
// stores the resulting record and prints it as JSON.
//
//	kartchar --kart heavy --difficulty hard --player handicap
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/trackforge/kartchar/internal/characteristics"
	"github.com/trackforge/kartchar/internal/compose"
	"github.com/trackforge/kartchar/internal/config"
	"github.com/trackforge/kartchar/internal/geometry"
	"github.com/trackforge/kartchar/internal/influx"
	"github.com/trackforge/kartchar/internal/layer"
	"github.com/trackforge/kartchar/internal/logging"
	"github.com/trackforge/kartchar/internal/registry"
)

// module defs - BuildDate can be set at build time via ldflags
var (
	CurrentVersion string = "0.0.1"
	BuildDate      string = "unknown"

	AppName string = "kartchar"
)

type options struct {
	configDir  string
	kart       string
	difficulty string
	player     string
	out        string
	list       bool
	keys       bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	fs.StringVarP(&opts.configDir, "config", "c", ".", "directory containing "+config.FileName)
	fs.StringVarP(&opts.kart, "kart", "k", "", "kart layer stacked on the base layer")
	fs.StringVarP(&opts.difficulty, "difficulty", "d", "", "difficulty layer")
	fs.StringVarP(&opts.player, "player", "p", "", "player handicap layer")
	fs.StringVarP(&opts.out, "out", "o", "", "write the report to this file instead of stdout")
	fs.BoolVar(&opts.list, "list", false, "list stored records and exit")
	fs.BoolVar(&opts.keys, "keys", false, "list the characteristic keys and exit")
	fs.String("layers", "", "layer directory (overrides layers.dir)")
	fs.String("storage", "", "storage backend: memory, sqlite or postgres (overrides storage.type)")
	fs.String("log-level", "", "log level (overrides logLevel)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	// only explicitly set flags override the config file
	for flag, key := range map[string]string{
		"layers":    "layers.dir",
		"storage":   "storage.type",
		"log-level": "logLevel",
	} {
		if f := fs.Lookup(flag); f.Changed {
			if err := viper.BindPFlag(key, f); err != nil {
				return opts, err
			}
		}
	}
	return opts, nil
}

// stack lists the layer names to compose, base first. Empty names are skipped.
func (o options) stack(base string) []string {
	names := []string{base}
	for _, n := range []string{o.kart, o.difficulty, o.player} {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// recordName identifies the composed record in storage.
func (o options) recordName(base string) string {
	names := o.stack(base)
	if len(names) > 1 {
		names = names[1:]
	}
	return strings.Join(names, "+")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(ctx, opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	if opts.keys {
		return writeKeys(stdout)
	}
	sessionStart := time.Now()

	configErr := config.Load(opts.configDir)
	if configErr != nil {
		config.LoadDefaults()
	}

	graylog := config.GetGraylogConfig()
	logOpts := logging.Options{
		Level:   config.GetString("logLevel"),
		LogsDir: config.GetString("logsDir"),
		Name:    AppName,
		Start:   sessionStart,
		Console: stderr,
	}
	if graylog.Enabled {
		logOpts.GraylogAddress = graylog.Address
	}
	log, logCloser, err := logging.Setup(logOpts)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logCloser.Close()

	log.Info().Str("version", CurrentVersion).Str("buildDate", BuildDate).Msg("Starting up")
	if configErr != nil {
		log.Warn().Err(configErr).Msg("Failed to load config, using defaults!")
	} else {
		log.Info().Msg("Loaded config")
	}

	backend, err := createStorageBackend(config.GetStorageConfig(), log)
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return fmt.Errorf("failed to initialize storage backend: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close storage backend")
		}
	}()

	if opts.list {
		names, err := backend.List()
		if err != nil {
			return fmt.Errorf("list records: %w", err)
		}
		for _, n := range names {
			fmt.Fprintln(stdout, n)
		}
		return nil
	}

	layersCfg := config.GetLayersConfig()
	available, err := layer.LoadDir(layersCfg.Dir)
	if err != nil {
		return err
	}
	log.Debug().Strs("layers", layer.Names(available)).Str("dir", layersCfg.Dir).Msg("Loaded layers")

	names := opts.stack(layersCfg.Base)
	stack := make([]*layer.Layer, 0, len(names))
	for _, n := range names {
		l, ok := available[n]
		if !ok {
			return fmt.Errorf("layer %q not found in %s", n, layersCfg.Dir)
		}
		stack = append(stack, l)
	}

	composer, err := compose.New(logging.NewZerologAdapter(log))
	if err != nil {
		return err
	}

	name := opts.recordName(layersCfg.Base)
	record, err := composer.Compose(ctx, name, stack...)
	if err != nil {
		return err
	}

	records := registry.New()
	defer func() {
		if err := records.Reset(); err != nil {
			log.Error().Err(err).Msg("Failed to release records")
		}
	}()
	if err := records.Put(name, record); err != nil {
		return err
	}

	snapshot := record.Snapshot()
	if err := backend.Save(name, snapshot); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	log.Info().Str("kart", name).Strs("layers", names).Msg("Stored characteristics")

	if influxCfg := config.GetInfluxConfig(); influxCfg.Enabled {
		publish(ctx, influxCfg, logOpts.LogsDir, name, record, log)
	}

	report := Report{
		Name:            name,
		Layers:          names,
		ComposedAt:      sessionStart.UTC(),
		Version:         CurrentVersion,
		Characteristics: snapshot,
	}
	if fp, err := geometry.ComputeFootprint(snapshot.WheelPositions); err == nil {
		report.Footprint = &fp
	} else {
		log.Debug().Err(err).Msg("No wheel footprint")
	}
	if report.Handling, err = handling(record); err != nil {
		return err
	}

	return writeReport(opts.out, stdout, report)
}

// publish failures are logged, never fatal.
func publish(ctx context.Context, cfg config.InfluxConfig, logsDir, name string, c *characteristics.Characteristics, log zerolog.Logger) {
	backupPath := filepath.Join(logsDir, AppName+"_influx_backup.lp.gz")
	pub, err := influx.Connect(ctx, cfg, backupPath, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to InfluxDB")
		return
	}
	defer pub.Close()
	if err := pub.Publish(ctx, name, c, time.Now()); err != nil {
		log.Error().Err(err).Msg("Failed to publish characteristics")
	}
}

