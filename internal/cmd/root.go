// Package cmd implements the itemstore command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"itemstore/internal/catalog"
	"itemstore/internal/config"
	"itemstore/internal/logging"
	"itemstore/internal/telemetry"
)

// env holds what every subcommand needs once configuration is loaded.
type env struct {
	v         *viper.Viper
	cfg       *config.Config
	logger    *zap.Logger
	telemetry *telemetry.Provider
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	e := &env{v: viper.New()}

	root := &cobra.Command{
		Use:   "itemstore",
		Short: "Browse a game item shop and price purchases",
		Long: `itemstore is a terminal storefront for a game item catalog.
It lists items with search, category and sort controls, prices any
quantity in stacks, shows a money-making guide and sends feedback to
a webhook.`,
		SilenceUsage:      true,
		PersistentPreRunE: e.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return e.teardown(cmd.Context())
		},
		RunE: e.runTUI,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default is $XDG_CONFIG_HOME/itemstore/config.yaml)")
	pf.String("catalog", "", "catalog path or http(s) URL")
	pf.Duration("timeout", 0, "catalog fetch timeout")
	pf.String("log-file", "", "log file; empty disables logging")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("otlp-endpoint", "", "OTLP/HTTP trace endpoint (host:port)")

	f := root.Flags()
	f.Bool("watch", false, "reload a local catalog when it changes")
	f.String("webhook", "", "feedback webhook URL (overrides the catalog's)")

	e.bind(pf, "config", "config")
	e.bind(pf, "catalog.source", "catalog")
	e.bind(pf, "catalog.timeout", "timeout")
	e.bind(pf, "log.file", "log-file")
	e.bind(pf, "log.level", "log-level")
	e.bind(pf, "telemetry.endpoint", "otlp-endpoint")
	e.bind(f, "catalog.watch", "watch")
	e.bind(f, "feedback.webhook", "webhook")

	root.AddCommand(e.newQueryCommand(), e.newCalcCommand(), e.newExportCommand())
	return root
}

func (e *env) bind(fs *pflag.FlagSet, key, flag string) {
	_ = e.v.BindPFlag(key, fs.Lookup(flag))
}

// setup reads configuration and builds the logger and tracer provider.
func (e *env) setup(cmd *cobra.Command, _ []string) error {
	v := e.v
	config.SetDefaults(v)

	cfgFile := v.GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(config.ConfigDir())
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("ITEMSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Only an explicitly named file has to exist.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	e.cfg = cfg

	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	e.logger = logger

	tp, err := telemetry.NewProvider(cmd.Context(), cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return err
	}
	e.telemetry = tp

	logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config_file", v.ConfigFileUsed()),
		zap.String("catalog", cfg.Catalog.Source),
		zap.Bool("telemetry", tp.Enabled()))
	return nil
}

func (e *env) teardown(ctx context.Context) error {
	var err error
	if e.telemetry != nil {
		err = e.telemetry.Shutdown(ctx)
	}
	if e.logger != nil {
		_ = e.logger.Sync()
	}
	return err
}

func (e *env) newLoader() *catalog.Loader {
	return catalog.NewLoader(&http.Client{Timeout: e.cfg.Catalog.Timeout}, e.telemetry.Tracer(), e.logger)
}

// loadCatalog fetches the configured catalog once.
func (e *env) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	return e.newLoader().Load(ctx, e.cfg.Catalog.Source)
}

// queryFlags are the filter flags shared by query and export.
type queryFlags struct {
	search   string
	category string
	sort     string
}

func (q *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&q.search, "search", "s", "", "case-insensitive name filter")
	cmd.Flags().StringVar(&q.category, "category", catalog.AllCategories, "category to show")
	cmd.Flags().StringVar(&q.sort, "sort", string(catalog.SortName), "sort key (name, price-asc, price-desc, stack)")
}

func (q *queryFlags) query() catalog.Query {
	return catalog.Query{Search: q.search, Category: q.category, Sort: catalog.ParseSortKey(q.sort)}
}
