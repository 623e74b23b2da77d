package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campusfood/displayfmt/internal/config"
	"github.com/campusfood/displayfmt/internal/display"
	"github.com/campusfood/displayfmt/internal/logging"
)

type options struct {
	configPath string
	localeTag  string
	timeZone   string
	format     string
	verbose    bool
}

type app struct {
	opts      options
	newLogger func(level string) (*zap.SugaredLogger, error)
	logger    *zap.SugaredLogger
	formatter *display.Formatter
}

func newApp() *app {
	return &app{newLogger: logging.New}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "displayfmt",
		Short: "Render marketplace values as locale-specific display strings",
		Long: `displayfmt formats prices, dates, order statuses and free text the way the
campus marketplace shows them to users.

Locale and time zone come from --locale/--tz, then the --config file, then the
built-in defaults (es-CO, America/Bogota).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.opts.configPath, "config", "c", "", "YAML settings file")
	flags.StringVarP(&a.opts.localeTag, "locale", "l", "", "BCP 47 locale tag (default from settings)")
	flags.StringVar(&a.opts.timeZone, "tz", "", "IANA time zone for dates (default from settings)")
	flags.StringVarP(&a.opts.format, "output", "o", "text", "output format: text, json, csv")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.priceCmd(),
		a.dateCmd(),
		a.dateTimeCmd(),
		a.truncateCmd(),
		a.statusCmd(),
		a.capitalizeCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	level := "warn"
	if a.opts.verbose {
		level = "debug"
	}
	logger, err := a.newLogger(level)
	if err != nil {
		return err
	}
	a.logger = logger

	settings := config.DefaultSettings()
	if a.opts.configPath != "" {
		settings, err = config.NewInputParser().LoadFromFile(a.opts.configPath)
		if err != nil {
			return err
		}
	}
	if a.opts.timeZone != "" {
		settings.TimeZone = a.opts.timeZone
	}

	registry, tz, err := settings.Build()
	if err != nil {
		return err
	}

	tag := settings.DefaultLocale
	if a.opts.localeTag != "" {
		tag = a.opts.localeTag
	}
	a.formatter = display.NewForTag(registry, tag, tz, display.WithLogger(a.logger))
	a.logger.Debugf("formatting with locale %s in %s", a.formatter.Locale().Tag, tz)
	return nil
}

// execute runs cmd and flushes the logger whether or not the command failed.
func (a *app) execute(cmd *cobra.Command) error {
	defer func() {
		if a.logger != nil {
			_ = a.logger.Sync()
		}
	}()
	return cmd.Execute()
}

func main() {
	a := newApp()
	if err := a.execute(a.rootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
