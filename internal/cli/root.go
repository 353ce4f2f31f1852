package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jennyflying-25/cisco-checker-app/internal/adapters"
	"github.com/jennyflying-25/cisco-checker-app/internal/app"
	"github.com/jennyflying-25/cisco-checker-app/internal/ports"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "CISCO_CHECKER"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "cisco-checker",
		Short:   "Transceiver compatibility checker for network switches",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().String("dataset", "", "Dataset file path (JSON or YAML)")
	cmd.PersistentFlags().String("dataset-url", "", "Dataset HTTP endpoint")
	cmd.PersistentFlags().Int("dataset-timeout", 0, "Dataset fetch timeout in seconds")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("dataset", cmd.PersistentFlags().Lookup("dataset"))
	_ = viper.BindPFlag("dataset_url", cmd.PersistentFlags().Lookup("dataset-url"))
	_ = viper.BindPFlag("dataset_timeout", cmd.PersistentFlags().Lookup("dataset-timeout"))

	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newInspectCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("cisco-checker")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/cisco-checker")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// newAppService wires the configured dataset source into a service.  The
// local file wins when both a path and an endpoint are configured.
func newAppService(ctx context.Context) (*app.Service, error) {
	path := strings.TrimSpace(viper.GetString("dataset"))
	endpoint := strings.TrimSpace(viper.GetString("dataset_url"))
	if path == "" && endpoint == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no dataset source configured, set --dataset or --dataset-url")
	}

	var dataset ports.DatasetPort
	source := path
	if path != "" {
		dataset = adapters.NewDatasetFileAdapter(path)
	} else {
		source = endpoint
		dataset = adapters.NewDatasetHTTPAdapter(endpoint, viper.GetInt("dataset_timeout"))
	}
	assert.NotEmpty(ctx, source, "dataset source must be set")
	return app.NewService(dataset), nil
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	switch code {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeNotFound, errbuilder.CodeUnavailable:
		return 3
	case errbuilder.CodeInternal:
		return 4
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
