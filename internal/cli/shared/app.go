package shared

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brb-cli/brb/internal/build"
	"github.com/brb-cli/brb/internal/config"
	clierrors "github.com/brb-cli/brb/internal/errors"
	"github.com/brb-cli/brb/internal/logging"
	"github.com/brb-cli/brb/internal/notify"
)

// Persistent flag names on the root command.
const (
	FlagConfig = "config"
	FlagDebug  = "debug"
)

// App is the per-invocation environment shared by commands.
type App struct {
	Settings   *config.Settings
	Logger     *logrus.Logger
	ConfigPath string
	Stdout     io.Writer
	Stderr     io.Writer
	// NotifyOptions are appended to every dispatcher the command builds.
	NotifyOptions []notify.Option
}

// NewApp loads settings, configures logging and resolves the config path.
// Priority for the path: --config flag > BRB_CONFIG > user config dir.
func NewApp(cmd *cobra.Command) (*App, error) {
	settings, settingsErr := config.LoadSettings()
	if settingsErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "brb: warning: %v; using defaults\n", settingsErr)
	}

	debug, _ := cmd.Flags().GetBool(FlagDebug)
	logger, err := logging.Configure(logging.Options{
		StateDir: settings.StateDir,
		Level:    settings.LogLevel,
		Format:   settings.LogFormat,
		Debug:    debug,
		Stderr:   cmd.ErrOrStderr(),
	})
	if err != nil {
		// Logging must never block the wrapped command.
		logger = logging.Discard()
		fmt.Fprintf(cmd.ErrOrStderr(), "brb: warning: %s; logging disabled\n", clierrors.WriteFailure(settings.StateDir, err).Message)
	}
	if settingsErr != nil {
		logger.WithError(settingsErr).Warn("invalid settings replaced by defaults")
	}

	path, _ := cmd.Flags().GetString(FlagConfig)
	if path == "" {
		path = settings.ConfigPath
	}
	if path == "" {
		path, err = config.UserConfigPath()
		if err != nil {
			return nil, ConfigError(err, "")
		}
	}

	app := &App{
		Settings:   settings,
		Logger:     logger,
		ConfigPath: path,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	}
	app.NotifyOptions = notifyOptionsFrom(cmd.Context())
	logger.WithField("config", path).Debug("resolved config path")
	return app, nil
}

// LoadConfig loads the channel document, mapping failures to CLI errors.
func (a *App) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		a.Logger.WithError(err).Debug("config load failed")
		return nil, ConfigError(err, a.ConfigPath)
	}
	return cfg, nil
}

// Dispatcher builds a dispatcher wired to the app logger and version.
func (a *App) Dispatcher() *notify.Dispatcher {
	opts := []notify.Option{
		notify.WithLogger(a.Logger),
		notify.WithUserAgent(build.UserAgent()),
	}
	if a.Settings.Sequential {
		opts = append(opts, notify.WithSequential())
	}
	opts = append(opts, a.NotifyOptions...)
	return notify.NewDispatcher(opts...)
}

// ConfigError converts a config package error into a CLI error with hints.
func ConfigError(err error, path string) error {
	var cfgErr *config.Error
	if !stderrors.As(err, &cfgErr) {
		return clierrors.Wrap(err, clierrors.Configuration)
	}
	switch {
	case stderrors.Is(err, config.ErrNotFound):
		return clierrors.ConfigFileNotFound(cfgErr.Detail)
	case stderrors.Is(err, config.ErrMissingEnvironmentVariable):
		return clierrors.MissingEnvironmentVariable(cfgErr.Detail, err)
	case stderrors.Is(err, config.ErrNoConfigDirectory):
		return clierrors.NewConfigError(err.Error(), "Set HOME, or pass --config / BRB_CONFIG")
	case stderrors.Is(err, config.ErrReadFailed):
		return clierrors.Wrap(err, clierrors.Configuration, "Check permissions on "+path)
	case stderrors.Is(err, config.ErrParseFailed),
		stderrors.Is(err, config.ErrInvalidInterpolation),
		stderrors.Is(err, config.ErrInvalidConfig):
		return clierrors.ConfigParseError(path, err)
	default:
		return clierrors.Wrap(err, clierrors.Configuration)
	}
}
