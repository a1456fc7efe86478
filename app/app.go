package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mandelsoft/vfs/pkg/memoryfs"

	"go.hackfix.me/agrodiag/app/config"
	actx "go.hackfix.me/agrodiag/app/context"
	"go.hackfix.me/agrodiag/cli"
)

// App is the application.
type App struct {
	name string
	ctx  *actx.Context
	cli  *cli.CLI
	// configFile is the path to the configuration file, unless overridden via
	// the CLI.
	configFile string
	// the logging level is set via the CLI, if the app was initialized with the
	// WithLogger option.
	logLevel *slog.LevelVar
}

// New initializes a new application.
func New(name string, opts ...Option) (*App, error) {
	defaultCtx := &actx.Context{
		Ctx:     context.Background(),
		FS:      memoryfs.New(),
		Env:     noEnv{},
		Logger:  slog.Default(),
		Version: actx.GetVersion(),
	}
	app := &App{name: name, ctx: defaultCtx}

	for _, opt := range opts {
		opt(app)
	}

	if app.configFile == "" {
		app.configFile = defaultConfigFile(app.name, app.ctx.Env)
	}

	ver := fmt.Sprintf("%s %s", app.name, app.ctx.Version.String())
	var err error
	app.cli, err = cli.New(app.name, app.configFile, ver)
	if err != nil {
		return nil, err
	}

	return app, nil
}

// Run initializes the application environment and starts execution of the
// application.
func (app *App) Run(args []string) error {
	if err := app.cli.Parse(args); err != nil {
		return err
	}

	if app.logLevel != nil {
		app.logLevel.Set(app.cli.Log.Level)
		slog.SetLogLoggerLevel(app.cli.Log.Level)
	}

	cfg := config.NewConfig(app.ctx.FS, app.cli.ConfigFile)
	if err := cfg.Load(); err != nil {
		return err
	}
	cfg.SetDefaults()
	app.ctx.Config = cfg
	app.cli.ApplyConfig(cfg)

	app.ctx.Logger.Debug("running command", "command", app.cli.Command(), "config_file", cfg.Path())

	if err := app.cli.Execute(app.ctx); err != nil {
		return err
	}

	return nil
}

// defaultConfigFile returns the path of the configuration file in the user's
// XDG configuration directory.
func defaultConfigFile(name string, env actx.Environment) string {
	configHome := env.Get("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, name, "config.json")
}

type noEnv struct{}

func (noEnv) Get(string) string { return "" }

func (noEnv) Set(string, string) error { return nil }
