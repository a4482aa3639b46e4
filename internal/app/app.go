// Package app runs the vimode demo: a terminal loop that feeds every key
// through an input.Vi and shows the mode, the pending sequence and the
// last emitted edit event.
package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dshills/vimode/internal/config"
	"github.com/dshills/vimode/internal/config/watcher"
	"github.com/dshills/vimode/internal/edit"
	"github.com/dshills/vimode/internal/input"
	"github.com/dshills/vimode/internal/input/macro"
	"github.com/dshills/vimode/internal/input/mode"
	"github.com/dshills/vimode/internal/logging"
)

// RecordRegister is the register the -record session captures into.
const RecordRegister = 'q'

// Screen is the terminal surface the event loop draws on.
type Screen interface {
	Init() error
	Fini()
	Events(ctx context.Context) <-chan input.Event
	DrawLines(lines []string)
	SetCursor(x, y int, style mode.CursorStyle)
}

// Application owns the interpreter and everything wired around it.
// The Vi is only touched from the goroutine running Run.
type Application struct {
	mu sync.Mutex

	cfg     config.Config
	logger  *logging.Logger
	logFile io.Closer

	vi       *input.Vi
	recorder *macro.Recorder
	watcher  *watcher.Watcher
	screen   Screen

	// reloads carries changed keymap paths from the watcher to the loop.
	reloads chan string

	last edit.Event

	// ctx is cancelled by Shutdown and bounds Run and Replay.
	ctx    context.Context
	cancel context.CancelFunc

	running  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML config file. Empty means the default path,
	// which may be missing.
	ConfigPath string

	// Flags holds command-line overrides registered with
	// config.RegisterFlags. Nil means none.
	Flags *flag.FlagSet

	// RecordPath, when set, records every input event and saves the
	// recording there on shutdown.
	RecordPath string

	// EnvFile is an optional dotenv file read after the process
	// environment.
	EnvFile string

	// LookupEnv reads environment variables. Nil means os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// New creates an Application from opts. Config, keymap and script errors
// are returned as *InitError.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		reloads: make(chan string, 1),
	}
	app.ctx, app.cancel = context.WithCancel(context.Background())

	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg

	if err := app.openLogger(); err != nil {
		return nil, &InitError{Component: "logger", Err: err}
	}

	viOpts := []input.Option{
		input.WithMode(cfg.Mode()),
		input.WithLogger(app.logger.WithComponent("vi")),
	}
	if opts.RecordPath != "" {
		app.recorder = macro.NewRecorder()
		if err := app.recorder.StartRecording(RecordRegister); err != nil {
			app.closeLog()
			return nil, &InitError{Component: "recorder", Err: err}
		}
		viOpts = append(viOpts, input.WithHook(app.recorder))
	}
	app.vi = input.NewVi(viOpts...)

	if err := app.loadBindings(); err != nil {
		app.closeLog()
		return nil, err
	}

	if cfg.Watch && cfg.KeymapFile != "" {
		if err := app.startWatcher(); err != nil {
			app.closeLog()
			return nil, &InitError{Component: "watcher", Err: err}
		}
	}

	app.logger.WithFields(map[string]any{
		"keymap": cfg.KeymapFile,
		"script": cfg.ScriptFile,
	}).Info("vimode started in %s mode", app.vi.Mode())
	return app, nil
}

// LoadConfig resolves the configuration: the file, then VIMODE_*
// environment variables (process, then EnvFile), then flags.
func LoadConfig(opts Options) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFile(opts.ConfigPath)
	} else {
		path, perr := config.DefaultPath()
		if perr != nil {
			cfg = config.Default()
		} else {
			cfg, err = config.LoadOptional(path)
		}
	}
	if err != nil {
		return config.Config{}, err
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if opts.EnvFile != "" {
		if lookup, err = config.WithEnvFile(opts.EnvFile, lookup); err != nil {
			return config.Config{}, err
		}
	}
	if err := config.NewEnvLoaderWithLookup(config.EnvPrefix, lookup).Apply(&cfg); err != nil {
		return config.Config{}, err
	}

	if opts.Flags != nil {
		if err := cfg.ApplyFlags(opts.Flags); err != nil {
			return config.Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openLogger writes logs to the configured file. Without one, logging is
// discarded since the terminal belongs to the screen.
func (app *Application) openLogger() error {
	if app.cfg.LogFile == "" {
		app.logger = logging.NewNullLogger()
		return nil
	}

	f, err := os.OpenFile(app.cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	app.logFile = f

	cfg := logging.DefaultLoggerConfig()
	cfg.Level = app.cfg.Level()
	cfg.Output = f
	app.logger = logging.NewLogger(cfg)
	return nil
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		app.logFile.Close()
		app.logFile = nil
	}
}

// Config returns the resolved configuration.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Vi returns the interpreter.
func (app *Application) Vi() *input.Vi {
	return app.vi
}

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger {
	return app.logger
}

// SetScreen sets the surface Run draws on.
func (app *Application) SetScreen(s Screen) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.screen = s
	return nil
}

// IsRunning reports whether Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Run initializes the screen and processes events until the user quits,
// the screen closes or Shutdown is called. Quitting returns ErrQuit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	screen := app.screen
	app.mu.Unlock()

	if screen == nil {
		return &InitError{Component: "screen", Err: ErrNoScreen}
	}
	if err := screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(app.ctx)
	defer cancel()

	return app.eventLoop(ctx, screen)
}

// Shutdown stops the event loop and releases resources. Safe to call more
// than once and without Run.
func (app *Application) Shutdown() {
	app.stopOnce.Do(func() {
		app.cancel()
		close(app.done)
		app.shutdown()
	})
}

// shutdown performs cleanup in reverse initialization order.
func (app *Application) shutdown() {
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			app.logger.Warn("closing watcher: %v", err)
		}
	}

	if app.recorder != nil {
		if err := app.saveRecording(); err != nil {
			app.logger.Error("saving recording to %s: %v", app.opts.RecordPath, err)
		}
	}

	app.logger.Info("vimode stopped")
	app.closeLog()
}

// saveRecording stops the recorder and writes the result to RecordPath.
// An empty session writes nothing.
func (app *Application) saveRecording() error {
	rec := app.recorder.StopRecording()
	if rec == nil {
		return nil
	}
	if err := macro.SaveRecording(app.opts.RecordPath, rec); err != nil {
		return err
	}
	app.logger.Info("saved %d events to %s", rec.Len(), app.opts.RecordPath)
	return nil
}
