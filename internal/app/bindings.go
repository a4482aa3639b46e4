package app

import (
	"github.com/dshills/vimode/internal/config/watcher"
	"github.com/dshills/vimode/internal/input/keymap"
	"github.com/dshills/vimode/internal/input/mode"
	"github.com/dshills/vimode/internal/plugin/lua"
)

// loadBindings rebuilds both tables from the defaults, applies the keymap
// file and then runs the init script against the interpreter.
func (app *Application) loadBindings() error {
	normal := keymap.DefaultNormal()
	insert := keymap.DefaultInsert()

	if path := app.cfg.KeymapFile; path != "" {
		file, err := keymap.NewLoader().LoadFile(path)
		if err != nil {
			return &InitError{Component: "keymap", Err: err}
		}
		if err := file.Apply(normal, insert); err != nil {
			return &InitError{Component: "keymap", Err: err}
		}
		app.logger.Debug("loaded %d keymap entries from %s", file.Len(), path)
	}
	app.vi.SetKeybindings(insert, normal)

	if path := app.cfg.ScriptFile; path != "" {
		if err := lua.RunFile(path, app.vi, lua.WithLogger(app.logger)); err != nil {
			return &InitError{Component: "script", Err: err}
		}
		app.logger.Debug("ran script %s", path)
	}
	return nil
}

// reload reapplies bindings after the keymap file changed. A broken file
// keeps the current tables.
func (app *Application) reload(path string) {
	normal := app.vi.Keybindings(mode.Normal).Clone()
	insert := app.vi.Keybindings(mode.Insert).Clone()

	if err := app.loadBindings(); err != nil {
		app.logger.Warn("reloading %s: %v", path, err)
		app.vi.SetKeybindings(insert, normal)
		return
	}
	app.logger.Info("reloaded %s", path)
}

// startWatcher watches the keymap file and forwards changes to the loop.
func (app *Application) startWatcher() error {
	w, err := watcher.New(watcher.WithLogger(app.logger))
	if err != nil {
		return err
	}
	if err := w.Watch(app.cfg.KeymapFile); err != nil {
		w.Close()
		return err
	}

	w.OnChange(func(ev watcher.Event) {
		if ev.Op == watcher.OpRemove {
			return
		}
		select {
		case app.reloads <- ev.Path:
		default:
		}
	})
	app.watcher = w
	return nil
}
