package app

import (
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone/v2"

	"github.com/cascadeui/cascade/internal/backend"
	"github.com/cascadeui/cascade/internal/debug"
	"github.com/cascadeui/cascade/internal/logging"
	"github.com/cascadeui/cascade/internal/menu"
	"github.com/cascadeui/cascade/internal/session"
	"github.com/cascadeui/cascade/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	MenuFile        string
	Width           int
	Height          int
	Padding         int
	HoverOpenDelay  time.Duration
	HoverCloseDelay time.Duration
	ReloadInterval  time.Duration
	ShowFooter      bool
	Verbose         bool
	Debug           bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	def := menu.DefaultDefinition()
	if cfg.MenuFile != "" {
		loaded, err := menu.LoadDefinition(cfg.MenuFile)
		if err != nil {
			return fmt.Errorf("load menu definition: %w", err)
		}
		def = loaded
	}

	sess, err := session.New(def, cfg.HoverOpenDelay, cfg.HoverCloseDelay)
	if err != nil {
		return fmt.Errorf("build menu tree: %w", err)
	}
	defer sess.Teardown()

	var watcher *backend.Watcher
	if cfg.MenuFile != "" {
		watcher = backend.NewWatcher(cfg.MenuFile, cfg.ReloadInterval)
		defer func() {
			watcher.Stop()
			watcher.Wait()
		}()
	}

	zone.NewGlobal()
	defer zone.Close()

	model := ui.NewModel(sess, cfg.Width, cfg.Height, cfg.Padding, cfg.ShowFooter, cfg.Verbose, watcher, cfg.MenuFile)
	program := tea.NewProgram(model)
	_, err = program.Run()

	if cfg.Debug {
		logging.Trace("debug.snapshot", map[string]interface{}{
			"state": debug.New(sess).String(),
		})
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
