package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gtools-app/gtools/internal/app"
	"github.com/gtools-app/gtools/internal/config"
	"github.com/gtools-app/gtools/internal/logging"
	"github.com/gtools-app/gtools/internal/menu"
	"github.com/gtools-app/gtools/internal/models"
	"github.com/gtools-app/gtools/internal/statusitem"
	"github.com/gtools-app/gtools/internal/window"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the GTools menu in the status bar",
	Long: `Show the GTools menu in the status bar.

This blocks until Quit is chosen from the menu or the process receives
SIGINT/SIGTERM. Only one instance runs at a time.`,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := config.EnsureGlobalDir(); err != nil {
		return fmt.Errorf("failed to create global directory: %w", err)
	}

	running, info, err := config.IsInstanceRunning()
	if err != nil {
		return fmt.Errorf("failed to check instance status: %w", err)
	}
	if running {
		return fmt.Errorf("GTools is already running (PID %d)", info.PID)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	log := logging.New(debugFlag || settings.Log.Debug)
	defer func() { _ = log.Sync() }()

	store, err := menu.NewDefaultDataManager(log.Named("menu"))
	if err != nil {
		return err
	}

	a := app.New(settings, store, app.Deps{
		Backend: statusitem.NewSystrayBackend(),
		Opener:  window.SystemOpener,
		Log:     log,
	})

	onStart := func() {
		if err := config.SaveInstanceInfo(models.NewInstanceInfo(os.Getpid())); err != nil {
			log.Warnw("failed to write instance info", "error", err)
		}
		log.Infow("GTools started", "pid", os.Getpid(), "menu", store.Path())

		// Quit the status bar loop on SIGINT/SIGTERM
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Infow("received signal, shutting down", "signal", sig.String())
			a.Quit()
		}()
	}

	onExit := func() {
		if err := config.RemoveInstanceInfo(); err != nil {
			log.Warnw("failed to remove instance info", "error", err)
		}
		log.Info("GTools stopped")
	}

	// This blocks the main goroutine until the status bar loop exits.
	a.Run(onStart, onExit)
	return nil
}
