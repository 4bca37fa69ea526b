package main

import (
	"context"
	"errors"
	"fmt"

	"runcat/internal/core/controller"
	"runcat/internal/core/model"
	"runcat/internal/platform"
	"runcat/internal/storage"
	"runcat/internal/ui/animation"
	"runcat/internal/ui/preferences"
	"runcat/internal/ui/tray"
	"runcat/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	options := rootOptions{}

	cmd := &cobra.Command{
		Use:           "runcat",
		Short:         "A tray cat that runs as fast as your CPU works",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(options.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTray(cmd.Context(), options.configPath)
		},
	}

	cmd.PersistentFlags().StringVar(&options.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&options.configPath, "config", storage.DefaultPath(), "settings file")
	cmd.AddCommand(newAutostartCommand(platform.NewService()))

	return cmd
}

func configureLogging(level string) error {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	log.SetLevel(parsed)
	log.SetReportTimestamp(true)
	log.SetPrefix("runcat")
	return nil
}

func runTray(ctx context.Context, configPath string) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Warn("another cat is already running", "err", err)
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(configPath)
	if err != nil {
		log.Warn("falling back to default settings", "path", configPath, "err", err)
	}
	log.Debug("settings loaded", "path", configPath, "settings", settings)

	icons, err := animation.LoadIconSet(resources.CatFrame, resources.FrameCount)
	if err != nil {
		return err
	}

	fyneApp := app.NewWithID("io.github.runcat")
	fyneApp.SetIcon(resources.Logo())
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return errors.New("system tray unsupported on this platform")
	}

	cat := controller.New(settings.ControllerConfig(), controller.Options{FrameCount: icons.FrameCount()}, platform.NewMetricsProvider())

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		cat.UpdateConfig(settings.ControllerConfig())
		log.Info("settings updated",
			"sleeping_threshold", settings.SleepingThreshold,
			"min_duration", settings.AnimationMinDuration,
			"max_duration", settings.AnimationMaxDuration,
			"hdd_indicator", settings.HDDActivityIndicator)
	})

	trayManager := tray.New(desktopApp, version, tray.Callbacks{
		OnSettings: prefsWindow.Show,
		OnClose: func() {
			log.Info("close requested")
			fyneApp.Quit()
		},
	})
	trayManager.SetIcon(icons.Frame(model.StatusNormal, 0))

	player := animation.NewPlayer(icons,
		func(sprite fyne.Resource) {
			fyne.Do(func() { trayManager.SetIcon(sprite) })
		},
		func(tooltip string) {
			fyne.Do(func() { trayManager.SetStatus(tooltip) })
		},
	)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	fyneApp.Lifecycle().SetOnStarted(func() {
		go player.Run(runCtx, cat.Subscribe(1))
		cat.Start(runCtx)
		log.Info("cat started", "frames", icons.FrameCount())
	})

	finished := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			log.Info("signal received, closing")
			fyne.Do(fyneApp.Quit)
		case <-finished:
		}
	}()

	fyneApp.Run()
	close(finished)
	cat.Stop()

	if err := storage.SaveSettings(configPath, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	log.Info("settings saved", "path", configPath)
	return nil
}
