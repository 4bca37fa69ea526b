package main

import (
	"fmt"
	"os"

	"runcat/internal/platform"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newAutostartCommand(service platform.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Manage starting RunCat at login",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Start RunCat at login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			execPath, err := os.Executable()
			if err != nil {
				return fmt.Errorf("resolve executable: %w", err)
			}
			if err := service.EnableAutostart(appName, execPath); err != nil {
				return err
			}
			log.Info("autostart enabled", "exec", execPath)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Stop starting RunCat at login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := service.DisableAutostart(appName); err != nil {
				return err
			}
			log.Info("autostart disabled")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Report whether RunCat starts at login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := service.AutostartEnabled(appName)
			if err != nil {
				return err
			}
			state := "disabled"
			if enabled {
				state = "enabled"
			}
			fmt.Fprintln(cmd.OutOrStdout(), "autostart", state)
			return nil
		},
	})

	return cmd
}
