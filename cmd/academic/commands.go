package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"academicevents/internal/adapters/console"
	"academicevents/pkg/prompt"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "academic",
		Short:         "Administer academic events, participants and registrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default academic.toml, or $ACADEMIC_CONFIG)")

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := a.db.Ping(cmd.Context()); err != nil {
				fmt.Fprintln(out, prompt.ErrorMessage(a.tr, a.tr.Locale(), err))
				return err
			}
			fmt.Fprintln(out, a.tr.T("", "app.connected", nil))
			return a.shell(cmd.InOrStdin(), out).Run(cmd.Context())
		},
	}

	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "Check the database connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			if err := a.db.Ping(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), prompt.ErrorMessage(a.tr, a.tr.Locale(), err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.tr.T("", "app.connected", nil))
			return nil
		},
	}

	reportCmd := &cobra.Command{
		Use:       "report [events|participants|registrations|revenue|capacity]",
		Short:     "Print a summary report",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: console.ReportNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			if err := a.shell(os.Stdin, cmd.OutOrStdout()).PrintReport(cmd.Context(), args[0]); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), prompt.ErrorMessage(a.tr, a.tr.Locale(), err))
				return err
			}
			return nil
		},
	}

	root.AddCommand(shellCmd, pingCmd, reportCmd)
	root.RunE = shellCmd.RunE
	return root
}
