package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lexhub-io/lexadmin/pkg/model"
)

var (
	flags = struct {
		ConfigFile string
		APIBaseURL string
		Token      string
	}{}

	root = &cobra.Command{
		Use:   "lexadmin",
		Short: "Lexadmin is a terminal console for administering the legal records platform",
		Args:  cobra.MaximumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The alt screen eats stdout, so debug logging goes to a file.
			if path := os.Getenv("LEXADMIN_DEBUG"); path != "" {
				f, err := tea.LogToFile(path, "lexadmin")
				if err != nil {
					return err
				}
				defer f.Close()
			}

			m, err := model.NewFromConfigFile(flags.ConfigFile, model.Overrides{
				APIBaseURL: flags.APIBaseURL,
				Token:      flags.Token,
			})
			if err != nil {
				return err
			}

			p := tea.NewProgram(m, tea.WithAltScreen())
			return p.Start()
		},
	}
)

func init() {
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "~/.lexadmin.yaml", "configuration file")
	root.PersistentFlags().StringVar(&flags.APIBaseURL, "api", "", "platform API base URL (overrides config)")
	root.PersistentFlags().StringVar(&flags.Token, "token", "", "bearer token for the platform API (overrides config)")
}

func Execute() {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
