package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prosecheck/prosecheck/config"
	"github.com/prosecheck/prosecheck/internal/editor"
	"github.com/prosecheck/prosecheck/internal/highlight"
	"github.com/prosecheck/prosecheck/internal/util"
)

func newEditCmd() *cobra.Command {
	var (
		configPath string
		only       []string
		live       bool
	)

	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "edit a file with live inline style highlighting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			checkers, err := buildCheckers(cfg, only)
			if err != nil {
				return err
			}

			path := args[0]
			content := ""
			if abs, exist := util.FileExists(path); exist {
				data, err := os.ReadFile(abs)
				if err != nil {
					return err
				}
				content = string(data)
			}

			coord := highlight.New(checkers)
			// the global variant makes every buffer opened in this
			// session start highlighted
			coord.SetGlobal(live)

			return editor.Run(path, content, coord)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file")
	cmd.Flags().StringSliceVar(&only, "checkers", nil, "checkers to highlight (default all)")
	cmd.Flags().BoolVar(&live, "live", true, "start with live highlighting enabled")
	return cmd
}
