/*
 Copyright 2024 Qiniu Cloud (qiniu.com).

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prosecheck/prosecheck/config"
	"github.com/prosecheck/prosecheck/internal/checker"
	"github.com/prosecheck/prosecheck/internal/version"

	// checkers import
	_ "github.com/prosecheck/prosecheck/internal/checker/dupword"
	_ "github.com/prosecheck/prosecheck/internal/checker/passive"
	_ "github.com/prosecheck/prosecheck/internal/checker/weasel"
)

func main() {
	root := &cobra.Command{
		Use:           "prosecheck",
		Short:         "prosecheck scans English prose for weasel words, passive voice and duplicate words",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCmd(), newEditCmd(), newServeCmd(), newVersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the prosecheck version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Version())
		},
	}
}

// buildCheckers instantiates the requested checkers from cfg. With an empty
// only list, every registered and enabled checker is built.
func buildCheckers(cfg config.Config, only []string) ([]checker.Checker, error) {
	names := checker.Names()
	if len(only) > 0 {
		names = only
	}

	var out []checker.Checker
	for _, name := range names {
		f := checker.Factory(name)
		if f == nil {
			return nil, fmt.Errorf("unknown checker: %s", name)
		}
		ccfg := cfg.Checkers[name]
		if !ccfg.Enabled() {
			continue
		}
		c, err := f(ccfg)
		if err != nil {
			return nil, fmt.Errorf("failed to build checker %s: %w", name, err)
		}
		out = append(out, c)
	}
	return out, nil
}
