package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"

	"github.com/prosecheck/prosecheck/config"
	"github.com/prosecheck/prosecheck/internal/buffer"
	"github.com/prosecheck/prosecheck/internal/checker"
	"github.com/prosecheck/prosecheck/internal/checker/dupword"
	"github.com/prosecheck/prosecheck/internal/metric"
	"github.com/prosecheck/prosecheck/internal/util"
)

// proseExts are the file extensions scanned when a directory is given.
var proseExts = []string{".md", ".markdown", ".txt", ".rst", ".adoc"}

func newCheckCmd() *cobra.Command {
	var (
		configPath string
		only       []string
		start      int
		end        int
	)

	cmd := &cobra.Command{
		Use:   "check [files or dirs...]",
		Short: "scan files (or stdin) and report style issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			checkers, err := buildCheckers(cfg, only)
			if err != nil {
				return err
			}

			buffers, err := gatherBuffers(args)
			if err != nil {
				return err
			}

			total := 0
			for _, buf := range buffers {
				n, err := runCheckers(cmd.OutOrStdout(), checkers, buf, start, end)
				if err != nil {
					return err
				}
				total += n
			}

			if total > 0 {
				log.Infof("found %d style issues", total)
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file")
	cmd.Flags().StringSliceVar(&only, "checkers", nil, "checkers to run (default all)")
	cmd.Flags().IntVar(&start, "start", -1, "start offset of the scan range (default whole document)")
	cmd.Flags().IntVar(&end, "end", -1, "end offset of the scan range (default whole document)")
	return cmd
}

// gatherBuffers loads the requested inputs. Without arguments it reads stdin;
// directories are walked for prose files.
func gatherBuffers(args []string) ([]*buffer.Buffer, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []*buffer.Buffer{buffer.New("<stdin>", string(data))}, nil
	}

	var buffers []*buffer.Buffer
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		paths := []string{arg}
		if info.IsDir() {
			paths, err = util.FindFileWithExt(arg, proseExts)
			if err != nil {
				return nil, err
			}
		}

		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			buffers = append(buffers, buffer.New(path, string(data)))
		}
	}
	return buffers, nil
}

// runCheckers runs every checker over buf and writes the report to w. It
// returns the number of issues found.
func runCheckers(w io.Writer, checkers []checker.Checker, buf *buffer.Buffer, start, end int) (int, error) {
	total := 0
	for _, c := range checkers {
		a := checker.Agent{
			Buffer: buf,
			Start:  start,
			End:    end,
		}
		issues, err := c.Check(a)
		if err != nil {
			return total, fmt.Errorf("[%s] check failed: %w", c.Name(), err)
		}

		for _, issue := range issues {
			fmt.Fprintf(w, "%s:%d:%d: %s %s\n",
				issue.File, issue.Line, issue.Column, checkerTag(c.Name()), issue.Message)
		}
		if c.Name() == "dupword" {
			fmt.Fprintf(w, "%s: %s\n", buf.Name(), dupword.ScanCompleteNotice)
		}

		metric.IncIssueCounter(buf.Name(), c.Name(), float64(len(issues)))
		total += len(issues)
	}
	return total, nil
}

var tagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

func checkerTag(name string) string {
	tag := "[" + name + "]"
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return tagStyle.Render(tag)
	}
	return tag
}
