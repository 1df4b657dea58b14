// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive diff viewer
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/nvdiff/foundation/core/error"
	"github.com/msto63/nvdiff/foundation/utils/filex"
	"github.com/msto63/nvdiff/internal/compare"
	"github.com/msto63/nvdiff/internal/tui/diffviewer"
	"github.com/msto63/nvdiff/pkg/core/logging"
	"github.com/msto63/nvdiff/pkg/core/version"
)

type browseFlags struct {
	mode       string
	dictionary string
	logFile    string
	noWatch    bool
}

func newBrowseCmd(c *cli) *cobra.Command {
	flags := &browseFlags{}

	cmd := &cobra.Command{
		Use:     "browse FILE1 FILE2",
		Aliases: []string{"view", "tui"},
		Short:   "Browse the differences of two dumps interactively",
		Long: `Starts the interactive diff viewer.

Both dumps are shown side by side, one difference per block. The view
reloads when either file is written. Log output is written to the
configured log file while the viewer is open.

Keys:
  1 / 2 / 3   Toggle changed / left-only / right-only items
  0           Show all kinds
  p / m / b   Comparison type present / missing / both
  r           Reload both files
  g / G       Jump to top / bottom
  PgUp/PgDn   Scroll
  q / Ctrl+C  Quit`,
		Args: exactFiles(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.mode, "type", "t", "", "initial comparison type: present, missing, both")
	addLookupFlag(cmd, &flags.dictionary)
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "write logs to this file while the viewer runs")
	cmd.Flags().BoolVar(&flags.noWatch, "no-watch", false, "do not reload when a dump file changes")
	return cmd
}

func (c *cli) runBrowse(cmd *cobra.Command, args []string, flags *browseFlags) error {
	if !isTerminal(os.Stdout) {
		return mdwerror.New("browse needs an interactive terminal, use the compare output instead").
			WithCode(mdwerror.CodeInvalidInput)
	}

	mode, err := compare.ParseMode(orDefault(flags.mode, c.cfg.Compare.Mode))
	if err != nil {
		return err
	}

	if err := checkFilesExist(cmd.ErrOrStderr(), args...); err != nil {
		return err
	}

	var logOutput io.Writer = io.Discard
	if path := orDefault(flags.logFile, c.cfg.Browse.LogFile); path != "" {
		f, err := filex.OpenAppend(path, 0o644)
		if err != nil {
			return mdwerror.New("could not open log file").
				WithCode(mdwerror.CodeIO).
				WithCause(err).
				WithDetail("file", path)
		}
		defer f.Close()
		logOutput = f
	}

	logger := logging.NewLogger(logging.LoggerConfig{
		Name:          version.Name,
		Level:         c.logger.GetLevel().String(),
		Format:        orDefault(c.logFormat, c.cfg.General.LogFormat),
		Output:        logOutput,
		CorrelationID: c.runID,
	})

	return diffviewer.Run(diffviewer.Config{
		LeftPath:       args[0],
		RightPath:      args[1],
		DictionaryPath: orDefault(flags.dictionary, c.cfg.Compare.Dictionary),
		Mode:           mode,
		Version:        version.Version,
		Logger:         logger,
		Watch:          !flags.noWatch,
	})
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
