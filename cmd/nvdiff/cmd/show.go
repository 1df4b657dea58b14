package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/msto63/nvdiff/foundation/core/log"
	"github.com/msto63/nvdiff/internal/compare"
	"github.com/msto63/nvdiff/internal/dump"
	"github.com/msto63/nvdiff/internal/report"
)

type showFlags struct {
	dictionary string
	color      string
}

func newShowCmd(c *cli) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the items of a single dump",
		Long: `Parses one dump and prints every item in file order, annotated
from the lookup file when it can be read. Useful to check that a dump
is accepted before comparing it.`,
		Args: exactFiles(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd, args[0], flags)
		},
	}

	addLookupFlag(cmd, &flags.dictionary)
	cmd.Flags().StringVar(&flags.color, "color", "", "colorize output: auto, always, never")
	return cmd
}

func (c *cli) runShow(cmd *cobra.Command, path string, flags *showFlags) error {
	color, err := report.ParseColorMode(orDefault(flags.color, c.cfg.Compare.Color))
	if err != nil {
		return err
	}

	if err := checkFilesExist(cmd.ErrOrStderr(), path); err != nil {
		return err
	}

	d, err := dump.NewLoader(c.logger).Load(path)
	if err != nil {
		c.logger.Debug("load failed", log.Fields{"error": err.Error()})
		return reportLoadErrors(cmd.ErrOrStderr(), err)
	}

	records := slices.Collect(d.Items.Values())
	compare.EnrichRecords(records, c.loadDictionary(cmd, flags.dictionary))

	title := fmt.Sprintf("[%s]: %d items", d.Name, len(records))
	if d.Header.HasSize {
		title += fmt.Sprintf(", item size %d", d.Header.ItemSize)
	}

	w := report.NewWriter(cmd.OutOrStdout(), report.Options{
		LeftName: d.Name,
		LeftPath: d.Path,
		Color:    color,
		RunID:    c.runID,
	})
	return w.WriteRecords(title, records)
}
