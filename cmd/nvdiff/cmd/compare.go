package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/nvdiff/foundation/core/log"
	"github.com/msto63/nvdiff/internal/compare"
	"github.com/msto63/nvdiff/internal/dictionary"
	"github.com/msto63/nvdiff/internal/dump"
	"github.com/msto63/nvdiff/internal/report"
)

// compareFlags holds the flags of the root comparison
type compareFlags struct {
	mode       string
	format     string
	dictionary string
	color      string
}

func addCompareFlags(cmd *cobra.Command, c *cli) {
	c.compare = &compareFlags{}
	cmd.Flags().StringVarP(&c.compare.mode, "type", "t", "", "comparison type: present, missing, both (p, m, b)")
	cmd.Flags().StringVarP(&c.compare.format, "format", "f", "", "output format: interleaved, sequential, count (i, s, c), yaml, json")
	addLookupFlag(cmd, &c.compare.dictionary)
	cmd.Flags().StringVar(&c.compare.color, "color", "", "colorize output: auto, always, never")
}

// addLookupFlag registers the dictionary path flag shared by several commands
func addLookupFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "lookup", "l", "", "dictionary file with item descriptions (default nv.txt)")
}

// orDefault returns the flag value when set, the configured value otherwise
func orDefault(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}

func (c *cli) runCompare(cmd *cobra.Command, args []string) error {
	mode, err := compare.ParseMode(orDefault(c.compare.mode, c.cfg.Compare.Mode))
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(orDefault(c.compare.format, c.cfg.Compare.Format))
	if err != nil {
		return err
	}
	color, err := report.ParseColorMode(orDefault(c.compare.color, c.cfg.Compare.Color))
	if err != nil {
		return err
	}

	if err := checkFilesExist(cmd.ErrOrStderr(), args...); err != nil {
		return err
	}

	left, right, err := dump.NewLoader(c.logger).LoadPair(args[0], args[1])
	if err != nil {
		c.logger.Debug("load failed", log.Fields{"error": err.Error()})
		return reportLoadErrors(cmd.ErrOrStderr(), err)
	}

	pairs := compare.Compare(left.Items, right.Items, mode)
	c.logger.Debug("comparison done", log.Fields{
		"mode":  mode.String(),
		"pairs": len(pairs),
	})

	if dict := c.loadDictionary(cmd, c.compare.dictionary); dict != nil {
		n := compare.Enrich(pairs, dict)
		c.logger.Debug("pairs annotated", log.Fields{"annotated": n})
	}

	w := report.NewWriter(cmd.OutOrStdout(), report.Options{
		LeftName:  left.Name,
		RightName: right.Name,
		LeftPath:  left.Path,
		RightPath: right.Path,
		Mode:      mode,
		Color:     color,
		RunID:     c.runID,
	})
	return w.Write(format, pairs)
}

// loadDictionary reads the dictionary named by flag or config. A failure
// only disables annotation; it is logged as a warning when the path was
// given explicitly.
func (c *cli) loadDictionary(cmd *cobra.Command, flag string) *dictionary.Dictionary {
	path := orDefault(flag, c.cfg.Compare.Dictionary)
	if path == "" {
		return nil
	}

	dict, err := dictionary.Load(path)
	if err != nil {
		fields := log.Fields{"path": path}
		if cmd.Flags().Changed("lookup") {
			c.logger.WarnWithErr("dictionary not loaded, descriptions disabled", err, fields)
		} else {
			c.logger.Debug("dictionary not loaded: "+err.Error(), fields)
		}
		return nil
	}

	c.logger.Debug("dictionary loaded", log.Fields{"path": path, "entries": dict.Len()})
	return dict
}
