package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/nvdiff/foundation/core/error"
	"github.com/msto63/nvdiff/internal/dictionary"
)

func newLookupCmd(c *cli) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "lookup CODE...",
		Short: "Print dictionary entries for item codes",
		Long: `Looks up item codes in the dictionary file. Codes are decimal or
hexadecimal with a 0x prefix.

Examples:
  nvdiff lookup 453
  nvdiff lookup 0x01C5 10 -l items.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLookup(cmd, orDefault(path, c.cfg.Compare.Dictionary), args)
		},
	}

	addLookupFlag(cmd, &path)
	return cmd
}

func (c *cli) runLookup(cmd *cobra.Command, path string, args []string) error {
	codes := make([]uint32, 0, len(args))
	for _, arg := range args {
		code, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return mdwerror.New("invalid item code").
				WithCode(mdwerror.CodeInvalidInput).
				WithDetail("value", arg)
		}
		codes = append(codes, uint32(code))
	}

	dict, err := dictionary.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, code := range codes {
		entry, ok := dict.Find(code)
		if !ok {
			fmt.Fprintf(out, "%04d (0x%04X) - not found\n", code, code)
			continue
		}
		fmt.Fprintf(out, "%04d (0x%04X) - %s, %s\n", code, code, entry.Description, entry.Category)
	}
	return nil
}
