package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/nvdiff/foundation/core/error"
	"github.com/msto63/nvdiff/foundation/core/log"
	"github.com/msto63/nvdiff/foundation/utils/filex"
	"github.com/msto63/nvdiff/internal/dump"
	"github.com/msto63/nvdiff/pkg/core/config"
	"github.com/msto63/nvdiff/pkg/core/logging"
	"github.com/msto63/nvdiff/pkg/core/version"
)

// errReported marks failures whose diagnostics were already printed
var errReported = errors.New("reported")

// cli holds the state shared by all commands of one invocation
type cli struct {
	// Persistent flags
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string

	compare *compareFlags

	// Set up before any command runs
	cfg     *config.Config
	cfgPath string
	logger  *log.Logger
	runID   string
}

// Execute runs the command line and prints errors that were not reported
// by the command itself
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "nvdiff [flags] FILE1 FILE2",
		Short: "Compare two NV item dumps",
		Long: `nvdiff parses two NV item dumps and lists the items that differ.

Comparison types:
  present  items found in both dumps whose status or data differ
  missing  items found in only one of the dumps
  both     all of the above

Item codes are annotated with a description and category when the
lookup file (default nv.txt) can be read.`,
		Args:              exactFiles(2),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default: ./nvdiff.toml or ~/.config/nvdiff/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "verbose output (debug logging)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	root.PersistentFlags().StringVar(&c.logFormat, "log-format", "", "log format: text, console, json, logfmt")

	addCompareFlags(root, c)
	root.RunE = c.runCompare

	root.AddCommand(
		newShowCmd(c),
		newLookupCmd(c),
		newBrowseCmd(c),
		newVersionCmd(),
	)

	return root
}

// setup loads the configuration and builds the logger
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, path, err := config.LoadOrDefault(c.cfgFile)
	if err != nil {
		return err
	}
	c.cfg, c.cfgPath = cfg, path

	level := cfg.General.LogLevel
	if c.verbose {
		level = "debug"
	}
	if c.logLevel != "" {
		if _, err := log.ParseLevel(c.logLevel); err != nil {
			return mdwerror.New("invalid log level").
				WithCode(mdwerror.CodeInvalidInput).
				WithDetail("value", c.logLevel)
		}
		level = c.logLevel
	}

	format := cfg.General.LogFormat
	if c.logFormat != "" {
		if _, err := log.ParseFormat(c.logFormat); err != nil {
			return mdwerror.New("invalid log format").
				WithCode(mdwerror.CodeInvalidInput).
				WithDetail("value", c.logFormat)
		}
		format = c.logFormat
	}

	c.runID = logging.NewRunID()
	c.logger = logging.NewLogger(logging.LoggerConfig{
		Name:          version.Name,
		Level:         level,
		Format:        format,
		Output:        cmd.ErrOrStderr(),
		EnableCaller:  level == "trace",
		CorrelationID: c.runID,
	})

	c.logger.Debug("configuration loaded", log.Fields{
		"config":  c.cfgPath,
		"command": cmd.Name(),
	})
	return nil
}

// exactFiles checks the positional file count and shows usage on mismatch
func exactFiles(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == n {
			return nil
		}
		_ = cmd.Usage()
		return mdwerror.New(fmt.Sprintf("requires exactly %d dump files, got %d", n, len(args))).
			WithCode(mdwerror.CodeInvalidInput)
	}
}

// checkFilesExist prints "nvdiff: FILE not found" for every missing path
func checkFilesExist(w io.Writer, paths ...string) error {
	missing := false
	for _, p := range paths {
		if !filex.Exists(p) {
			fmt.Fprintf(w, "%s: %s not found\n", version.Name, p)
			missing = true
		}
	}
	if missing {
		return errReported
	}
	return nil
}

// reportLoadErrors prints "NAME: REASON" for every file that failed to load
func reportLoadErrors(w io.Writer, err error) error {
	for _, e := range dump.FileErrors(err) {
		name := "?"
		if path, ok := dump.FileOf(e); ok {
			name = filepath.Base(path)
		}
		fmt.Fprintf(w, "%s: %s\n", name, reason(e))
	}
	return errReported
}

// reason returns the message of a coded error without its cause chain
func reason(err error) string {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.Message()
	}
	return err.Error()
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s: %v\n", version.Name, err)
}
