package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/panelkit/confdoc/pkg/cliconfig"
	"github.com/panelkit/confdoc/pkg/configfile"
	"github.com/panelkit/confdoc/pkg/fileaccess"
	"github.com/panelkit/confdoc/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	jsonOutput   bool
	rootDir      string
	logLevelFlag string
	logFileFlag  string

	// Set up by PersistentPreRunE from the layered configuration.
	cfg     *cliconfig.CLIConfig
	logger  *slog.Logger
	store   *fileaccess.Store
	editor  *configfile.Editor
	logSink io.Closer

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "confdoc",
	Short: "confdoc edits game server configuration files",
	Long: `confdoc reads server configuration files (.properties, YAML, JSON and TOML),
shows them as sections of typed entries, and writes edits back in the file's
own format. Files it cannot parse are kept intact and edited as raw text.

Configuration can be provided via flags, CONFDOC_* environment variables,
.confdocrc.yaml in the current directory, or ~/.config/confdoc/config.yaml.`,
	SilenceUsage:      true,
	SilenceErrors:     true, // We handle errors in Run()
	PersistentPreRunE: setup,
}

// Run executes the root command and returns the process exit code.
func Run() int {
	err := rootCmd.Execute()
	if logSink != nil {
		_ = logSink.Close()
	}
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

// Execute runs the CLI and exits. This is called by main.main().
func Execute() {
	os.Exit(Run())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Server directory that file paths are resolved against")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "Also write JSON logs to this file")
}

// setup loads the layered configuration and builds the logger and editor
// shared by all commands.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := cliconfig.LoadAll()
	if err != nil {
		return err
	}
	applyFlags(cmd, c)
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logCfg := logging.Config{
		Level:  logging.ParseLevel(c.LogLevel),
		Format: logging.ParseFormat(c.LogFormat),
		Output: cmd.ErrOrStderr(),
	}
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logCfg.Tee = f
		logSink = f
	}

	cfg = c
	jsonOutput = c.JSON
	logger = logging.New(logCfg)
	store = fileaccess.NewOS(c.Root)
	editor = configfile.NewEditor(store, logger)
	logger.Debug("configuration loaded", "root", c.Root, "viewMode", c.ViewMode, "files", len(c.Files))
	return nil
}

// applyFlags overlays explicitly set persistent flags onto c.
func applyFlags(cmd *cobra.Command, c *cliconfig.CLIConfig) {
	flags := cmd.Flags()
	if flags.Changed("json") {
		c.JSON = jsonOutput
		c.Sources[cliconfig.KeyJSON] = cliconfig.SourceFlag
	}
	if flags.Changed("root") {
		c.Root = rootDir
		c.Sources[cliconfig.KeyRoot] = cliconfig.SourceFlag
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevelFlag
		c.Sources[cliconfig.KeyLogLevel] = cliconfig.SourceFlag
	}
	if flags.Changed("log-file") {
		c.LogFile = logFileFlag
		c.Sources[cliconfig.KeyLogFile] = cliconfig.SourceFlag
	}
}

// targetFiles returns args, or the configured files expanded against the
// store when no args were given.
func targetFiles(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if len(cfg.Files) == 0 {
		return nil, ErrNoFiles
	}
	return editor.Expand(cfg.Files)
}

// initialViewMode is the view mode files open in, honouring --raw.
func initialViewMode(raw bool) configfile.ViewMode {
	if raw {
		return configfile.ViewRaw
	}
	mode, err := configfile.ParseViewMode(cfg.ViewMode)
	if err != nil {
		return configfile.ViewForm
	}
	return mode
}
