// Package main provides the CLI entry point for chartnote.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chartnote-go/internal/config"
	"github.com/ukaji3/chartnote-go/internal/logger"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/output"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/templates"
)

var (
	cfg *config.Config
	log *logger.Logger

	outputPath   string
	outputFormat string
	pretty       bool
	logLevel     string
	logFormat    string
	templatesDir string
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chartnote",
		Short: "Analyze and synthesize D3 chart scripts in markdown notes",
		Long: `chartnote recovers an editable chart description (type, data, size,
colour) from D3 chart scripts, regenerates scripts from templates, and scans
notes vaults for chart code blocks.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.StringVar(&outputFormat, "format", "", "Output format: json, yaml (default from CHARTNOTE_OUTPUT_FORMAT)")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "Log format: text, json")
	flags.StringVar(&templatesDir, "templates-dir", "", "Directory of user YAML templates")

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newSynthCmd(),
		newTemplatesCmd(),
		newScanCmd(),
		newWatchCmd(),
		newRenderCmd(),
		newImportCmd(),
		newExportCmd(),
		newEditCmd(),
	)
	return rootCmd
}

// setup loads configuration, applies flag overrides, configures logging and
// loads user templates.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	if outputFormat != "" {
		c.OutputFormat = outputFormat
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if logFormat != "" {
		c.LogFormat = logFormat
	}
	if templatesDir != "" {
		c.TemplatesDir = templatesDir
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	log = logger.Component("cli")

	if cfg.TemplatesDir != "" {
		n, err := templates.Default().LoadDir(cfg.TemplatesDir)
		if err != nil {
			log.Warn("Some user templates could not be loaded", logger.Fields{"dir": cfg.TemplatesDir, "error": err.Error()})
		}
		log.Debug("User templates loaded", logger.Fields{"dir": cfg.TemplatesDir, "count": n})
	}
	return nil
}

// readInput reads a file argument, or stdin when it is missing or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", args[0])
		}
		return nil, err
	}
	return data, nil
}

// writeResult serializes v in the configured format to --output or stdout.
func writeResult(cmd *cobra.Command, v any) error {
	format, err := output.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return err
	}
	if outputPath == "" {
		return output.Write(cmd.OutOrStdout(), v, format, pretty)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	defer f.Close()
	return output.Write(f, v, format, pretty)
}

// writeText writes s to --output or stdout, ending with a newline.
func writeText(cmd *cobra.Command, s string) error {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	if outputPath == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), s)
		return err
	}
	if err := os.WriteFile(outputPath, []byte(s), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
