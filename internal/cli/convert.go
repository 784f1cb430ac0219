package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/mrlokans/vaultport/internal/config"
	"github.com/mrlokans/vaultport/internal/entities"
	"github.com/mrlokans/vaultport/internal/exporters"
	"github.com/mrlokans/vaultport/internal/importers"
	"github.com/mrlokans/vaultport/internal/logging"
	"github.com/spf13/cobra"
)

// ConvertCommand converts a password manager export into canonical records.
type ConvertCommand struct {
	ExportPath string
	Config     *config.Config
	DryRun     bool

	Stdout io.Writer
	Stderr io.Writer
}

func NewConvertCommand() *ConvertCommand {
	return &ConvertCommand{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Command builds the cobra command bound to this ConvertCommand.
func (c *ConvertCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <export-file>",
		Short: "Convert a Bitwarden or ProtonPass export into canonical records",
		Long: `Convert reads a Bitwarden or ProtonPass export (JSON or CSV) and writes
one canonical record per exported item.

Examples:
  vaultport convert bitwarden_export.json
  vaultport convert --provider protonpass --format csv pass_export.csv
  vaultport convert --output-format csv --dry-run bitwarden_export.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ParseArgs(cmd, args); err != nil {
				return err
			}
			return c.Run()
		},
	}

	cmd.Flags().String("provider", config.DefaultProvider, "Export provider: bitwarden or protonpass")
	cmd.Flags().String("format", "", "Export file type: json or csv (default: from file extension)")
	cmd.Flags().StringP("output", "o", "", "Write output to this file instead of stdout")
	cmd.Flags().String("output-format", config.DefaultOutputFormat, "Output format: json (records) or csv (summary)")
	cmd.Flags().Bool("pretty", true, "Indent JSON output")
	cmd.Flags().BoolVar(&c.DryRun, "dry-run", false, "Convert and report without writing output")

	return cmd
}

// ParseArgs resolves configuration from the environment and the parsed flags.
func (c *ConvertCommand) ParseArgs(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewConfigWithFlags(cmd.Flags())
	if err != nil {
		return err
	}
	c.Config = cfg
	c.ExportPath = args[0]
	c.Stdout = cmd.OutOrStdout()
	c.Stderr = cmd.ErrOrStderr()

	if c.Config.Import.Format == "" {
		c.Config.Import.Format = formatFromExtension(c.ExportPath)
	}
	return nil
}

func (c *ConvertCommand) Run() error {
	logger := logging.New(c.Stderr, c.Config.Log)

	provider, err := importers.ParseProvider(c.Config.Import.Provider)
	if err != nil {
		return err
	}
	format := importers.Format(strings.ToLower(c.Config.Import.Format))

	data, err := os.ReadFile(c.ExportPath)
	if err != nil {
		return fmt.Errorf("failed to read export file: %w", err)
	}

	logger.Info("converting export", "file", c.ExportPath, "provider", provider, "format", format)

	var out bytes.Buffer
	exporter, err := exporters.NewForFormat(c.Config.Output.Format, &out, c.Config.Output.Pretty)
	if err != nil {
		return err
	}

	converter, err := importers.NewConverter(provider, string(data), format)
	if err != nil {
		return err
	}

	result, err := importers.NewPipeline(exporter).Import(converter)
	if err != nil {
		return fmt.Errorf("failed to convert %s export: %w", provider, err)
	}

	logSummary(logger, result)
	if c.DryRun {
		logger.Info("dry run complete, nothing was written")
		return nil
	}
	return c.writeOutput(out.Bytes())
}

// writeOutput runs only after a successful conversion, so an existing
// output file is left untouched when the export cannot be converted.
func (c *ConvertCommand) writeOutput(payload []byte) error {
	if c.Config.Output.Path == "" {
		if _, err := c.Stdout.Write(payload); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	f, err := os.Create(c.Config.Output.Path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if _, err := f.Write(payload); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// formatFromExtension guesses the export type from the file name. Unknown
// extensions are passed on and rejected by the dispatcher.
func formatFromExtension(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func logSummary(logger *charmlog.Logger, result importers.ImportResult) {
	types := make([]string, 0, len(result.ByType))
	for t := range result.ByType {
		types = append(types, string(t))
	}
	sort.Strings(types)

	for _, t := range types {
		logger.Debug("records by type", "type", t, "count", result.ByType[entities.RecordType(t)])
	}
	logger.Info("conversion complete", "records", result.RecordsProcessed, "failed", result.RecordsFailed)
}
