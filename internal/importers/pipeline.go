package importers

import (
	"github.com/mrlokans/vaultport/internal/entities"
	"github.com/mrlokans/vaultport/internal/exporters"
)

// Source provides metadata about the export a converter read from.
type Source struct {
	Provider Provider
	Format   Format
}

// Converter transforms a provider export into canonical records.
//
// Implementations:
//   - BitwardenConverter - Bitwarden JSON and CSV exports
//   - ProtonPassConverter - ProtonPass JSON and CSV exports
type Converter interface {
	Convert() ([]entities.Record, Source, error)
}

// BitwardenConverter converts Bitwarden export text.
type BitwardenConverter struct {
	Data   string
	Format Format
}

// NewBitwardenConverter creates a converter for Bitwarden export text.
func NewBitwardenConverter(data string, format Format) *BitwardenConverter {
	return &BitwardenConverter{Data: data, Format: format}
}

// Convert implements Converter interface.
func (c *BitwardenConverter) Convert() ([]entities.Record, Source, error) {
	records, err := ParseBitwarden(c.Data, c.Format)
	return records, Source{Provider: ProviderBitwarden, Format: c.Format}, err
}

// ProtonPassConverter converts ProtonPass export text.
type ProtonPassConverter struct {
	Data   string
	Format Format
}

// NewProtonPassConverter creates a converter for ProtonPass export text.
func NewProtonPassConverter(data string, format Format) *ProtonPassConverter {
	return &ProtonPassConverter{Data: data, Format: format}
}

// Convert implements Converter interface.
func (c *ProtonPassConverter) Convert() ([]entities.Record, Source, error) {
	records, err := ParseProtonPass(c.Data, c.Format)
	return records, Source{Provider: ProviderProtonPass, Format: c.Format}, err
}

// NewConverter picks the converter for provider.
func NewConverter(provider Provider, data string, format Format) (Converter, error) {
	switch provider {
	case ProviderBitwarden:
		return NewBitwardenConverter(data, format), nil
	case ProviderProtonPass:
		return NewProtonPassConverter(data, format), nil
	default:
		_, err := ParseProvider(string(provider))
		return nil, err
	}
}

// ImportResult contains the outcome of an import operation.
type ImportResult struct {
	Source           Source
	RecordsProcessed int
	RecordsFailed    int
	ByType           map[entities.RecordType]int
}

// Pipeline handles the common import workflow:
// convert → hand the canonical records to the exporter.
type Pipeline struct {
	exporter exporters.RecordExporter
}

// NewPipeline creates a new import pipeline with the given exporter.
func NewPipeline(exporter exporters.RecordExporter) *Pipeline {
	return &Pipeline{exporter: exporter}
}

// Import converts the export and passes the records to the exporter.
// An export without items still reaches the exporter so that the output
// stays well formed.
func (p *Pipeline) Import(converter Converter) (ImportResult, error) {
	records, source, err := converter.Convert()
	if err != nil {
		return ImportResult{Source: source}, err
	}

	exportResult, err := p.exporter.Export(records)
	if err != nil {
		return ImportResult{Source: source}, err
	}

	return ImportResult{
		Source:           source,
		RecordsProcessed: exportResult.RecordsProcessed,
		RecordsFailed:    exportResult.RecordsFailed,
		ByType:           exportResult.ByType,
	}, nil
}

// Compile-time interface checks
var (
	_ Converter = (*BitwardenConverter)(nil)
	_ Converter = (*ProtonPassConverter)(nil)
)
