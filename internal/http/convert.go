package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/mrlokans/vaultport/internal/exporters"
	"github.com/mrlokans/vaultport/internal/importers"
)

// Headers carrying the conversion summary next to the converted body.
const (
	HeaderRecordsProcessed = "X-Records-Processed"
	HeaderRecordsFailed    = "X-Records-Failed"
)

// ConvertController converts uploaded exports into canonical records.
//
// The export is read from the "export_file" field of a multipart form or,
// for any other content type, from the raw request body. The file type comes
// from the "format" query parameter, falling back to the uploaded file's
// extension. The "output" query parameter selects json (default) or csv.
type ConvertController struct {
	maxUploadBytes int64
	logger         *charmlog.Logger
}

func NewConvertController(maxUploadBytes int64, logger *charmlog.Logger) *ConvertController {
	return &ConvertController{maxUploadBytes: maxUploadBytes, logger: logger}
}

func (c *ConvertController) Convert(ctx *gin.Context) {
	provider, err := importers.ParseProvider(ctx.Param("provider"))
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxUploadBytes)
	data, filename, err := readExport(ctx)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(ctx, http.StatusRequestEntityTooLarge, fmt.Sprintf("export exceeds %d bytes", tooLarge.Limit))
			return
		}
		respondBadRequest(ctx, err.Error())
		return
	}

	format := ctx.Query("format")
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	}

	output := ctx.DefaultQuery("output", "json")
	var buf bytes.Buffer
	exporter, err := exporters.NewForFormat(output, &buf, ctx.Query("pretty") == "true")
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	converter, err := importers.NewConverter(provider, string(data), importers.Format(strings.ToLower(format)))
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	result, err := importers.NewPipeline(exporter).Import(converter)
	if err != nil {
		respondConvertError(ctx, c.logger, err)
		return
	}

	c.logger.Info("converted export", "provider", provider, "format", format, "records", result.RecordsProcessed)

	ctx.Header(HeaderRecordsProcessed, strconv.Itoa(result.RecordsProcessed))
	ctx.Header(HeaderRecordsFailed, strconv.Itoa(result.RecordsFailed))
	ctx.Data(http.StatusOK, contentType(output), buf.Bytes())
}

func readExport(ctx *gin.Context) ([]byte, string, error) {
	if strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		file, header, err := ctx.Request.FormFile("export_file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, "", err
			}
			return nil, "", errors.New("no export file provided")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read export file: %w", err)
		}
		return data, header.Filename, nil
	}

	data, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return nil, "", err
	}
	return data, "", nil
}

func respondConvertError(ctx *gin.Context, logger *charmlog.Logger, err error) {
	switch {
	case errors.Is(err, importers.ErrUnsupportedFormat), errors.Is(err, importers.ErrUnsupportedProvider):
		respondBadRequest(ctx, err.Error())
	case errors.Is(err, importers.ErrMalformedJSON), errors.Is(err, importers.ErrUnreadableCSV):
		logger.Warn("rejected export", "err", err)
		respondError(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		respondInternalError(ctx, logger, err, "convert export")
	}
}

func contentType(output string) string {
	if strings.EqualFold(output, "csv") {
		return "text/csv; charset=utf-8"
	}
	return "application/json; charset=utf-8"
}
