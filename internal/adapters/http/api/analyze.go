// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	service "github.com/giftbench/giftbench/internal/app"
	"github.com/giftbench/giftbench/internal/domain/donortable"
)

// AnalyzeHandler handles spreadsheet submissions.
type AnalyzeHandler struct {
	analyzer       Analyzer
	maxUploadBytes int64
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(analyzer Analyzer, maxUploadBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:       analyzer,
		maxUploadBytes: maxUploadBytes,
	}
}

// HandleAnalyze handles POST /analyze requests: one multipart upload under
// the "file" field, one complete JSON report back. CSV and XLSX are chosen
// by file extension.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze"

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload_too_large", newKind(op, ErrUploadTooLarge))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing_file", newKind(op, ErrMissingFile))
		return
	}
	defer func() { _ = file.Close() }()

	table, err := readTable(file, header.Filename)
	if err != nil {
		if errors.Is(err, ErrUnsupportedTable) {
			writeError(w, http.StatusBadRequest, "unsupported_format", err)
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}

	report, err := h.analyzer.Analyze(r.Context(), table)
	if err != nil {
		if errors.Is(err, service.ErrNoDonationColumns) {
			// Structural failure: one terminal message, no partial panel.
			writeError(w, http.StatusUnprocessableEntity, "no_donation_columns", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// readTable picks the parser from the upload's file extension.
func readTable(file io.Reader, filename string) (*donortable.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return donortable.ReadCSV(file)
	case ".tsv":
		return donortable.ReadCSV(file, donortable.WithDelimiter('\t'))
	case ".xlsx":
		return donortable.ReadXLSX(file)
	default:
		return nil, newKind("api.read_table", ErrUnsupportedTable)
	}
}
