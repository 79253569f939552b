package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/carbon-cli/internal/emission"
	"github.com/sells-group/carbon-cli/internal/model"
	"github.com/sells-group/carbon-cli/internal/tabular"
)

// reportResponse is the body of POST /api/report.
type reportResponse struct {
	Totals    model.Totals                      `json:"totals"`
	Details   map[model.Category][]model.Detail `json:"details"`
	Chart     []emission.Series                 `json:"chart"`
	Unmatched []model.Miss                      `json:"unmatched"`
}

type errorResponse struct {
	Error     string       `json:"error"`
	Unmatched []model.Miss `json:"unmatched,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.calc.Catalog().Data())
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	entries, ok := s.decodeEntries(w, r)
	if !ok {
		return
	}

	report := s.aggregate(entries)
	if s.opts.Strict {
		if err := emission.Strict(report); err != nil {
			zap.L().Warn("server: strict report rejected", zap.Error(err))
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error:     err.Error(),
				Unmatched: report.Unmatched,
				RequestID: middleware.GetReqID(r.Context()),
			})
			return
		}
	}

	unmatched := report.Unmatched
	if unmatched == nil {
		unmatched = []model.Miss{}
	}
	chart := emission.ChartSeries(report)
	if chart == nil {
		chart = []emission.Series{}
	}
	writeJSON(w, http.StatusOK, reportResponse{
		Totals:    report.Totals,
		Details:   report.Details,
		Chart:     chart,
		Unmatched: unmatched,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := tabular.FormatXLSX
	if q := r.URL.Query().Get("format"); q != "" {
		f, err := tabular.ParseFormat(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		format = f
	}

	entries, ok := s.decodeEntries(w, r)
	if !ok {
		return
	}

	data, err := s.exporter.Export(entries, format, tabular.XLSXOptions{SheetName: s.opts.SheetName})
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.metrics.exportsTotal.WithLabelValues(string(format)).Inc()

	name := tabular.Filename(r.URL.Query().Get("label"), format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.opts.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, `form field "file" is required`)
		return
	}
	defer file.Close() //nolint:errcheck

	format, err := uploadFormat(r.FormValue("format"), header.Filename)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		writeError(w, http.StatusBadRequest, "could not read upload")
		return
	}

	entries, err := s.importer.Import(buf.Bytes(), format, tabular.XLSXOptions{SheetName: r.FormValue("sheet")})
	if err != nil {
		s.metrics.importsTotal.WithLabelValues(string(format), "error").Inc()
		zap.L().Warn("server: import failed",
			zap.String("filename", header.Filename),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.metrics.importsTotal.WithLabelValues(string(format), "ok").Inc()
	s.metrics.importedEntries.Add(float64(entries.Len()))

	writeJSON(w, http.StatusOK, entries)
}

// uploadFormat takes an explicit format field over the file extension.
func uploadFormat(field, filename string) (tabular.Format, error) {
	if strings.TrimSpace(field) != "" {
		return tabular.ParseFormat(field)
	}
	return tabular.FormatFromFilename(filename)
}

func (s *Server) decodeEntries(w http.ResponseWriter, r *http.Request) (model.Entries, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)

	var entries model.Entries
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return model.Entries{}, false
	}
	return entries, true
}

func (s *Server) aggregate(entries model.Entries) model.Report {
	report := s.calc.Aggregate(entries)
	s.metrics.reportsTotal.Inc()
	for _, m := range report.Unmatched {
		s.metrics.unmatchedTotal.WithLabelValues(string(m.Category)).Inc()
	}
	return report
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	zap.L().Error("server: request failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(eris.Wrap(err, "server: handle request")),
	)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Debug("server: write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
