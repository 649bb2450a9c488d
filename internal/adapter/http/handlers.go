package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/couchcryptid/nws-alerts-viewer/internal/presenter"
)

// handlePage runs the pipeline for the submitted area and renders the viewer.
// Every page load is a fresh fetch.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("area")
	result, err := s.runner.Run(r.Context(), input)
	view := presenter.BuildView(input, result, err)

	var buf bytes.Buffer
	if rerr := presenter.RenderHTML(&buf, presenter.NewPage(view)); rerr != nil {
		s.logger.Error("render page failed", "error", rerr)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if view.IsError() {
		status = http.StatusBadGateway
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// handleDownload runs the pipeline and serves the CSV export as an attachment.
// No artifact is produced on a fetch error or an empty result.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("area")
	result, err := s.runner.Run(r.Context(), input)
	view := presenter.BuildView(input, result, err)

	switch view.State {
	case presenter.StateError:
		http.Error(w, view.Message, http.StatusBadGateway)
	case presenter.StateEmpty:
		w.WriteHeader(http.StatusNoContent)
	default:
		w.Header().Set("Content-Type", presenter.CSVContentType+"; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", presenter.CSVFilename))
		_, _ = w.Write(view.CSV)
	}
}
