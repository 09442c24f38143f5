package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mathieu/cv-analyzer/internal/extraction"
	"github.com/mathieu/cv-analyzer/internal/fetch"
	"github.com/mathieu/cv-analyzer/internal/matching"
	"github.com/mathieu/cv-analyzer/internal/report"
	"github.com/mathieu/cv-analyzer/internal/types"
)

// AnalyzeResponse is the response for POST /analyze: the held result's
// ID plus the full match record.
type AnalyzeResponse struct {
	ID     string             `json:"id"`
	Result *types.MatchResult `json:"result"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// handleAnalyze receives a CV upload and a job posting (pasted text or
// URL), runs the matching engine and stores the result for later
// retrieval and export.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.error(w, http.StatusRequestEntityTooLarge, fmt.Errorf("upload too large or malformed: %w", err))
		return
	}

	file, header, err := r.FormFile("cv")
	if err != nil {
		s.error(w, http.StatusBadRequest, &ErrMissingDocument{Field: "cv"})
		return
	}
	defer func() { _ = file.Close() }()

	if !extraction.Allowed(header.Filename) {
		s.error(w, http.StatusBadRequest, &ErrUnsupportedFile{Filename: header.Filename})
		return
	}

	jobText := r.FormValue("job")
	jobURL := r.FormValue("job_url")
	if jobText == "" && jobURL == "" {
		s.error(w, http.StatusBadRequest, &ErrMissingDocument{Field: "job or job_url"})
		return
	}

	junior := r.FormValue("profile") != "senior"

	// CV extraction and job-posting fetch are independent; run them
	// concurrently.
	var cvText string
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		data, err := io.ReadAll(file)
		if err != nil {
			return fmt.Errorf("failed to read upload: %w", err)
		}
		cvText, err = extraction.Text(header.Filename, data)
		return err
	})
	if jobURL != "" {
		g.Go(func() error {
			opts := fetch.DefaultOptions()
			opts.UseBrowser = s.cfg.UseBrowser
			text, err := fetch.JobPosting(ctx, jobURL, opts)
			if err != nil {
				return err
			}
			jobText = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.error(w, HTTPStatus(err), err)
		return
	}

	req := types.AnalyzeRequest{CVText: cvText, JobText: jobText, Junior: junior}
	if err := req.Validate(); err != nil {
		if len(strings.TrimSpace(cvText)) < types.MinTextLength {
			s.error(w, http.StatusBadRequest, &ErrTextTooShort{Field: "cv", Length: len(cvText)})
		} else {
			s.error(w, http.StatusBadRequest, &ErrTextTooShort{Field: "job", Length: len(jobText)})
		}
		return
	}

	result := matching.Analyze(req.CVText, req.JobText, req.Junior)
	id := s.store.Put(result, header.Filename)

	s.log.Info("analysis complete",
		zap.String("id", id.String()),
		zap.String("cv", header.Filename),
		zap.Float64("score", result.Score),
	)

	s.json(w, http.StatusOK, AnalyzeResponse{ID: id.String(), Result: result})
}

// handleGetResult re-reads a held result.
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.error(w, http.StatusBadRequest, fmt.Errorf("invalid result id: %w", err))
		return
	}

	entry, ok := s.store.Get(id)
	if !ok {
		notFound := &ErrResultNotFound{ID: id}
		s.error(w, HTTPStatus(notFound), notFound)
		return
	}

	s.json(w, http.StatusOK, AnalyzeResponse{ID: id.String(), Result: entry.Result})
}

// handleReport exports a held result as a PDF document.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.error(w, http.StatusBadRequest, fmt.Errorf("invalid result id: %w", err))
		return
	}

	entry, ok := s.store.Get(id)
	if !ok {
		notFound := &ErrResultNotFound{ID: id}
		s.error(w, HTTPStatus(notFound), notFound)
		return
	}

	pdf, err := report.PDF(r.Context(), s.cfg.ReportTitle, entry.Filename, entry.Result)
	if err != nil {
		s.error(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportFilename(entry.Filename)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.json(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"results": s.store.Len(),
	})
}

// reportFilename derives the download name from the CV filename.
func reportFilename(cvFilename string) string {
	stem := cvFilename
	if i := strings.LastIndex(stem, "."); i > 0 {
		stem = stem[:i]
	}
	return "rapport_analyse_" + stem + ".pdf"
}

func (s *Server) json(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) error(w http.ResponseWriter, status int, err error) {
	s.log.Warn("request failed", zap.Int("status", status), zap.Error(err))
	s.json(w, status, errorResponse{Error: err.Error()})
}
