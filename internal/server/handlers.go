package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/colorcraft/colorcraft/internal/colour"
	"github.com/colorcraft/colorcraft/internal/extract"
	"github.com/colorcraft/colorcraft/internal/harmony"
	imageutil "github.com/colorcraft/colorcraft/internal/image"
	"github.com/colorcraft/colorcraft/internal/suggest"
	"github.com/colorcraft/colorcraft/internal/version"
	"github.com/colorcraft/colorcraft/internal/wcag"
)

// colorsRequest is the JSON body shared by the palette analysis
// endpoints.
type colorsRequest struct {
	Colors []string `json:"colors"`
}

// combinedAnalysis pairs harmony and accessibility results for a single
// palette.
type combinedAnalysis struct {
	ColorTheory   *harmony.Analysis `json:"color_theory"`
	Accessibility *wcag.Analysis    `json:"accessibility"`
}

type extractResponse struct {
	Success bool            `json:"success"`
	Colors  []colour.Colour `json:"colors"`
	Count   int             `json:"count"`
}

type analyzeResponse struct {
	Success  bool              `json:"success"`
	Analysis *combinedAnalysis `json:"analysis"`
}

type suggestResponse struct {
	Success     bool          `json:"success"`
	Suggestions []suggest.Set `json:"suggestions"`
}

type fullAnalysisResponse struct {
	Success  bool              `json:"success"`
	Colors   []colour.Colour   `json:"colors"`
	Count    int               `json:"count"`
	Analysis *combinedAnalysis `json:"analysis"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "colorcraft",
		"version": version.Short(),
	})
}

// handleExtract accepts a multipart image upload and returns the
// extracted palette.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	palette, err := s.extractFromUpload(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, extractResponse{
		Success: true,
		Colors:  palette.Colors,
		Count:   palette.Len(),
	})
}

// handleAnalyze runs harmony and accessibility analysis over a palette
// supplied as hex strings.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	palette, err := s.paletteFromBody(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	analysis, err := analyzePalette(palette)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, analyzeResponse{
		Success:  true,
		Analysis: analysis,
	})
}

// handleSuggest returns harmony-based suggestion sets, one per supplied
// colour.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	palette, err := s.paletteFromBody(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sets, err := suggest.ForPalette(palette)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, suggestResponse{
		Success:     true,
		Suggestions: sets,
	})
}

// handleFullAnalysis extracts a palette from an uploaded image and
// analyses it in one round trip.
func (s *Server) handleFullAnalysis(w http.ResponseWriter, r *http.Request) {
	palette, err := s.extractFromUpload(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	analysis, err := analyzePalette(palette)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, fullAnalysisResponse{
		Success:  true,
		Colors:   palette.Colors,
		Count:    palette.Len(),
		Analysis: analysis,
	})
}

// extractFromUpload reads the multipart "file" part, prepares a pixel
// sample and runs extraction. The optional n_colors and seed form
// fields tune the run.
func (s *Server) extractFromUpload(r *http.Request) (*colour.Palette, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		return nil, badRequestf("could not parse upload: %v", err)
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, badRequestf("missing file upload: %v", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, badRequestf("could not read upload: %v", err)
	}

	cfg := extract.DefaultConfig(s.cfg.DefaultColorCount)
	if v := r.FormValue("n_colors"); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil {
			return nil, badRequestf("invalid n_colors %q", v)
		}
		cfg.Count = count
	}
	if v := r.FormValue("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, badRequestf("invalid seed %q", v)
		}
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	img, err := imageutil.Decode(data)
	if err != nil {
		return nil, badRequestf("unsupported or corrupt image: %v", err)
	}

	return extract.Palette(imageutil.Prepare(img), cfg)
}

// paletteFromBody decodes the shared {"colors": [...]} request body.
func (s *Server) paletteFromBody(r *http.Request) (*colour.Palette, error) {
	var req colorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, badRequestf("invalid request body: %v", err)
	}
	if len(req.Colors) == 0 {
		return nil, badRequestf("colors must not be empty")
	}
	return colour.ParsePalette(req.Colors)
}

func analyzePalette(p *colour.Palette) (*combinedAnalysis, error) {
	theory, err := harmony.Analyze(p)
	if err != nil {
		return nil, err
	}
	access, err := wcag.Analyze(p)
	if err != nil {
		return nil, err
	}
	return &combinedAnalysis{
		ColorTheory:   theory,
		Accessibility: access,
	}, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps engine error kinds onto HTTP statuses. Validation and
// input failures are client errors; anything else is a 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	var requestErr *requestError
	var extractErr *extract.Error
	switch {
	case errors.As(err, &requestErr),
		errors.Is(err, colour.ErrInvalidFormat),
		errors.Is(err, colour.ErrInsufficientColors),
		errors.Is(err, extract.ErrCountOutOfRange),
		errors.As(err, &extractErr):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	s.writeJSON(w, status, errorResponse{Success: false, Error: err.Error()})
}
