package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/colorcraft/colorcraft/internal/config"
)

func newTestServer() *Server {
	cfg := &config.Config{
		ListenAddr:              ":0",
		MaxUploadBytes:          10 << 20,
		DefaultColorCount:       5,
		ReadTimeout:             15 * time.Second,
		WriteTimeout:            30 * time.Second,
		GracefulShutdownTimeout: time.Second,
		LogLevel:                "error",
	}
	return New(cfg, hclog.NewNullLogger())
}

// encodePNG builds a PNG with three solid colour bands, enough distinct
// population for a three colour extraction.
func encodePNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 90, 30))
	bands := []color.RGBA{
		{R: 200, G: 30, B: 30, A: 255},
		{R: 30, G: 180, B: 40, A: 255},
		{R: 30, G: 40, B: 200, A: 255},
	}
	for y := 0; y < 30; y++ {
		for x := 0; x < 90; x++ {
			c := bands[x/30]
			// Jitter within a band so clustering has real populations
			// rather than three exact values.
			c.R += uint8(x % 7)
			c.G += uint8(y % 5)
			img.SetRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// multipartImage builds a multipart body with a file part and optional
// extra form fields.
func multipartImage(t *testing.T, data []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "sample.png")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write file part: %v", err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s): %v", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

func TestHealth(t *testing.T) {
	h := newTestServer().Router()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
	if body["service"] != "colorcraft" {
		t.Errorf("service field = %v, want colorcraft", body["service"])
	}
}

func TestAnalyzeColors(t *testing.T) {
	h := newTestServer().Router()

	rec := doJSON(t, h, http.MethodPost, "/api/analyze-colors",
		`{"colors": ["#ff0000", "#00ffff", "#0000ff"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Analysis == nil || resp.Analysis.ColorTheory == nil || resp.Analysis.Accessibility == nil {
		t.Fatal("analysis missing color_theory or accessibility")
	}
	if len(resp.Analysis.ColorTheory.Complementary) == 0 {
		t.Error("red and cyan should be reported complementary")
	}
	if resp.Analysis.Accessibility.Summary.TotalPairs != 3 {
		t.Errorf("TotalPairs = %d, want 3", resp.Analysis.Accessibility.Summary.TotalPairs)
	}
}

func TestAnalyzeColorsBadInput(t *testing.T) {
	h := newTestServer().Router()

	tests := []struct {
		name string
		body string
	}{
		{"invalid hex", `{"colors": ["#ff0000", "nope"]}`},
		{"single color", `{"colors": ["#ff0000"]}`},
		{"empty list", `{"colors": []}`},
		{"malformed json", `{"colors": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/api/analyze-colors", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			body := decodeBody(t, rec)
			if body["success"] != false {
				t.Errorf("success = %v, want false", body["success"])
			}
			if body["error"] == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestSuggestColors(t *testing.T) {
	h := newTestServer().Router()

	rec := doJSON(t, h, http.MethodPost, "/api/suggest-colors",
		`{"colors": ["#ff0000", "#00ff00"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp suggestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Suggestions) != 2 {
		t.Fatalf("got %d suggestion sets, want 2", len(resp.Suggestions))
	}
	for _, set := range resp.Suggestions {
		if len(set.Harmonies) == 0 {
			t.Errorf("set for %s has no harmony groups", set.BaseColor.Hex)
		}
	}
}

func TestExtractColors(t *testing.T) {
	h := newTestServer().Router()

	body, contentType := multipartImage(t, encodePNG(t), map[string]string{"n_colors": "3"})
	req := httptest.NewRequest(http.MethodPost, "/api/extract-colors", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp extractResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 3 || len(resp.Colors) != 3 {
		t.Fatalf("count = %d, colors = %d, want 3", resp.Count, len(resp.Colors))
	}
	for _, c := range resp.Colors {
		if err := c.Validate(); err != nil {
			t.Errorf("extracted colour %s is inconsistent: %v", c.Hex, err)
		}
	}
}

func TestExtractColorsDeterministic(t *testing.T) {
	h := newTestServer().Router()
	data := encodePNG(t)

	run := func() []string {
		body, contentType := multipartImage(t, data, map[string]string{"n_colors": "3", "seed": "7"})
		req := httptest.NewRequest(http.MethodPost, "/api/extract-colors", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		var resp extractResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		hexes := make([]string, len(resp.Colors))
		for i, c := range resp.Colors {
			hexes[i] = c.Hex
		}
		return hexes
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("extraction not deterministic: %v vs %v", first, second)
		}
	}
}

func TestExtractColorsBadInput(t *testing.T) {
	h := newTestServer().Router()

	t.Run("count out of range", func(t *testing.T) {
		body, contentType := multipartImage(t, encodePNG(t), map[string]string{"n_colors": "99"})
		req := httptest.NewRequest(http.MethodPost, "/api/extract-colors", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("not an image", func(t *testing.T) {
		body, contentType := multipartImage(t, []byte("plain text"), nil)
		req := httptest.NewRequest(http.MethodPost, "/api/extract-colors", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("missing file part", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		if err := mw.WriteField("n_colors", "3"); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
		mw.Close()
		req := httptest.NewRequest(http.MethodPost, "/api/extract-colors", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestFullAnalysis(t *testing.T) {
	h := newTestServer().Router()

	body, contentType := multipartImage(t, encodePNG(t), map[string]string{"n_colors": "3"})
	req := httptest.NewRequest(http.MethodPost, "/api/full-analysis", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp fullAnalysisResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Colors) != 3 {
		t.Errorf("got %d colours, want 3", len(resp.Colors))
	}
	if resp.Analysis == nil || resp.Analysis.ColorTheory == nil || resp.Analysis.Accessibility == nil {
		t.Fatal("analysis missing color_theory or accessibility")
	}
	if score := resp.Analysis.ColorTheory.Score; score < 0 || score > 100 {
		t.Errorf("score = %d, outside [0, 100]", score)
	}
}
