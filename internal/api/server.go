// Package api exposes the pack generator over HTTP: a form page, a
// generate endpoint, and per-format export downloads.
package api

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/powerdash/iqpack/internal/config"
	"github.com/powerdash/iqpack/internal/export"
	"github.com/powerdash/iqpack/internal/generation"
	"github.com/powerdash/iqpack/internal/ingestion"
	"github.com/powerdash/iqpack/internal/models"
	"github.com/powerdash/iqpack/internal/preview"
)

//go:embed web/index.html
var webFS embed.FS

const (
	maxUploadBytes  = 10 << 20
	generateTimeout = 120 * time.Second
)

type Server struct {
	gen   *generation.Generator
	cfg   *config.Config
	store *packStore
}

// storedPack keeps a generated pack in memory so the export endpoints
// can re-render it without another model call.
type storedPack struct {
	Pack     models.Pack
	HTML     string
	Warnings []string
}

type packStore struct {
	mu    sync.Mutex
	packs map[string]storedPack
}

func newStore() *packStore {
	return &packStore{packs: make(map[string]storedPack)}
}

func (s *packStore) set(id string, p storedPack) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packs[id] = p
}

func (s *packStore) get(id string) (storedPack, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.packs[id]
	return p, ok
}

func New(gen *generation.Generator, cfg *config.Config) (*Server, error) {
	if gen == nil {
		return nil, errors.New("generator required")
	}
	return &Server{gen: gen, cfg: cfg, store: newStore()}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("GET /packs/{id}", s.handleGetPack)
	mux.HandleFunc("GET /packs/{id}/export/{format}", s.handleExport)
	return logMiddleware(mux)
}

// --- Handlers ---

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "form page unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, jdUpload, err := s.parseGenerateRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.RoleTitle) == "" {
		respondError(w, http.StatusBadRequest, "role_title is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	var warnings []string

	// Uploaded file beats the pasted JD text
	if jdUpload != nil {
		text, err := ingestion.ExtractText(jdUpload.name, jdUpload.data)
		if err != nil {
			log.Printf("JD extraction failed for %s: %v", jdUpload.name, err)
			warnings = append(warnings,
				fmt.Sprintf("Could not read the job description file: %v", err))
		} else {
			req.JDContext = text
		}
	}
	if summary, warning := s.gen.SummarizeJD(ctx, req.JDContext); summary != "" || warning != "" {
		req.JDContext = summary
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	pack, genWarnings, err := s.gen.Generate(ctx, req)
	if err != nil {
		log.Printf("Generation failed: %v", err)
		respondError(w, http.StatusBadGateway, "pack generation failed")
		return
	}
	warnings = append(warnings, genWarnings...)

	html, err := preview.Render(pack)
	if err != nil {
		log.Printf("Preview render failed: %v", err)
		respondError(w, http.StatusInternalServerError, "preview rendering failed")
		return
	}

	id := uuid.NewString()
	s.store.set(id, storedPack{Pack: pack, HTML: html, Warnings: warnings})

	writeJSON(w, http.StatusOK, models.GenerateResponse{
		PackID:      id,
		Pack:        pack,
		HTMLPreview: html,
		Warnings:    warnings,
	})
}

func (s *Server) handleGetPack(w http.ResponseWriter, r *http.Request) {
	stored, ok := s.store.get(r.PathValue("id"))
	if !ok {
		respondError(w, http.StatusNotFound, "pack not found")
		return
	}
	writeJSON(w, http.StatusOK, models.GenerateResponse{
		PackID:      r.PathValue("id"),
		Pack:        stored.Pack,
		HTMLPreview: stored.HTML,
		Warnings:    stored.Warnings,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	stored, ok := s.store.get(r.PathValue("id"))
	if !ok {
		respondError(w, http.StatusNotFound, "pack not found")
		return
	}

	opts := export.Options{
		TenantName:     stored.Pack.Inputs.TenantName,
		ClientLogoURL:  stored.Pack.Inputs.ClientLogoURL,
		FooterLogoPath: s.cfg.FooterLogoPath(),
	}

	var (
		data        []byte
		contentType string
		err         error
	)
	format := r.PathValue("format")
	switch format {
	case "pdf":
		data, err = export.PackToPDF(stored.Pack, opts)
		contentType = "application/pdf"
	case "docx":
		data, err = export.PackToDOCX(stored.Pack, opts)
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "xlsx":
		data, err = export.PackToXLSX(stored.Pack, opts)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		respondError(w, http.StatusBadRequest, "unknown export format: "+format)
		return
	}
	if err != nil {
		log.Printf("Export to %s failed: %v", format, err)
		respondError(w, http.StatusInternalServerError, "export failed")
		return
	}

	filename := stored.Pack.Slug + "." + format
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

// --- Request parsing ---

type jdUpload struct {
	name string
	data []byte
}

// parseGenerateRequest accepts either a JSON body or a (multipart)
// form post from the built-in page. Only form posts can carry a JD
// file upload.
func (s *Server) parseGenerateRequest(r *http.Request) (models.GenerateRequest, *jdUpload, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req models.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, nil, fmt.Errorf("invalid JSON body: %w", err)
		}
		s.applyDefaults(&req)
		return req, nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return models.GenerateRequest{}, nil, fmt.Errorf("invalid form: %w", err)
	}

	req := models.GenerateRequest{
		RoleTitle:        r.FormValue("role_title"),
		Level:            r.FormValue("level"),
		Department:       r.FormValue("department"),
		InterviewType:    r.FormValue("interview_type"),
		DurationMins:     formInt(r, "duration_mins", 60),
		Competencies:     splitList(r.FormValue("competencies")),
		NumCore:          formInt(r, "num_core", 4),
		NumTechnical:     formInt(r, "num_technical", 3),
		NumCompetency:    formInt(r, "num_competency", 5),
		IncludeFollowups: formBool(r, "include_followups"),
		IncludeGood:      formBool(r, "include_good_looks_like"),
		IncludeScoring:   formBool(r, "include_scoring"),
		HouseGuidance:    r.FormValue("house_guidance"),
		Language:         r.FormValue("language"),
		Jurisdiction:     r.FormValue("jurisdiction"),
		JDContext:        r.FormValue("jd_context"),
		TenantName:       r.FormValue("tenant_name"),
		ClientLogoURL:    r.FormValue("client_logo_url"),
	}
	s.applyDefaults(&req)

	var upload *jdUpload
	if file, header, err := r.FormFile("jd_file"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return req, nil, fmt.Errorf("failed to read upload: %w", err)
		}
		if len(data) > 0 {
			upload = &jdUpload{name: header.Filename, data: data}
		}
	}

	return req, upload, nil
}

func (s *Server) applyDefaults(req *models.GenerateRequest) {
	if req.InterviewType == "" {
		req.InterviewType = "Mixed"
	}
	if req.DurationMins <= 0 {
		req.DurationMins = 60
	}
	if req.TenantName == "" {
		req.TenantName = s.cfg.TenantName
	}
	if req.ClientLogoURL == "" {
		req.ClientLogoURL = s.cfg.ClientLogoURL
	}
}

// --- Helpers ---

func formInt(r *http.Request, name string, fallback int) int {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func formBool(r *http.Request, name string) bool {
	switch strings.ToLower(r.FormValue(name)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// splitList parses a competency textarea: one entry per line, commas
// also accepted.
func splitList(raw string) []string {
	var out []string
	for _, line := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	}) {
		if item := strings.TrimSpace(line); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
