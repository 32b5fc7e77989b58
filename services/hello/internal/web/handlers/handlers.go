package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"

	"github.com/jredh-dev/hello/services/hello/config"
	"github.com/jredh-dev/hello/services/hello/internal/page"
	"github.com/jredh-dev/hello/services/hello/internal/web/templates"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	cfg        config.Config
	log        logrus.FieldLogger
	templates  map[string]*template.Template
	instanceID string
}

// New creates a Handler serving cfg, with parsed templates.
func New(cfg config.Config, log logrus.FieldLogger) (*Handler, error) {
	md := goldmark.New()
	funcs := template.FuncMap{
		"markdown": func(src string) (template.HTML, error) {
			var buf bytes.Buffer
			if err := md.Convert([]byte(src), &buf); err != nil {
				return "", fmt.Errorf("rendering markdown: %w", err)
			}
			// goldmark escapes raw HTML in its default configuration.
			return template.HTML(buf.String()), nil //nolint:gosec
		},
	}

	tmplMap := make(map[string]*template.Template)
	for _, name := range []string{"home.html"} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templates.FS, "base.html", name)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		tmplMap[name] = tmpl
	}

	return &Handler{
		cfg:        cfg,
		log:        log,
		templates:  tmplMap,
		instanceID: uuid.NewString(),
	}, nil
}

// Routes registers the page and API routes on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Home)
	r.Route("/api", func(r chi.Router) {
		r.Get("/version", h.Version)
	})
}

// InstanceID identifies this process in logs and /api/version.
func (h *Handler) InstanceID() string {
	return h.instanceID
}

// Home handles GET / by rendering the page onto a fresh Document.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	var doc page.Document
	page.Render(h.cfg, &doc)
	h.renderTemplate(w, "home.html", &doc)
}

type versionResp struct {
	AppName     string             `json:"app_name"`
	Environment config.Environment `json:"environment"`
	Version     string             `json:"version"`
	GitCommit   string             `json:"git_commit"`
	CommitURL   string             `json:"commit_url"`
	InstanceID  string             `json:"instance_id"`
}

// Version handles GET /api/version
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, http.StatusOK, versionResp{
		AppName:     h.cfg.AppName,
		Environment: h.cfg.Environment,
		Version:     h.cfg.Version,
		GitCommit:   h.cfg.GitCommit,
		CommitURL:   h.cfg.CommitURL(),
		InstanceID:  h.instanceID,
	})
}

func (h *Handler) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	tmpl, ok := h.templates[name]
	if !ok {
		h.log.WithField("template", name).Error("template not found")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Render into a buffer so a failed execution never leaves a half-written page.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		h.log.WithError(err).WithField("template", name).Error("rendering template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
