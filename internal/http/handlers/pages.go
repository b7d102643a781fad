package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	Title   string
	Catalog bool
	Data    any
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := pages.ExecuteTemplate(w, name, pageData{Title: title, Catalog: s.catalog, Data: data})
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("failed to render page")
	}
}

// HomeHandler renders the landing page.
func (s *Server) HomeHandler(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "index.html", "Home", nil)
}

// ProductPageHandler renders the static featured product page.
func (s *Server) ProductPageHandler(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "product.html", "Product", nil)
}

func (s *Server) ContactHandler(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "contact.html", "Contact", nil)
}

func (s *Server) SuccessHandler(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "success.html", "Payment successful", nil)
}
