package websvc

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/mkrupp/catcafe-web/internal/domain"
	context_ "github.com/mkrupp/catcafe-web/internal/infra/context"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames lists the renderable pages; each has a template file of the
// same name sharing the layout template.
//
//nolint:gochecknoglobals
var pageNames = []string{
	"index",
	"register",
	"login",
	"shop",
	"contact",
	"guide",
	"not_found",
}

// pageData carries everything a page template can show. Unused fields stay
// at their zero value for pages that do not need them.
type pageData struct {
	Title       string
	CurrentUser *domain.User
	Flashes     []string

	// Form state for the register/login pages: preserved non-sensitive
	// inputs and field-scoped error messages.
	Form   map[string]string
	Errors map[string]string

	// Entries feeds the shop listing table.
	Entries []domain.CafeEntry
}

func parseTemplates() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))

	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		pages[name] = tmpl
	}

	return pages, nil
}

// render executes the named page template. The body is buffered so a
// template failure can still produce a clean 500 instead of a half-written
// page.
func (ht *HTTPTransport) render(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	page string,
	data *pageData,
) {
	if data == nil {
		data = &pageData{}
	}

	if data.CurrentUser == nil {
		data.CurrentUser, _ = context_.CurrentUserFromContext(r.Context())
	}

	if data.Flashes == nil {
		data.Flashes = ht.sessions.Flashes(w, r)
	}

	var buf bytes.Buffer

	if err := ht.templates[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		ht.log.ErrorContext(r.Context(), "render page failed", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		ht.log.ErrorContext(r.Context(), "write page failed", "page", page, "error", err)
	}
}
