package admin

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{"join": strings.Join}

var (
	indexTmpl = template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/index.html"))
	listTmpl  = template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/list.html"))
)

// Handler отдает страницы администрирования
type Handler struct {
	resources []*Resource
	byName    map[string]*Resource
	logger    *slog.Logger
	now       func() time.Time
}

// NewHandler создает Handler для набора коллекций
func NewHandler(resources []*Resource, logger *slog.Logger) *Handler {
	byName := make(map[string]*Resource, len(resources))
	for _, res := range resources {
		byName[res.Name] = res
	}
	return &Handler{
		resources: resources,
		byName:    byName,
		logger:    logger,
		now:       time.Now,
	}
}

// Routes регистрирует маршруты /admin
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/{resource}", h.List)
}

type indexEntry struct {
	Name  string
	Title string
	Count int
}

// Index обрабатывает GET /admin/: коллекции и количество записей
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	entries := make([]indexEntry, 0, len(h.resources))
	for _, res := range h.resources {
		n, err := res.count(r.Context())
		if err != nil {
			h.fail(w, r, err)
			return
		}
		entries = append(entries, indexEntry{Name: res.Name, Title: res.Title, Count: n})
	}

	h.render(w, r, indexTmpl, "index.html", map[string]any{
		"Title":     "Site administration",
		"Resources": entries,
	})
}

type filterOption struct {
	Label    string
	URL      string
	Selected bool
}

type filterView struct {
	Field    string
	AllURL   string
	Selected bool
	Options  []filterOption
}

// List обрабатывает GET /admin/{resource}/?q=...&<field>=...
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	res, ok := h.byName[chi.URLParam(r, "resource")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	all, err := res.load(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	params := r.URL.Query()
	q := Query{Search: params.Get("q"), Filters: make(map[string]string)}
	for _, f := range res.Filters {
		if v := params.Get(f.Field); v != "" {
			q.Filters[f.Field] = v
		}
	}

	h.render(w, r, listTmpl, "list.html", map[string]any{
		"Title":        res.Title,
		"Name":         res.Name,
		"Columns":      res.Columns,
		"SearchFields": res.Search,
		"Search":       q.Search,
		"Selected":     q.Filters,
		"Rows":         res.Apply(all, q, h.now()),
		"Total":        len(all),
		"Filters":      h.filterViews(res, all, params),
	})
}

func (h *Handler) filterViews(res *Resource, all []Row, params url.Values) []filterView {
	views := make([]filterView, 0, len(res.Filters))
	for _, f := range res.Filters {
		current := params.Get(f.Field)
		view := filterView{
			Field:    f.Field,
			AllURL:   withParam(res.Name, params, f.Field, ""),
			Selected: current != "",
		}

		switch f.Kind {
		case FilterValue:
			for _, v := range DistinctValues(all, f.Field) {
				view.Options = append(view.Options, filterOption{
					Label:    v,
					URL:      withParam(res.Name, params, f.Field, v),
					Selected: v == current,
				})
			}
		case FilterDate:
			for _, p := range DatePeriods {
				view.Options = append(view.Options, filterOption{
					Label:    p.Label,
					URL:      withParam(res.Name, params, f.Field, p.Value),
					Selected: p.Value == current,
				})
			}
		}
		views = append(views, view)
	}
	return views
}

// withParam строит ссылку на список с замененным (или удаленным при пустом value) параметром
func withParam(name string, params url.Values, key, value string) string {
	next := url.Values{}
	for k, v := range params {
		next[k] = v
	}
	if value == "" {
		next.Del(key)
	} else {
		next.Set(key, value)
	}

	u := "/admin/" + name + "/"
	if enc := next.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, tmpl *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to write admin page", "error", err)
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "Admin page failed", "path", r.URL.Path, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
