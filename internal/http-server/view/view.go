// Package view renders the server-side HTML pages.
package view

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
	"volunteerHub/internal/role"
	"volunteerHub/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Raw HTML in descriptions is escaped: WithUnsafe is not set.
var md = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, name string, data any)
	RenderToast(w http.ResponseWriter, r *http.Request, status int, name string, data any, toast flash.Toast)
}

type Categories interface {
	All() []models.Category
}

// Page is the value every template executes against.
type Page struct {
	Name       string
	State      session.State
	Caps       role.Capabilities
	CSRFToken  string
	CSRFField  template.HTML
	Toast      flash.Toast
	Path       string
	Categories []models.Category
	Data       any
}

type Templates struct {
	log   *slog.Logger
	cats  Categories
	pages map[string]*template.Template
}

func New(log *slog.Logger, cats Categories) (*Templates, error) {
	const op = "view.New"

	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pages := make(map[string]*template.Template, len(names))

	for _, file := range names {
		name := strings.TrimSuffix(path.Base(file), ".html")
		if name == "layout" {
			continue
		}

		tpl, err := template.Must(layout.Clone()).ParseFS(templateFS, file)
		if err != nil {
			return nil, fmt.Errorf("%s: parse %s: %w", op, name, err)
		}

		pages[name] = tpl
	}

	return &Templates{
		log:   log,
		cats:  cats,
		pages: pages,
	}, nil
}

// Render shows the pending flash toast, if any, with the page.
func (t *Templates) Render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	t.render(w, r, status, name, data, flash.Pop(w, r))
}

// RenderToast shows toast with the page instead of a pending flash.
func (t *Templates) RenderToast(w http.ResponseWriter, r *http.Request, status int, name string, data any, toast flash.Toast) {
	t.render(w, r, status, name, data, toast)
}

func (t *Templates) render(w http.ResponseWriter, r *http.Request, status int, name string, data any, toast flash.Toast) {
	const op = "view.Render"

	log := t.log.With(slog.String("op", op), slog.String("page", name))

	tpl, ok := t.pages[name]
	if !ok {
		log.Error("unknown page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	st := session.FromContext(r.Context())

	page := Page{
		Name:      name,
		State:     st,
		Caps:      role.Resolve(st.User),
		CSRFToken: csrf.Token(r),
		CSRFField: csrf.TemplateField(r),
		Toast:     toast,
		Path:      r.URL.Path,
		Data:      data,
	}

	if t.cats != nil {
		page.Categories = t.cats.All()
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, page); err != nil {
		log.Error("failed to execute template", sl.Err(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type reviewButton struct {
	Page   Page
	ID     int64
	Action string
	Label  string
}

var funcs = template.FuncMap{
	"markdown": func(s string) template.HTML {
		var buf bytes.Buffer
		if err := md.Convert([]byte(s), &buf); err != nil {
			return template.HTML(template.HTMLEscapeString(s))
		}
		return template.HTML(buf.String())
	},
	"date": func(ts models.Timestamp) string {
		if ts.IsZero() {
			return "-"
		}
		return ts.Local().Format("Jan 2, 2006 15:04")
	},
	"day": func(ts models.Timestamp) string {
		if ts.IsZero() {
			return "-"
		}
		return ts.Local().Format("Jan 2, 2006")
	},
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	},
	"roleName": func(r models.Role) string {
		u := models.User{Role: r}
		return role.Of(&u).String()
	},
	"reviewAction": func(p Page, id int64, action, label string) reviewButton {
		return reviewButton{Page: p, ID: id, Action: action, Label: label}
	},
	"selected": func(a, b string) template.HTMLAttr {
		if a == b {
			return "selected"
		}
		return ""
	},
	"list": func(items ...string) []string { return items },
	"now":  time.Now,
}
