package view

import (
	"fmt"
	"html/template"
	"math"
	"net/http"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sysaltruism/dashboard/web"
)

// Engine renders HTML templates.
type Engine struct {
	templates *template.Template
}

// NavLink is an entry of the side navigation.
type NavLink struct {
	Icon   string
	Label  string
	Href   string
	Badge  int
	Active bool
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title       string
	AppTitle    string
	CurrentPath string
	Nav         []NavLink
	Data        any
}

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatNumber groups thousands and keeps two decimals only for fractional values.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("%.0f", v)
	}
	return printer.Sprintf("%.2f", v)
}

// NewEngine parses the embedded templates.
func NewEngine() (*Engine, error) {
	funcMap := template.FuncMap{
		"formatNumber": FormatNumber,
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("02 Jan 2006 15:04")
		},
		"add": func(a, b int) int { return a + b },
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates, "templates/layouts/*.html", "templates/partials/*.html", "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	return &Engine{templates: tpl}, nil
}

// Render executes a named template with TemplateData.
func (e *Engine) Render(w http.ResponseWriter, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return e.templates.ExecuteTemplate(w, name, data)
}
