package main

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/pyopensci/site-backend/content"
	"github.com/pyopensci/site-backend/providers"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"dateFmt": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("January 2, 2006")
	},
	"rawHTML": func(s string) template.HTML {
		// body content is authored in the admin tooling, not user submitted
		return template.HTML(s)
	},
	"inc": func(n int) int { return n + 1 },
	"dec": func(n int) int { return n - 1 },
}).ParseFS(templateFS, "templates/*.html"))

// HomeView feeds the homepage template
type HomeView struct {
	PageTitle          string
	HeroTitle          string
	HeroSubtitle       string
	RecentContributors []providers.Contributor
	RecentPackages     []providers.Package
}

// BlogIndexView feeds the blog listing template
type BlogIndexView struct {
	PageTitle string
	Posts     []content.BlogPost
	Window    content.PageWindow
	Tag       string
	Year      int
	Years     []int
}

// BlogPageView feeds the blog detail template
type BlogPageView struct {
	PageTitle string
	Post      content.BlogPost
	Author    *content.Author
	Related   []content.BlogPost
}

// EventsIndexView feeds the events listing template
type EventsIndexView struct {
	PageTitle string
	Upcoming  []content.Event
	Past      []content.Event
}

// EventPageView feeds the event detail template
type EventPageView struct {
	PageTitle string
	Event     content.Event
	Author    *content.Author
}

func renderView(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		handlerLogger.WithField("template", name).Error("Couldn't render template: ", err)
	}
}

func renderNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	templates.ExecuteTemplate(w, "not_found.html", nil)
}
