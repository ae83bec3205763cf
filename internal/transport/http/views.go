package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/feeds"
	postDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/post/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"posts", "signin", "dashboard"}

type views struct {
	pages map[string]*template.Template
}

func mustParseViews() *views {
	funcs := template.FuncMap{
		"t": func(locale domain.Locale, key string) string {
			return i18n.Text(i18n.Key(key), locale)
		},
	}

	v := &views{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		v.pages[name] = template.Must(template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}
	return v
}

type page struct {
	Locale   domain.Locale
	SignedIn bool
	Content  any
}

type postsPage struct {
	View         postDomain.View
	Presentation postDomain.Presentation
}

type signInPage struct {
	Username string
	Notice   string
	Error    string
}

type dashboardPage struct {
	URL    string
	Notice string
	Error  string
	Busy   bool
}

func (s *Server) page(content any) page {
	_, signedIn := s.session.Get()
	return page{
		Locale:   s.cfg.Locale,
		SignedIn: signedIn,
		Content:  content,
	}
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data page) {
	tmpl, ok := s.views.pages[name]
	if !ok {
		http.Error(w, "unknown view", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		s.logger.Error("Error rendering view", "view", name, "error", err)
	}
}

type syndicationFormat struct {
	name        string
	contentType string
	encode      func(*feeds.Feed) (string, error)
}

var (
	formatAtom = syndicationFormat{
		name:        "atom",
		contentType: "application/atom+xml; charset=utf-8",
		encode:      (*feeds.Feed).ToAtom,
	}
	formatRSS = syndicationFormat{
		name:        "rss",
		contentType: "application/rss+xml; charset=utf-8",
		encode:      (*feeds.Feed).ToRss,
	}
)
