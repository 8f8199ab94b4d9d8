package guard

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Page names. The CLI renders one view per page.
const (
	PageLogin        = "login"
	PageRegister     = "register"
	PageHome         = "home"
	PageDashboard    = "dashboard"
	PageBlogList     = "blog-list"
	PageBlogCreate   = "blog-create"
	PageBlogEdit     = "blog-edit"
	PageBlogDetail   = "blog-detail"
	PageBlogByAuthor = "blog-by-author"
	PagePostList     = "post-list"
	PagePostCreate   = "post-create"
	PagePostDetail   = "post-detail"
	PagePostEdit     = "post-edit"
	PagePostByAuthor = "post-by-author"
	PageProfile      = "profile"
	PageNotFound     = "not-found"
)

const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Route is one entry of the navigation table.
type Route struct {
	Pattern string
	Page    string
	Public  bool
	// RedirectTo, when set, sends the visitor elsewhere (replacing history)
	// instead of rendering Page.
	RedirectTo string
}

// DefaultRoutes is the client's navigation table.
var DefaultRoutes = []Route{
	{Pattern: "/login", Page: PageLogin, Public: true},
	{Pattern: "/register", Page: PageRegister, Public: true},

	{Pattern: "/", Page: PageHome},
	{Pattern: "/home", RedirectTo: HomePath},
	{Pattern: "/dashboard", Page: PageDashboard},
	{Pattern: "/blogs", Page: PageBlogList},
	{Pattern: "/blogs/create", Page: PageBlogCreate},
	{Pattern: "/blogs/edit/{id}", Page: PageBlogEdit},
	{Pattern: "/blogs/{id}", Page: PageBlogDetail},
	{Pattern: "/blogs/author/{authorId}", Page: PageBlogByAuthor},
	{Pattern: "/posts", Page: PagePostList},
	{Pattern: "/posts/create", Page: PagePostCreate},
	{Pattern: "/posts/{slug}/edit", Page: PagePostEdit},
	{Pattern: "/posts/{slug}", Page: PagePostDetail},
	{Pattern: "/posts/author/{authorId}", Page: PagePostByAuthor},
	{Pattern: "/profile/{id}", Page: PageProfile},
}

var notFound = Route{Page: PageNotFound, Public: true}

// Match is a resolved destination.
type Match struct {
	Path   string
	Route  Route
	Params map[string]string
	Query  url.Values
}

// Param returns the named path parameter, "" when absent.
func (m Match) Param(name string) string {
	return m.Params[name]
}

type Router struct {
	mux    *chi.Mux
	routes map[string]Route
}

func NewRouter(routes []Route) *Router {
	r := &Router{mux: chi.NewRouter(), routes: make(map[string]Route, len(routes))}
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for _, rt := range routes {
		r.mux.Get(rt.Pattern, noop)
		r.routes[rt.Pattern] = rt
	}
	return r
}

// Lookup resolves path. Unknown paths resolve to the public not-found page.
func (r *Router) Lookup(path string) Match {
	p, query := clean(path)

	rctx := chi.NewRouteContext()
	if !r.mux.Match(rctx, http.MethodGet, p) {
		return Match{Path: p, Route: notFound, Query: query}
	}

	rt, ok := r.routes[rctx.RoutePattern()]
	if !ok {
		return Match{Path: p, Route: notFound, Query: query}
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, k := range rctx.URLParams.Keys {
		if v, err := url.PathUnescape(rctx.URLParams.Values[i]); err == nil {
			params[k] = v
		} else {
			params[k] = rctx.URLParams.Values[i]
		}
	}
	return Match{Path: p, Route: rt, Params: params, Query: query}
}

// clean splits off the query and normalises slashes.
func clean(path string) (string, url.Values) {
	path = strings.TrimSpace(path)
	var query url.Values
	if i := strings.IndexByte(path, '?'); i >= 0 {
		query, _ = url.ParseQuery(path[i+1:])
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path, query
}
