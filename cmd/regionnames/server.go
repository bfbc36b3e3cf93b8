package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	gopath "path"
	"sync/atomic"

	"github.com/alexedwards/scs/v2"
	"github.com/dys2p/regionnames"
	"github.com/dys2p/regionnames/html"
	"github.com/dys2p/regionnames/html/sites"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type server struct {
	state    atomic.Pointer[state]
	load     func() (*regionnames.Registry, error) // nil if the data can not be reloaded
	ids      []regionnames.LocaleID                // locales with routes
	sessions *scs.SessionManager
	log      *zap.Logger
	metrics  *metrics
	gatherer prometheus.Gatherer
	matches  *lru.Cache[string, regionnames.LocaleID]
	sites    language.Matcher
	siteTags []string
}

// state is replaced as a whole when the data is reloaded.
type state struct {
	registry *regionnames.Registry
	links    []html.LocaleLink
}

func newServer(registry *regionnames.Registry, sessions *scs.SessionManager, log *zap.Logger, reg prometheus.Registerer, cacheSize int) (*server, error) {
	matches, err := lru.New[string, regionnames.LocaleID](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating match cache: %w", err)
	}

	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	// languages of the static sites, the first one is the fallback
	siteTags := []string{"en"}
	dirs, err := fs.ReadDir(sites.Files, ".")
	if err != nil {
		return nil, err
	}
	for _, entry := range dirs {
		if entry.IsDir() && entry.Name() != "en" {
			siteTags = append(siteTags, entry.Name())
		}
	}
	tags := make([]language.Tag, len(siteTags))
	for i := range siteTags {
		tags[i] = language.Make(siteTags[i])
	}

	srv := &server{
		ids:      registry.IDs(),
		sessions: sessions,
		log:      log,
		metrics:  newMetrics(reg),
		gatherer: gatherer,
		matches:  matches,
		sites:    language.NewMatcher(tags),
		siteTags: siteTags,
	}
	srv.setRegistry(registry)
	return srv, nil
}

func (srv *server) current() *state {
	return srv.state.Load()
}

// setRegistry replaces the served data. Locales which are added later have no routes.
func (srv *server) setRegistry(registry *regionnames.Registry) {
	srv.state.Store(&state{
		registry: registry,
		links:    html.Links(registry.IDs()),
	})
	srv.matches.Purge()
}

func (srv *server) handler() http.Handler {
	var router = httprouter.New()
	srv.addRoutes(router, http.MethodGet, "/", srv.wrapTmpl(srv.pickerGet))
	srv.addRoutes(router, http.MethodPost, "/", srv.wrapTmpl(srv.pickerPost))
	srv.addRoutes(router, http.MethodGet, "/about.html", srv.wrapTmpl(srv.aboutGet))
	srv.addRoutes(router, http.MethodGet, "/regions", srv.wrapAPI(srv.regionsGet))
	srv.addRoutes(router, http.MethodGet, "/regions.json", srv.wrapAPI(srv.nativeGet))
	srv.addRoutes(router, http.MethodGet, "/regions/:code", srv.wrapAPI(srv.regionGet))
	srv.addRoutes(router, http.MethodGet, "/likely", srv.wrapAPI(srv.likelyGet))
	router.HandlerFunc(http.MethodGet, "/health", srv.health)
	router.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(srv.gatherer, promhttp.HandlerOpts{}))
	return srv.sessions.LoadAndSave(router)
}

func (srv *server) pickerGet(w http.ResponseWriter, r *http.Request, locale *regionnames.Locale) error {
	data := &html.PickerData{
		Entries:  locale.Entries(),
		Language: html.Language(locale.ID().BCP47()),
		Likely:   entries(locale, locale.LikelyRegionCodes()),
		Locales:  srv.current().links,
	}
	if selected := srv.sessions.GetString(r.Context(), "region"); selected != "" {
		data.Selected = regionnames.RegionCode(selected)
		data.SelName = locale.DisplayName(data.Selected)
	}
	srv.metrics.lookups.WithLabelValues(string(locale.ID())).Inc()
	return html.Picker.Execute(w, data)
}

func (srv *server) pickerPost(w http.ResponseWriter, r *http.Request, locale *regionnames.Locale) error {
	code, err := regionnames.ParseRegionCode(r.PostFormValue("region"))
	if err != nil {
		return err
	}
	if !code.IsCountry() || !locale.Has(code) {
		return fmt.Errorf("%w: %s", regionnames.ErrNotFound, code)
	}
	srv.sessions.Put(r.Context(), "region", string(code))
	srv.log.Debug("region selected", zap.Stringer("locale", locale.ID()), zap.Stringer("region", code))
	http.Redirect(w, r, localePath(locale.ID(), "/"), http.StatusSeeOther)
	return nil
}

func (srv *server) aboutGet(w http.ResponseWriter, r *http.Request, locale *regionnames.Locale) error {
	_, i := language.MatchStrings(srv.sites, locale.ID().BCP47())
	content, err := fs.ReadFile(sites.Files, gopath.Join(srv.siteTags[i], "about.md"))
	if err != nil {
		return err
	}
	return html.About.Execute(w, &html.AboutData{
		Content:  html.Markdown(content),
		Language: html.Language(locale.ID().BCP47()),
		Locales:  srv.current().links,
	})
}

func (srv *server) regionsGet(w http.ResponseWriter, r *http.Request, locale *regionnames.Locale) error {
	var result []regionnames.Entry
	switch order := r.URL.Query().Get("order"); order {
	case "", "display":
		result = locale.Entries()
	case "collated":
		result = locale.Collated(nil)
	default:
		return fmt.Errorf("%w: unknown order %q", ErrBadRequest, order)
	}

	if group := r.URL.Query().Get("group"); group != "" {
		code, err := regionnames.ParseRegionCode(group)
		if err != nil {
			return err
		}
		if regionnames.Members(code) == nil {
			return fmt.Errorf("%w: %s is not a group", ErrBadRequest, code)
		}
		result = regionnames.Filter(result, code)
	}

	srv.metrics.lookups.WithLabelValues(string(locale.ID())).Inc()
	return writeJSON(w, result)
}

func (srv *server) nativeGet(w http.ResponseWriter, r *http.Request, locale *regionnames.Locale) error {
	data, err := locale.Native()
	if err != nil {
		return err
	}
	srv.metrics.lookups.WithLabelValues(string(locale.ID())).Inc()
	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(data)
	return err
}

// regionGet responds with the name of a single region. Unknown codes get the
// name of the unknown region.
func (srv *server) regionGet(w http.ResponseWriter, r *http.Request, locale *regionnames.Locale) error {
	code, err := regionnames.ParseRegionCode(httprouter.ParamsFromContext(r.Context()).ByName("code"))
	if err != nil {
		return err
	}
	srv.metrics.lookups.WithLabelValues(string(locale.ID())).Inc()
	return writeJSON(w, regionnames.Entry{
		Code: code,
		Name: locale.DisplayName(code),
	})
}

func (srv *server) likelyGet(w http.ResponseWriter, r *http.Request, locale *regionnames.Locale) error {
	codes := locale.LikelyRegionCodes()
	if codes == nil {
		codes = []regionnames.RegionCode{}
	}
	return writeJSON(w, codes)
}

func entries(locale *regionnames.Locale, codes []regionnames.RegionCode) []regionnames.Entry {
	result := make([]regionnames.Entry, len(codes))
	for i, code := range codes {
		result[i] = regionnames.Entry{
			Code: code,
			Name: locale.DisplayName(code),
		}
	}
	return result
}

func writeJSON(w http.ResponseWriter, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(data)
	return err
}
