package main

import (
	"encoding/json"
	"errors"
	"net/http"
	gopath "path"

	"github.com/dys2p/regionnames"
	"github.com/dys2p/regionnames/html"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type HandlerLocaleErrFunc func(http.ResponseWriter, *http.Request, *regionnames.Locale) error

type handlerLocaleFunc func(http.ResponseWriter, *http.Request, *regionnames.Locale)

var ErrBadRequest = errors.New("bad request")

// status maps an error to an HTTP status code.
func status(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, regionnames.ErrInvalidRegionCode):
		return http.StatusBadRequest
	case errors.Is(err, regionnames.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (srv *server) wrapAPI(f HandlerLocaleErrFunc) handlerLocaleFunc {
	return func(w http.ResponseWriter, r *http.Request, locale *regionnames.Locale) {
		if err := f(w, r, locale); err != nil {
			code := status(err)
			if code == http.StatusInternalServerError {
				srv.log.Error("api", zap.String("path", r.URL.Path), zap.Error(err))
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(code)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		}
	}
}

func (srv *server) wrapTmpl(f HandlerLocaleErrFunc) handlerLocaleFunc {
	return func(w http.ResponseWriter, r *http.Request, locale *regionnames.Locale) {
		if err := f(w, r, locale); err != nil {
			lang := html.Language(locale.ID().BCP47())
			code := status(err)
			var msg string
			switch code {
			case http.StatusBadRequest:
				msg = lang.Translate("error-bad-request")
			case http.StatusNotFound:
				msg = lang.Translate("error-not-found")
			default:
				srv.log.Error("template", zap.String("path", r.URL.Path), zap.Error(err))
				msg = lang.Translate("error-internal") + err.Error()
			}
			w.WriteHeader(code)
			html.Error.Execute(w, &html.ErrorData{
				Language: lang,
				Locales:  srv.current().links,
				Msg:      msg,
			})
		}
	}
}

// addRoutes registers one handler for each locale under its BCP 47 prefix, and a handler
// which redirects the unprefixed path according to the Accept-Language header.
func (srv *server) addRoutes(router *httprouter.Router, method, path string, handler handlerLocaleFunc) {
	for _, id := range srv.ids {
		id := id
		router.HandlerFunc(
			method,
			localePath(id, path),
			srv.metrics.instrument(path, func(w http.ResponseWriter, r *http.Request) {
				locale, ok := srv.current().registry.Lookup(id)
				if !ok {
					http.NotFound(w, r) // removed by a reload
					return
				}
				handler(w, r, locale)
			}),
		)
	}
	router.HandlerFunc(
		method,
		path,
		func(w http.ResponseWriter, r *http.Request) {
			target := "/" + srv.match(r.Header.Get("Accept-Language")).BCP47() + r.URL.Path
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusSeeOther)
		},
	)
}

func localePath(id regionnames.LocaleID, path string) string {
	if path == "/" {
		return "/" + id.BCP47() + "/"
	}
	return gopath.Join("/", id.BCP47(), path)
}

// match resolves an Accept-Language header value. Results are cached.
func (srv *server) match(acceptLanguage string) regionnames.LocaleID {
	if id, ok := srv.matches.Get(acceptLanguage); ok {
		srv.metrics.matchCacheHit.WithLabelValues("hit").Inc()
		return id
	}
	srv.metrics.matchCacheHit.WithLabelValues("miss").Inc()
	id := srv.current().registry.Match(acceptLanguage).ID()
	srv.matches.Add(acceptLanguage, id)
	return id
}
