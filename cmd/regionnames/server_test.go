package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/dys2p/regionnames"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*server, http.Handler) {
	sessions := scs.New()
	sessions.Store = memstore.New()
	srv, err := newServer(regionnames.Default, sessions, zap.NewNop(), prometheus.NewRegistry(), 16)
	require.NoError(t, err)
	return srv, srv.handler()
}

func get(t *testing.T, h http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRegion(t *testing.T) {
	_, h := newTestServer(t)

	rec := get(t, h, "/ja/regions/US", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"code":"US","name":"アメリカ合衆国"}`, rec.Body.String())

	// lower case is accepted, unknown codes get the unknown region label
	rec = get(t, h, "/tr/regions/qq", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"code":"QQ","name":"Bilinmeyen Bölge"}`, rec.Body.String())

	rec = get(t, h, "/tr/regions/not-a-code", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, h, "/yo-BJ/regions/GH", nil)
	require.JSONEq(t, `{"code":"GH","name":"Orílẹ́ède Gana"}`, rec.Body.String())
}

func TestRegions(t *testing.T) {
	_, h := newTestServer(t)

	rec := get(t, h, "/am/regions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []regionnames.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Equal(t, regionnames.SortedRegionCodes("am")[:7], codesOf(entries[:7]))
	require.Equal(t, []regionnames.RegionCode{"BQ", "CW", "SS", "SX", "HU", "HT", "IN"}, codesOf(entries[:7]))

	rec = get(t, h, "/en/regions?group=EU", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, len(regionnames.Members("EU")))
	for _, entry := range entries {
		require.True(t, regionnames.Contains("EU", entry.Code))
	}

	rec = get(t, h, "/en/regions?order=collated", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Equal(t, regionnames.RegionCode("AF"), entries[0].Code)

	require.Equal(t, http.StatusBadRequest, get(t, h, "/en/regions?order=random", nil).Code)
	require.Equal(t, http.StatusBadRequest, get(t, h, "/en/regions?group=DE", nil).Code)
}

func TestNative(t *testing.T) {
	_, h := newTestServer(t)

	rec := get(t, h, "/ja/regions.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var names map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	require.Equal(t, "アメリカ合衆国", names["US"])
	require.Equal(t, "不明な地域", names["ZZ"])
}

func TestLikely(t *testing.T) {
	_, h := newTestServer(t)

	rec := get(t, h, "/ln/likely", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `["CD","CG","AO","CF"]`, rec.Body.String())

	rec = get(t, h, "/ja/likely", nil)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestRedirect(t *testing.T) {
	srv, h := newTestServer(t)

	for i := 0; i < 2; i++ {
		rec := get(t, h, "/", http.Header{"Accept-Language": {"tr-TR,tr;q=0.9,en;q=0.5"}})
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/tr/", rec.Header().Get("Location"))
	}
	require.Equal(t, 1, srv.matches.Len())

	rec := get(t, h, "/regions?group=EU", http.Header{"Accept-Language": {"pl"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/en/regions?group=EU", rec.Header().Get("Location"))

	rec = get(t, h, "/regions/US", nil)
	require.Equal(t, "/en/regions/US", rec.Header().Get("Location"))
}

func TestPicker(t *testing.T) {
	_, h := newTestServer(t)

	rec := get(t, h, "/ga/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `<option value="IE">Éire</option>`)
	require.Contains(t, body, `href="/yo-BJ/"`)

	// select a region
	form := url.Values{"region": {"de"}}
	req := httptest.NewRequest(http.MethodPost, "/tr/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/tr/", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req = httptest.NewRequest(http.MethodGet, "/tr/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `<option value="DE" selected>Almanya</option>`)

	// tokens can not be selected
	form = url.Values{"region": {"EU"}}
	req = httptest.NewRequest(http.MethodPost, "/tr/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "There is no such region code.")

	// malformed codes are bad requests
	form = url.Values{"region": {"not-a-code"}}
	req = httptest.NewRequest(http.MethodPost, "/de/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Das ist kein gültiger Regionscode.")
	require.NotContains(t, rec.Body.String(), "Diesen Regionscode gibt es nicht.")
}

func TestAbout(t *testing.T) {
	_, h := newTestServer(t)

	rec := get(t, h, "/en/about.html", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<h1>About</h1>")

	rec = get(t, h, "/de/about.html", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<h1>Über</h1>")

	// no site in this language
	rec = get(t, h, "/ja/about.html", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<h1>About</h1>")
}

func TestHealthAndMetrics(t *testing.T) {
	_, h := newTestServer(t)

	rec := get(t, h, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []HealthItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, len(regionnames.Default.IDs()))
	require.Equal(t, "en", items[0].Locale)

	get(t, h, "/ja/regions/US", nil)
	rec = get(t, h, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `regionnames_lookups_total{locale="ja"} 1`)
	require.Contains(t, rec.Body.String(), `regionnames_http_requests_total{code="200",route="/regions/:code"} 1`)
}

func codesOf(entries []regionnames.Entry) []regionnames.RegionCode {
	codes := make([]regionnames.RegionCode, len(entries))
	for i, entry := range entries {
		codes[i] = entry.Code
	}
	return codes
}

type staticUsers map[string]string

func (users staticUsers) Authenticate(username, password string) error {
	if p, ok := users[username]; ok && p == password {
		return nil
	}
	return errors.New("invalid credentials")
}

func TestReload(t *testing.T) {
	srv, h := newTestServer(t)
	admin := srv.adminHandler(staticUsers{"alice": "secret"})

	post := func(username, password string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/reload", nil)
		req.SetBasicAuth(username, password)
		rec := httptest.NewRecorder()
		admin.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusUnauthorized, post("alice", "wrong").Code)
	require.Equal(t, http.StatusConflict, post("alice", "secret").Code)

	src := regionnames.Default.Sources()
	src["tr"].Names["ZZ"] = "Bilinmeyen"
	delete(src, "ja")
	srv.load = func() (*regionnames.Registry, error) {
		return regionnames.Load(src, "en")
	}

	rec := post("alice", "secret")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, fmt.Sprintf(`{"locales":%d}`, len(src)), rec.Body.String())

	rec = get(t, h, "/tr/regions/QQ", nil)
	require.JSONEq(t, `{"code":"QQ","name":"Bilinmeyen"}`, rec.Body.String())
	require.Equal(t, http.StatusNotFound, get(t, h, "/ja/regions/US", nil).Code)

	// the compiled data is unchanged
	require.Equal(t, "Bilinmeyen Bölge", regionnames.DisplayName("tr", "ZZ"))
}
