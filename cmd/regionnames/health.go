package main

import (
	"encoding/json"
	"net/http"
)

type HealthItem struct {
	Locale  string
	Curated bool
	Names   int
}

// health lists the loaded locales
func (srv *server) health(w http.ResponseWriter, r *http.Request) {
	result := []HealthItem{}
	registry := srv.current().registry
	for _, id := range registry.IDs() {
		locale, _ := registry.Lookup(id)
		result = append(result, HealthItem{
			Locale:  string(id),
			Curated: locale.Curated(),
			Names:   len(locale.Names()),
		})
	}

	responseData, _ := json.Marshal(result)
	w.Header().Add("Content-Type", "application/json")
	w.Write(responseData)
}
