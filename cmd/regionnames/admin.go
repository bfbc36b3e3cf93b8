package main

import (
	"net/http"

	"github.com/dys2p/regionnames/userdb"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// adminHandler serves the endpoints for operators. They require a user from the user file.
func (srv *server) adminHandler(users userdb.Authenticator) http.Handler {
	var router = httprouter.New()
	router.HandlerFunc(http.MethodPost, "/reload", userdb.BasicAuth(users, "regionnames", srv.reloadPost))
	return router
}

// reloadPost reads the database again, so that edited names are served without a restart.
func (srv *server) reloadPost(w http.ResponseWriter, r *http.Request) {
	if srv.load == nil {
		http.Error(w, "serving compiled data, nothing to reload", http.StatusConflict)
		return
	}
	registry, err := srv.load()
	if err != nil {
		srv.log.Error("reload failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	srv.setRegistry(registry)
	srv.log.Info("reloaded", zap.Int("locales", len(registry.IDs())))
	writeJSON(w, map[string]int{"locales": len(registry.IDs())})
}
