package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/dys2p/regionnames"
	"github.com/dys2p/regionnames/userdb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the country picker and the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(loadConfig(v))
		},
	}
	cmd.Flags().String("listen", ":9002", "listen address")
	cmd.Flags().String("state-dir", "", "directory of the session database (default is $STATE_DIRECTORY, sessions are kept in memory if empty)")
	cmd.Flags().Int("cache-size", 256, "number of cached Accept-Language resolutions")
	cmd.Flags().String("admin-listen", "", "listen address of the admin endpoints, disabled if empty")
	cmd.Flags().String("users-file", "", "user file of the admin endpoints (default is $CONFIGURATION_DIRECTORY/users.json)")
	return cmd
}

func serve(cfg config) error {

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	registry, err := loadRegistry(cfg)
	if err != nil {
		return err
	}
	log.Info("locales loaded", zap.Int("count", len(registry.IDs())), zap.Stringer("base", registry.Base().ID()))

	// sessions

	sessions := scs.New()
	sessions.Cookie.SameSite = http.SameSiteLaxMode // prevent CSRF
	sessions.Lifetime = 8 * time.Hour

	if cfg.StateDir != "" {
		sessionsDB, err := openSessionsDB(filepath.Join(cfg.StateDir, "sessions.sqlite3"))
		if err != nil {
			return err
		}
		defer sessionsDB.Close()
		sessions.Store = sqlite3store.New(sessionsDB)
	} else {
		sessions.Store = memstore.New()
		log.Warn("keeping sessions in memory")
	}

	srv, err := newServer(registry, sessions, log, prometheus.DefaultRegisterer, cfg.CacheSize)
	if err != nil {
		return err
	}

	var stop = make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var httpSrv = ListenAndServe(log, "tcp", cfg.Listen, srv.handler(), stop)
	defer httpSrv.Shutdown()

	// admin http server

	if cfg.AdminListen != "" {
		users, err := userdb.Open(cfg.UsersFile)
		if err != nil {
			return fmt.Errorf("opening userdb: %w", err)
		}
		if cfg.SQLite != "" {
			srv.load = func() (*regionnames.Registry, error) {
				return loadRegistry(cfg)
			}
		}
		var adminSrv = ListenAndServe(log, "tcp", cfg.AdminListen, srv.adminHandler(users), stop)
		defer adminSrv.Shutdown()
		log.Info("admin endpoints enabled", zap.String("listen", cfg.AdminListen))
	}

	// run until we receive an interrupt or the listener fails

	log.Info("running", zap.String("listen", cfg.Listen))
	<-stop
	log.Info("shutting down")
	return nil
}

func openSessionsDB(path string) (*sql.DB, error) {
	sessionsDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening session database: %w", err)
	}

	if _, err = sessionsDB.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expiry REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);
	`); err != nil {
		sessionsDB.Close()
		return nil, fmt.Errorf("creating sessions table: %w", err)
	}
	return sessionsDB, nil
}
