package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dys2p/regionnames"
	"github.com/dys2p/regionnames/cldr"
	"github.com/dys2p/regionnames/db"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "REGIONNAMES"

type config struct {
	Listen      string
	AdminListen string
	UsersFile   string
	StateDir    string
	SQLite      string
	LogLevel    string
	BaseLocale  string
	CacheSize   int
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "regionnames",
		Short: "Localized names of countries and regions",
		Long: `regionnames provides the names of countries and regions in many languages,
taken from the Unicode Common Locale Data Repository. It serves them over HTTP,
prints them and generates the data files of the cldr package.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd.Flags())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $CONFIGURATION_DIRECTORY/regionnames.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("sqlite", "", "read the locale data from this database instead of the compiled data")
	flags.String("base-locale", cldr.Base, "locale which names every region")

	cmd.AddCommand(
		newServeCmd(v),
		newShowCmd(v),
		newLocalesCmd(v),
		newExportCmd(v),
		newGenerateCmd(v),
		newHashPasswordCmd(),
	)
	return cmd
}

// initConfig binds the flags and environment variables and reads the config file if there is one.
func initConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("state_dir", os.Getenv("STATE_DIRECTORY"))
	v.SetDefault("cache_size", 256)
	v.SetDefault("users_file", filepath.Join(os.Getenv("CONFIGURATION_DIRECTORY"), "users.json"))

	for key, flag := range map[string]string{
		"listen":       "listen",
		"admin_listen": "admin-listen",
		"users_file":   "users-file",
		"state_dir":    "state-dir",
		"sqlite":       "sqlite",
		"log_level":    "log-level",
		"base_locale":  "base-locale",
		"cache_size":   "cache-size",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	if cfgFile, _ := flags.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("regionnames")
		if dir := os.Getenv("CONFIGURATION_DIRECTORY"); dir != "" {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) config {
	return config{
		Listen:      v.GetString("listen"),
		AdminListen: v.GetString("admin_listen"),
		UsersFile:   v.GetString("users_file"),
		StateDir:    v.GetString("state_dir"),
		SQLite:      v.GetString("sqlite"),
		LogLevel:    v.GetString("log_level"),
		BaseLocale:  v.GetString("base_locale"),
		CacheSize:   v.GetInt("cache_size"),
	}
}

// loadRegistry returns the compiled registry, or loads one from the configured database.
func loadRegistry(cfg config) (*regionnames.Registry, error) {
	base, err := regionnames.ParseLocaleID(cfg.BaseLocale)
	if err != nil {
		return nil, err
	}

	if cfg.SQLite == "" {
		if base == cldr.Base {
			return regionnames.Default, nil
		}
		return regionnames.Load(cldr.Locales, base)
	}

	path := cfg.SQLite
	if !filepath.IsAbs(path) && cfg.StateDir != "" {
		path = filepath.Join(cfg.StateDir, path)
	}
	database, err := db.OpenDB(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	src, err := database.Sources()
	if err != nil {
		return nil, fmt.Errorf("reading database: %w", err)
	}
	return regionnames.Load(src, base)
}
