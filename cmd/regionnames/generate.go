package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dys2p/regionnames"
	"github.com/dys2p/regionnames/cldrgen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type generateOptions struct {
	input     string
	outDir    string
	curated   bool
	baseFirst bool
	likely    []string
}

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate <locale>",
		Short: "Create the data file of a locale in the cldr package",
		Long: `Create the data file of a locale in the cldr package. The names are read from
a cldr-json territories.json file, or taken from golang.org/x/text if no file
is given. Only the names which differ from the parent locale are written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(loadConfig(v))
			if err != nil {
				return err
			}
			path, err := generate(registry, args[0], opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "cldr-json territories.json file")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "cldr", "output directory")
	cmd.Flags().BoolVar(&opts.curated, "curated", false, "write a sort order")
	cmd.Flags().BoolVar(&opts.baseFirst, "base-first", false, "sort the countries which keep their parent's name first")
	cmd.Flags().StringSliceVar(&opts.likely, "likely", nil, "likely region codes")
	return cmd
}

// generate writes the data file of a locale and returns its path. The base
// locale is regenerated from its complete table.
func generate(registry *regionnames.Registry, locale string, opts generateOptions) (string, error) {
	id, err := regionnames.ParseLocaleID(locale)
	if err != nil {
		return "", err
	}

	base := toStrings(registry.Base().Names())

	var src map[string]string
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return "", err
		}
		defer f.Close()
		src, err = cldrgen.ReadTerritories(f, string(id))
		if err != nil {
			return "", err
		}
	} else {
		codes := make([]string, 0, len(base))
		for code := range base {
			codes = append(codes, code)
		}
		src = cldrgen.FromDisplay(id.Tag(), codes)
	}

	// drop codes which the base locale does not know
	for code := range src {
		if _, ok := base[code]; !ok {
			delete(src, code)
		}
	}

	// names are compared against the effective table of the parent, so that
	// the generated locale loads with the same names as src
	var parent map[string]string
	if id != registry.Base().ID() {
		parent = toStrings(registry.Locale(id.Parent()).Names())
	}
	loc, err := cldrgen.Build(string(id), src, parent, cldrgen.Options{
		Curated:   opts.curated,
		BaseFirst: opts.baseFirst,
		Likely:    opts.likely,
	})
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := cldrgen.Write(&buf, loc); err != nil {
		return "", err
	}
	path := filepath.Join(opts.outDir, cldrgen.FileName(loc.ID))
	return path, os.WriteFile(path, buf.Bytes(), 0644)
}

func toStrings(names regionnames.NameTable) map[string]string {
	result := make(map[string]string, len(names))
	for code, name := range names {
		result[string(code)] = name
	}
	return result
}
