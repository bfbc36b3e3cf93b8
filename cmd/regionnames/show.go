package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dys2p/regionnames"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newShowCmd(v *viper.Viper) *cobra.Command {
	var native, collated, likely bool
	var group string

	cmd := &cobra.Command{
		Use:   "show <locale> [code...]",
		Short: "Print the region names of a locale",
		Long: `Print the names of the given region codes, or of all countries in display
order if no code is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(loadConfig(v))
			if err != nil {
				return err
			}
			id, err := regionnames.ParseLocaleID(args[0])
			if err != nil {
				return err
			}
			locale := registry.Locale(id)

			out := cmd.OutOrStdout()

			if native {
				data, err := locale.Native()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			var result []regionnames.Entry
			switch {
			case len(args) > 1:
				codes := make([]regionnames.RegionCode, 0, len(args)-1)
				for _, arg := range args[1:] {
					code, err := regionnames.ParseRegionCode(arg)
					if err != nil {
						return err
					}
					codes = append(codes, code)
				}
				result = entries(locale, codes)
			case likely:
				result = entries(locale, locale.LikelyRegionCodes())
			case collated:
				result = locale.Collated(nil)
			default:
				result = locale.Entries()
			}

			if group != "" {
				code, err := regionnames.ParseRegionCode(group)
				if err != nil {
					return err
				}
				result = regionnames.Filter(result, code)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, entry := range result {
				fmt.Fprintf(tw, "%s\t%s\n", entry.Code, entry.Name)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&native, "native", false, "print the JSON object literal")
	cmd.Flags().BoolVar(&collated, "collated", false, "sort by name instead of display order")
	cmd.Flags().BoolVar(&likely, "likely", false, "print the likely regions only")
	cmd.Flags().StringVar(&group, "group", "", "print the members of a group like EU only")
	return cmd
}

func newLocalesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the available locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := loadRegistry(loadConfig(v))
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LOCALE\tPARENT\tOWN NAMES\tCURATED\tLIKELY")
			for _, id := range registry.IDs() {
				locale, _ := registry.Lookup(id)
				var parent string
				if p := locale.Parent(); p != nil {
					parent = string(p.ID())
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%v\n", id, parent, len(locale.Overrides()), locale.Curated(), locale.LikelyRegionCodes())
			}
			return tw.Flush()
		},
	}
}
