package main

import (
	"os"

	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/ImSingee/minitools/internal/config"
	"github.com/ImSingee/minitools/internal/hashdoc"
	"github.com/ImSingee/minitools/internal/manifest"
)

type hashesFlags struct {
	url          string
	manifestFile string
	template     string
	output       string
	title        string
	timezone     string
	exclude      []string
	since        string
}

func init() {
	commands = append(commands, hashesCommand())
}

func hashesCommand() *cobra.Command {
	f := &hashesFlags{}

	cmd := &cobra.Command{
		Use:   "hashes",
		Short: "Render the Miniconda installer hash page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := f.options(cmd)
			if err != nil {
				return err
			}

			result, err := hashdoc.Generate(o)
			if err != nil {
				return err
			}

			pp.Println(pp.GreenString("Wrote %d installers to %s", len(result.Items), result.Output).GetForStdout())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVar(&f.url, "url", "", "manifest url (default "+manifest.DefaultURL+")")
	flags.StringVar(&f.manifestFile, "manifest-file", "", "read the manifest from a local file instead of the network")
	flags.StringVarP(&f.template, "template", "t", "", "template file (default "+hashdoc.DefaultTemplatePath+")")
	flags.StringVarP(&f.output, "output", "o", "", "output file (default "+hashdoc.DefaultOutputPath+")")
	flags.StringVar(&f.title, "title", "", "page title")
	flags.StringVar(&f.timezone, "timezone", "", "timezone of the rendered timestamps (default "+hashdoc.DefaultTimezone+")")
	flags.StringSliceVar(&f.exclude, "exclude", nil, "glob patterns of files to leave out (replaces the defaults)")
	flags.StringVar(&f.since, "since", "", "only list installers of this version or newer")

	return cmd
}

// options merges defaults, config file, environment and flags, later wins
func (f *hashesFlags) options(cmd *cobra.Command) (*hashdoc.Options, error) {
	o, err := hashdoc.DefaultOptions()
	if err != nil {
		return nil, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	c, err := config.GetHashesConfig(wd)
	if err != nil {
		return nil, err
	}

	timezone := c.Timezone
	set := func(dst *string, values ...string) {
		for _, v := range values {
			if v != "" {
				*dst = v
			}
		}
	}
	set(&o.ManifestURL, c.URL, f.url)
	set(&o.ManifestFile, f.manifestFile)
	set(&o.TemplatePath, c.Template, f.template)
	set(&o.OutputPath, c.Output, f.output)
	set(&o.Title, c.Title, f.title)
	set(&timezone, f.timezone)

	if timezone != "" {
		o.Location, err = hashdoc.LoadLocation(timezone)
		if err != nil {
			return nil, err
		}
	}

	if c.Exclude != nil {
		o.Exclude = c.Exclude
	}
	if cmd.Flags().Changed("exclude") {
		o.Exclude = f.exclude
	}

	o.Since, err = hashdoc.ParseSince(f.since)
	if err != nil {
		return nil, err
	}

	return o, nil
}
