package hashdoc

import (
	"log/slog"
	"os"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/pp"
	"github.com/ysmood/gson"

	"github.com/ImSingee/minitools/internal/lib/glob"
	"github.com/ImSingee/minitools/internal/manifest"
)

type Result struct {
	Items    []*Item
	Warnings []Warning
	Output   string
}

// Generate fetches the manifest, renders the hash page and writes it to
// o.OutputPath, replacing any existing file.
func Generate(o *Options) (*Result, error) {
	exclude, err := glob.Compile(o.Exclude...)
	if err != nil {
		return nil, err
	}

	raw, err := o.loadManifest()
	if err != nil {
		return nil, err
	}

	entries, errs := manifest.Parse(raw)
	for _, err := range errs {
		slog.Debug("Skip manifest item", "error", err)
	}

	items, warnings := Collect(entries, exclude, o)
	for _, w := range warnings {
		pp.Println(pp.YellowString("WARNING: %s", w.String()).GetForStdout())
	}

	tmpl, err := os.ReadFile(o.TemplatePath)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot read template %s", o.TemplatePath)
	}

	text, err := Render(string(tmpl), &TemplateData{Title: o.Title, Items: items})
	if err != nil {
		return nil, ee.Wrapf(err, "cannot render template %s", o.TemplatePath)
	}

	err = os.WriteFile(o.OutputPath, []byte(text), 0644)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot write %s", o.OutputPath)
	}

	return &Result{Items: items, Warnings: warnings, Output: o.OutputPath}, nil
}

func (o *Options) loadManifest() (map[string]gson.JSON, error) {
	if o.ManifestFile != "" {
		slog.Debug("Read manifest", "file", o.ManifestFile)
		return manifest.Read(o.ManifestFile)
	}

	slog.Debug("Fetch manifest", "url", o.ManifestURL)
	return manifest.Fetch(o.ManifestURL)
}
