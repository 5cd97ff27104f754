package hashdoc

import (
	"strings"
	"text/template"

	"github.com/ImSingee/go-ex/ee"
)

type TemplateData struct {
	Title string
	Items []*Item
}

var funcs = template.FuncMap{
	"underline": func(s string, c string) string {
		return strings.Repeat(c, len(s))
	},
	"pad": func(n int, s string) string {
		if len(s) >= n {
			return s
		}
		return s + strings.Repeat(" ", n-len(s))
	},
}

func Render(tmpl string, data *TemplateData) (string, error) {
	t, err := template.New("").Funcs(funcs).Parse(tmpl)
	if err != nil {
		return "", ee.Wrap(err, "invalid template")
	}

	w := strings.Builder{}
	err = t.Execute(&w, data)
	if err != nil {
		return "", ee.Wrap(err, "cannot render template")
	}
	return w.String(), nil
}
