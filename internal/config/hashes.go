package config

import (
	"os"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ysmood/gson"
)

// Hashes is the `hashes` section of the config file, empty fields are unset
type Hashes struct {
	URL      string
	Template string
	Output   string
	Title    string
	Timezone string
	Exclude  []string
}

// GetHashesConfig loads the hashes section from the config in dir,
// then applies environment overrides. Missing config is not an error.
func GetHashesConfig(dir string) (*Hashes, error) {
	h := &Hashes{}

	c, err := GetConfig(dir)
	if err != nil && !IsNotExist(err) {
		return nil, err
	}

	if section, ok := c["hashes"]; ok {
		if err := h.parse(section); err != nil {
			return nil, ee.Wrap(err, "invalid hashes config")
		}
	}

	if u := os.Getenv(ManifestURLEnv); u != "" {
		h.URL = u
	}

	return h, nil
}

func (h *Hashes) parse(section gson.JSON) error {
	m, ok := section.Val().(map[string]any)
	if !ok {
		return ee.New("must be an object")
	}

	for key, dst := range map[string]*string{
		"url":      &h.URL,
		"template": &h.Template,
		"output":   &h.Output,
		"title":    &h.Title,
		"timezone": &h.Timezone,
	} {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return ee.Errorf("`%s` is not string", key)
		}
		*dst = s
	}

	if v, ok := m["exclude"]; ok && v != nil {
		list, ok := v.([]any)
		if !ok {
			return ee.New("`exclude` is not a list of string")
		}

		h.Exclude = make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return ee.New("`exclude` is not a list of string")
			}
			h.Exclude = append(h.Exclude, s)
		}
	}

	return nil
}
