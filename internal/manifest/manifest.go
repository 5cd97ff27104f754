package manifest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/exjson"
	"github.com/ysmood/gson"
)

const DefaultURL = "https://repo.anaconda.com/miniconda/.files.json"

// Fetch downloads the installer manifest, a JSON object keyed by filename
func Fetch(url string) (map[string]gson.JSON, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot get manifest from %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, ee.Errorf("cannot get manifest from %s: status code = %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot read manifest from %s", url)
	}

	// gson stops after the first value, trailing data means a broken download
	if !json.Valid(body) {
		return nil, ee.Errorf("cannot parse manifest from %s: invalid or truncated JSON", url)
	}

	m, err := decode(gson.New(bytes.NewReader(body)))
	if err != nil {
		return nil, ee.Wrapf(err, "cannot parse manifest from %s", url)
	}

	return m, nil
}

// Read loads a manifest saved on disk
func Read(filename string) (map[string]gson.JSON, error) {
	var obj map[string]any
	err := exjson.Read(filename, &obj)
	if err != nil {
		if ee.Is(err, os.ErrNotExist) {
			return nil, ee.Wrapf(err, "manifest file %s does not exist", filename)
		}
		return nil, ee.Wrapf(err, "cannot read manifest file %s", filename)
	}

	return decode(gson.New(obj))
}

func decode(j gson.JSON) (map[string]gson.JSON, error) {
	obj, ok := j.Val().(map[string]any)
	if !ok {
		return nil, ee.New("invalid or malformed manifest: not a JSON object")
	}

	m := make(map[string]gson.JSON, len(obj))
	for name, v := range obj {
		m[name] = gson.New(v)
	}
	return m, nil
}
