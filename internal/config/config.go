package config

import (
	"os"
	"path/filepath"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/exjson"
	"github.com/ysmood/gson"
)

var Debug bool

var ErrNotExist = os.ErrNotExist

func IsNotExist(err error) bool {
	return ee.Is(err, ErrNotExist)
}

var ConfigFileNames = []string{
	".minitoolsrc",
	".minitoolsrc.json",
	"minitools.config.json",
}

// ManifestURLEnv overrides the manifest url from config file
const ManifestURLEnv = "MINITOOLS_MANIFEST_URL"

func ReadConfig(filename string) (map[string]gson.JSON, error) {
	// only parse json now

	var obj map[string]any
	err := exjson.Read(filename, &obj)
	if err != nil {
		return nil, err
	}

	return gson.New(obj).Map(), nil
}

// GetConfig reads the first config file found in dir.
//
// If there is no config file, the returned error satisfies IsNotExist.
func GetConfig(dir string) (map[string]gson.JSON, error) {
	for _, name := range ConfigFileNames {
		filename := filepath.Join(dir, name)
		if _, err := os.Stat(filename); err != nil {
			continue
		}

		c, err := ReadConfig(filename)
		if err != nil {
			return nil, ee.Wrapf(err, "cannot read config file %s", filename)
		}
		return c, nil
	}

	return nil, ErrNotExist
}
