package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

const (
	manifestYAML = "tawa.yml"
	manifestTOML = "tawa.toml"
)

type tawaManifest struct {
	Entry         string `yaml:"Entry" toml:"Entry"`
	LogLevel      string `yaml:"LogLevel,omitempty" toml:"LogLevel"`
	PrintBindings bool   `yaml:"PrintBindings,omitempty" toml:"PrintBindings"`
}

// loadManifest reads tawa.yml, or failing that tawa.toml, from dir. found is
// false when neither exists.
func loadManifest(dir string) (m tawaManifest, found bool, err error) {
	path := filepath.Join(dir, manifestYAML)
	data, err := ioutil.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return m, true, fmt.Errorf("error reading %s: %w", path, err)
		}
		return m, true, nil
	case !os.IsNotExist(err):
		return m, false, err
	}

	path = filepath.Join(dir, manifestTOML)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return m, false, nil
		}
		return m, false, err
	}
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return m, true, fmt.Errorf("error reading %s: %w", path, err)
	}
	return m, true, nil
}

func writeManifest(dir string, m tawaManifest) error {
	out, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", manifestYAML, err)
	}
	return ioutil.WriteFile(filepath.Join(dir, manifestYAML), out, 0o644)
}
