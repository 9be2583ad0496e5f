package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Items []Item `yaml:"items"`
}

// Load reads a YAML catalog file and validates it. Deployments that track
// local store prices can point the config at such a file to replace the
// built-in data.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	if len(file.Items) == 0 {
		return Catalog{}, fmt.Errorf("catalog file %s contains no items", path)
	}

	cat := Catalog{Items: file.Items}
	if errs := cat.Validate(); len(errs) > 0 {
		return Catalog{}, fmt.Errorf("catalog file %s is invalid: %v", path, errs[0])
	}
	return cat, nil
}
