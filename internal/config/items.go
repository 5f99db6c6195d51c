package config

import (
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/WhitingJarod/multiverse-random/internal/errors"
)

// LoadItemsFile reads candidate items from a YAML file. Two layouts are
// accepted: a bare list of strings, or a mapping with an "items" key.
//
//	- foo
//	- bar
//
//	items:
//	  - foo
//	  - bar
func LoadItemsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.WrapError(err, "loading items file %q", path)
	}

	var doc struct {
		Items []string `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc.Items) > 0 {
		return doc.Items, nil
	}

	var list []string
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, apperrors.WrapError(err, "parsing items file %q", path)
	}
	if len(list) == 0 {
		return nil, apperrors.NewConfigError("items file %q contains no items", path)
	}
	return list, nil
}
