package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overridesFile is the shape of the optional keyword overrides file:
//
//	keywords:
//	  market: ["şarküteri", "pazar"]
type overridesFile struct {
	Keywords map[string][]string `yaml:"keywords"`
}

// LoadOverrides merges extra surface keywords into the default table from a
// YAML file keyed by canonical category key. Must be called at process start,
// before the table is read concurrently.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read keyword overrides %s: %w", path, err)
	}

	var file overridesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("could not parse keyword overrides %s: %w", path, err)
	}

	// Validate every key up front so a bad file leaves the table untouched.
	for key := range file.Keywords {
		known := false
		for i := range entries {
			if entries[i].Key == key {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("keyword overrides reference unknown category key %q", key)
		}
	}

	for key, extra := range file.Keywords {
		for i := range entries {
			if entries[i].Key == key {
				entries[i].Keywords = append(entries[i].Keywords, extra...)
			}
		}
	}

	return nil
}
