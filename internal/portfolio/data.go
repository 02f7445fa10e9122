package portfolio

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var defaultData []byte

// Default decodes the embedded portfolio document.
func Default() (*Portfolio, error) {
	return Parse(defaultData)
}

// Parse decodes a YAML portfolio document.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio: %w", err)
	}
	return &p, nil
}
