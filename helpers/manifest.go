package helpers

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ffarhour/vegagraph/engine"
)

// ============================================================================
// MANIFEST — Declarative batch chart definitions
// ============================================================================
// One YAML file describes a whole plotting run: where results live, where
// output goes, and the list of charts to assemble. Each entry becomes an
// independent pipeline invocation — entries share no state and may be
// generated in any order.
// ============================================================================

// Manifest is a parsed chart manifest.
type Manifest struct {
	InputDir  string          `yaml:"input_dir"`
	OutputDir string          `yaml:"output_dir"`
	ConfigDir string          `yaml:"config_dir"`
	Charts    []ManifestChart `yaml:"charts"`
}

// ManifestChart is one chart entry.
type ManifestChart struct {
	Type       string         `yaml:"type"`
	Engine     string         `yaml:"engine"`
	Algorithm  string         `yaml:"algorithm"`
	X          string         `yaml:"x"`
	Y          string         `yaml:"y"`
	XLabel     string         `yaml:"x_label"`
	YLabel     string         `yaml:"y_label"`
	Suffix     string         `yaml:"suffix"`
	Conditions map[string]any `yaml:"conditions"`
}

// LoadManifest parses and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	if len(m.Charts) == 0 {
		return nil, fmt.Errorf("manifest %s defines no charts", path)
	}
	for i, c := range m.Charts {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("manifest %s, chart %d: %w", path, i+1, err)
		}
	}

	return &m, nil
}

func (c ManifestChart) validate() error {
	if _, err := engine.ParseVariant(c.Type); err != nil {
		return err
	}
	if c.Algorithm == "" {
		return fmt.Errorf("algorithm is required")
	}
	if c.Type != "heatmap" && (c.X == "" || c.Y == "") {
		return fmt.Errorf("%s charts require x and y fields", c.Type)
	}
	return nil
}

// ToChart converts a manifest entry to an engine chart definition.
func (c ManifestChart) ToChart() (engine.Chart, error) {
	variant, err := engine.ParseVariant(c.Type)
	if err != nil {
		return engine.Chart{}, err
	}
	return engine.Chart{
		Variant: variant,
		Filters: engine.Filters(c.Conditions),
		Axes:    engine.AxisMapping{X: c.X, Y: c.Y},
		Labels: engine.Labels{
			Engine:     c.Engine,
			Algorithm:  c.Algorithm,
			XAxis:      c.XLabel,
			YAxis:      c.YLabel,
			FileSuffix: c.Suffix,
		},
	}, nil
}
