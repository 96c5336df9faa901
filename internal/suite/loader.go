package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/truthtable/internal/apperr"
	"github.com/DjordjeVuckovic/truthtable/internal/truthtable"
)

type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported suite file extension %q", filepath.Ext(path))
	}
}

func LoadFromFile(path string) (*Suite, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data, format)
}

func Parse(data []byte, format Format) (*Suite, error) {
	var s Suite
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse suite YAML: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &s); err != nil {
			return nil, fmt.Errorf("parse suite TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported suite format %d", format)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) Validate() error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.Formula == "" {
			return fmt.Errorf("case %q has no formula", c.ID)
		}
		if err := c.Expect.validate(); err != nil {
			return fmt.Errorf("case %q: %w", c.ID, err)
		}
	}
	return nil
}

func (e Expectation) validate() error {
	if e.IsEmpty() {
		return fmt.Errorf("no expectation")
	}
	if e.Error != "" {
		if e.Column != "" || e.Classification != "" || e.EquivalentTo != "" {
			return fmt.Errorf("error expectation cannot be combined with other expectations")
		}
		if _, err := apperr.ParseKind(e.Error); err != nil {
			return err
		}
	}
	if e.Classification != "" {
		if _, err := truthtable.ParseClassification(e.Classification); err != nil {
			return err
		}
	}
	if e.Column != "" {
		if _, err := normalizeColumn(e.Column); err != nil {
			return err
		}
	}
	return nil
}

// normalizeColumn maps the accepted spellings onto V/F.
func normalizeColumn(col string) (string, error) {
	var b strings.Builder
	for _, r := range strings.ToUpper(col) {
		switch r {
		case 'V', 'T', '1':
			b.WriteString(truthtable.TrueSymbol)
		case 'F', '0':
			b.WriteString(truthtable.FalseSymbol)
		case ' ', ',':
		default:
			return "", fmt.Errorf("invalid column symbol %q", r)
		}
	}
	return b.String(), nil
}
