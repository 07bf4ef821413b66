package tokens

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Document is a serialisable snapshot of the token tables.
type Document struct {
	Palettes map[string]map[string]string `yaml:"palettes" toml:"palettes"`
	Flat     map[string]string            `yaml:"flat" toml:"flat"`
	Semantic map[string]SemanticEntry     `yaml:"semantic" toml:"semantic"`
}

// SemanticEntry records what a role aliases and the colour it resolves to.
type SemanticEntry struct {
	Ref string `yaml:"ref" toml:"ref"`
	Hex string `yaml:"hex" toml:"hex"`
}

// Export builds a Document from the current tables.
func Export() Document {
	doc := Document{
		Palettes: make(map[string]map[string]string, len(paletteOrder)),
		Flat: map[string]string{
			"white":       White,
			"black":       Black,
			"transparent": Transparent,
		},
		Semantic: make(map[string]SemanticEntry, len(roleOrder)),
	}

	for _, p := range paletteOrder {
		ramp := make(map[string]string, len(shadeOrder))
		for s, hex := range Scale(p) {
			ramp[s.String()] = hex
		}
		doc.Palettes[string(p)] = ramp
	}

	for _, r := range roleOrder {
		ref := semantic[r]
		doc.Semantic[string(r)] = SemanticEntry{Ref: ref.String(), Hex: semanticHex[r]}
	}

	return doc
}

// WriteYAML writes the token document as YAML.
func WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Export()); err != nil {
		return fmt.Errorf("tokens: encode YAML: %w", err)
	}
	return enc.Close()
}

// WriteTOML writes the token document as TOML.
func WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(Export()); err != nil {
		return fmt.Errorf("tokens: encode TOML: %w", err)
	}
	return nil
}
