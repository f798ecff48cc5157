package family

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/familytree/pkg/errors"
)

// Document formats understood by [Read].
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// FormatFromPath picks a document format from a file extension.
// Unknown extensions fall back to JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Read decodes a family document. A document without a members list is an
// input-shape error; a missing relationships list is treated as empty.
func Read(r io.Reader, format string) (Family, error) {
	var f Family
	var err error

	switch format {
	case FormatJSON, "":
		err = json.NewDecoder(r).Decode(&f)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&f)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&f)
	default:
		return Family{}, errors.New(errors.ErrCodeInvalidFormat, "unknown family document format %q", format)
	}
	if err != nil {
		return Family{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s family document", format)
	}

	if f.Members == nil {
		return Family{}, errors.New(errors.ErrCodeInvalidInput, "members array is required")
	}
	if f.Relationships == nil {
		f.Relationships = []Relationship{}
	}
	return f, nil
}

// ReadFile opens path and decodes it with the format implied by its extension.
func ReadFile(path string) (Family, error) {
	file, err := os.Open(path)
	if err != nil {
		return Family{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return Read(file, FormatFromPath(path))
}

// Write encodes f as indented JSON.
func Write(f Family, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
