package puzzle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a puzzle file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for file extensions with no decoder.
var ErrUnknownFormat = errors.New("puzzle: unknown file format")

// FormatFor picks the decoder from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads and decodes a puzzle file. A relative imageUri is resolved
// against the puzzle's directory so puzzles can ship next to their pictures.
func Load(path string) (Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read puzzle: %w", err)
	}
	cfg, err := Decode(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if cfg.ImageURI != "" && !strings.Contains(cfg.ImageURI, ":") && !filepath.IsAbs(cfg.ImageURI) {
		cfg.ImageURI = filepath.Join(filepath.Dir(path), cfg.ImageURI)
	}
	return cfg, nil
}

// Decode parses puzzle data in the given format. Only syntax errors fail;
// type mismatches inside the document are coerced by FromMap.
func Decode(data []byte, format Format) (Config, error) {
	raw := map[string]any{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Config{}, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return FromMap(raw), nil
}
