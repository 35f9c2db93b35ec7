package limits

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML document of limits and overlays it onto Default.
// Keys that are absent keep their default value; unknown keys are an error
// so a typo does not silently fall back to the default.
func Load(r io.Reader) (Resources, error) {
	res := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&res); err != nil {
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		return Resources{}, fmt.Errorf("limits: decode: %w", err)
	}
	return res, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string) (Resources, error) {
	f, err := os.Open(path)
	if err != nil {
		return Resources{}, fmt.Errorf("limits: %w", err)
	}
	defer f.Close()

	res, err := Load(f)
	if err != nil {
		return Resources{}, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// Marshal renders r as YAML using the engine field names.
func Marshal(r Resources) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("limits: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("limits: encode: %w", err)
	}
	return buf.Bytes(), nil
}
