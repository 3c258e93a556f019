package schema

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type snapshot struct {
	Tables []Table `yaml:"tables"`
}

// WriteSnapshot encodes resolved tables as YAML.
func WriteSnapshot(w io.Writer, tables []Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snapshot{Tables: tables}); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes tables written by WriteSnapshot.
func ReadSnapshot(r io.Reader) ([]Table, error) {
	var s snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return s.Tables, nil
}
