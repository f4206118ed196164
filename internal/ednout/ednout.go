package ednout

import (
	"bytes"
	"fmt"

	"olympos.io/encoding/edn"

	"github.com/arcanaland/cardtags/internal/fileutil"
	"github.com/arcanaland/cardtags/internal/tagtable"
)

// Options controls the EDN layout
type Options struct {
	// Indent writes one card per line
	Indent bool
}

// Marshal encodes t as an EDN map of card name to tag vector, in table order
func Marshal(t *tagtable.Table, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, c := range t.Cards() {
		if i > 0 {
			if opts.Indent {
				buf.WriteString(",\n ")
			} else {
				buf.WriteString(", ")
			}
		}

		key, err := edn.Marshal(c.Name)
		if err != nil {
			return nil, fmt.Errorf("error encoding card name %q: %w", c.Name, err)
		}
		tags := c.Tags
		if tags == nil {
			tags = []string{}
		}
		value, err := edn.Marshal(tags)
		if err != nil {
			return nil, fmt.Errorf("error encoding tags for %q: %w", c.Name, err)
		}

		buf.Write(key)
		buf.WriteByte(' ')
		buf.Write(value)
	}

	buf.WriteByte('}')
	if opts.Indent {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// WriteFile writes t to path, creating or truncating it
func WriteFile(path string, t *tagtable.Table, opts Options) error {
	data, err := Marshal(t, opts)
	if err != nil {
		return err
	}
	return fileutil.WriteFile(path, data)
}

// Decode reads an EDN tag map
func Decode(data []byte) (map[string][]string, error) {
	var m map[string][]string
	if err := edn.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("error decoding tag map: %w", err)
	}
	if m == nil {
		m = map[string][]string{}
	}
	return m, nil
}

// ReadFile reads the EDN tag map at path
func ReadFile(path string) (map[string][]string, error) {
	data, err := fileutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
