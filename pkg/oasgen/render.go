package oasgen

import (
	"bytes"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// JSON renders the document as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	return data, errors.Wrap(err, "failed to render document as JSON")
}

// YAML renders the document as YAML with 2-space indentation.
func (d *Document) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, errors.Wrap(err, "failed to render document as YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to close YAML encoder")
	}
	return buf.Bytes(), nil
}
