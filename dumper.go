package ssp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Dumper struct {
	Out    io.Writer
	Format string
}

// Dump writes secrets as a single object keyed by secret name. JSON output is
// compact, without HTML escaping and without a trailing newline.
func (d Dumper) Dump(secrets []Secret) error {
	root := map[string]string{}

	for _, secret := range secrets {
		root[secret.Key] = secret.Value
	}

	switch d.Format {
	case "", FormatJSON:
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(root); err != nil {
			return fmt.Errorf("failed to encode secrets: %w", err)
		}

		if _, err := d.Out.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))); err != nil {
			return fmt.Errorf("failed to write secrets: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(d.Out)
		if err := enc.Encode(root); err != nil {
			return fmt.Errorf("failed to encode secrets: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode secrets: %w", err)
		}
	default:
		return fmt.Errorf("unknown format '%s'", d.Format)
	}

	return nil
}
