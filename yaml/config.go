// Package yaml loads configuration files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/docmirror"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML file at path over cfg. Keys absent from the
// file keep their current values. Durations use Go duration strings
// such as "45s" or "1m30s".
func LoadConfig(path string, cfg *docmirror.Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return docmirror.Errorf(docmirror.ENOTFOUND, "config file not found: %s", path)
	} else if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return docmirror.Errorf(docmirror.EINVALID, "failed to parse config file %s: %v", path, err)
	}
	return nil
}
