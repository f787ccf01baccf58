// Package load reads entity models and generation configuration from model
// files. YAML is the canonical format; JSON files are accepted because every
// model type carries both tag sets.
package load

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// Document is the top-level shape of a model file: the generation
// configuration plus the entity list. Either section may be omitted; an
// absent config falls back to the defaults.
type Document struct {
	Config   *model.GenerationConfig `json:"config,omitempty" yaml:"config,omitempty"`
	Entities []model.EntityModel     `json:"entities" yaml:"entities"`
}

// File parses one model file by extension.
func File(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read model file %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parse(raw, json.Unmarshal, path)
	case ".yaml", ".yml":
		return parse(raw, yaml.Unmarshal, path)
	default:
		return nil, errors.Newf("unsupported model file extension %q", filepath.Ext(path))
	}
}

func parse(raw []byte, unmarshal func([]byte, any) error, path string) (*Document, error) {
	var doc Document
	if err := unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "parse model file %s", path)
	}
	if len(doc.Entities) == 0 {
		return nil, errors.Newf("model file %s declares no entities", path)
	}
	return &doc, nil
}

// ResolvedConfig resolves the effective generation configuration: the document's
// config over the defaults, or the defaults untouched when the document has
// none. Only the root namespace and output path are required downstream, and
// validation of those stays with the engine.
func (d *Document) ResolvedConfig() model.GenerationConfig {
	if d.Config == nil {
		return model.DefaultConfig()
	}
	cfg := *d.Config
	if cfg.OutputPath == "" {
		cfg.OutputPath = model.DefaultConfig().OutputPath
	}
	if cfg.RootNamespace == "" {
		cfg.RootNamespace = model.DefaultConfig().RootNamespace
	}
	if cfg.DatabaseProvider == "" {
		cfg.DatabaseProvider = model.DefaultConfig().DatabaseProvider
	}
	return cfg
}
