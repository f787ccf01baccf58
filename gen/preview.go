package gen

import (
	"github.com/CarlvinJerry/MyCodegent/model"
)

// Preview renders the per-entity artifacts for a single entity and returns
// them keyed by artifact kind, writing nothing. It runs the exact renderer
// pipeline the full generation uses; there are no preview-only rules.
func Preview(e model.EntityModel, cfg model.GenerationConfig) (map[string]string, error) {
	if err := validateInput([]model.EntityModel{e}, cfg); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for _, spec := range entitySpecs(e, cfg) {
		a, err := spec.Render()
		if err != nil {
			return nil, err
		}
		out[spec.Kind] = a.Content
	}
	return out, nil
}
