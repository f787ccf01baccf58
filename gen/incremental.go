package gen

import (
	"context"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// IncrementalResult reports the effect of one incremental run.
type IncrementalResult struct {
	NewFiles      []string `json:"newFiles"`
	UpdatedFiles  []string `json:"updatedFiles"`
	SkippedFiles  []string `json:"skippedFiles"`
	EntitiesAdded []string `json:"entitiesAdded"`
}

// discoverEntities scans the entity directory for already-generated entities
// and returns their names, sorted. A missing or unreadable directory counts
// as an empty project, not an error.
func (g *Engine) discoverEntities() []string {
	files, err := g.Writer.List(EntitiesDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, f := range files {
		base := path.Base(f)
		if !strings.HasSuffix(base, ".go") || strings.HasSuffix(base, "_test.go") {
			continue
		}
		name := strings.TrimSuffix(base, ".go")
		if ValidIdentifier(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// GenerateIncremental adds entities to an existing project. Per-entity
// artifacts are write-once: any artifact whose target path already exists is
// skipped, never overwritten, even if the entity's shape changed. The store
// interface and store implementation are always regenerated over the union
// of the new entities and stubs for every entity discovered on disk.
func (g *Engine) GenerateIncremental(ctx context.Context, newEntities []model.EntityModel, cfg model.GenerationConfig) (*IncrementalResult, error) {
	ok, err := g.Writer.Exists(".")
	if err != nil {
		return nil, NewWriteError(".", err)
	}
	if !ok {
		return nil, NewProjectNotFoundError(cfg.OutputPath)
	}
	if err := validateInput(newEntities, cfg); err != nil {
		return nil, err
	}

	discovered := g.discoverEntities()
	existing := make(map[string]bool, len(discovered))
	for _, name := range discovered {
		existing[name] = true
	}
	supplied := make(map[string]bool, len(newEntities))
	for _, e := range newEntities {
		supplied[e.Name] = true
	}

	// Union for the cross-entity artifacts: full models for the supplied
	// entities, name-only stubs for everything else already on disk. A stub
	// contributes its accessor and nothing more; that loss is accepted.
	union := make([]model.EntityModel, 0, len(newEntities)+len(discovered))
	union = append(union, newEntities...)
	for _, name := range discovered {
		if !supplied[name] {
			union = append(union, model.StubEntity(name))
		}
	}

	// Cross-entity artifacts need the complete resolved set, so a dangling
	// reference is fatal to the whole run.
	if err := resolveReferences(union); err != nil {
		return nil, err
	}
	if cyc := CyclicEntities(union); len(cyc) > 0 {
		g.Log.Warn("referential cycle, seed order is degraded",
			zap.Strings("entities", cyc))
	}

	res := &IncrementalResult{}
	for _, e := range newEntities {
		if !existing[e.Name] {
			res.EntitiesAdded = append(res.EntitiesAdded, e.Name)
		}
		for _, spec := range entitySpecs(e, cfg) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			present, err := g.Writer.Exists(spec.Path)
			if err != nil {
				return nil, NewWriteError(spec.Path, err)
			}
			if present {
				res.SkippedFiles = append(res.SkippedFiles, spec.Path)
				continue
			}
			a, err := spec.Render()
			if err != nil {
				// Only the affected artifact is lost; the run continues.
				g.Log.Warn("artifact not rendered",
					zap.String("path", spec.Path),
					zap.Error(err))
				continue
			}
			if err := g.writeArtifact(ctx, a); err != nil {
				return nil, err
			}
			res.NewFiles = append(res.NewFiles, spec.Path)
		}
	}

	var cross []artifactSpec
	if cfg.GenerateApplication {
		cross = append(cross, artifactSpec{
			Kind: "store-interface",
			Path: StoreInterfacePath,
			Render: func() (model.GeneratedArtifact, error) {
				return RenderStoreInterface(union, cfg)
			},
		})
	}
	if cfg.GenerateInfrastructure {
		cross = append(cross, artifactSpec{
			Kind: "store-impl",
			Path: StoreImplPath,
			Render: func() (model.GeneratedArtifact, error) {
				return RenderStoreImpl(union, cfg)
			},
		})
	}
	for _, spec := range cross {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := spec.Render()
		if err != nil {
			return nil, err
		}
		if err := g.writeArtifact(ctx, a); err != nil {
			return nil, err
		}
		res.UpdatedFiles = append(res.UpdatedFiles, spec.Path)
	}

	g.Log.Info("incremental generation complete",
		zap.Strings("added", res.EntitiesAdded),
		zap.Int("new", len(res.NewFiles)),
		zap.Int("skipped", len(res.SkippedFiles)))
	return res, nil
}
