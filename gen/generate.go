package gen

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// FileWriter persists artifacts under the project root. Implementations own
// directory creation; the engine never touches the filesystem directly.
type FileWriter interface {
	Write(ctx context.Context, relPath string, content []byte) error
	Exists(relPath string) (bool, error)
	List(dir string) ([]string, error)
}

// Engine runs generation. Rendering is pure and synchronous; all effects go
// through the FileWriter. The caller-supplied context is checked between
// artifact writes, never mid-render.
type Engine struct {
	Writer    FileWriter
	Log       *zap.Logger
	Providers Providers
}

// NewEngine builds an engine with default providers. A nil logger disables
// progress logging.
func NewEngine(w FileWriter, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{Writer: w, Log: log, Providers: DefaultProviders()}
}

// artifactSpec is one renderable artifact: its kind, its target path (known
// before rendering, which the incremental existence check depends on), and
// the deferred render call.
type artifactSpec struct {
	Kind   string
	Path   string
	Render func() (model.GeneratedArtifact, error)
}

// entitySpecs lists the per-entity artifacts in stage order: domain,
// application (DTO, profile, commands, queries), infrastructure, api. Stages
// are gated independently by the config.
func entitySpecs(e model.EntityModel, cfg model.GenerationConfig) []artifactSpec {
	var specs []artifactSpec
	add := func(kind, path string, render func() (model.GeneratedArtifact, error)) {
		specs = append(specs, artifactSpec{Kind: kind, Path: path, Render: render})
	}

	if cfg.GenerateDomain {
		add("entity", EntityPath(e), func() (model.GeneratedArtifact, error) { return RenderEntity(e, cfg) })
	}
	if cfg.GenerateApplication {
		add("dto", DtoPath(e), func() (model.GeneratedArtifact, error) { return RenderDto(e, cfg) })
		if cfg.UseAutoMapper {
			add("mapping-profile", MappingProfilePath(e), func() (model.GeneratedArtifact, error) { return RenderMappingProfile(e, cfg) })
		}
		add("create-command", CreateCommandPath(e), func() (model.GeneratedArtifact, error) { return RenderCreateCommand(e, cfg) })
		add("create-handler", CreateHandlerPath(e), func() (model.GeneratedArtifact, error) { return RenderCreateHandler(e, cfg) })
		if cfg.UseFluentValidation {
			add("create-validator", CreateValidatorPath(e), func() (model.GeneratedArtifact, error) { return RenderCreateValidator(e, cfg) })
		}
		add("update-command", UpdateCommandPath(e), func() (model.GeneratedArtifact, error) { return RenderUpdateCommand(e, cfg) })
		add("update-handler", UpdateHandlerPath(e), func() (model.GeneratedArtifact, error) { return RenderUpdateHandler(e, cfg) })
		if cfg.UseFluentValidation {
			add("update-validator", UpdateValidatorPath(e), func() (model.GeneratedArtifact, error) { return RenderUpdateValidator(e, cfg) })
		}
		add("delete-command", DeleteCommandPath(e), func() (model.GeneratedArtifact, error) { return RenderDeleteCommand(e, cfg) })
		add("delete-handler", DeleteHandlerPath(e), func() (model.GeneratedArtifact, error) { return RenderDeleteHandler(e, cfg) })
		add("getbyid-query", GetByIdQueryPath(e), func() (model.GeneratedArtifact, error) { return RenderGetByIdQuery(e, cfg) })
		add("getbyid-handler", GetByIdHandlerPath(e), func() (model.GeneratedArtifact, error) { return RenderGetByIdHandler(e, cfg) })
		add("getall-query", GetAllQueryPath(e), func() (model.GeneratedArtifact, error) { return RenderGetAllQuery(e, cfg) })
		add("getall-handler", GetAllHandlerPath(e), func() (model.GeneratedArtifact, error) { return RenderGetAllHandler(e, cfg) })
	}
	if cfg.GenerateInfrastructure {
		add("configuration", ConfigurationPath(e), func() (model.GeneratedArtifact, error) { return RenderConfiguration(e, cfg) })
	}
	if cfg.GenerateApi {
		add("controller", ControllerPath(e), func() (model.GeneratedArtifact, error) { return RenderController(e, cfg) })
	}
	return specs
}

// crossEntitySpecs lists the artifacts rendered once over the full entity
// set, after every per-entity pass.
func (g *Engine) crossEntitySpecs(all []model.EntityModel, cfg model.GenerationConfig) []artifactSpec {
	var specs []artifactSpec
	add := func(kind, path string, render func() (model.GeneratedArtifact, error)) {
		specs = append(specs, artifactSpec{Kind: kind, Path: path, Render: render})
	}

	if cfg.GenerateApplication {
		add("store-interface", StoreInterfacePath, func() (model.GeneratedArtifact, error) { return RenderStoreInterface(all, cfg) })
		add("paged-result", PagedResultPath, func() (model.GeneratedArtifact, error) { return RenderPagedResult(cfg) })
		if cfg.UseMediator {
			add("mediator", MediatorPath, func() (model.GeneratedArtifact, error) { return RenderMediator(cfg) })
		}
	}
	if cfg.GenerateInfrastructure {
		add("store-impl", StoreImplPath, func() (model.GeneratedArtifact, error) { return RenderStoreImpl(all, cfg) })
		if cfg.GenerateSeedData {
			add("seed-data", SeedDataPath, func() (model.GeneratedArtifact, error) { return RenderSeedData(all, cfg, g.Providers) })
			add("seed-script", SeedScriptPath, func() (model.GeneratedArtifact, error) {
				return RenderSeedScript(all, cfg, g.Providers), nil
			})
		}
		if cfg.GenerateMigrations {
			add("migration", MigrationPath, func() (model.GeneratedArtifact, error) {
				return RenderMigration(all, cfg), nil
			})
		}
	}
	return specs
}

// validateInput rejects malformed input before any rendering or I/O.
func validateInput(entities []model.EntityModel, cfg model.GenerationConfig) error {
	if len(entities) == 0 {
		return NewValidationError("", "", "at least one entity is required")
	}
	if cfg.RootNamespace == "" {
		return NewValidationError("", "rootNamespace", "root namespace is required")
	}
	for _, e := range entities {
		if e.Name == "" {
			return NewValidationError(e.Name, "name", "entity name is required")
		}
		if !ValidIdentifier(e.Name) {
			return NewValidationError(e.Name, "name", "entity name must be a valid identifier")
		}
		if e.IsStub() {
			continue
		}
		if len(e.Properties) == 0 {
			return NewValidationError(e.Name, "properties", "entity needs at least one property")
		}
		for _, p := range e.Properties {
			if !ValidIdentifier(p.Name) {
				return NewValidationError(e.Name, p.Name, "property name must be a valid identifier")
			}
		}
	}
	return nil
}

// resolveReferences rejects relationships naming entities outside the
// supplied set. Renderers treat references as opaque names, so this is the
// single place reference consistency is enforced.
func resolveReferences(entities []model.EntityModel) error {
	names := make(map[string]bool, len(entities))
	for _, e := range entities {
		names[e.Name] = true
	}
	for _, e := range entities {
		for _, r := range e.Relationships {
			if !names[r.RelatedEntity] {
				return NewRenderError(e.Name, "relationships",
					fmt.Sprintf("relationship references unknown entity %q", r.RelatedEntity), nil)
			}
		}
	}
	return nil
}

// writeArtifact persists one artifact, wrapping I/O failures.
func (g *Engine) writeArtifact(ctx context.Context, a model.GeneratedArtifact) error {
	if err := g.Writer.Write(ctx, a.RelativePath, []byte(a.Content)); err != nil {
		return NewWriteError(a.RelativePath, err)
	}
	g.Log.Debug("artifact written",
		zap.String("path", a.RelativePath),
		zap.Int("bytes", a.SizeBytes))
	return nil
}

// Generate runs a full generation: validation, per-entity artifacts in input
// order, cross-entity artifacts, then the scaffolding pass. Any failure
// aborts the whole run.
func (g *Engine) Generate(ctx context.Context, entities []model.EntityModel, cfg model.GenerationConfig) ([]model.GeneratedArtifact, error) {
	if err := validateInput(entities, cfg); err != nil {
		return nil, err
	}
	if err := resolveReferences(entities); err != nil {
		return nil, err
	}
	if cyc := CyclicEntities(entities); len(cyc) > 0 {
		g.Log.Warn("referential cycle, seed order is degraded",
			zap.Strings("entities", cyc))
	}

	var out []model.GeneratedArtifact
	emit := func(spec artifactSpec) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		a, err := spec.Render()
		if err != nil {
			return err
		}
		if err := g.writeArtifact(ctx, a); err != nil {
			return err
		}
		out = append(out, a)
		return nil
	}

	for _, e := range entities {
		for _, spec := range entitySpecs(e, cfg) {
			if err := emit(spec); err != nil {
				return nil, err
			}
		}
		g.Log.Info("entity generated", zap.String("entity", e.Name))
	}

	for _, spec := range g.crossEntitySpecs(entities, cfg) {
		if err := emit(spec); err != nil {
			return nil, err
		}
	}

	boiler, err := RenderBoilerplate(entities, cfg)
	if err != nil {
		return nil, err
	}
	for _, a := range boiler {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := g.writeArtifact(ctx, a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	g.Log.Info("generation complete",
		zap.Int("entities", len(entities)),
		zap.Int("artifacts", len(out)))
	return out, nil
}
