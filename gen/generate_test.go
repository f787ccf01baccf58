package gen

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/CarlvinJerry/MyCodegent/model"
)

func newTestEngine(w FileWriter) *Engine {
	g := NewEngine(w, nil)
	g.Providers = fixedProviders()
	return g
}

func TestGenerateWritesEveryEntityArtifact(t *testing.T) {
	w := newMemWriter()
	g := newTestEngine(w)
	cfg := model.DefaultConfig()
	cfg.GenerateSeedData = true

	arts, err := g.Generate(context.Background(), []model.EntityModel{productEntity()}, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, arts)

	e := productEntity()
	for _, p := range []string{
		EntityPath(e), DtoPath(e), MappingProfilePath(e),
		CreateCommandPath(e), CreateHandlerPath(e), CreateValidatorPath(e),
		UpdateCommandPath(e), UpdateHandlerPath(e), UpdateValidatorPath(e),
		DeleteCommandPath(e), DeleteHandlerPath(e),
		GetByIdQueryPath(e), GetByIdHandlerPath(e),
		GetAllQueryPath(e), GetAllHandlerPath(e),
		ConfigurationPath(e), ControllerPath(e),
		StoreInterfacePath, StoreImplPath, PagedResultPath, MediatorPath,
		SeedDataPath, SeedScriptPath, MigrationPath,
	} {
		assert.Contains(t, w.files, p)
	}
}

func TestGenerateValidatesBeforeAnyWrite(t *testing.T) {
	w := newMemWriter()
	g := newTestEngine(w)

	_, err := g.Generate(context.Background(), nil, model.DefaultConfig())
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, w.writes)

	bad := productEntity()
	bad.Properties[1].Name = "Display Name"
	_, err = g.Generate(context.Background(), []model.EntityModel{bad}, model.DefaultConfig())
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, w.writes)

	cfg := model.DefaultConfig()
	cfg.RootNamespace = ""
	_, err = g.Generate(context.Background(), []model.EntityModel{productEntity()}, cfg)
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, w.writes)
}

func TestGenerateRejectsDanglingReference(t *testing.T) {
	w := newMemWriter()
	g := newTestEngine(w)

	_, err := g.Generate(context.Background(), []model.EntityModel{orderEntity()}, model.DefaultConfig())
	require.ErrorIs(t, err, ErrRender)
	assert.Contains(t, err.Error(), `unknown entity "Customer"`)
	assert.Zero(t, w.writes, "reference resolution happens before any write")
}

func TestGenerateWithoutFluentValidation(t *testing.T) {
	w := newMemWriter()
	g := newTestEngine(w)
	cfg := model.DefaultConfig()
	cfg.UseFluentValidation = false

	_, err := g.Generate(context.Background(), []model.EntityModel{productEntity()}, cfg)
	require.NoError(t, err)

	e := productEntity()
	assert.NotContains(t, w.files, CreateValidatorPath(e))
	assert.NotContains(t, w.files, UpdateValidatorPath(e))
	assert.Contains(t, w.files, CreateCommandPath(e), "commands are unaffected")
}

func TestGenerateLayerGates(t *testing.T) {
	w := newMemWriter()
	g := newTestEngine(w)
	cfg := model.DefaultConfig()
	cfg.GenerateApi = false
	cfg.GenerateInfrastructure = false

	_, err := g.Generate(context.Background(), []model.EntityModel{productEntity()}, cfg)
	require.NoError(t, err)

	e := productEntity()
	assert.NotContains(t, w.files, ControllerPath(e))
	assert.NotContains(t, w.files, ConfigurationPath(e))
	assert.NotContains(t, w.files, StoreImplPath)
	assert.Contains(t, w.files, EntityPath(e))
	assert.Contains(t, w.files, StoreInterfacePath)
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.GenerateSeedData = true
	entities := []model.EntityModel{customerEntity(), orderEntity()}

	w1 := newMemWriter()
	_, err := newTestEngine(w1).Generate(context.Background(), entities, cfg)
	require.NoError(t, err)

	w2 := newMemWriter()
	_, err = newTestEngine(w2).Generate(context.Background(), entities, cfg)
	require.NoError(t, err)

	require.Equal(t, w1.paths(), w2.paths())
	for p, content := range w1.files {
		assert.Equal(t, string(content), string(w2.files[p]), p)
	}
}

func TestGenerateHonorsCancellation(t *testing.T) {
	w := newMemWriter()
	g := newTestEngine(w)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, []model.EntityModel{productEntity()}, model.DefaultConfig())
	require.ErrorIs(t, err, context.Canceled)
}

func TestPreviewRendersWithoutWriting(t *testing.T) {
	out, err := Preview(productEntity(), model.DefaultConfig())
	require.NoError(t, err)

	require.NotEmpty(t, out)
	assert.Contains(t, out, "entity")
	assert.Contains(t, out, "controller")
	for kind, content := range out {
		assert.NotEmpty(t, content, kind)
	}
	assert.True(t, strings.Contains(out["entity"], "type Product struct"))
}

func TestGenerateWarnsOnReferentialCycle(t *testing.T) {
	dept := model.EntityModel{
		Name: "Department",
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeInt, IsKey: true, IsRequired: true},
			{Name: "HeadId", Type: model.TypeInt, IsRequired: true},
		},
		Relationships: []model.RelationshipModel{{
			Type:                      model.ManyToOne,
			RelatedEntity:             "Employee",
			ForeignKeyProperty:        "HeadId",
			NavigationProperty:        "Head",
			InverseNavigationProperty: "Departments",
			OnDeleteBehavior:          "Restrict",
		}},
	}
	emp := model.EntityModel{
		Name: "Employee",
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeInt, IsKey: true, IsRequired: true},
			{Name: "DepartmentId", Type: model.TypeInt, IsRequired: true},
		},
		Relationships: []model.RelationshipModel{{
			Type:                      model.ManyToOne,
			RelatedEntity:             "Department",
			ForeignKeyProperty:        "DepartmentId",
			NavigationProperty:        "Department",
			InverseNavigationProperty: "Employees",
			OnDeleteBehavior:          "Restrict",
		}},
	}

	core, logs := observer.New(zap.WarnLevel)
	w := newMemWriter()
	g := NewEngine(w, zap.New(core))
	g.Providers = fixedProviders()

	_, err := g.Generate(context.Background(), []model.EntityModel{dept, emp}, model.DefaultConfig())
	require.NoError(t, err, "cycles degrade seed order, they never fail generation")

	warned := logs.FilterMessage("referential cycle, seed order is degraded")
	require.Equal(t, 1, warned.Len())
	got, ok := warned.All()[0].ContextMap()["entities"].([]interface{})
	require.True(t, ok)
	assert.ElementsMatch(t, []interface{}{"Department", "Employee"}, got)
}

func TestGenerateAcyclicModelStaysQuiet(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	w := newMemWriter()
	g := NewEngine(w, zap.New(core))
	g.Providers = fixedProviders()

	_, err := g.Generate(context.Background(),
		[]model.EntityModel{customerEntity(), orderEntity()}, model.DefaultConfig())
	require.NoError(t, err)
	assert.Zero(t, logs.FilterMessage("referential cycle, seed order is degraded").Len())
}
