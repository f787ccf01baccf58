package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlvinJerry/MyCodegent/model"
)

func TestRenderControllerRoutes(t *testing.T) {
	a, err := RenderController(productEntity(), model.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "Api/Controllers/ProductsController.go", a.RelativePath)
	for _, route := range []string{
		`"GET /api/products"`,
		`"GET /api/products/{id}"`,
		`"POST /api/products"`,
		`"PUT /api/products/{id}"`,
		`"DELETE /api/products/{id}"`,
	} {
		assert.Contains(t, a.Content, route)
	}
	assert.Equal(t, 5, strings.Count(a.Content, "mux.HandleFunc("))
}

func TestRenderControllerKeyParsing(t *testing.T) {
	a, err := RenderController(productEntity(), model.DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, a.Content, `strconv.Atoi(r.PathValue("id"))`)

	guidKeyed := model.EntityModel{
		Name: "Session",
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeGuid, IsKey: true},
		},
	}
	a, err = RenderController(guidKeyed, model.DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, a.Content, `uuid.Parse(r.PathValue("id"))`)

	longKeyed := model.EntityModel{
		Name: "Ledger",
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeLong, IsKey: true},
		},
	}
	a, err = RenderController(longKeyed, model.DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, a.Content, `strconv.ParseInt(r.PathValue("id"), 10, 64)`)
}

func TestRenderControllerUpdateKeyMismatch(t *testing.T) {
	a, err := RenderController(productEntity(), model.DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, a.Content, "cmd.Id != id")
	assert.Contains(t, a.Content, `"route key does not match body key"`)
	// The mismatch check runs before any handler dispatch.
	assert.True(t, orderedIndexes(a.Content,
		"func (c *ProductsController) handleUpdate",
		"route key does not match body key",
		"c.Update.Handle",
	), a.Content)
}

func TestRenderControllerStatusCodes(t *testing.T) {
	a, err := RenderController(productEntity(), model.DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, a.Content, "http.StatusCreated")
	assert.Equal(t, 2, strings.Count(a.Content, "http.StatusNoContent"), "update and delete reply 204")
	assert.Equal(t, 3, strings.Count(a.Content, "http.NotFound(w, r)"), "get-by-id, update and delete reply 404")
}

func TestRenderMappingPropertyDirectives(t *testing.T) {
	a, err := RenderConfiguration(productEntity(), model.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "Infrastructure/Persistence/Configurations/ProductConfiguration.go", a.RelativePath)
	assert.Contains(t, a.Content, `b.ToTable("Products")`)
	assert.Contains(t, a.Content, `b.HasKey("Id")`)
	assert.Contains(t, a.Content, `b.Property("Name").IsRequired()`)
	assert.Contains(t, a.Content, `b.Property("Name").HasMaxLength(200)`)
	assert.Contains(t, a.Content, `b.HasQueryFilter("IsDeleted")`)
}

func TestRenderMappingRequiredOnlyWhenNotNullable(t *testing.T) {
	e := model.EntityModel{
		Name: "Note",
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeInt, IsKey: true},
			{Name: "Body", Type: model.TypeString, IsRequired: true, IsNullable: true},
		},
	}
	a, err := RenderConfiguration(e, model.DefaultConfig())
	require.NoError(t, err)
	assert.NotContains(t, a.Content, `b.Property("Body").IsRequired()`)
}

func TestRenderMappingRelationshipShapes(t *testing.T) {
	cfg := model.DefaultConfig()

	a, err := RenderConfiguration(orderEntity(), cfg)
	require.NoError(t, err)
	assert.Contains(t, a.Content,
		`b.HasOne("Customer").WithMany("Orders").HasForeignKey("CustomerId").OnDelete("Cascade")`)

	customer := customerEntity()
	customer.Relationships = []model.RelationshipModel{
		{Type: model.OneToMany, RelatedEntity: "Order", NavigationProperty: "Orders", InverseNavigationProperty: "Customer", ForeignKeyProperty: "CustomerId", OnDeleteBehavior: "Cascade"},
	}
	a, err = RenderConfiguration(customer, cfg)
	require.NoError(t, err)
	assert.Contains(t, a.Content,
		`b.HasMany("Orders").WithOne("Customer").HasForeignKey("CustomerId").OnDelete("Cascade")`)

	product := productEntity()
	product.Relationships = []model.RelationshipModel{
		{Type: model.ManyToMany, RelatedEntity: "Tag", NavigationProperty: "Tags", InverseNavigationProperty: "Products", JoinTableName: "ProductTags"},
	}
	a, err = RenderConfiguration(product, cfg)
	require.NoError(t, err)
	assert.Contains(t, a.Content,
		`b.HasMany("Tags").WithMany("Products").UsingEntity("ProductTags")`)
}

func TestRenderMappingBusinessKeyIndex(t *testing.T) {
	e := productEntity()
	e.BusinessKeys = []string{"Name", "Price"}
	a, err := RenderConfiguration(e, model.DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, a.Content,
		`b.HasIndex("Name", "Price").IsUnique().HasDatabaseName("IX_Product_Name_Price_BusinessKey")`)
}
