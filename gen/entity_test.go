package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlvinJerry/MyCodegent/model"
)

func TestRenderEntityFieldOrder(t *testing.T) {
	a, err := RenderEntity(productEntity(), model.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "Domain/Entities/Product.go", a.RelativePath)
	assert.True(t, orderedIndexes(a.Content,
		"Id ", "Name ", "Price ",
		"CreatedAt ", "CreatedBy ", "UpdatedAt ", "UpdatedBy ",
		"IsDeleted ", "DeletedAt ", "DeletedBy ",
	), "audit then soft-delete fields must follow the declared properties:\n%s", a.Content)
	assert.Contains(t, a.Content, "Code generated by MyCodegent. DO NOT EDIT.")
}

func TestRenderEntityImplicitKey(t *testing.T) {
	a, err := RenderEntity(customerEntity(), model.DefaultConfig())
	require.NoError(t, err)

	assert.True(t, orderedIndexes(a.Content, "Id ", "Email ", "FullName "),
		"implicit key must be the first field:\n%s", a.Content)
	assert.Regexp(t, `Id\s+int`, a.Content)
}

func TestRenderEntityNullability(t *testing.T) {
	e := model.EntityModel{
		Name: "Note",
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeInt, IsKey: true},
			{Name: "Body", Type: model.TypeString, IsNullable: true},
			{Name: "Views", Type: model.TypeInt, IsNullable: true},
			{Name: "PostedAt", Type: model.TypeDateTime, IsNullable: true},
		},
	}
	a, err := RenderEntity(e, model.DefaultConfig())
	require.NoError(t, err)

	assert.Regexp(t, `Body\s+\*string`, a.Content, "nullable string becomes a pointer")
	assert.Regexp(t, `Views\s+int`, a.Content, "nullable value types stay plain")
	assert.NotRegexp(t, `Views\s+\*int`, a.Content)
	assert.NotRegexp(t, `PostedAt\s+\*time\.Time`, a.Content)
}

func TestRenderEntityNavigationMembers(t *testing.T) {
	cfg := model.DefaultConfig()

	a, err := RenderEntity(orderEntity(), cfg)
	require.NoError(t, err)
	assert.Regexp(t, `Customer\s+\*Customer`, a.Content, "single-valued navigation for ManyToOne")

	customer := customerEntity()
	customer.Relationships = []model.RelationshipModel{
		{Type: model.OneToMany, RelatedEntity: "Order", NavigationProperty: "Orders", ForeignKeyProperty: "CustomerId"},
	}
	a, err = RenderEntity(customer, cfg)
	require.NoError(t, err)
	assert.Regexp(t, `Orders\s+\[\]\*Order`, a.Content, "collection navigation for OneToMany")
}

func TestRenderDtoShape(t *testing.T) {
	a, err := RenderDto(productEntity(), model.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "Application/Products/ProductDto.go", a.RelativePath)
	assert.True(t, orderedIndexes(a.Content,
		"Id ", "Name ", "Price ", "CreatedAt ", "CreatedBy ", "UpdatedAt ", "UpdatedBy ",
	))
	assert.NotContains(t, a.Content, "IsDeleted", "DTOs never expose delete state")
	assert.NotContains(t, a.Content, "DeletedAt")
}

func TestRenderDtoOmitsNavigation(t *testing.T) {
	a, err := RenderDto(orderEntity(), model.DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, a.Content, "CustomerId")
	assert.False(t, strings.Contains(a.Content, "Customer *"), "no navigation members on DTOs")
}
