package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CarlvinJerry/MyCodegent/model"
)

func TestPluralIsPlainSuffix(t *testing.T) {
	assert.Equal(t, "Products", Plural("Product"))
	assert.Equal(t, "Categorys", Plural("Category"), "no irregular plural handling")
	assert.Equal(t, "Statuss", Plural("Status"))
}

func TestColumnName(t *testing.T) {
	assert.Equal(t, "created_at", ColumnName("CreatedAt"))
	assert.Equal(t, "name", ColumnName("Name"))
	assert.Equal(t, "order_line_id", ColumnName("OrderLineId"))
}

func TestArtifactPaths(t *testing.T) {
	e := model.EntityModel{Name: "Product"}

	assert.Equal(t, "Domain/Entities/Product.go", EntityPath(e))
	assert.Equal(t, "Application/Products/ProductDto.go", DtoPath(e))
	assert.Equal(t, "Application/Products/Commands/CreateProduct/CreateProductCommand.go", CreateCommandPath(e))
	assert.Equal(t, "Application/Products/Commands/CreateProduct/CreateProductCommandHandler.go", CreateHandlerPath(e))
	assert.Equal(t, "Application/Products/Commands/CreateProduct/CreateProductCommandValidator.go", CreateValidatorPath(e))
	assert.Equal(t, "Application/Products/Commands/UpdateProduct/UpdateProductCommand.go", UpdateCommandPath(e))
	assert.Equal(t, "Application/Products/Commands/DeleteProduct/DeleteProductCommand.go", DeleteCommandPath(e))
	assert.Equal(t, "Application/Products/Queries/GetProductById/GetProductByIdQuery.go", GetByIdQueryPath(e))
	assert.Equal(t, "Application/Products/Queries/GetAllProducts/GetAllProductsQuery.go", GetAllQueryPath(e))
	assert.Equal(t, "Infrastructure/Persistence/Configurations/ProductConfiguration.go", ConfigurationPath(e))
	assert.Equal(t, "Api/Controllers/ProductsController.go", ControllerPath(e))
}

func TestRoutePath(t *testing.T) {
	assert.Equal(t, "products", RoutePath(model.EntityModel{Name: "Product"}))
	assert.Equal(t, "orderlines", RoutePath(model.EntityModel{Name: "OrderLine"}))
}

func TestValidIdentifier(t *testing.T) {
	assert.True(t, ValidIdentifier("Product"))
	assert.True(t, ValidIdentifier("Order2"))
	assert.False(t, ValidIdentifier(""))
	assert.False(t, ValidIdentifier("2Order"))
	assert.False(t, ValidIdentifier("Order Line"))
	assert.False(t, ValidIdentifier("Order-Line"))
}
