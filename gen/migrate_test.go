package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlvinJerry/MyCodegent/model"
)

func TestColumnSQLTypePerProvider(t *testing.T) {
	str := model.PropertyModel{Name: "Name", Type: model.TypeString, MaxLength: intp(200)}
	assert.Equal(t, "NVARCHAR(200)", columnSQLType(str, model.SQLServer))
	assert.Equal(t, "VARCHAR(200)", columnSQLType(str, model.MySQL))
	assert.Equal(t, "VARCHAR(200)", columnSQLType(str, model.PostgreSQL))
	assert.Equal(t, "TEXT", columnSQLType(str, model.SQLite))

	unbounded := model.PropertyModel{Name: "Body", Type: model.TypeString}
	assert.Equal(t, "NVARCHAR(MAX)", columnSQLType(unbounded, model.SQLServer))

	dec := model.PropertyModel{
		Name: "Price", Type: model.TypeDecimal,
		Constraints: &model.PropertyConstraints{Precision: 10, Scale: 4},
	}
	assert.Equal(t, "DECIMAL(10,4)", columnSQLType(dec, model.SQLServer))
	assert.Equal(t, "DECIMAL(18,2)", columnSQLType(model.PropertyModel{Type: model.TypeDecimal}, model.MySQL))

	guid := model.PropertyModel{Name: "Ref", Type: model.TypeGuid}
	assert.Equal(t, "UNIQUEIDENTIFIER", columnSQLType(guid, model.SQLServer))
	assert.Equal(t, "UUID", columnSQLType(guid, model.PostgreSQL))
	assert.Equal(t, "CHAR(36)", columnSQLType(guid, model.MySQL))

	assert.Equal(t, "BIT", columnSQLType(model.PropertyModel{Type: model.TypeBool}, model.SQLServer))
	assert.Equal(t, "BOOLEAN", columnSQLType(model.PropertyModel{Type: model.TypeBool}, model.PostgreSQL))
	assert.Equal(t, "TIMESTAMPTZ", columnSQLType(model.PropertyModel{Type: model.TypeDateTimeOffset}, model.PostgreSQL))
}

func TestSchemaTablesShape(t *testing.T) {
	all := []model.EntityModel{orderEntity(), customerEntity()}
	tables := SchemaTables(all, model.DefaultConfig())

	require.Len(t, tables, 2)
	assert.Equal(t, "customers", tables[0].Name, "tables follow seed order")
	assert.Equal(t, "orders", tables[1].Name)

	orders := tables[1]
	require.Len(t, orders.ForeignKeys, 1)
	fk := orders.ForeignKeys[0]
	assert.Equal(t, "FK_Order_Customer_CustomerId", fk.Symbol)
	assert.Equal(t, "customer_id", fk.Columns[0].Name)
	assert.Equal(t, "customers", fk.RefTable.Name)
	assert.Equal(t, "id", fk.RefColumns[0].Name)
}

func TestSchemaTablesBusinessKeyIndex(t *testing.T) {
	e := productEntity()
	e.BusinessKeys = []string{"Name"}
	tables := SchemaTables([]model.EntityModel{e}, model.DefaultConfig())

	require.Len(t, tables, 1)
	require.Len(t, tables[0].Indexes, 1)
	idx := tables[0].Indexes[0]
	assert.Equal(t, "IX_Product_Name_BusinessKey", idx.Name)
	assert.True(t, idx.Unique)
}

func TestSchemaTablesManyToManyJoinTable(t *testing.T) {
	product := productEntity()
	product.Relationships = []model.RelationshipModel{
		{Type: model.ManyToMany, RelatedEntity: "Tag", NavigationProperty: "Tags", JoinTableName: "ProductTags"},
	}
	tag := model.EntityModel{
		Name: "Tag",
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeInt, IsKey: true},
			{Name: "Label", Type: model.TypeString, IsRequired: true},
		},
		Relationships: []model.RelationshipModel{
			{Type: model.ManyToMany, RelatedEntity: "Product", NavigationProperty: "Products", JoinTableName: "ProductTags"},
		},
	}

	tables := SchemaTables([]model.EntityModel{product, tag}, model.DefaultConfig())
	require.Len(t, tables, 3, "one join table per distinct join table name")

	jt := tables[2]
	assert.Equal(t, "product_tags", jt.Name)
	require.Len(t, jt.PrimaryKey.Parts, 2)
	require.Len(t, jt.ForeignKeys, 2)
	assert.Equal(t, "product_id", jt.Columns[0].Name)
	assert.Equal(t, "tag_id", jt.Columns[1].Name)
}

func TestRenderMigrationSQLServer(t *testing.T) {
	all := []model.EntityModel{orderEntity(), customerEntity()}
	cfg := model.DefaultConfig()
	cfg.DatabaseProvider = model.SQLServer

	a := RenderMigration(all, cfg)

	assert.Equal(t, MigrationPath, a.RelativePath)
	assert.Less(t, strings.Index(a.Content, "CREATE TABLE [customers]"), strings.Index(a.Content, "CREATE TABLE [orders]"))
	assert.Contains(t, a.Content, "[email] NVARCHAR(120) NOT NULL")
	assert.Contains(t, a.Content, "PRIMARY KEY ([id])")
	assert.Contains(t, a.Content,
		"CONSTRAINT [FK_Order_Customer_CustomerId] FOREIGN KEY ([customer_id]) REFERENCES [customers] ([id]) ON DELETE CASCADE")
}

func TestRenderMigrationAuditAndSoftDeleteColumns(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.DatabaseProvider = model.PostgreSQL

	a := RenderMigration([]model.EntityModel{productEntity()}, cfg)

	assert.Contains(t, a.Content, `"created_at" TIMESTAMP NOT NULL`)
	assert.Contains(t, a.Content, `"updated_at" TIMESTAMP,`)
	assert.Contains(t, a.Content, `"is_deleted" BOOLEAN NOT NULL`)
	assert.Contains(t, a.Content, `"deleted_by" VARCHAR(100),`)
}

func TestRenderMigrationUniqueIndex(t *testing.T) {
	e := customerEntity()
	e.Properties[0].Constraints = &model.PropertyConstraints{IsUnique: true}
	cfg := model.DefaultConfig()
	cfg.DatabaseProvider = model.MySQL

	a := RenderMigration([]model.EntityModel{e}, cfg)
	assert.Contains(t, a.Content, "CREATE UNIQUE INDEX `IX_Customer_Email` ON `customers` (`email`);")
}
