package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlvinJerry/MyCodegent/model"
)

func names(entities []model.EntityModel) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.Name
	}
	return out
}

func refEntity(name string, deps ...string) model.EntityModel {
	e := model.EntityModel{
		Name: name,
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeInt, IsKey: true},
		},
	}
	for _, d := range deps {
		e.Relationships = append(e.Relationships, model.RelationshipModel{
			Type:               model.ManyToOne,
			RelatedEntity:      d,
			ForeignKeyProperty: d + "Id",
			NavigationProperty: d,
		})
	}
	return e
}

func TestSeedOrderParentFirst(t *testing.T) {
	got := SeedOrder([]model.EntityModel{
		refEntity("OrderLine", "Order"),
		refEntity("Order", "Customer"),
		refEntity("Customer"),
	})
	assert.Equal(t, []string{"Customer", "Order", "OrderLine"}, names(got))
}

func TestSeedOrderIgnoresCollectionEdges(t *testing.T) {
	customer := refEntity("Customer")
	customer.Relationships = []model.RelationshipModel{
		{Type: model.OneToMany, RelatedEntity: "Order", NavigationProperty: "Orders"},
	}
	got := SeedOrder([]model.EntityModel{customer, refEntity("Order", "Customer")})
	assert.Equal(t, []string{"Customer", "Order"}, names(got))
}

func TestSeedOrderCycleStillComplete(t *testing.T) {
	got := SeedOrder([]model.EntityModel{
		refEntity("Employee", "Department"),
		refEntity("Department", "Employee"),
	})

	require.Len(t, got, 2)
	seen := map[string]int{}
	for _, e := range got {
		seen[e.Name]++
	}
	assert.Equal(t, 1, seen["Employee"], "each entity appears exactly once")
	assert.Equal(t, 1, seen["Department"])
}

func TestSeedOrderSelfReferenceIsNotACycle(t *testing.T) {
	got := SeedOrder([]model.EntityModel{
		refEntity("Category", "Category"),
		refEntity("Product", "Category"),
	})
	assert.Equal(t, []string{"Category", "Product"}, names(got))
}

func TestCyclicEntities(t *testing.T) {
	entities := []model.EntityModel{
		refEntity("Employee", "Department"),
		refEntity("Department", "Employee"),
		refEntity("Customer"),
	}
	assert.Equal(t, []string{"Department", "Employee"}, CyclicEntities(entities))

	assert.Empty(t, CyclicEntities([]model.EntityModel{
		refEntity("Customer"),
		refEntity("Order", "Customer"),
	}))
}
