package gen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/CarlvinJerry/MyCodegent/model"
)

func TestSeedValueEmailRule(t *testing.T) {
	p := model.PropertyModel{Name: "ContactEmail", Type: model.TypeString}
	v, ok := SeedValue(p, 1, fixedProviders()).(string)
	assert.True(t, ok)
	assert.Contains(t, v, "@")

	assert.Equal(t, SeedValue(p, 1, fixedProviders()), SeedValue(p, 1, fixedProviders()),
		"faker output is seeded by the row index")
}

func TestSeedValueStatusRotation(t *testing.T) {
	p := model.PropertyModel{Name: "OrderStatus", Type: model.TypeString}
	assert.Equal(t, "Pending", SeedValue(p, 1, fixedProviders()))
	assert.Equal(t, "Completed", SeedValue(p, 2, fixedProviders()))
	assert.Equal(t, "Cancelled", SeedValue(p, 3, fixedProviders()))
	assert.Equal(t, "Active", SeedValue(p, 4, fixedProviders()))
}

func TestSeedValuePriceClampedToMinimum(t *testing.T) {
	minVal := 99.99
	p := model.PropertyModel{
		Name: "Price", Type: model.TypeDecimal,
		Constraints: &model.PropertyConstraints{MinValue: &minVal},
	}
	assert.Equal(t, 99.99, SeedValue(p, 1, fixedProviders()), "below-minimum values are clamped up")
	assert.Equal(t, 99.99, SeedValue(p, 2, fixedProviders()))

	unconstrained := model.PropertyModel{Name: "Price", Type: model.TypeDecimal}
	assert.Equal(t, 15.5, SeedValue(unconstrained, 1, fixedProviders()))
}

func TestSeedValueNamedRules(t *testing.T) {
	prov := fixedProviders()

	assert.Equal(t, "User2", SeedValue(model.PropertyModel{Name: "Name", Type: model.TypeString}, 2, prov))
	assert.Equal(t, "+1-555-1003", SeedValue(model.PropertyModel{Name: "PhoneNumber", Type: model.TypeString}, 3, prov))
	assert.Equal(t, "CODE-0002", SeedValue(model.PropertyModel{Name: "Sku", Type: model.TypeString}, 2, prov))
	assert.Equal(t, 25, SeedValue(model.PropertyModel{Name: "Age", Type: model.TypeInt}, 1, prov))
	assert.Equal(t, 110, SeedValue(model.PropertyModel{Name: "StockLevel", Type: model.TypeInt}, 1, prov))
	assert.Equal(t, 2022, SeedValue(model.PropertyModel{Name: "ModelYear", Type: model.TypeInt}, 2, prov))
}

func TestSeedValueDateRules(t *testing.T) {
	prov := fixedProviders()
	now := prov.Now()

	created := SeedValue(model.PropertyModel{Name: "CreatedOn", Type: model.TypeDateTime}, 1, prov)
	assert.Equal(t, now.AddDate(0, 0, -29), created)

	expires := SeedValue(model.PropertyModel{Name: "ExpiresAt", Type: model.TypeDateTime}, 2, prov)
	assert.Equal(t, now.AddDate(0, 0, 32), expires)

	plain := SeedValue(model.PropertyModel{Name: "ShippedAt", Type: model.TypeDateTime}, 3, prov)
	assert.Equal(t, now.AddDate(0, 0, -3), plain)
	assert.IsType(t, time.Time{}, plain)
}

func TestSeedValueStringFallbackTruncation(t *testing.T) {
	p := model.PropertyModel{Name: "Remark", Type: model.TypeString, MaxLength: intp(5)}
	v, ok := SeedValue(p, 1, fixedProviders()).(string)
	assert.True(t, ok)
	assert.Equal(t, "Remar", v)

	long := model.PropertyModel{
		Name: strings.Repeat("X", 60), Type: model.TypeString,
	}
	fallback, _ := SeedValue(long, 1, fixedProviders()).(string)
	assert.Len(t, fallback, 50, "unconstrained strings cap at 50 characters")
}

func TestSeedValueTypeFallbacks(t *testing.T) {
	prov := fixedProviders()

	assert.Equal(t, 20, SeedValue(model.PropertyModel{Name: "Weight", Type: model.TypeInt}, 2, prov))
	assert.Equal(t, int64(3000), SeedValue(model.PropertyModel{Name: "Serial", Type: model.TypeLong}, 3, prov))
	assert.Equal(t, true, SeedValue(model.PropertyModel{Name: "Enabled", Type: model.TypeBool}, 2, prov))
	assert.Equal(t, false, SeedValue(model.PropertyModel{Name: "Enabled", Type: model.TypeBool}, 1, prov))
	assert.Equal(t, prov.NewID(), SeedValue(model.PropertyModel{Name: "ExternalRef", Type: model.TypeGuid}, 1, prov))
	assert.Nil(t, SeedValue(model.PropertyModel{Name: "Blob", Type: "Unknown"}, 1, prov))
}
