package gen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jaswdr/faker"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// Synthetic seed values come from an ordered rule table keyed on property
// name substrings, evaluated top to bottom. The first matching rule wins and
// a per-type fallback closes the table. Keeping the heuristic as data makes
// it testable row by row.

type seedInput struct {
	prop  model.PropertyModel
	index int
	fake  faker.Faker
	prov  Providers
}

type seedRule struct {
	match    func(in seedInput) bool
	generate func(in seedInput) any
}

// nameHas matches when the lowercased property name contains any substring.
func nameHas(substrs ...string) func(in seedInput) bool {
	return func(in seedInput) bool {
		n := strings.ToLower(in.prop.Name)
		for _, s := range substrs {
			if strings.Contains(n, s) {
				return true
			}
		}
		return false
	}
}

func typed(t string, match func(in seedInput) bool) func(in seedInput) bool {
	return func(in seedInput) bool {
		return in.prop.Type == t && match(in)
	}
}

func anyOfType(t string) func(in seedInput) bool {
	return func(in seedInput) bool { return in.prop.Type == t }
}

// clampMin applies the minValue constraint, if declared.
func clampMin(v float64, p model.PropertyModel) float64 {
	if p.Constraints != nil && p.Constraints.MinValue != nil && v < *p.Constraints.MinValue {
		return *p.Constraints.MinValue
	}
	return v
}

var seedStatuses = []string{"Active", "Pending", "Completed", "Cancelled"}

var seedRules = []seedRule{
	// Strings.
	{typed(model.TypeString, nameHas("email")), func(in seedInput) any {
		return in.fake.Internet().Email()
	}},
	{typed(model.TypeString, func(in seedInput) bool {
		return nameHas("username")(in) || strings.EqualFold(in.prop.Name, "name")
	}), func(in seedInput) any {
		return fmt.Sprintf("User%d", in.index)
	}},
	{typed(model.TypeString, nameHas("firstname")), func(in seedInput) any {
		return in.fake.Person().FirstName()
	}},
	{typed(model.TypeString, nameHas("lastname")), func(in seedInput) any {
		return in.fake.Person().LastName()
	}},
	{typed(model.TypeString, nameHas("phone")), func(in seedInput) any {
		return fmt.Sprintf("+1-555-%04d", 1000+in.index)
	}},
	{typed(model.TypeString, nameHas("address")), func(in seedInput) any {
		return in.fake.Address().StreetAddress()
	}},
	{typed(model.TypeString, nameHas("description", "notes")), func(in seedInput) any {
		return fmt.Sprintf("Sample description for %s %d", in.prop.Name, in.index)
	}},
	{typed(model.TypeString, nameHas("title")), func(in seedInput) any {
		return fmt.Sprintf("Title %d", in.index)
	}},
	{typed(model.TypeString, nameHas("code", "sku")), func(in seedInput) any {
		return fmt.Sprintf("CODE-%04d", in.index)
	}},
	{typed(model.TypeString, nameHas("url", "slug")), func(in seedInput) any {
		return fmt.Sprintf("item-%d", in.index)
	}},
	{typed(model.TypeString, nameHas("status")), func(in seedInput) any {
		return seedStatuses[in.index%len(seedStatuses)]
	}},

	// Integers.
	{typed(model.TypeInt, nameHas("age")), func(in seedInput) any {
		return 20 + in.index*5
	}},
	{typed(model.TypeInt, nameHas("quantity", "stock")), func(in seedInput) any {
		return 100 + in.index*10
	}},
	{typed(model.TypeInt, nameHas("count")), func(in seedInput) any {
		return in.index * 5
	}},
	{typed(model.TypeInt, nameHas("year")), func(in seedInput) any {
		return 2020 + in.index
	}},

	// Decimals.
	{typed(model.TypeDecimal, nameHas("price", "amount", "cost")), func(in seedInput) any {
		return clampMin(10.00+float64(in.index)*5.50, in.prop)
	}},
	{typed(model.TypeDecimal, nameHas("rate", "percentage")), func(in seedInput) any {
		return float64(in.index) * 2.5
	}},

	// Doubles.
	{typed(model.TypeDouble, nameHas("latitude", "lat")), func(in seedInput) any {
		return 40.0 + float64(in.index)*0.1
	}},
	{typed(model.TypeDouble, nameHas("longitude", "lon", "lng")), func(in seedInput) any {
		return -74.0 + float64(in.index)*0.1
	}},

	// Dates.
	{typed(model.TypeDateTime, nameHas("birth")), func(in seedInput) any {
		return in.prov.Now().AddDate(-(35 - in.index), 0, 0)
	}},
	{typed(model.TypeDateTime, nameHas("published", "created")), func(in seedInput) any {
		return in.prov.Now().AddDate(0, 0, -(30 - in.index))
	}},
	{typed(model.TypeDateTime, nameHas("updated", "modified")), func(in seedInput) any {
		return in.prov.Now().AddDate(0, 0, -in.index)
	}},
	{typed(model.TypeDateTime, nameHas("expiry", "expires", "end")), func(in seedInput) any {
		return in.prov.Now().AddDate(0, 0, 30+in.index)
	}},

	// Per-type fallbacks. Order puts these after every named rule.
	{anyOfType(model.TypeInt), func(in seedInput) any {
		return int(clampMin(float64(in.index*10), in.prop))
	}},
	{anyOfType(model.TypeLong), func(in seedInput) any {
		return int64(in.index) * 1000
	}},
	{anyOfType(model.TypeDecimal), func(in seedInput) any {
		return float64(in.index) * 10.5
	}},
	{anyOfType(model.TypeDouble), func(in seedInput) any {
		return float64(in.index) * 10.5
	}},
	{anyOfType(model.TypeFloat), func(in seedInput) any {
		return float32(in.index) * 10.5
	}},
	{anyOfType(model.TypeBool), func(in seedInput) any {
		return in.index%2 == 0
	}},
	{anyOfType(model.TypeDateTime), func(in seedInput) any {
		return in.prov.Now().AddDate(0, 0, -in.index)
	}},
	{anyOfType(model.TypeDateTimeOffset), func(in seedInput) any {
		return in.prov.Now().AddDate(0, 0, -in.index)
	}},
	{anyOfType(model.TypeGuid), func(in seedInput) any {
		return in.prov.NewID()
	}},
}

// SeedValue produces a synthetic value for one property of one seed row.
// Rows are 1-based. Strings fall back to "{name} {index}" truncated to the
// declared maximum length, or 50 when none is declared.
func SeedValue(p model.PropertyModel, index int, prov Providers) any {
	in := seedInput{
		prop:  p,
		index: index,
		fake:  faker.NewWithSeed(rand.NewSource(int64(index))),
		prov:  prov,
	}
	for _, r := range seedRules {
		if r.match(in) {
			return r.generate(in)
		}
	}
	if p.Type == model.TypeString {
		max := p.EffectiveMaxLength()
		if max <= 0 {
			max = 50
		}
		v := fmt.Sprintf("%s %d", p.Name, index)
		if len(v) > max {
			v = v[:max]
		}
		return v
	}
	return nil
}
