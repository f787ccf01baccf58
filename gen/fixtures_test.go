package gen

import (
	"context"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CarlvinJerry/MyCodegent/model"
)

func intp(v int) *int { return &v }

// productEntity is the baseline fixture: explicit int key, required string
// with a max length, required decimal, audit and soft delete enabled.
func productEntity() model.EntityModel {
	return model.EntityModel{
		Name: "Product",
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeInt, IsKey: true, IsRequired: true},
			{Name: "Name", Type: model.TypeString, IsRequired: true, MaxLength: intp(200)},
			{Name: "Price", Type: model.TypeDecimal, IsRequired: true},
		},
		HasAuditFields: true,
		HasSoftDelete:  true,
	}
}

// customerEntity has no property marked as key, so renderers must fall back
// to the implicit int Id.
func customerEntity() model.EntityModel {
	return model.EntityModel{
		Name: "Customer",
		Properties: []model.PropertyModel{
			{Name: "Email", Type: model.TypeString, IsRequired: true, MaxLength: intp(120)},
			{Name: "FullName", Type: model.TypeString},
		},
	}
}

// orderEntity references Customer through a ManyToOne relationship.
func orderEntity() model.EntityModel {
	return model.EntityModel{
		Name: "Order",
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeInt, IsKey: true, IsRequired: true},
			{Name: "CustomerId", Type: model.TypeInt, IsRequired: true},
			{Name: "Total", Type: model.TypeDecimal, IsRequired: true},
		},
		Relationships: []model.RelationshipModel{
			{
				Type:                      model.ManyToOne,
				RelatedEntity:             "Customer",
				ForeignKeyProperty:        "CustomerId",
				NavigationProperty:        "Customer",
				InverseNavigationProperty: "Orders",
				OnDeleteBehavior:          "Cascade",
			},
		},
	}
}

// fixedProviders pins the clock and the id source so rendered output is
// byte-stable.
func fixedProviders() Providers {
	at := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	return Providers{
		NewID: func() uuid.UUID { return id },
		Now:   func() time.Time { return at },
	}
}

// memWriter is an in-memory FileWriter for engine tests.
type memWriter struct {
	files       map[string][]byte
	writes      int
	missingRoot bool
	existsErr   error
}

func newMemWriter() *memWriter {
	return &memWriter{files: map[string][]byte{}}
}

func (w *memWriter) Write(_ context.Context, relPath string, content []byte) error {
	w.writes++
	w.files[relPath] = append([]byte(nil), content...)
	return nil
}

func (w *memWriter) Exists(relPath string) (bool, error) {
	if w.existsErr != nil {
		return false, w.existsErr
	}
	if relPath == "." {
		return !w.missingRoot, nil
	}
	if _, ok := w.files[relPath]; ok {
		return true, nil
	}
	for p := range w.files {
		if strings.HasPrefix(p, relPath+"/") {
			return true, nil
		}
	}
	return false, nil
}

func (w *memWriter) List(dir string) ([]string, error) {
	var out []string
	for p := range w.files {
		if path.Dir(p) == dir {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (w *memWriter) paths() []string {
	out := make([]string, 0, len(w.files))
	for p := range w.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// orderedIndexes reports whether every substring appears in s in the given
// order.
func orderedIndexes(s string, subs ...string) bool {
	last := 0
	for _, sub := range subs {
		i := strings.Index(s[last:], sub)
		if i < 0 {
			return false
		}
		last += i + len(sub)
	}
	return true
}
