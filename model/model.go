// Package model defines the declarative entity descriptors consumed by the
// generation engine. The types here are pure data: they carry no behavior
// beyond convenience accessors, and the engine never mutates them.
package model

// Property type tags accepted by PropertyModel.Type.
const (
	TypeString         = "string"
	TypeInt            = "int"
	TypeLong           = "long"
	TypeDecimal        = "decimal"
	TypeDouble         = "double"
	TypeFloat          = "float"
	TypeBool           = "bool"
	TypeDateTime       = "DateTime"
	TypeDateTimeOffset = "DateTimeOffset"
	TypeGuid           = "Guid"
)

// Relationship kinds accepted by RelationshipModel.Type.
const (
	OneToMany  = "OneToMany"
	ManyToOne  = "ManyToOne"
	OneToOne   = "OneToOne"
	ManyToMany = "ManyToMany"
)

// EntityModel describes one logical data entity to scaffold. Name must be a
// valid PascalCase identifier; it seeds every derived artifact and type name.
type EntityModel struct {
	Name           string              `json:"name" yaml:"name"`
	Namespace      string              `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Properties     []PropertyModel     `json:"properties" yaml:"properties"`
	HasAuditFields bool                `json:"hasAuditFields" yaml:"hasAuditFields"`
	HasSoftDelete  bool                `json:"hasSoftDelete" yaml:"hasSoftDelete"`
	Relationships  []RelationshipModel `json:"relationships,omitempty" yaml:"relationships,omitempty"`
	BusinessKeys   []string            `json:"businessKeys,omitempty" yaml:"businessKeys,omitempty"`

	// stub marks a name-only model reconstructed from a directory scan during
	// incremental generation. Stubs carry no properties and are only valid as
	// input to cross-entity renderers.
	stub bool
}

// StubEntity returns a name-only entity model. Stubs are intentionally
// information-lossy: they exist so the incremental generator can re-register
// already-generated entities in cross-entity artifacts without re-deriving
// the shape they were originally given.
func StubEntity(name string) EntityModel {
	return EntityModel{Name: name, stub: true}
}

// IsStub reports whether the model was reconstructed from a directory scan
// and carries only its name.
func (e EntityModel) IsStub() bool { return e.stub }

// Key returns the property marked as primary key, or the implicit fallback
// key (int "Id") when no property is marked. Every renderer that needs a key
// goes through this accessor so the fallback is applied consistently.
func (e EntityModel) Key() PropertyModel {
	for _, p := range e.Properties {
		if p.IsKey {
			return p
		}
	}
	return PropertyModel{Name: "Id", Type: TypeInt, IsKey: true, IsRequired: true}
}

// HasExplicitKey reports whether any property is marked as the primary key.
func (e EntityModel) HasExplicitKey() bool {
	for _, p := range e.Properties {
		if p.IsKey {
			return true
		}
	}
	return false
}

// Property returns the property with the given name.
func (e EntityModel) Property(name string) (PropertyModel, bool) {
	for _, p := range e.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return PropertyModel{}, false
}

// ForeignKeyRelationship returns the relationship whose ForeignKeyProperty is
// the given property name, if any.
func (e EntityModel) ForeignKeyRelationship(propName string) (RelationshipModel, bool) {
	for _, r := range e.Relationships {
		if r.ForeignKeyProperty == propName {
			return r, true
		}
	}
	return RelationshipModel{}, false
}

// PropertyModel describes one field of an entity.
type PropertyModel struct {
	Name         string               `json:"name" yaml:"name"`
	Type         string               `json:"type" yaml:"type"`
	IsRequired   bool                 `json:"isRequired" yaml:"isRequired"`
	IsKey        bool                 `json:"isKey" yaml:"isKey"`
	IsNullable   bool                 `json:"isNullable" yaml:"isNullable"`
	MaxLength    *int                 `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	DefaultValue string               `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Constraints  *PropertyConstraints `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// valueTypes are rendered as plain (non-pointer) fields even when the
// property is flagged nullable.
var valueTypes = map[string]bool{
	TypeInt:      true,
	TypeLong:     true,
	TypeDecimal:  true,
	TypeDouble:   true,
	TypeFloat:    true,
	TypeBool:     true,
	TypeDateTime: true,
	TypeGuid:     true,
}

// Optional reports whether the property is rendered as an optional field:
// nullable and not one of the fixed value types.
func (p PropertyModel) Optional() bool {
	return p.IsNullable && !valueTypes[p.Type]
}

// EffectiveMaxLength resolves the maximum length from the refined constraints
// first, falling back to the plain MaxLength field. Returns 0 when no limit
// is declared.
func (p PropertyModel) EffectiveMaxLength() int {
	if p.Constraints != nil && p.Constraints.MaxLength > 0 {
		return p.Constraints.MaxLength
	}
	if p.MaxLength != nil {
		return *p.MaxLength
	}
	return 0
}

// PropertyConstraints refines a property beyond required/max-length.
// A nil Constraints means renderers fall back to IsRequired and MaxLength.
type PropertyConstraints struct {
	// String constraints.
	MinLength    int    `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength    int    `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	RegexPattern string `json:"regexPattern,omitempty" yaml:"regexPattern,omitempty"`

	// Numeric constraints.
	MinValue  *float64 `json:"minValue,omitempty" yaml:"minValue,omitempty"`
	MaxValue  *float64 `json:"maxValue,omitempty" yaml:"maxValue,omitempty"`
	Precision int      `json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale     int      `json:"scale,omitempty" yaml:"scale,omitempty"`

	// General constraints.
	IsUnique   bool `json:"isUnique,omitempty" yaml:"isUnique,omitempty"`
	IsIndexed  bool `json:"isIndexed,omitempty" yaml:"isIndexed,omitempty"`
	IsComputed bool `json:"isComputed,omitempty" yaml:"isComputed,omitempty"`
}

// RelationshipModel declares a relationship to another entity by name.
// RelatedEntity is a name reference resolved against the full entity list at
// render time, never an object reference.
type RelationshipModel struct {
	Type                      string `json:"type" yaml:"type"`
	RelatedEntity             string `json:"relatedEntity" yaml:"relatedEntity"`
	ForeignKeyProperty        string `json:"foreignKeyProperty,omitempty" yaml:"foreignKeyProperty,omitempty"`
	NavigationProperty        string `json:"navigationProperty,omitempty" yaml:"navigationProperty,omitempty"`
	InverseNavigationProperty string `json:"inverseNavigationProperty,omitempty" yaml:"inverseNavigationProperty,omitempty"`
	OnDeleteBehavior          string `json:"onDeleteBehavior,omitempty" yaml:"onDeleteBehavior,omitempty"`
	JoinTableName             string `json:"joinTableName,omitempty" yaml:"joinTableName,omitempty"`
}

// Collection reports whether the relationship materializes as a collection
// navigation on the declaring entity.
func (r RelationshipModel) Collection() bool {
	return r.Type == OneToMany || r.Type == ManyToMany
}

// Navigation returns the navigation member name, defaulting to the related
// entity name (pluralized with a plain "s" for collections).
func (r RelationshipModel) Navigation() string {
	if r.NavigationProperty != "" {
		return r.NavigationProperty
	}
	if r.Collection() {
		return r.RelatedEntity + "s"
	}
	return r.RelatedEntity
}

// GeneratedArtifact is one generated text file plus its target path, relative
// to the project root. Artifacts are never mutated after creation and never
// deleted by the engine.
type GeneratedArtifact struct {
	RelativePath string `json:"relativePath"`
	Content      string `json:"content"`
	SizeBytes    int    `json:"sizeBytes"`
}

// NewArtifact builds an artifact from a path and its rendered content.
func NewArtifact(relativePath, content string) GeneratedArtifact {
	return GeneratedArtifact{
		RelativePath: relativePath,
		Content:      content,
		SizeBytes:    len(content),
	}
}
