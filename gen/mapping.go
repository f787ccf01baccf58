package gen

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// relationshipStmt selects one of the four relationship-declaration shapes
// keyed by the relationship type.
func relationshipStmt(r model.RelationshipModel) jen.Code {
	b := jen.Id("b")
	switch r.Type {
	case model.OneToMany:
		return b.Dot("HasMany").Call(jen.Lit(r.Navigation())).
			Dot("WithOne").Call(jen.Lit(r.InverseNavigationProperty)).
			Dot("HasForeignKey").Call(jen.Lit(r.ForeignKeyProperty)).
			Dot("OnDelete").Call(jen.Lit(r.OnDeleteBehavior))
	case model.ManyToOne:
		return b.Dot("HasOne").Call(jen.Lit(r.Navigation())).
			Dot("WithMany").Call(jen.Lit(r.InverseNavigationProperty)).
			Dot("HasForeignKey").Call(jen.Lit(r.ForeignKeyProperty)).
			Dot("OnDelete").Call(jen.Lit(r.OnDeleteBehavior))
	case model.OneToOne:
		return b.Dot("HasOne").Call(jen.Lit(r.Navigation())).
			Dot("WithOne").Call(jen.Lit(r.InverseNavigationProperty)).
			Dot("HasForeignKeyOn").Call(jen.Lit(r.RelatedEntity), jen.Lit(r.ForeignKeyProperty)).
			Dot("OnDelete").Call(jen.Lit(r.OnDeleteBehavior))
	default: // ManyToMany
		return b.Dot("HasMany").Call(jen.Lit(r.Navigation())).
			Dot("WithMany").Call(jen.Lit(r.InverseNavigationProperty)).
			Dot("UsingEntity").Call(jen.Lit(r.JoinTableName))
	}
}

// RenderConfiguration emits the persistence mapping for one entity: table
// name, key, one constraint call per required or length-bound property, the
// soft-delete row filter, one directive per relationship, and the business
// key unique index.
func RenderConfiguration(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	name := e.Name + "Configuration"
	key := e.Key()
	f := newFile(ModulePath(cfg)+"/Infrastructure/Persistence/Configurations", "configurations", cfg, nil)

	body := []jen.Code{
		jen.Id("b").Dot("ToTable").Call(jen.Lit(TableName(e))),
		jen.Id("b").Dot("HasKey").Call(jen.Lit(key.Name)),
	}

	for _, p := range e.Properties {
		if p.IsRequired && !p.IsNullable {
			body = append(body, jen.Id("b").Dot("Property").Call(jen.Lit(p.Name)).Dot("IsRequired").Call())
		}
		if max := p.EffectiveMaxLength(); max > 0 {
			body = append(body, jen.Id("b").Dot("Property").Call(jen.Lit(p.Name)).Dot("HasMaxLength").Call(jen.Lit(max)))
		}
		if p.Constraints != nil {
			if p.Constraints.Precision > 0 {
				body = append(body, jen.Id("b").Dot("Property").Call(jen.Lit(p.Name)).
					Dot("HasPrecision").Call(jen.Lit(p.Constraints.Precision), jen.Lit(p.Constraints.Scale)))
			}
			switch {
			case p.Constraints.IsUnique:
				body = append(body, jen.Id("b").Dot("HasIndex").Call(jen.Lit(p.Name)).Dot("IsUnique").Call())
			case p.Constraints.IsIndexed:
				body = append(body, jen.Id("b").Dot("HasIndex").Call(jen.Lit(p.Name)))
			}
		}
	}

	if e.HasSoftDelete {
		body = append(body, jen.Id("b").Dot("HasQueryFilter").Call(jen.Lit("IsDeleted")))
	}

	for _, r := range e.Relationships {
		body = append(body, relationshipStmt(r))
	}

	if len(e.BusinessKeys) > 0 {
		cols := make([]jen.Code, 0, len(e.BusinessKeys))
		for _, k := range e.BusinessKeys {
			cols = append(cols, jen.Lit(k))
		}
		indexName := "IX_" + e.Name + "_" + strings.Join(e.BusinessKeys, "_") + "_BusinessKey"
		body = append(body, jen.Id("b").Dot("HasIndex").Call(cols...).
			Dot("IsUnique").Call().
			Dot("HasDatabaseName").Call(jen.Lit(indexName)))
	}

	f.Commentf("%s declares the %s persistence mapping.", name, e.Name)
	f.Type().Id(name).Struct()

	f.Commentf("Configure applies the %s mapping onto the builder.", e.Name)
	f.Func().Params(jen.Id(name)).Id("Configure").
		Params(jen.Id("b").Op("*").Qual(persistencePkg(cfg), "EntityTypeBuilder")).
		Block(body...)

	return renderFile(f, ConfigurationPath(e), e.Name, "configuration")
}
