package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// auditFields are appended to entities, DTOs and seed rows when
// HasAuditFields is set, in this order.
func auditFields() []jen.Code {
	return []jen.Code{
		jen.Id("CreatedAt").Qual("time", "Time"),
		jen.Id("CreatedBy").String(),
		jen.Id("UpdatedAt").Op("*").Qual("time", "Time"),
		jen.Id("UpdatedBy").Id("*string"),
	}
}

// softDeleteFields are appended to entities when HasSoftDelete is set.
func softDeleteFields() []jen.Code {
	return []jen.Code{
		jen.Id("IsDeleted").Bool(),
		jen.Id("DeletedAt").Op("*").Qual("time", "Time"),
		jen.Id("DeletedBy").Id("*string"),
	}
}

// RenderEntity emits the domain entity: one field per property in declaration
// order, audit fields, soft-delete fields, then one navigation member per
// relationship (slice for OneToMany/ManyToMany, pointer otherwise).
func RenderEntity(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	f := newFile(entitiesPkg(cfg), "entities", cfg, nil)

	fields := make([]jen.Code, 0, len(e.Properties)+10)
	for _, p := range e.Properties {
		fields = append(fields, jen.Id(p.Name).Add(goType(p)))
	}
	if !e.HasExplicitKey() {
		key := e.Key()
		fields = append([]jen.Code{jen.Id(key.Name).Add(goBaseType(key.Type))}, fields...)
	}
	if e.HasAuditFields {
		fields = append(fields, auditFields()...)
	}
	if e.HasSoftDelete {
		fields = append(fields, softDeleteFields()...)
	}
	for _, r := range e.Relationships {
		nav := jen.Id(r.Navigation())
		if r.Collection() {
			nav.Index().Op("*").Id(r.RelatedEntity)
		} else {
			nav.Op("*").Id(r.RelatedEntity)
		}
		fields = append(fields, nav)
	}

	f.Commentf("%s is the %s aggregate.", e.Name, e.Name)
	f.Type().Id(e.Name).Struct(fields...)

	return renderFile(f, EntityPath(e), e.Name, "entity")
}

// RenderDto emits the read model: the entity's properties in declaration
// order plus audit fields when enabled. DTOs carry no navigation members and
// never expose soft-delete state.
func RenderDto(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	pkg := pkgOf(Plural(e.Name))
	f := newFile(appEntityPkg(cfg, e), pkg, cfg, nil)

	fields := make([]jen.Code, 0, len(e.Properties)+4)
	if !e.HasExplicitKey() {
		key := e.Key()
		fields = append(fields, jen.Id(key.Name).Add(goBaseType(key.Type)))
	}
	for _, p := range e.Properties {
		fields = append(fields, jen.Id(p.Name).Add(goType(p)))
	}
	if e.HasAuditFields {
		fields = append(fields, auditFields()...)
	}

	f.Commentf("%sDto is the transport shape of %s.", e.Name, e.Name)
	f.Type().Id(e.Name + "Dto").Struct(fields...)

	return renderFile(f, DtoPath(e), e.Name, "dto")
}
