package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// RenderMappingProfile emits the two mapping functions between an entity and
// its DTO. Both directions copy field by field in DTO declaration order;
// navigation members never cross the boundary.
func RenderMappingProfile(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	f := newFile(ModulePath(cfg)+"/Application/Mappings", "mappings", cfg, []model.EntityModel{e})

	f.Commentf("%sToDto maps a %s entity onto its DTO.", e.Name, e.Name)
	f.Func().Id(e.Name + "ToDto").
		Params(jen.Id("src").Op("*").Qual(entitiesPkg(cfg), e.Name)).
		Qual(appEntityPkg(cfg, e), e.Name+"Dto").
		Block(
			jen.Return(jen.Qual(appEntityPkg(cfg, e), e.Name+"Dto").Values(dtoProjection(e, "src")...)),
		)

	f.Commentf("%sFromDto maps a DTO back onto a fresh %s entity.", e.Name, e.Name)
	f.Func().Id(e.Name + "FromDto").
		Params(jen.Id("src").Qual(appEntityPkg(cfg, e), e.Name+"Dto")).
		Qual(entitiesPkg(cfg), e.Name).
		Block(
			jen.Return(jen.Qual(entitiesPkg(cfg), e.Name).Values(dtoProjection(e, "src")...)),
		)

	return renderFile(f, MappingProfilePath(e), e.Name, "mapping-profile")
}
