package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// dtoProjection builds the ordered composite literal projecting an entity
// variable into its DTO. Field order matches the DTO declaration order
// exactly: implicit key, declared properties, audit fields.
func dtoProjection(e model.EntityModel, src string) []jen.Code {
	out := make([]jen.Code, 0, len(e.Properties)+5)
	if !e.HasExplicitKey() {
		key := e.Key()
		out = append(out, jen.Id(key.Name).Op(":").Id(src).Dot(key.Name))
	}
	for _, p := range e.Properties {
		out = append(out, jen.Id(p.Name).Op(":").Id(src).Dot(p.Name))
	}
	if e.HasAuditFields {
		for _, name := range []string{"CreatedAt", "CreatedBy", "UpdatedAt", "UpdatedBy"} {
			out = append(out, jen.Id(name).Op(":").Id(src).Dot(name))
		}
	}
	return out
}

// RenderGetByIdQuery emits the get-by-id query object.
func RenderGetByIdQuery(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	name := "Get" + e.Name + "ByIdQuery"
	key := e.Key()
	f := newFile(queryPkg(cfg, e, "Get"+e.Name+"ById"), pkgOf("Get"+e.Name+"ById"), cfg, nil)

	f.Commentf("%s fetches one %s by %s.", name, e.Name, key.Name)
	f.Type().Id(name).Struct(
		jen.Id(key.Name).Add(goBaseType(key.Type)),
	)
	if cfg.UseMediator {
		f.Commentf("RequestName identifies the query for mediator dispatch.")
		f.Func().Params(jen.Id(name)).Id("RequestName").Params().String().Block(
			jen.Return(jen.Lit(name)),
		)
	}

	return renderFile(f, GetByIdQueryPath(e), e.Name, "getbyid-query")
}

// RenderGetByIdHandler emits the get-by-id handler. The soft-delete filter is
// applied when enabled, and the projection follows DTO declaration order.
func RenderGetByIdHandler(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	name := "Get" + e.Name + "ByIdQueryHandler"
	key := e.Key()
	f := newFile(queryPkg(cfg, e, "Get"+e.Name+"ById"), pkgOf("Get"+e.Name+"ById"), cfg, []model.EntityModel{e})

	f.Commentf("%s resolves Get%sByIdQuery against the store.", name, e.Name)
	f.Type().Id(name).Struct(storeField(cfg))

	body := []jen.Code{
		jen.List(jen.Id("item"), jen.Err()).Op(":=").Add(accessor(e)).Dot("Find").Call(jen.Id("ctx"), jen.Id("q").Dot(key.Name)),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
		jen.If(jen.Id("item").Op("==").Nil()).Block(jen.Return(jen.Nil(), jen.Nil())),
	}
	if e.HasSoftDelete {
		body = append(body,
			jen.If(jen.Id("item").Dot("IsDeleted")).Block(jen.Return(jen.Nil(), jen.Nil())),
		)
	}
	body = append(body,
		jen.Id("dto").Op(":=").Qual(appEntityPkg(cfg, e), e.Name+"Dto").Values(dtoProjection(e, "item")...),
		jen.Return(jen.Op("&").Id("dto"), jen.Nil()),
	)

	f.Commentf("Handle returns the %sDto, or nil when no row matches.", e.Name)
	f.Func().Params(jen.Id("h").Id(name)).Id("Handle").
		Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("q").Id(name[:len(name)-len("Handler")])).
		Params(jen.Op("*").Qual(appEntityPkg(cfg, e), e.Name+"Dto"), jen.Error()).
		Block(body...)

	return renderFile(f, GetByIdHandlerPath(e), e.Name, "getbyid-handler")
}

// RenderGetAllQuery emits the get-all query object with paging inputs.
func RenderGetAllQuery(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	name := "GetAll" + Plural(e.Name) + "Query"
	f := newFile(queryPkg(cfg, e, "GetAll"+Plural(e.Name)), pkgOf("GetAll"+Plural(e.Name)), cfg, nil)

	f.Commentf("%s lists %s with optional paging.", name, Plural(e.Name))
	f.Type().Id(name).Struct(
		jen.Id("Page").Int(),
		jen.Id("PageSize").Int(),
	)
	if cfg.UseMediator {
		f.Commentf("RequestName identifies the query for mediator dispatch.")
		f.Func().Params(jen.Id(name)).Id("RequestName").Params().String().Block(
			jen.Return(jen.Lit(name)),
		)
	}

	return renderFile(f, GetAllQueryPath(e), e.Name, "getall-query")
}

// RenderGetAllHandler emits the get-all handler: list, filter soft-deleted
// rows when enabled, project each row in DTO declaration order.
func RenderGetAllHandler(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	name := "GetAll" + Plural(e.Name) + "QueryHandler"
	f := newFile(queryPkg(cfg, e, "GetAll"+Plural(e.Name)), pkgOf("GetAll"+Plural(e.Name)), cfg, []model.EntityModel{e})

	f.Commentf("%s resolves GetAll%sQuery against the store.", name, Plural(e.Name))
	f.Type().Id(name).Struct(storeField(cfg))

	loop := []jen.Code{}
	if e.HasSoftDelete {
		loop = append(loop, jen.If(jen.Id("item").Dot("IsDeleted")).Block(jen.Continue()))
	}
	loop = append(loop,
		jen.Id("out").Op("=").Append(jen.Id("out"), jen.Qual(appEntityPkg(cfg, e), e.Name+"Dto").Values(dtoProjection(e, "item")...)),
	)

	body := []jen.Code{
		jen.List(jen.Id("items"), jen.Err()).Op(":=").Add(accessor(e)).Dot("List").Call(jen.Id("ctx")),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
		jen.Id("out").Op(":=").Make(jen.Index().Qual(appEntityPkg(cfg, e), e.Name+"Dto"), jen.Lit(0), jen.Len(jen.Id("items"))),
		jen.For(jen.List(jen.Id("_"), jen.Id("item")).Op(":=").Range().Id("items")).Block(loop...),
		jen.Return(jen.Id("out"), jen.Nil()),
	}

	f.Commentf("Handle returns every live %s as a DTO slice.", e.Name)
	f.Func().Params(jen.Id("h").Id(name)).Id("Handle").
		Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("q").Id("GetAll"+Plural(e.Name)+"Query")).
		Params(jen.Index().Qual(appEntityPkg(cfg, e), e.Name+"Dto"), jen.Error()).
		Block(body...)

	return renderFile(f, GetAllHandlerPath(e), e.Name, "getall-handler")
}
