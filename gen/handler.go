package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// storeField is the handler dependency on the aggregate store.
func storeField(cfg model.GenerationConfig) jen.Code {
	return jen.Id("Store").Qual(interfacesPkg(cfg), "ApplicationStore")
}

// accessor returns the store accessor call for the entity's collection,
// e.g. h.Store.Products().
func accessor(e model.EntityModel) *jen.Statement {
	return jen.Id("h").Dot("Store").Dot(Plural(e.Name)).Call()
}

// RenderCreateHandler emits the create handler: build the entity from all
// non-key command fields, stamp creation audit fields, persist, return the
// generated key.
func RenderCreateHandler(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	name := "Create" + e.Name + "CommandHandler"
	key := e.Key()
	f := newFile(commandPkg(cfg, e, "Create"), pkgOf("Create"+e.Name), cfg, nil)

	f.Commentf("%s persists new %s records.", name, e.Name)
	f.Type().Id(name).Struct(storeField(cfg))

	init := make([]jen.Code, 0, len(e.Properties))
	for _, p := range nonKeyProperties(e) {
		init = append(init, jen.Id(p.Name).Op(":").Id("cmd").Dot(p.Name))
	}

	body := []jen.Code{
		jen.Id("item").Op(":=").Qual(entitiesPkg(cfg), e.Name).Values(init...),
	}
	if e.HasAuditFields {
		body = append(body,
			jen.Id("item").Dot("CreatedAt").Op("=").Qual("time", "Now").Call().Dot("UTC").Call(),
			jen.Id("item").Dot("CreatedBy").Op("=").Lit("System"),
		)
	}
	body = append(body,
		jen.If(
			jen.Err().Op(":=").Add(accessor(e)).Dot("Add").Call(jen.Id("ctx"), jen.Op("&").Id("item")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(keyZero(key), jen.Err())),
		jen.If(
			jen.Err().Op(":=").Id("h").Dot("Store").Dot("SaveChanges").Call(jen.Id("ctx")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(keyZero(key), jen.Err())),
		jen.Return(jen.Id("item").Dot(key.Name), jen.Nil()),
	)

	f.Commentf("Handle creates the %s and returns its %s.", e.Name, key.Name)
	f.Func().Params(jen.Id("h").Id(name)).Id("Handle").
		Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("cmd").Id("Create"+e.Name+"Command")).
		Params(goBaseType(key.Type), jen.Error()).
		Block(body...)

	return renderFile(f, CreateHandlerPath(e), e.Name, "create-handler")
}

// RenderUpdateHandler emits the update handler: look up by key, return a
// failure flag when absent, overwrite all non-key fields, stamp the update
// audit fields, persist.
func RenderUpdateHandler(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	name := "Update" + e.Name + "CommandHandler"
	key := e.Key()
	f := newFile(commandPkg(cfg, e, "Update"), pkgOf("Update"+e.Name), cfg, nil)

	f.Commentf("%s overwrites existing %s records.", name, e.Name)
	f.Type().Id(name).Struct(storeField(cfg))

	body := []jen.Code{
		jen.List(jen.Id("item"), jen.Err()).Op(":=").Add(accessor(e)).Dot("Find").Call(jen.Id("ctx"), jen.Id("cmd").Dot(key.Name)),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.False(), jen.Err())),
		jen.If(jen.Id("item").Op("==").Nil()).Block(jen.Return(jen.False(), jen.Nil())),
	}
	for _, p := range nonKeyProperties(e) {
		body = append(body, jen.Id("item").Dot(p.Name).Op("=").Id("cmd").Dot(p.Name))
	}
	if e.HasAuditFields {
		body = append(body,
			jen.Id("now").Op(":=").Qual("time", "Now").Call().Dot("UTC").Call(),
			jen.Id("item").Dot("UpdatedAt").Op("=").Op("&").Id("now"),
		)
	}
	body = append(body,
		jen.If(
			jen.Err().Op(":=").Id("h").Dot("Store").Dot("SaveChanges").Call(jen.Id("ctx")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.False(), jen.Err())),
		jen.Return(jen.True(), jen.Nil()),
	)

	f.Commentf("Handle updates the %s and reports whether it existed.", e.Name)
	f.Func().Params(jen.Id("h").Id(name)).Id("Handle").
		Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("cmd").Id("Update"+e.Name+"Command")).
		Params(jen.Bool(), jen.Error()).
		Block(body...)

	return renderFile(f, UpdateHandlerPath(e), e.Name, "update-handler")
}

// RenderDeleteHandler emits the delete handler. With soft delete enabled the
// handler flips the deletion flag and timestamp instead of removing the
// record; otherwise it removes it.
func RenderDeleteHandler(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	name := "Delete" + e.Name + "CommandHandler"
	key := e.Key()
	f := newFile(commandPkg(cfg, e, "Delete"), pkgOf("Delete"+e.Name), cfg, nil)

	f.Commentf("%s removes %s records by key.", name, e.Name)
	f.Type().Id(name).Struct(storeField(cfg))

	body := []jen.Code{
		jen.List(jen.Id("item"), jen.Err()).Op(":=").Add(accessor(e)).Dot("Find").Call(jen.Id("ctx"), jen.Id("cmd").Dot(key.Name)),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.False(), jen.Err())),
		jen.If(jen.Id("item").Op("==").Nil()).Block(jen.Return(jen.False(), jen.Nil())),
	}
	if e.HasSoftDelete {
		body = append(body,
			jen.Id("item").Dot("IsDeleted").Op("=").True(),
			jen.Id("now").Op(":=").Qual("time", "Now").Call().Dot("UTC").Call(),
			jen.Id("item").Dot("DeletedAt").Op("=").Op("&").Id("now"),
		)
	} else {
		body = append(body,
			jen.If(
				jen.Err().Op(":=").Add(accessor(e)).Dot("Remove").Call(jen.Id("ctx"), jen.Id("item")),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.False(), jen.Err())),
		)
	}
	body = append(body,
		jen.If(
			jen.Err().Op(":=").Id("h").Dot("Store").Dot("SaveChanges").Call(jen.Id("ctx")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.False(), jen.Err())),
		jen.Return(jen.True(), jen.Nil()),
	)

	f.Commentf("Handle deletes the %s and reports whether it existed.", e.Name)
	f.Func().Params(jen.Id("h").Id(name)).Id("Handle").
		Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("cmd").Id("Delete"+e.Name+"Command")).
		Params(jen.Bool(), jen.Error()).
		Block(body...)

	return renderFile(f, DeleteHandlerPath(e), e.Name, "delete-handler")
}
