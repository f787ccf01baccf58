package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// nonKeyProperties returns the entity's properties minus the key property.
func nonKeyProperties(e model.EntityModel) []model.PropertyModel {
	out := make([]model.PropertyModel, 0, len(e.Properties))
	for _, p := range e.Properties {
		if p.IsKey {
			continue
		}
		out = append(out, p)
	}
	return out
}

// RenderCreateCommand emits the create command: every property except the
// key. The handler returns the generated key.
func RenderCreateCommand(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	name := "Create" + e.Name + "Command"
	f := newFile(commandPkg(cfg, e, "Create"), pkgOf("Create"+e.Name), cfg, nil)

	fields := make([]jen.Code, 0, len(e.Properties))
	for _, p := range nonKeyProperties(e) {
		fields = append(fields, jen.Id(p.Name).Add(goType(p)))
	}

	f.Commentf("%s creates a new %s and yields the generated %s key.", name, e.Name, e.Key().Name)
	f.Type().Id(name).Struct(fields...)
	if cfg.UseMediator {
		f.Commentf("RequestName identifies the command for mediator dispatch.")
		f.Func().Params(jen.Id(name)).Id("RequestName").Params().String().Block(
			jen.Return(jen.Lit(name)),
		)
	}

	return renderFile(f, CreateCommandPath(e), e.Name, "create-command")
}

// RenderUpdateCommand emits the update command: the key property first, then
// every other property. The handler returns a success flag.
func RenderUpdateCommand(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	name := "Update" + e.Name + "Command"
	f := newFile(commandPkg(cfg, e, "Update"), pkgOf("Update"+e.Name), cfg, nil)

	key := e.Key()
	fields := []jen.Code{jen.Id(key.Name).Add(goBaseType(key.Type))}
	for _, p := range nonKeyProperties(e) {
		fields = append(fields, jen.Id(p.Name).Add(goType(p)))
	}

	f.Commentf("%s overwrites an existing %s and yields a success flag.", name, e.Name)
	f.Type().Id(name).Struct(fields...)
	if cfg.UseMediator {
		f.Commentf("RequestName identifies the command for mediator dispatch.")
		f.Func().Params(jen.Id(name)).Id("RequestName").Params().String().Block(
			jen.Return(jen.Lit(name)),
		)
	}

	return renderFile(f, UpdateCommandPath(e), e.Name, "update-command")
}

// RenderDeleteCommand emits the delete command: the key property only. The
// handler returns a success flag.
func RenderDeleteCommand(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	name := "Delete" + e.Name + "Command"
	f := newFile(commandPkg(cfg, e, "Delete"), pkgOf("Delete"+e.Name), cfg, nil)

	key := e.Key()
	f.Commentf("%s removes a %s by key and yields a success flag.", name, e.Name)
	f.Type().Id(name).Struct(
		jen.Id(key.Name).Add(goBaseType(key.Type)),
	)
	if cfg.UseMediator {
		f.Commentf("RequestName identifies the command for mediator dispatch.")
		f.Func().Params(jen.Id(name)).Id("RequestName").Params().String().Block(
			jen.Return(jen.Lit(name)),
		)
	}

	return renderFile(f, DeleteCommandPath(e), e.Name, "delete-command")
}
