package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// parseKeyStmts emits statements parsing the {id} path value into an `id`
// variable of the key's Go type, replying 400 on parse failure.
func parseKeyStmts(key model.PropertyModel) []jen.Code {
	bad := jen.Block(
		jen.Qual("net/http", "Error").Call(jen.Id("w"), jen.Lit("invalid id"), jen.Qual("net/http", "StatusBadRequest")),
		jen.Return(),
	)
	switch key.Type {
	case model.TypeString:
		return []jen.Code{jen.Id("id").Op(":=").Id("r").Dot("PathValue").Call(jen.Lit("id"))}
	case model.TypeGuid:
		return []jen.Code{
			jen.List(jen.Id("id"), jen.Err()).Op(":=").Qual(uuidPkg, "Parse").Call(jen.Id("r").Dot("PathValue").Call(jen.Lit("id"))),
			jen.If(jen.Err().Op("!=").Nil()).Add(bad),
		}
	case model.TypeLong:
		return []jen.Code{
			jen.List(jen.Id("id"), jen.Err()).Op(":=").Qual("strconv", "ParseInt").Call(jen.Id("r").Dot("PathValue").Call(jen.Lit("id")), jen.Lit(10), jen.Lit(64)),
			jen.If(jen.Err().Op("!=").Nil()).Add(bad),
		}
	default: // int
		return []jen.Code{
			jen.List(jen.Id("id"), jen.Err()).Op(":=").Qual("strconv", "Atoi").Call(jen.Id("r").Dot("PathValue").Call(jen.Lit("id"))),
			jen.If(jen.Err().Op("!=").Nil()).Add(bad),
		}
	}
}

func replyJSON(status string, value jen.Code) []jen.Code {
	return []jen.Code{
		jen.Id("w").Dot("Header").Call().Dot("Set").Call(jen.Lit("Content-Type"), jen.Lit("application/json")),
		jen.Id("w").Dot("WriteHeader").Call(jen.Qual("net/http", status)),
		jen.Id("_").Op("=").Qual("encoding/json", "NewEncoder").Call(jen.Id("w")).Dot("Encode").Call(value),
	}
}

func replyServerError() jen.Code {
	return jen.If(jen.Err().Op("!=").Nil()).Block(
		jen.Qual("net/http", "Error").Call(jen.Id("w"), jen.Err().Dot("Error").Call(), jen.Qual("net/http", "StatusInternalServerError")),
		jen.Return(),
	)
}

// RenderController emits the REST controller: exactly five routes bound to
// the five command/query objects. The update route rejects the request when
// the path key and body key disagree, before dispatching.
func RenderController(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	name := Plural(e.Name) + "Controller"
	key := e.Key()
	route := "/api/" + RoutePath(e)
	f := newFile(ModulePath(cfg)+"/Api/Controllers", "controllers", cfg, []model.EntityModel{e})

	createPkg := commandPkg(cfg, e, "Create")
	updatePkg := commandPkg(cfg, e, "Update")
	deletePkg := commandPkg(cfg, e, "Delete")
	byIdPkg := queryPkg(cfg, e, "Get"+e.Name+"ById")
	allPkg := queryPkg(cfg, e, "GetAll"+Plural(e.Name))

	f.Commentf("%s exposes the %s CRUD routes.", name, e.Name)
	f.Type().Id(name).Struct(
		jen.Id("Create").Qual(createPkg, "Create"+e.Name+"CommandHandler"),
		jen.Id("Update").Qual(updatePkg, "Update"+e.Name+"CommandHandler"),
		jen.Id("Delete").Qual(deletePkg, "Delete"+e.Name+"CommandHandler"),
		jen.Id("GetById").Qual(byIdPkg, "Get"+e.Name+"ByIdQueryHandler"),
		jen.Id("GetAll").Qual(allPkg, "GetAll"+Plural(e.Name)+"QueryHandler"),
	)

	f.Commentf("RegisterRoutes binds the %s routes onto the mux.", e.Name)
	f.Func().Params(jen.Id("c").Op("*").Id(name)).Id("RegisterRoutes").
		Params(jen.Id("mux").Op("*").Qual("net/http", "ServeMux")).
		Block(
			jen.Id("mux").Dot("HandleFunc").Call(jen.Lit("GET "+route), jen.Id("c").Dot("handleGetAll")),
			jen.Id("mux").Dot("HandleFunc").Call(jen.Lit("GET "+route+"/{id}"), jen.Id("c").Dot("handleGetById")),
			jen.Id("mux").Dot("HandleFunc").Call(jen.Lit("POST "+route), jen.Id("c").Dot("handleCreate")),
			jen.Id("mux").Dot("HandleFunc").Call(jen.Lit("PUT "+route+"/{id}"), jen.Id("c").Dot("handleUpdate")),
			jen.Id("mux").Dot("HandleFunc").Call(jen.Lit("DELETE "+route+"/{id}"), jen.Id("c").Dot("handleDelete")),
		)

	handlerSig := func(fname string, body []jen.Code) {
		f.Func().Params(jen.Id("c").Op("*").Id(name)).Id(fname).
			Params(jen.Id("w").Qual("net/http", "ResponseWriter"), jen.Id("r").Op("*").Qual("net/http", "Request")).
			Block(body...)
	}

	// GET all.
	body := []jen.Code{
		jen.List(jen.Id("result"), jen.Err()).Op(":=").Id("c").Dot("GetAll").Dot("Handle").
			Call(jen.Id("r").Dot("Context").Call(), jen.Qual(allPkg, "GetAll"+Plural(e.Name)+"Query").Values()),
		replyServerError(),
	}
	body = append(body, replyJSON("StatusOK", jen.Id("result"))...)
	handlerSig("handleGetAll", body)

	// GET by id.
	body = parseKeyStmts(key)
	body = append(body,
		jen.List(jen.Id("result"), jen.Err()).Op(":=").Id("c").Dot("GetById").Dot("Handle").
			Call(jen.Id("r").Dot("Context").Call(), jen.Qual(byIdPkg, "Get"+e.Name+"ByIdQuery").Values(jen.Id(key.Name).Op(":").Id("id"))),
		replyServerError(),
		jen.If(jen.Id("result").Op("==").Nil()).Block(
			jen.Qual("net/http", "NotFound").Call(jen.Id("w"), jen.Id("r")),
			jen.Return(),
		),
	)
	body = append(body, replyJSON("StatusOK", jen.Id("result"))...)
	handlerSig("handleGetById", body)

	// POST create.
	body = []jen.Code{
		jen.Var().Id("cmd").Qual(createPkg, "Create"+e.Name+"Command"),
		jen.If(
			jen.Err().Op(":=").Qual("encoding/json", "NewDecoder").Call(jen.Id("r").Dot("Body")).Dot("Decode").Call(jen.Op("&").Id("cmd")),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Qual("net/http", "Error").Call(jen.Id("w"), jen.Err().Dot("Error").Call(), jen.Qual("net/http", "StatusBadRequest")),
			jen.Return(),
		),
		jen.List(jen.Id("created"), jen.Err()).Op(":=").Id("c").Dot("Create").Dot("Handle").Call(jen.Id("r").Dot("Context").Call(), jen.Id("cmd")),
		replyServerError(),
	}
	body = append(body, replyJSON("StatusCreated", jen.Id("created"))...)
	handlerSig("handleCreate", body)

	// PUT update. Path key and body key must agree before dispatch.
	body = parseKeyStmts(key)
	body = append(body,
		jen.Var().Id("cmd").Qual(updatePkg, "Update"+e.Name+"Command"),
		jen.If(
			jen.Err().Op(":=").Qual("encoding/json", "NewDecoder").Call(jen.Id("r").Dot("Body")).Dot("Decode").Call(jen.Op("&").Id("cmd")),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Qual("net/http", "Error").Call(jen.Id("w"), jen.Err().Dot("Error").Call(), jen.Qual("net/http", "StatusBadRequest")),
			jen.Return(),
		),
		jen.If(jen.Id("cmd").Dot(key.Name).Op("!=").Id("id")).Block(
			jen.Qual("net/http", "Error").Call(jen.Id("w"), jen.Lit("route key does not match body key"), jen.Qual("net/http", "StatusBadRequest")),
			jen.Return(),
		),
		jen.List(jen.Id("ok"), jen.Err()).Op(":=").Id("c").Dot("Update").Dot("Handle").Call(jen.Id("r").Dot("Context").Call(), jen.Id("cmd")),
		replyServerError(),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Qual("net/http", "NotFound").Call(jen.Id("w"), jen.Id("r")),
			jen.Return(),
		),
		jen.Id("w").Dot("WriteHeader").Call(jen.Qual("net/http", "StatusNoContent")),
	)
	handlerSig("handleUpdate", body)

	// DELETE.
	body = parseKeyStmts(key)
	body = append(body,
		jen.List(jen.Id("ok"), jen.Err()).Op(":=").Id("c").Dot("Delete").Dot("Handle").
			Call(jen.Id("r").Dot("Context").Call(), jen.Qual(deletePkg, "Delete"+e.Name+"Command").Values(jen.Id(key.Name).Op(":").Id("id"))),
		replyServerError(),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Qual("net/http", "NotFound").Call(jen.Id("w"), jen.Id("r")),
			jen.Return(),
		),
		jen.Id("w").Dot("WriteHeader").Call(jen.Qual("net/http", "StatusNoContent")),
	)
	handlerSig("handleDelete", body)

	return renderFile(f, ControllerPath(e), e.Name, "controller")
}
