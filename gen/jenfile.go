package gen

import (
	"bytes"

	"github.com/dave/jennifer/jen"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// Generated-file header shared by every Go artifact.
const generatedHeader = "Code generated by MyCodegent. DO NOT EDIT."

const uuidPkg = "github.com/google/uuid"

// newFile creates a jennifer file for one emitted Go artifact and registers
// the package names of every generated import path, so cross-package
// references inside the emitted project qualify correctly regardless of the
// capitalized directory layout.
func newFile(pkgPath, pkgName string, cfg model.GenerationConfig, all []model.EntityModel) *jen.File {
	f := jen.NewFilePathName(pkgPath, pkgName)
	f.HeaderComment(generatedHeader)
	f.ImportName(entitiesPkg(cfg), "entities")
	f.ImportName(interfacesPkg(cfg), "interfaces")
	f.ImportName(commonModelsPkg(cfg), "models")
	f.ImportName(persistencePkg(cfg), "persistence")
	f.ImportName(ModulePath(cfg)+"/Application/Mappings", "mappings")
	f.ImportName(ModulePath(cfg)+"/Api/Controllers", "controllers")
	f.ImportName(uuidPkg, "uuid")
	for _, e := range all {
		f.ImportName(appEntityPkg(cfg, e), pkgOf(Plural(e.Name)))
		for _, verb := range []string{"Create", "Update", "Delete"} {
			f.ImportName(commandPkg(cfg, e, verb), pkgOf(verb+e.Name))
		}
		f.ImportName(queryPkg(cfg, e, "Get"+e.Name+"ById"), pkgOf("Get"+e.Name+"ById"))
		f.ImportName(queryPkg(cfg, e, "GetAll"+Plural(e.Name)), pkgOf("GetAll"+Plural(e.Name)))
	}
	return f
}

// renderFile renders a jennifer file into an artifact at the given path.
func renderFile(f *jen.File, relPath, entity, artifact string) (model.GeneratedArtifact, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return model.GeneratedArtifact{}, NewRenderError(entity, artifact, "rendering failed", err)
	}
	return model.NewArtifact(relPath, buf.String()), nil
}

// goType maps a property's semantic type tag to its emitted Go type.
// Optional properties (nullable, non-value-type) become pointers.
func goType(p model.PropertyModel) jen.Code {
	if p.Optional() {
		return goPointerType(p.Type)
	}
	return goBaseType(p.Type)
}

func goBaseType(tag string) jen.Code {
	switch tag {
	case model.TypeString:
		return jen.String()
	case model.TypeInt:
		return jen.Int()
	case model.TypeLong:
		return jen.Int64()
	case model.TypeDecimal, model.TypeDouble:
		return jen.Float64()
	case model.TypeFloat:
		return jen.Float32()
	case model.TypeBool:
		return jen.Bool()
	case model.TypeDateTime, model.TypeDateTimeOffset:
		return jen.Qual("time", "Time")
	case model.TypeGuid:
		return jen.Qual(uuidPkg, "UUID")
	default:
		return jen.Any()
	}
}

// goPointerType uses Id("*type") for builtins to avoid the whitespace issue
// jennifer has with Op("*") in struct field positions.
func goPointerType(tag string) jen.Code {
	switch tag {
	case model.TypeString:
		return jen.Id("*string")
	case model.TypeInt:
		return jen.Id("*int")
	case model.TypeLong:
		return jen.Id("*int64")
	case model.TypeDecimal, model.TypeDouble:
		return jen.Id("*float64")
	case model.TypeFloat:
		return jen.Id("*float32")
	case model.TypeBool:
		return jen.Id("*bool")
	case model.TypeDateTime, model.TypeDateTimeOffset:
		return jen.Op("*").Qual("time", "Time")
	case model.TypeGuid:
		return jen.Op("*").Qual(uuidPkg, "UUID")
	default:
		return jen.Op("*").Any()
	}
}

// keyZero returns the emitted zero value of the key type, used by handlers
// returning early on error.
func keyZero(key model.PropertyModel) jen.Code {
	switch key.Type {
	case model.TypeString:
		return jen.Lit("")
	case model.TypeGuid:
		return jen.Qual(uuidPkg, "Nil")
	default:
		return jen.Lit(0)
	}
}

// isNumeric reports whether the type tag is a numeric type.
func isNumeric(tag string) bool {
	switch tag {
	case model.TypeInt, model.TypeLong, model.TypeDecimal, model.TypeDouble, model.TypeFloat:
		return true
	}
	return false
}
