package gen

import (
	"path"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// Naming is derived entirely from the entity name. Pluralization is always a
// plain "s" suffix; no irregular plural handling, so derived names stay
// reversible for the incremental directory scan.

// Plural returns the entity name pluralized with a plain "s".
func Plural(name string) string { return name + "s" }

// TableName returns the table name for an entity.
func TableName(e model.EntityModel) string { return Plural(e.Name) }

// ColumnName returns the snake_case column for a property name.
func ColumnName(prop string) string { return inflect.Underscore(prop) }

// RoutePath returns the lowercase collection route segment for an entity,
// e.g. "products" for Product.
func RoutePath(e model.EntityModel) string { return strings.ToLower(Plural(e.Name)) }

// pkgOf lowercases a generated directory name into its package identifier.
func pkgOf(name string) string { return strings.ToLower(name) }

// ModulePath returns the module path of the emitted project, derived from the
// root namespace.
func ModulePath(cfg model.GenerationConfig) string {
	return strings.ToLower(cfg.RootNamespace)
}

// Artifact paths. This layout is load-bearing: the incremental generator's
// existence checks and entity discovery scan depend on it.

// EntityPath returns Domain/Entities/{Name}.go.
func EntityPath(e model.EntityModel) string {
	return path.Join("Domain", "Entities", e.Name+".go")
}

// EntitiesDir is the directory scanned for pre-existing entities.
const EntitiesDir = "Domain/Entities"

func appDir(e model.EntityModel) string {
	return path.Join("Application", Plural(e.Name))
}

// DtoPath returns Application/{Name}s/{Name}Dto.go.
func DtoPath(e model.EntityModel) string {
	return path.Join(appDir(e), e.Name+"Dto.go")
}

// MappingProfilePath returns Application/Mappings/{Name}MappingProfile.go.
func MappingProfilePath(e model.EntityModel) string {
	return path.Join("Application", "Mappings", e.Name+"MappingProfile.go")
}

func commandDir(e model.EntityModel, verb string) string {
	return path.Join(appDir(e), "Commands", verb+e.Name)
}

// CreateCommandPath returns the create-command artifact path.
func CreateCommandPath(e model.EntityModel) string {
	return path.Join(commandDir(e, "Create"), "Create"+e.Name+"Command.go")
}

// CreateHandlerPath returns the create-handler artifact path.
func CreateHandlerPath(e model.EntityModel) string {
	return path.Join(commandDir(e, "Create"), "Create"+e.Name+"CommandHandler.go")
}

// CreateValidatorPath returns the create-validator artifact path.
func CreateValidatorPath(e model.EntityModel) string {
	return path.Join(commandDir(e, "Create"), "Create"+e.Name+"CommandValidator.go")
}

// UpdateCommandPath returns the update-command artifact path.
func UpdateCommandPath(e model.EntityModel) string {
	return path.Join(commandDir(e, "Update"), "Update"+e.Name+"Command.go")
}

// UpdateHandlerPath returns the update-handler artifact path.
func UpdateHandlerPath(e model.EntityModel) string {
	return path.Join(commandDir(e, "Update"), "Update"+e.Name+"CommandHandler.go")
}

// UpdateValidatorPath returns the update-validator artifact path.
func UpdateValidatorPath(e model.EntityModel) string {
	return path.Join(commandDir(e, "Update"), "Update"+e.Name+"CommandValidator.go")
}

// DeleteCommandPath returns the delete-command artifact path.
func DeleteCommandPath(e model.EntityModel) string {
	return path.Join(commandDir(e, "Delete"), "Delete"+e.Name+"Command.go")
}

// DeleteHandlerPath returns the delete-handler artifact path.
func DeleteHandlerPath(e model.EntityModel) string {
	return path.Join(commandDir(e, "Delete"), "Delete"+e.Name+"CommandHandler.go")
}

func queryDir(e model.EntityModel, name string) string {
	return path.Join(appDir(e), "Queries", name)
}

// GetByIdQueryPath returns the get-by-id query artifact path.
func GetByIdQueryPath(e model.EntityModel) string {
	return path.Join(queryDir(e, "Get"+e.Name+"ById"), "Get"+e.Name+"ByIdQuery.go")
}

// GetByIdHandlerPath returns the get-by-id handler artifact path.
func GetByIdHandlerPath(e model.EntityModel) string {
	return path.Join(queryDir(e, "Get"+e.Name+"ById"), "Get"+e.Name+"ByIdQueryHandler.go")
}

// GetAllQueryPath returns the get-all query artifact path.
func GetAllQueryPath(e model.EntityModel) string {
	return path.Join(queryDir(e, "GetAll"+Plural(e.Name)), "GetAll"+Plural(e.Name)+"Query.go")
}

// GetAllHandlerPath returns the get-all handler artifact path.
func GetAllHandlerPath(e model.EntityModel) string {
	return path.Join(queryDir(e, "GetAll"+Plural(e.Name)), "GetAll"+Plural(e.Name)+"QueryHandler.go")
}

// ConfigurationPath returns Infrastructure/Persistence/Configurations/{Name}Configuration.go.
func ConfigurationPath(e model.EntityModel) string {
	return path.Join("Infrastructure", "Persistence", "Configurations", e.Name+"Configuration.go")
}

// ControllerPath returns Api/Controllers/{Name}sController.go.
func ControllerPath(e model.EntityModel) string {
	return path.Join("Api", "Controllers", Plural(e.Name)+"Controller.go")
}

// Cross-entity artifact paths.
const (
	StoreInterfacePath = "Application/Common/Interfaces/ApplicationStore.go"
	StoreImplPath      = "Infrastructure/Persistence/ApplicationStore.go"
	PagedResultPath    = "Application/Common/Models/PagedResult.go"
	MediatorPath       = "Application/Common/Mediator.go"
	SeedDataPath       = "Infrastructure/Persistence/SeedData.go"
	SeedScriptPath     = "scripts/seed.sql"
	MigrationPath      = "Infrastructure/Persistence/Migrations/0001_initial.sql"
)

// Emitted import paths, used by the jennifer renderers to qualify
// cross-package references inside the generated project.

func entitiesPkg(cfg model.GenerationConfig) string {
	return ModulePath(cfg) + "/Domain/Entities"
}

func appEntityPkg(cfg model.GenerationConfig, e model.EntityModel) string {
	return ModulePath(cfg) + "/Application/" + Plural(e.Name)
}

func commandPkg(cfg model.GenerationConfig, e model.EntityModel, verb string) string {
	return ModulePath(cfg) + "/Application/" + Plural(e.Name) + "/Commands/" + verb + e.Name
}

func queryPkg(cfg model.GenerationConfig, e model.EntityModel, name string) string {
	return ModulePath(cfg) + "/Application/" + Plural(e.Name) + "/Queries/" + name
}

func interfacesPkg(cfg model.GenerationConfig) string {
	return ModulePath(cfg) + "/Application/Common/Interfaces"
}

func commonModelsPkg(cfg model.GenerationConfig) string {
	return ModulePath(cfg) + "/Application/Common/Models"
}

func persistencePkg(cfg model.GenerationConfig) string {
	return ModulePath(cfg) + "/Infrastructure/Persistence"
}

// ValidIdentifier reports whether a name is usable as a generated identifier:
// a letter first, then letters and digits only.
func ValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
