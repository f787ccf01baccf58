package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// Cross-entity artifacts. These renderers take the full entity set and are
// re-run on every incremental pass so new entities get registered.

// repoType returns interfaces.Repository[entities.{Name}, {KeyType}].
func repoType(cfg model.GenerationConfig, e model.EntityModel) *jen.Statement {
	return jen.Qual(interfacesPkg(cfg), "Repository").Types(
		jen.Qual(entitiesPkg(cfg), e.Name),
		goBaseType(e.Key().Type),
	)
}

// RenderStoreInterface emits the aggregate store contract: the generic
// repository interface plus one accessor per entity, in input order.
func RenderStoreInterface(all []model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	f := newFile(interfacesPkg(cfg), "interfaces", cfg, all)

	f.Comment("Repository is the collection access contract shared by every aggregate.")
	f.Type().Id("Repository").Types(jen.Id("T").Any(), jen.Id("K").Comparable()).Interface(
		jen.Id("Find").Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("key").Id("K")).Params(jen.Op("*").Id("T"), jen.Error()),
		jen.Id("List").Params(jen.Id("ctx").Qual("context", "Context")).Params(jen.Index().Op("*").Id("T"), jen.Error()),
		jen.Id("Add").Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("item").Op("*").Id("T")).Error(),
		jen.Id("Remove").Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("item").Op("*").Id("T")).Error(),
	)

	methods := make([]jen.Code, 0, len(all)+1)
	for _, e := range all {
		methods = append(methods, jen.Id(Plural(e.Name)).Params().Add(
			jen.Id("Repository").Types(jen.Qual(entitiesPkg(cfg), e.Name), goBaseType(e.Key().Type)),
		))
	}
	methods = append(methods, jen.Id("SaveChanges").Params(jen.Id("ctx").Qual("context", "Context")).Error())

	f.Comment("ApplicationStore aggregates one repository per entity.")
	f.Type().Id("ApplicationStore").Interface(methods...)

	return renderFile(f, StoreInterfacePath, "", "store-interface")
}

// storeBuilderDecls emits the fluent mapping builder consumed by the
// per-entity configuration artifacts.
func storeBuilderDecls(f *jen.File) {
	f.Comment("EntityTypeBuilder collects the persistence mapping declared by an")
	f.Comment("entity configuration.")
	f.Type().Id("EntityTypeBuilder").Struct(
		jen.Id("table").String(),
		jen.Id("key").String(),
		jen.Id("properties").Map(jen.String()).Op("*").Id("PropertyBuilder"),
		jen.Id("filterColumn").String(),
		jen.Id("relations").Index().Op("*").Id("RelationshipBuilder"),
		jen.Id("indexes").Index().Op("*").Id("IndexBuilder"),
	)

	f.Comment("ToTable sets the table name.")
	f.Func().Params(jen.Id("b").Op("*").Id("EntityTypeBuilder")).Id("ToTable").
		Params(jen.Id("name").String()).Op("*").Id("EntityTypeBuilder").
		Block(
			jen.Id("b").Dot("table").Op("=").Id("name"),
			jen.Return(jen.Id("b")),
		)

	f.Comment("HasKey sets the primary key property.")
	f.Func().Params(jen.Id("b").Op("*").Id("EntityTypeBuilder")).Id("HasKey").
		Params(jen.Id("prop").String()).Op("*").Id("EntityTypeBuilder").
		Block(
			jen.Id("b").Dot("key").Op("=").Id("prop"),
			jen.Return(jen.Id("b")),
		)

	f.Comment("Property returns the builder for one property, creating it on first use.")
	f.Func().Params(jen.Id("b").Op("*").Id("EntityTypeBuilder")).Id("Property").
		Params(jen.Id("name").String()).Op("*").Id("PropertyBuilder").
		Block(
			jen.If(jen.Id("b").Dot("properties").Op("==").Nil()).Block(
				jen.Id("b").Dot("properties").Op("=").Make(jen.Map(jen.String()).Op("*").Id("PropertyBuilder")),
			),
			jen.If(
				jen.List(jen.Id("p"), jen.Id("ok")).Op(":=").Id("b").Dot("properties").Index(jen.Id("name")),
				jen.Id("ok"),
			).Block(jen.Return(jen.Id("p"))),
			jen.Id("p").Op(":=").Op("&").Id("PropertyBuilder").Values(),
			jen.Id("b").Dot("properties").Index(jen.Id("name")).Op("=").Id("p"),
			jen.Return(jen.Id("p")),
		)

	f.Comment("HasQueryFilter declares the column excluding rows from every query.")
	f.Func().Params(jen.Id("b").Op("*").Id("EntityTypeBuilder")).Id("HasQueryFilter").
		Params(jen.Id("column").String()).Op("*").Id("EntityTypeBuilder").
		Block(
			jen.Id("b").Dot("filterColumn").Op("=").Id("column"),
			jen.Return(jen.Id("b")),
		)

	for _, m := range []struct{ name, kind string }{
		{"HasMany", "many"},
		{"HasOne", "one"},
	} {
		f.Commentf("%s starts a relationship declaration from a navigation member.", m.name)
		f.Func().Params(jen.Id("b").Op("*").Id("EntityTypeBuilder")).Id(m.name).
			Params(jen.Id("navigation").String()).Op("*").Id("RelationshipBuilder").
			Block(
				jen.Id("r").Op(":=").Op("&").Id("RelationshipBuilder").Values(
					jen.Id("kind").Op(":").Lit(m.kind),
					jen.Id("navigation").Op(":").Id("navigation"),
				),
				jen.Id("b").Dot("relations").Op("=").Append(jen.Id("b").Dot("relations"), jen.Id("r")),
				jen.Return(jen.Id("r")),
			)
	}

	f.Comment("HasIndex starts an index declaration over the given properties.")
	f.Func().Params(jen.Id("b").Op("*").Id("EntityTypeBuilder")).Id("HasIndex").
		Params(jen.Id("props").Op("...").String()).Op("*").Id("IndexBuilder").
		Block(
			jen.Id("i").Op(":=").Op("&").Id("IndexBuilder").Values(jen.Id("columns").Op(":").Id("props")),
			jen.Id("b").Dot("indexes").Op("=").Append(jen.Id("b").Dot("indexes"), jen.Id("i")),
			jen.Return(jen.Id("i")),
		)

	f.Comment("PropertyBuilder accumulates per-property constraints.")
	f.Type().Id("PropertyBuilder").Struct(
		jen.Id("required").Bool(),
		jen.Id("maxLength").Int(),
		jen.Id("precision").Int(),
		jen.Id("scale").Int(),
	)
	f.Func().Params(jen.Id("p").Op("*").Id("PropertyBuilder")).Id("IsRequired").
		Params().Op("*").Id("PropertyBuilder").
		Block(jen.Id("p").Dot("required").Op("=").True(), jen.Return(jen.Id("p")))
	f.Func().Params(jen.Id("p").Op("*").Id("PropertyBuilder")).Id("HasMaxLength").
		Params(jen.Id("n").Int()).Op("*").Id("PropertyBuilder").
		Block(jen.Id("p").Dot("maxLength").Op("=").Id("n"), jen.Return(jen.Id("p")))
	f.Func().Params(jen.Id("p").Op("*").Id("PropertyBuilder")).Id("HasPrecision").
		Params(jen.Id("precision").Int(), jen.Id("scale").Int()).Op("*").Id("PropertyBuilder").
		Block(
			jen.Id("p").Dot("precision").Op("=").Id("precision"),
			jen.Id("p").Dot("scale").Op("=").Id("scale"),
			jen.Return(jen.Id("p")),
		)

	f.Comment("RelationshipBuilder accumulates one relationship declaration.")
	f.Type().Id("RelationshipBuilder").Struct(
		jen.Id("kind").String(),
		jen.Id("navigation").String(),
		jen.Id("inverse").String(),
		jen.Id("inverseKind").String(),
		jen.Id("foreignKey").String(),
		jen.Id("foreignKeyOn").String(),
		jen.Id("onDelete").String(),
		jen.Id("joinTable").String(),
	)
	for _, m := range []struct{ name, kind string }{
		{"WithOne", "one"},
		{"WithMany", "many"},
	} {
		f.Func().Params(jen.Id("r").Op("*").Id("RelationshipBuilder")).Id(m.name).
			Params(jen.Id("inverse").String()).Op("*").Id("RelationshipBuilder").
			Block(
				jen.Id("r").Dot("inverse").Op("=").Id("inverse"),
				jen.Id("r").Dot("inverseKind").Op("=").Lit(m.kind),
				jen.Return(jen.Id("r")),
			)
	}
	f.Func().Params(jen.Id("r").Op("*").Id("RelationshipBuilder")).Id("HasForeignKey").
		Params(jen.Id("prop").String()).Op("*").Id("RelationshipBuilder").
		Block(jen.Id("r").Dot("foreignKey").Op("=").Id("prop"), jen.Return(jen.Id("r")))
	f.Func().Params(jen.Id("r").Op("*").Id("RelationshipBuilder")).Id("HasForeignKeyOn").
		Params(jen.Id("entity").String(), jen.Id("prop").String()).Op("*").Id("RelationshipBuilder").
		Block(
			jen.Id("r").Dot("foreignKeyOn").Op("=").Id("entity"),
			jen.Id("r").Dot("foreignKey").Op("=").Id("prop"),
			jen.Return(jen.Id("r")),
		)
	f.Func().Params(jen.Id("r").Op("*").Id("RelationshipBuilder")).Id("OnDelete").
		Params(jen.Id("behavior").String()).Op("*").Id("RelationshipBuilder").
		Block(jen.Id("r").Dot("onDelete").Op("=").Id("behavior"), jen.Return(jen.Id("r")))
	f.Func().Params(jen.Id("r").Op("*").Id("RelationshipBuilder")).Id("UsingEntity").
		Params(jen.Id("joinTable").String()).Op("*").Id("RelationshipBuilder").
		Block(jen.Id("r").Dot("joinTable").Op("=").Id("joinTable"), jen.Return(jen.Id("r")))

	f.Comment("IndexBuilder accumulates one index declaration.")
	f.Type().Id("IndexBuilder").Struct(
		jen.Id("columns").Index().String(),
		jen.Id("unique").Bool(),
		jen.Id("name").String(),
	)
	f.Func().Params(jen.Id("i").Op("*").Id("IndexBuilder")).Id("IsUnique").
		Params().Op("*").Id("IndexBuilder").
		Block(jen.Id("i").Dot("unique").Op("=").True(), jen.Return(jen.Id("i")))
	f.Func().Params(jen.Id("i").Op("*").Id("IndexBuilder")).Id("HasDatabaseName").
		Params(jen.Id("name").String()).Op("*").Id("IndexBuilder").
		Block(jen.Id("i").Dot("name").Op("=").Id("name"), jen.Return(jen.Id("i")))

	f.Comment("EntityConfiguration is implemented by every generated configuration.")
	f.Type().Id("EntityConfiguration").Interface(
		jen.Id("Configure").Params(jen.Id("b").Op("*").Id("EntityTypeBuilder")),
	)

	f.Comment("BuildModel applies every configuration and returns the collected mappings.")
	f.Func().Id("BuildModel").
		Params(jen.Id("configs").Op("...").Id("EntityConfiguration")).
		Index().Op("*").Id("EntityTypeBuilder").
		Block(
			jen.Id("out").Op(":=").Make(jen.Index().Op("*").Id("EntityTypeBuilder"), jen.Lit(0), jen.Len(jen.Id("configs"))),
			jen.For(jen.List(jen.Id("_"), jen.Id("c")).Op(":=").Range().Id("configs")).Block(
				jen.Id("b").Op(":=").Op("&").Id("EntityTypeBuilder").Values(),
				jen.Id("c").Dot("Configure").Call(jen.Id("b")),
				jen.Id("out").Op("=").Append(jen.Id("out"), jen.Id("b")),
			),
			jen.Return(jen.Id("out")),
		)
}

// newKeyBody emits the auto-key closure body for an entity's key type. Integer
// keys take the repository sequence, Guid keys a fresh UUID, everything else
// is caller-assigned.
func newKeyBody(key model.PropertyModel) []jen.Code {
	switch key.Type {
	case model.TypeInt:
		return []jen.Code{
			jen.If(jen.Id("x").Dot(key.Name).Op("==").Lit(0)).Block(
				jen.Id("x").Dot(key.Name).Op("=").Id("seq"),
			),
		}
	case model.TypeLong:
		return []jen.Code{
			jen.If(jen.Id("x").Dot(key.Name).Op("==").Lit(0)).Block(
				jen.Id("x").Dot(key.Name).Op("=").Int64().Parens(jen.Id("seq")),
			),
		}
	case model.TypeGuid:
		return []jen.Code{
			jen.If(jen.Id("x").Dot(key.Name).Op("==").Qual(uuidPkg, "Nil")).Block(
				jen.Id("x").Dot(key.Name).Op("=").Qual(uuidPkg, "New").Call(),
			),
		}
	default:
		return []jen.Code{jen.Id("_").Op("=").Id("seq")}
	}
}

// RenderStoreImpl emits the in-memory aggregate store plus the fluent mapping
// builder the configuration artifacts call into.
func RenderStoreImpl(all []model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	f := newFile(persistencePkg(cfg), "persistence", cfg, all)

	// Generic repository.
	f.Comment("repository is the in-memory Repository implementation backing the store.")
	f.Comment("Insertion order is preserved so listings stay deterministic.")
	f.Type().Id("repository").Types(jen.Id("T").Any(), jen.Id("K").Comparable()).Struct(
		jen.Id("items").Map(jen.Id("K")).Op("*").Id("T"),
		jen.Id("order").Index().Id("K"),
		jen.Id("seq").Int(),
		jen.Id("keyOf").Func().Params(jen.Op("*").Id("T")).Id("K"),
		jen.Id("newKey").Func().Params(jen.Op("*").Id("T"), jen.Int()),
	)

	f.Func().Id("newRepository").Types(jen.Id("T").Any(), jen.Id("K").Comparable()).
		Params(
			jen.Id("keyOf").Func().Params(jen.Op("*").Id("T")).Id("K"),
			jen.Id("newKey").Func().Params(jen.Op("*").Id("T"), jen.Int()),
		).
		Op("*").Id("repository").Types(jen.Id("T"), jen.Id("K")).
		Block(
			jen.Return(jen.Op("&").Id("repository").Types(jen.Id("T"), jen.Id("K")).Values(
				jen.Id("items").Op(":").Make(jen.Map(jen.Id("K")).Op("*").Id("T")),
				jen.Id("keyOf").Op(":").Id("keyOf"),
				jen.Id("newKey").Op(":").Id("newKey"),
			)),
		)

	f.Func().Params(jen.Id("r").Op("*").Id("repository").Types(jen.Id("T"), jen.Id("K"))).Id("Find").
		Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("key").Id("K")).
		Params(jen.Op("*").Id("T"), jen.Error()).
		Block(jen.Return(jen.Id("r").Dot("items").Index(jen.Id("key")), jen.Nil()))

	f.Func().Params(jen.Id("r").Op("*").Id("repository").Types(jen.Id("T"), jen.Id("K"))).Id("List").
		Params(jen.Id("ctx").Qual("context", "Context")).
		Params(jen.Index().Op("*").Id("T"), jen.Error()).
		Block(
			jen.Id("out").Op(":=").Make(jen.Index().Op("*").Id("T"), jen.Lit(0), jen.Len(jen.Id("r").Dot("order"))),
			jen.For(jen.List(jen.Id("_"), jen.Id("k")).Op(":=").Range().Id("r").Dot("order")).Block(
				jen.Id("out").Op("=").Append(jen.Id("out"), jen.Id("r").Dot("items").Index(jen.Id("k"))),
			),
			jen.Return(jen.Id("out"), jen.Nil()),
		)

	f.Func().Params(jen.Id("r").Op("*").Id("repository").Types(jen.Id("T"), jen.Id("K"))).Id("Add").
		Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("item").Op("*").Id("T")).
		Error().
		Block(
			jen.Id("r").Dot("seq").Op("++"),
			jen.Id("r").Dot("newKey").Call(jen.Id("item"), jen.Id("r").Dot("seq")),
			jen.Id("k").Op(":=").Id("r").Dot("keyOf").Call(jen.Id("item")),
			jen.If(
				jen.List(jen.Id("_"), jen.Id("exists")).Op(":=").Id("r").Dot("items").Index(jen.Id("k")),
				jen.Id("exists"),
			).Block(
				jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit("duplicate key %v"), jen.Id("k"))),
			),
			jen.Id("r").Dot("items").Index(jen.Id("k")).Op("=").Id("item"),
			jen.Id("r").Dot("order").Op("=").Append(jen.Id("r").Dot("order"), jen.Id("k")),
			jen.Return(jen.Nil()),
		)

	f.Func().Params(jen.Id("r").Op("*").Id("repository").Types(jen.Id("T"), jen.Id("K"))).Id("Remove").
		Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("item").Op("*").Id("T")).
		Error().
		Block(
			jen.Id("k").Op(":=").Id("r").Dot("keyOf").Call(jen.Id("item")),
			jen.Delete(jen.Id("r").Dot("items"), jen.Id("k")),
			jen.For(jen.List(jen.Id("i"), jen.Id("o")).Op(":=").Range().Id("r").Dot("order")).Block(
				jen.If(jen.Id("o").Op("==").Id("k")).Block(
					jen.Id("r").Dot("order").Op("=").Append(jen.Id("r").Dot("order").Index(jen.Empty(), jen.Id("i")), jen.Id("r").Dot("order").Index(jen.Id("i").Op("+").Lit(1), jen.Empty()).Op("...")),
					jen.Break(),
				),
			),
			jen.Return(jen.Nil()),
		)

	// Aggregate store.
	fields := make([]jen.Code, 0, len(all))
	for _, e := range all {
		fields = append(fields, jen.Id(pkgOf(Plural(e.Name))).Op("*").Id("repository").Types(
			jen.Qual(entitiesPkg(cfg), e.Name), goBaseType(e.Key().Type),
		))
	}
	f.Comment("ApplicationStore is the in-memory aggregate store. It satisfies the")
	f.Comment("interfaces.ApplicationStore contract.")
	f.Type().Id("ApplicationStore").Struct(fields...)

	ctorFields := make([]jen.Code, 0, len(all))
	for _, e := range all {
		key := e.Key()
		ctorFields = append(ctorFields, jen.Id(pkgOf(Plural(e.Name))).Op(":").Id("newRepository").Call(
			jen.Func().Params(jen.Id("x").Op("*").Qual(entitiesPkg(cfg), e.Name)).Add(goBaseType(key.Type)).Block(
				jen.Return(jen.Id("x").Dot(key.Name)),
			),
			jen.Func().Params(jen.Id("x").Op("*").Qual(entitiesPkg(cfg), e.Name), jen.Id("seq").Int()).Block(
				newKeyBody(key)...,
			),
		))
	}
	f.Comment("NewApplicationStore builds an empty store with every repository registered.")
	f.Func().Id("NewApplicationStore").Params().Op("*").Id("ApplicationStore").Block(
		jen.Return(jen.Op("&").Id("ApplicationStore").Values(ctorFields...)),
	)

	for _, e := range all {
		f.Commentf("%s returns the %s repository.", Plural(e.Name), e.Name)
		f.Func().Params(jen.Id("s").Op("*").Id("ApplicationStore")).Id(Plural(e.Name)).
			Params().Add(repoType(cfg, e)).
			Block(jen.Return(jen.Id("s").Dot(pkgOf(Plural(e.Name)))))
	}

	f.Comment("SaveChanges commits the unit of work. The in-memory store applies")
	f.Comment("mutations eagerly, so this only honors context cancellation.")
	f.Func().Params(jen.Id("s").Op("*").Id("ApplicationStore")).Id("SaveChanges").
		Params(jen.Id("ctx").Qual("context", "Context")).Error().
		Block(jen.Return(jen.Id("ctx").Dot("Err").Call()))

	storeBuilderDecls(f)

	return renderFile(f, StoreImplPath, "", "store-impl")
}

// RenderPagedResult emits the shared paging envelope.
func RenderPagedResult(cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	f := newFile(commonModelsPkg(cfg), "models", cfg, nil)

	f.Comment("PagedResult wraps one page of a listing with its paging metadata.")
	f.Type().Id("PagedResult").Index(jen.Id("T").Any()).Struct(
		jen.Id("Items").Index().Id("T").Tag(map[string]string{"json": "items"}),
		jen.Id("Page").Int().Tag(map[string]string{"json": "page"}),
		jen.Id("PageSize").Int().Tag(map[string]string{"json": "pageSize"}),
		jen.Id("TotalCount").Int().Tag(map[string]string{"json": "totalCount"}),
	)

	f.Comment("NewPagedResult builds a page envelope.")
	f.Func().Id("NewPagedResult").Index(jen.Id("T").Any()).
		Params(jen.Id("items").Index().Id("T"), jen.Id("page"), jen.Id("pageSize"), jen.Id("total").Int()).
		Id("PagedResult").Index(jen.Id("T")).
		Block(
			jen.Return(jen.Id("PagedResult").Index(jen.Id("T")).Values(
				jen.Id("Items").Op(":").Id("items"),
				jen.Id("Page").Op(":").Id("page"),
				jen.Id("PageSize").Op(":").Id("pageSize"),
				jen.Id("TotalCount").Op(":").Id("total"),
			)),
		)

	f.Comment("TotalPages derives the page count from the totals.")
	f.Func().Params(jen.Id("p").Id("PagedResult").Index(jen.Id("T"))).Id("TotalPages").
		Params().Int().
		Block(
			jen.If(jen.Id("p").Dot("PageSize").Op("<=").Lit(0)).Block(jen.Return(jen.Lit(0))),
			jen.Return(jen.Parens(jen.Id("p").Dot("TotalCount").Op("+").Id("p").Dot("PageSize").Op("-").Lit(1)).Op("/").Id("p").Dot("PageSize")),
		)

	return renderFile(f, PagedResultPath, "", "paged-result")
}

// RenderMediator emits the request dispatcher registered by name. Only
// rendered when the mediator pattern is enabled.
func RenderMediator(cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	f := newFile(ModulePath(cfg)+"/Application/Common", "common", cfg, nil)

	f.Comment("Request is implemented by every command and query.")
	f.Type().Id("Request").Interface(
		jen.Id("RequestName").Params().String(),
	)

	f.Comment("HandlerFunc resolves one request kind.")
	f.Type().Id("HandlerFunc").Func().
		Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("req").Id("Request")).
		Params(jen.Any(), jen.Error())

	f.Comment("Mediator routes requests to the handler registered under their name.")
	f.Type().Id("Mediator").Struct(
		jen.Id("handlers").Map(jen.String()).Id("HandlerFunc"),
	)

	f.Comment("NewMediator builds an empty mediator.")
	f.Func().Id("NewMediator").Params().Op("*").Id("Mediator").Block(
		jen.Return(jen.Op("&").Id("Mediator").Values(
			jen.Id("handlers").Op(":").Make(jen.Map(jen.String()).Id("HandlerFunc")),
		)),
	)

	f.Comment("Register binds a handler to a request name. The last registration wins.")
	f.Func().Params(jen.Id("m").Op("*").Id("Mediator")).Id("Register").
		Params(jen.Id("name").String(), jen.Id("h").Id("HandlerFunc")).
		Block(jen.Id("m").Dot("handlers").Index(jen.Id("name")).Op("=").Id("h"))

	f.Comment("Send dispatches the request to its registered handler.")
	f.Func().Params(jen.Id("m").Op("*").Id("Mediator")).Id("Send").
		Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("req").Id("Request")).
		Params(jen.Any(), jen.Error()).
		Block(
			jen.List(jen.Id("h"), jen.Id("ok")).Op(":=").Id("m").Dot("handlers").Index(jen.Id("req").Dot("RequestName").Call()),
			jen.If(jen.Op("!").Id("ok")).Block(
				jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(jen.Lit("no handler registered for %s"), jen.Id("req").Dot("RequestName").Call())),
			),
			jen.Return(jen.Id("h").Call(jen.Id("ctx"), jen.Id("req"))),
		)

	return renderFile(f, MediatorPath, "", "mediator")
}
