package gen

import (
	"fmt"
	"strings"
	"time"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"github.com/google/uuid"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// Seed generation emits a fixed number of synthetic rows per entity, in
// topological order so referenced rows exist before the rows referencing
// them. Primary and foreign keys are the row index, everything else comes
// from the heuristic table in heuristics.go.

const seedRowCount = 3

// seedLiteral converts a synthetic value into its emitted Go literal.
func seedLiteral(v any) jen.Code {
	switch t := v.(type) {
	case time.Time:
		return jen.Qual("time", "Date").Call(
			jen.Lit(t.Year()),
			jen.Qual("time", t.Month().String()),
			jen.Lit(t.Day()),
			jen.Lit(t.Hour()), jen.Lit(t.Minute()), jen.Lit(t.Second()), jen.Lit(0),
			jen.Qual("time", "UTC"),
		)
	case uuid.UUID:
		return jen.Qual(uuidPkg, "MustParse").Call(jen.Lit(t.String()))
	default:
		return jen.Lit(v)
	}
}

// seedRowValue resolves one property of one row: key and foreign key
// properties carry the row index, the rest go through the heuristic table.
func seedRowValue(e model.EntityModel, p model.PropertyModel, index int, prov Providers) any {
	_, isFK := e.ForeignKeyRelationship(p.Name)
	if p.IsKey || isFK {
		switch p.Type {
		case model.TypeLong:
			return int64(index)
		case model.TypeString:
			return fmt.Sprint(index)
		case model.TypeGuid:
			// Deterministic per index so referencing rows can repeat it.
			return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s-%d", p.Name, index)))
		default:
			return index
		}
	}
	return SeedValue(p, index, prov)
}

// seedRow builds the ordered field list of one seed row. Optional properties
// stay unset.
func seedRow(e model.EntityModel, index int, prov Providers) []jen.Code {
	out := make([]jen.Code, 0, len(e.Properties)+4)
	if !e.HasExplicitKey() {
		out = append(out, jen.Id(e.Key().Name).Op(":").Lit(index))
	}
	for _, p := range e.Properties {
		if p.Optional() {
			continue
		}
		v := seedRowValue(e, p, index, prov)
		if v == nil {
			continue
		}
		out = append(out, jen.Id(p.Name).Op(":").Add(seedLiteral(v)))
	}
	if e.HasAuditFields {
		out = append(out,
			jen.Id("CreatedAt").Op(":").Add(seedLiteral(prov.Now().AddDate(0, 0, -(30-index)))),
			jen.Id("CreatedBy").Op(":").Lit("System"),
		)
	}
	if e.HasSoftDelete {
		out = append(out, jen.Id("IsDeleted").Op(":").False())
	}
	return out
}

// RenderSeedData emits the Go seed routine: one Add per synthetic row, in
// topological entity order, committed in a single SaveChanges.
func RenderSeedData(all []model.EntityModel, cfg model.GenerationConfig, prov Providers) (model.GeneratedArtifact, error) {
	f := newFile(persistencePkg(cfg), "persistence", cfg, all)

	body := []jen.Code{}
	for _, e := range SeedOrder(all) {
		body = append(body, jen.Commentf("%s rows.", e.Name))
		for i := 1; i <= seedRowCount; i++ {
			body = append(body,
				jen.If(
					jen.Err().Op(":=").Id("store").Dot(Plural(e.Name)).Call().Dot("Add").Call(
						jen.Id("ctx"),
						jen.Op("&").Qual(entitiesPkg(cfg), e.Name).Values(seedRow(e, i, prov)...),
					),
					jen.Err().Op("!=").Nil(),
				).Block(jen.Return(jen.Err())),
			)
		}
	}
	body = append(body, jen.Return(jen.Id("store").Dot("SaveChanges").Call(jen.Id("ctx"))))

	f.Comment("Seed inserts the synthetic sample rows. Entities are seeded in")
	f.Comment("dependency order so foreign keys reference existing rows.")
	f.Func().Id("Seed").
		Params(
			jen.Id("ctx").Qual("context", "Context"),
			jen.Id("store").Qual(interfacesPkg(cfg), "ApplicationStore"),
		).
		Error().
		Block(body...)

	return renderFile(f, SeedDataPath, "", "seed-data")
}

// sqlTable returns the snake_case SQL table name for an entity.
func sqlTable(e model.EntityModel) string {
	return inflect.Underscore(TableName(e))
}

// sqlLiteral formats a synthetic value as a SQL literal for the provider.
func sqlLiteral(v any, provider model.DatabaseProvider) string {
	switch t := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(t, "'", "''") + "'"
	case bool:
		switch provider {
		case model.PostgreSQL, model.SQLite:
			if t {
				return "TRUE"
			}
			return "FALSE"
		default:
			if t {
				return "1"
			}
			return "0"
		}
	case time.Time:
		return "'" + t.Format("2006-01-02 15:04:05") + "'"
	case uuid.UUID:
		return "'" + t.String() + "'"
	case float32:
		return fmt.Sprintf("%g", t)
	case float64:
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprint(v)
	}
}

// RenderSeedScript emits the plain SQL variant of the seed rows, one INSERT
// per row, in the same topological order as the Go routine.
func RenderSeedScript(all []model.EntityModel, cfg model.GenerationConfig, prov Providers) model.GeneratedArtifact {
	var sb strings.Builder
	sb.WriteString("-- " + generatedHeader + "\n")

	for _, e := range SeedOrder(all) {
		cols := []string{}
		if !e.HasExplicitKey() {
			cols = append(cols, ColumnName(e.Key().Name))
		}
		props := []model.PropertyModel{}
		for _, p := range e.Properties {
			if p.Optional() {
				continue
			}
			cols = append(cols, ColumnName(p.Name))
			props = append(props, p)
		}
		if e.HasAuditFields {
			cols = append(cols, "created_at", "created_by")
		}
		if e.HasSoftDelete {
			cols = append(cols, "is_deleted")
		}

		sb.WriteString(fmt.Sprintf("\n-- %s\n", e.Name))
		for i := 1; i <= seedRowCount; i++ {
			vals := []string{}
			if !e.HasExplicitKey() {
				vals = append(vals, fmt.Sprint(i))
			}
			for _, p := range props {
				vals = append(vals, sqlLiteral(seedRowValue(e, p, i, prov), cfg.DatabaseProvider))
			}
			if e.HasAuditFields {
				vals = append(vals,
					sqlLiteral(prov.Now().AddDate(0, 0, -(30-i)), cfg.DatabaseProvider),
					"'System'",
				)
			}
			if e.HasSoftDelete {
				vals = append(vals, sqlLiteral(false, cfg.DatabaseProvider))
			}
			sb.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);\n",
				sqlTable(e), strings.Join(cols, ", "), strings.Join(vals, ", ")))
		}
	}

	return model.NewArtifact(SeedScriptPath, sb.String())
}
