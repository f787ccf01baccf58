package gen

import (
	"fmt"
	"strings"

	"ariga.io/atlas/sql/schema"
	"github.com/go-openapi/inflect"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// The migration renderer builds a relational model with the atlas schema
// types, then walks it into one initial DDL script for the configured
// provider. Tables are emitted in seed order so inline foreign keys reference
// tables that already exist.

// columnSQLType maps a property to the provider's SQL type.
func columnSQLType(p model.PropertyModel, provider model.DatabaseProvider) string {
	switch p.Type {
	case model.TypeString:
		max := p.EffectiveMaxLength()
		switch provider {
		case model.SQLServer:
			if max > 0 {
				return fmt.Sprintf("NVARCHAR(%d)", max)
			}
			return "NVARCHAR(MAX)"
		case model.MySQL:
			if max > 0 {
				return fmt.Sprintf("VARCHAR(%d)", max)
			}
			return "TEXT"
		case model.PostgreSQL:
			if max > 0 {
				return fmt.Sprintf("VARCHAR(%d)", max)
			}
			return "TEXT"
		default:
			return "TEXT"
		}
	case model.TypeInt:
		switch provider {
		case model.SQLServer, model.MySQL:
			return "INT"
		default:
			return "INTEGER"
		}
	case model.TypeLong:
		if provider == model.SQLite {
			return "INTEGER"
		}
		return "BIGINT"
	case model.TypeDecimal:
		precision, scale := 18, 2
		if p.Constraints != nil && p.Constraints.Precision > 0 {
			precision, scale = p.Constraints.Precision, p.Constraints.Scale
		}
		if provider == model.SQLite {
			return "NUMERIC"
		}
		return fmt.Sprintf("DECIMAL(%d,%d)", precision, scale)
	case model.TypeDouble:
		switch provider {
		case model.SQLServer:
			return "FLOAT"
		case model.MySQL:
			return "DOUBLE"
		case model.PostgreSQL:
			return "DOUBLE PRECISION"
		default:
			return "REAL"
		}
	case model.TypeFloat:
		if provider == model.MySQL {
			return "FLOAT"
		}
		return "REAL"
	case model.TypeBool:
		switch provider {
		case model.SQLServer:
			return "BIT"
		case model.MySQL:
			return "TINYINT(1)"
		case model.PostgreSQL:
			return "BOOLEAN"
		default:
			return "INTEGER"
		}
	case model.TypeDateTime, model.TypeDateTimeOffset:
		switch provider {
		case model.SQLServer:
			return "DATETIME2"
		case model.MySQL:
			return "DATETIME"
		case model.PostgreSQL:
			if p.Type == model.TypeDateTimeOffset {
				return "TIMESTAMPTZ"
			}
			return "TIMESTAMP"
		default:
			return "TEXT"
		}
	case model.TypeGuid:
		switch provider {
		case model.SQLServer:
			return "UNIQUEIDENTIFIER"
		case model.MySQL:
			return "CHAR(36)"
		case model.PostgreSQL:
			return "UUID"
		default:
			return "TEXT"
		}
	default:
		return "TEXT"
	}
}

func quoteIdent(name string, provider model.DatabaseProvider) string {
	switch provider {
	case model.SQLServer:
		return "[" + name + "]"
	case model.MySQL:
		return "`" + name + "`"
	default:
		return `"` + name + `"`
	}
}

func deleteBehavior(behavior string) schema.ReferenceOption {
	switch behavior {
	case "Cascade":
		return schema.Cascade
	case "SetNull":
		return schema.SetNull
	case "Restrict":
		return schema.Restrict
	default:
		return schema.NoAction
	}
}

func newColumn(p model.PropertyModel, provider model.DatabaseProvider) *schema.Column {
	return &schema.Column{
		Name: ColumnName(p.Name),
		Type: &schema.ColumnType{
			Raw:  columnSQLType(p, provider),
			Null: p.IsNullable && !p.IsKey,
		},
	}
}

func fixedColumn(name, raw string, null bool) *schema.Column {
	return &schema.Column{
		Name: name,
		Type: &schema.ColumnType{Raw: raw, Null: null},
	}
}

// SchemaTables builds one atlas table per entity: key, property, audit and
// soft-delete columns, unique indexes from business keys and constraints,
// foreign keys from ManyToOne/OneToOne relationships, and one join table per
// distinct ManyToMany join table name.
func SchemaTables(all []model.EntityModel, cfg model.GenerationConfig) []*schema.Table {
	provider := cfg.DatabaseProvider
	ordered := SeedOrder(all)

	tables := make([]*schema.Table, 0, len(ordered))
	byEntity := make(map[string]*schema.Table, len(ordered))
	keyCols := make(map[string]*schema.Column, len(ordered))

	for _, e := range ordered {
		t := &schema.Table{Name: sqlTable(e)}

		if !e.HasExplicitKey() {
			c := newColumn(e.Key(), provider)
			t.Columns = append(t.Columns, c)
			keyCols[e.Name] = c
		}
		for _, p := range e.Properties {
			c := newColumn(p, provider)
			t.Columns = append(t.Columns, c)
			if p.IsKey {
				keyCols[e.Name] = c
			}
		}
		if e.HasAuditFields {
			dt := columnSQLType(model.PropertyModel{Type: model.TypeDateTime}, provider)
			txt := columnSQLType(model.PropertyModel{Type: model.TypeString, MaxLength: intPtr(100)}, provider)
			t.Columns = append(t.Columns,
				fixedColumn("created_at", dt, false),
				fixedColumn("created_by", txt, false),
				fixedColumn("updated_at", dt, true),
				fixedColumn("updated_by", txt, true),
			)
		}
		if e.HasSoftDelete {
			dt := columnSQLType(model.PropertyModel{Type: model.TypeDateTime}, provider)
			txt := columnSQLType(model.PropertyModel{Type: model.TypeString, MaxLength: intPtr(100)}, provider)
			bt := columnSQLType(model.PropertyModel{Type: model.TypeBool}, provider)
			t.Columns = append(t.Columns,
				fixedColumn("is_deleted", bt, false),
				fixedColumn("deleted_at", dt, true),
				fixedColumn("deleted_by", txt, true),
			)
		}

		t.PrimaryKey = &schema.Index{
			Table: t,
			Parts: []*schema.IndexPart{{C: keyCols[e.Name]}},
		}

		if len(e.BusinessKeys) > 0 {
			idx := &schema.Index{
				Name:   "IX_" + e.Name + "_" + strings.Join(e.BusinessKeys, "_") + "_BusinessKey",
				Unique: true,
				Table:  t,
			}
			for i, k := range e.BusinessKeys {
				if c := columnByName(t, ColumnName(k)); c != nil {
					idx.Parts = append(idx.Parts, &schema.IndexPart{SeqNo: i, C: c})
				}
			}
			if len(idx.Parts) > 0 {
				t.Indexes = append(t.Indexes, idx)
			}
		}
		for _, p := range e.Properties {
			if p.Constraints == nil || (!p.Constraints.IsUnique && !p.Constraints.IsIndexed) {
				continue
			}
			if c := columnByName(t, ColumnName(p.Name)); c != nil {
				t.Indexes = append(t.Indexes, &schema.Index{
					Name:   "IX_" + e.Name + "_" + p.Name,
					Unique: p.Constraints.IsUnique,
					Table:  t,
					Parts:  []*schema.IndexPart{{C: c}},
				})
			}
		}

		tables = append(tables, t)
		byEntity[e.Name] = t
	}

	// Foreign keys, now that every referenced table exists.
	for _, e := range ordered {
		t := byEntity[e.Name]
		for _, r := range e.Relationships {
			if !dependsOn(r) || r.ForeignKeyProperty == "" {
				continue
			}
			ref, ok := byEntity[r.RelatedEntity]
			if !ok {
				continue
			}
			col := columnByName(t, ColumnName(r.ForeignKeyProperty))
			if col == nil {
				continue
			}
			t.ForeignKeys = append(t.ForeignKeys, &schema.ForeignKey{
				Symbol:     "FK_" + e.Name + "_" + r.RelatedEntity + "_" + r.ForeignKeyProperty,
				Table:      t,
				Columns:    []*schema.Column{col},
				RefTable:   ref,
				RefColumns: []*schema.Column{keyCols[r.RelatedEntity]},
				OnDelete:   deleteBehavior(r.OnDeleteBehavior),
			})
		}
	}

	// Join tables, one per distinct name.
	seen := map[string]bool{}
	for _, e := range ordered {
		for _, r := range e.Relationships {
			if r.Type != model.ManyToMany || r.JoinTableName == "" || seen[r.JoinTableName] {
				continue
			}
			ref, ok := byEntity[r.RelatedEntity]
			if !ok {
				continue
			}
			seen[r.JoinTableName] = true
			own := byEntity[e.Name]
			keyType := columnSQLType(model.PropertyModel{Type: model.TypeInt}, provider)
			left := fixedColumn(ColumnName(e.Name)+"_id", keyType, false)
			right := fixedColumn(ColumnName(r.RelatedEntity)+"_id", keyType, false)
			jt := &schema.Table{
				Name:    inflect.Underscore(r.JoinTableName),
				Columns: []*schema.Column{left, right},
			}
			jt.PrimaryKey = &schema.Index{
				Table: jt,
				Parts: []*schema.IndexPart{{C: left}, {SeqNo: 1, C: right}},
			}
			jt.ForeignKeys = []*schema.ForeignKey{
				{
					Symbol:     "FK_" + r.JoinTableName + "_" + e.Name,
					Table:      jt,
					Columns:    []*schema.Column{left},
					RefTable:   own,
					RefColumns: []*schema.Column{keyCols[e.Name]},
					OnDelete:   schema.Cascade,
				},
				{
					Symbol:     "FK_" + r.JoinTableName + "_" + r.RelatedEntity,
					Table:      jt,
					Columns:    []*schema.Column{right},
					RefTable:   ref,
					RefColumns: []*schema.Column{keyCols[r.RelatedEntity]},
					OnDelete:   schema.Cascade,
				},
			}
			tables = append(tables, jt)
		}
	}

	return tables
}

func columnByName(t *schema.Table, name string) *schema.Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func intPtr(v int) *int { return &v }

// RenderMigration emits the initial migration script for the configured
// provider.
func RenderMigration(all []model.EntityModel, cfg model.GenerationConfig) model.GeneratedArtifact {
	provider := cfg.DatabaseProvider
	var sb strings.Builder
	sb.WriteString("-- " + generatedHeader + "\n")

	for _, t := range SchemaTables(all, cfg) {
		sb.WriteString("\nCREATE TABLE " + quoteIdent(t.Name, provider) + " (\n")
		lines := make([]string, 0, len(t.Columns)+1+len(t.ForeignKeys))
		for _, c := range t.Columns {
			line := "    " + quoteIdent(c.Name, provider) + " " + c.Type.Raw
			if !c.Type.Null {
				line += " NOT NULL"
			}
			lines = append(lines, line)
		}
		if pk := t.PrimaryKey; pk != nil && len(pk.Parts) > 0 {
			cols := make([]string, 0, len(pk.Parts))
			for _, part := range pk.Parts {
				cols = append(cols, quoteIdent(part.C.Name, provider))
			}
			lines = append(lines, "    PRIMARY KEY ("+strings.Join(cols, ", ")+")")
		}
		for _, fk := range t.ForeignKeys {
			lines = append(lines, fmt.Sprintf("    CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s) ON DELETE %s",
				quoteIdent(fk.Symbol, provider),
				quoteIdent(fk.Columns[0].Name, provider),
				quoteIdent(fk.RefTable.Name, provider),
				quoteIdent(fk.RefColumns[0].Name, provider),
				string(fk.OnDelete)))
		}
		sb.WriteString(strings.Join(lines, ",\n"))
		sb.WriteString("\n);\n")

		for _, idx := range t.Indexes {
			cols := make([]string, 0, len(idx.Parts))
			for _, part := range idx.Parts {
				cols = append(cols, quoteIdent(part.C.Name, provider))
			}
			stmt := "CREATE INDEX "
			if idx.Unique {
				stmt = "CREATE UNIQUE INDEX "
			}
			sb.WriteString(stmt + quoteIdent(idx.Name, provider) + " ON " +
				quoteIdent(t.Name, provider) + " (" + strings.Join(cols, ", ") + ");\n")
		}
	}

	return model.NewArtifact(MigrationPath, sb.String())
}
