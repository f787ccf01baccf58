package gen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// lowerFirst lowercases the first rune of an exported name.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// propertyRules builds the validation statements for one property. A nil
// return means the property contributes no rules and is skipped entirely.
// For optional properties every rule is wrapped in a presence check.
func propertyRules(p model.PropertyModel, patterns map[string]string) []jen.Code {
	value := func() *jen.Statement {
		if p.Optional() {
			return jen.Parens(jen.Op("*").Id("cmd").Dot(p.Name))
		}
		return jen.Id("cmd").Dot(p.Name)
	}
	appendMsg := func(msg string) jen.Code {
		return jen.Id("errs").Op("=").Append(jen.Id("errs"), jen.Lit(msg))
	}

	// A required optional property means the pointer must be set; that rule
	// stays outside the presence wrapper built below.
	var requiredNil jen.Code
	if p.IsRequired && p.Optional() {
		requiredNil = jen.If(jen.Id("cmd").Dot(p.Name).Op("==").Nil()).Block(
			appendMsg(p.Name + " is required"),
		)
	}

	var rules []jen.Code
	if p.IsRequired && !p.Optional() {
		var cond *jen.Statement
		switch {
		case p.Type == model.TypeString:
			cond = value().Op("==").Lit("")
		case isNumeric(p.Type):
			cond = value().Op("==").Lit(0)
		case p.Type == model.TypeBool:
			cond = jen.Op("!").Add(value())
		case p.Type == model.TypeGuid:
			cond = value().Op("==").Qual(uuidPkg, "Nil")
		default: // DateTime, DateTimeOffset
			cond = value().Dot("IsZero").Call()
		}
		rules = append(rules, jen.If(cond).Block(appendMsg(p.Name+" is required")))
	}

	if p.Type == model.TypeString {
		if max := p.EffectiveMaxLength(); max > 0 {
			rules = append(rules, jen.If(jen.Len(value()).Op(">").Lit(max)).Block(
				appendMsg(fmt.Sprintf("%s must not exceed %d characters", p.Name, max)),
			))
		}
		if p.Constraints != nil {
			if p.Constraints.MinLength > 0 {
				rules = append(rules, jen.If(
					jen.Len(value()).Op("!=").Lit(0).Op("&&").Len(value()).Op("<").Lit(p.Constraints.MinLength),
				).Block(
					appendMsg(fmt.Sprintf("%s must be at least %d characters", p.Name, p.Constraints.MinLength)),
				))
			}
			if p.Constraints.RegexPattern != "" {
				varName := lowerFirst(p.Name) + "Pattern"
				patterns[varName] = p.Constraints.RegexPattern
				rules = append(rules, jen.If(
					value().Op("!=").Lit("").Op("&&").Op("!").Id(varName).Dot("MatchString").Call(value()),
				).Block(
					appendMsg(p.Name+" has an invalid format"),
				))
			}
		}
	}

	if isNumeric(p.Type) && p.Constraints != nil {
		if p.Constraints.MinValue != nil {
			rules = append(rules, jen.If(jen.Float64().Parens(value()).Op("<").Lit(*p.Constraints.MinValue)).Block(
				appendMsg(fmt.Sprintf("%s must be at least %v", p.Name, *p.Constraints.MinValue)),
			))
		}
		if p.Constraints.MaxValue != nil {
			rules = append(rules, jen.If(jen.Float64().Parens(value()).Op(">").Lit(*p.Constraints.MaxValue)).Block(
				appendMsg(fmt.Sprintf("%s must be at most %v", p.Name, *p.Constraints.MaxValue)),
			))
		}
	}

	if len(rules) == 0 && requiredNil == nil {
		return nil
	}
	if p.Optional() {
		var out []jen.Code
		if requiredNil != nil {
			out = append(out, requiredNil)
		}
		if len(rules) > 0 {
			out = append(out, jen.If(jen.Id("cmd").Dot(p.Name).Op("!=").Nil()).Block(rules...))
		}
		return out
	}
	return rules
}

// renderValidator emits a command validator: a presence rule for the key on
// update commands, one required rule per required property, length/pattern/
// range rules from constraints, and nothing at all for properties with no
// applicable rules.
func renderValidator(e model.EntityModel, cfg model.GenerationConfig, verb, relPath string) (model.GeneratedArtifact, error) {
	cmdName := verb + e.Name + "Command"
	name := cmdName + "Validator"
	f := newFile(commandPkg(cfg, e, verb), pkgOf(verb+e.Name), cfg, nil)

	patterns := make(map[string]string)
	var body []jen.Code
	if verb == "Update" {
		// Updates carry the route key in the body, so the key must be
		// non-zero; create commands have no key at all. Constraints on the
		// key property do not apply here, only presence.
		key := e.Key()
		body = append(body, propertyRules(model.PropertyModel{
			Name:       key.Name,
			Type:       key.Type,
			IsRequired: true,
		}, patterns)...)
	}
	for _, p := range nonKeyProperties(e) {
		body = append(body, propertyRules(p, patterns)...)
	}

	// Pattern variables first so MustCompile failures surface at init.
	for _, p := range nonKeyProperties(e) {
		varName := lowerFirst(p.Name) + "Pattern"
		if pattern, ok := patterns[varName]; ok {
			f.Var().Id(varName).Op("=").Qual("regexp", "MustCompile").Call(jen.Lit(pattern))
		}
	}

	f.Commentf("%s validates %s.", name, cmdName)
	f.Type().Id(name).Struct()

	full := []jen.Code{jen.Var().Id("errs").Index().String()}
	full = append(full, body...)
	full = append(full, jen.Return(jen.Id("errs")))

	f.Commentf("Validate returns one message per violated rule.")
	f.Func().Params(jen.Id(name)).Id("Validate").
		Params(jen.Id("cmd").Id(cmdName)).
		Index().String().
		Block(full...)

	return renderFile(f, relPath, e.Name, strings.ToLower(verb)+"-validator")
}

// RenderCreateValidator emits the validator for the create command.
func RenderCreateValidator(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	return renderValidator(e, cfg, "Create", CreateValidatorPath(e))
}

// RenderUpdateValidator emits the validator for the update command.
func RenderUpdateValidator(e model.EntityModel, cfg model.GenerationConfig) (model.GeneratedArtifact, error) {
	return renderValidator(e, cfg, "Update", UpdateValidatorPath(e))
}
