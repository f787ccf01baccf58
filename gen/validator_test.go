package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlvinJerry/MyCodegent/model"
)

func TestValidatorRequiredRulePerRequiredProperty(t *testing.T) {
	a, err := RenderCreateValidator(productEntity(), model.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(a.Content, `"Name is required"`))
	assert.Equal(t, 1, strings.Count(a.Content, `"Price is required"`))
	assert.Contains(t, a.Content, "must not exceed 200 characters")
}

func TestUpdateValidatorRequiresKey(t *testing.T) {
	create, err := RenderCreateValidator(productEntity(), model.DefaultConfig())
	require.NoError(t, err)
	update, err := RenderUpdateValidator(productEntity(), model.DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, update.Content, "cmd.Id == 0")
	assert.Equal(t, 1, strings.Count(update.Content, `"Id is required"`))
	assert.NotContains(t, create.Content, `"Id is required"`, "create commands carry no key")
}

func TestUpdateValidatorGuidKey(t *testing.T) {
	e := model.EntityModel{
		Name: "Session",
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeGuid, IsKey: true},
			{Name: "Token", Type: model.TypeString, IsRequired: true},
		},
	}
	a, err := RenderUpdateValidator(e, model.DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, a.Content, "cmd.Id == uuid.Nil")
	assert.Contains(t, a.Content, `"Id is required"`)
}

func TestValidatorSkipsRulelessProperties(t *testing.T) {
	e := model.EntityModel{
		Name: "Widget",
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeInt, IsKey: true},
			{Name: "Label", Type: model.TypeString, IsRequired: true},
			{Name: "Archived", Type: model.TypeBool},
		},
	}
	a, err := RenderCreateValidator(e, model.DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, a.Content, "Label is required")
	assert.NotContains(t, a.Content, "Archived", "properties with no rules are skipped entirely")
}

func TestValidatorOptionalRulesGatedOnPresence(t *testing.T) {
	e := model.EntityModel{
		Name: "Profile",
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeInt, IsKey: true},
			{Name: "Bio", Type: model.TypeString, IsNullable: true, MaxLength: intp(500)},
		},
	}
	a, err := RenderCreateValidator(e, model.DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, a.Content, "cmd.Bio != nil", "optional rules apply only when the value is present")
	assert.Contains(t, a.Content, "must not exceed 500 characters")
}

func TestValidatorRequiredNullableProperty(t *testing.T) {
	e := model.EntityModel{
		Name: "Profile",
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeInt, IsKey: true},
			{Name: "Handle", Type: model.TypeString, IsRequired: true, IsNullable: true},
		},
	}
	a, err := RenderCreateValidator(e, model.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(a.Content, `"Handle is required"`))
	assert.Contains(t, a.Content, "cmd.Handle == nil")
}

func TestValidatorConstraintRules(t *testing.T) {
	minVal := 0.01
	e := model.EntityModel{
		Name: "Listing",
		Properties: []model.PropertyModel{
			{Name: "Id", Type: model.TypeInt, IsKey: true},
			{
				Name: "Slug", Type: model.TypeString, IsRequired: true,
				Constraints: &model.PropertyConstraints{MinLength: 3, MaxLength: 40, RegexPattern: `^[a-z0-9-]+$`},
			},
			{
				Name: "Price", Type: model.TypeDecimal, IsRequired: true,
				Constraints: &model.PropertyConstraints{MinValue: &minVal},
			},
		},
	}
	a, err := RenderUpdateValidator(e, model.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "Application/Listings/Commands/UpdateListing/UpdateListingCommandValidator.go", a.RelativePath)
	assert.Contains(t, a.Content, "must be at least 3 characters")
	assert.Contains(t, a.Content, "must not exceed 40 characters")
	assert.Contains(t, a.Content, "slugPattern")
	assert.Contains(t, a.Content, "regexp.MustCompile")
	assert.Contains(t, a.Content, "must be at least 0.01")
}
