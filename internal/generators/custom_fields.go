package generators

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/utils"
)

// fieldDefinition describes one workspace custom field; options apply to
// enum fields only.
type fieldDefinition struct {
	name      string
	fieldType models.FieldType
	options   []string
}

var fieldDefinitions = []fieldDefinition{
	{"Priority Level", models.FieldTypeEnum, []string{"P0 - Critical", "P1 - High", "P2 - Medium", "P3 - Low"}},
	{"Story Points", models.FieldTypeNumber, nil},
	{"Sprint", models.FieldTypeEnum, []string{"Sprint 1", "Sprint 2", "Sprint 3", "Sprint 4", "Backlog"}},
	{"Effort Estimate", models.FieldTypeEnum, []string{"XS", "S", "M", "L", "XL"}},
	{"Due Quarter", models.FieldTypeEnum, []string{"Q1", "Q2", "Q3", "Q4"}},
	{"External Link", models.FieldTypeText, nil},
}

// storyPoints is the Fibonacci scale for "Points" style number fields.
var storyPoints = []string{"1", "2", "3", "5", "8", "13"}

const maxFieldsPerTask = 3

// CustomFieldGenerator produces field definitions and per-task values.
type CustomFieldGenerator struct {
	env *Env
}

func NewCustomFieldGenerator(env *Env) *CustomFieldGenerator {
	return &CustomFieldGenerator{env: env}
}

// Definitions creates the organization's fixed custom field catalog. Enum
// options are stored JSON-encoded.
func (g *CustomFieldGenerator) Definitions(org *models.Organization) []models.CustomFieldDefinition {
	if org == nil {
		return nil
	}

	r := g.env.Rand
	fields := make([]models.CustomFieldDefinition, 0, len(fieldDefinitions))
	for _, def := range fieldDefinitions {
		field := models.CustomFieldDefinition{
			ID:             utils.NewID(r),
			OrganizationID: org.ID,
			Name:           def.name,
			FieldType:      def.fieldType,
		}
		if def.options != nil {
			encoded, _ := json.Marshal(def.options)
			options := string(encoded)
			field.EnumOptions = &options
		}
		fields = append(fields, field)
	}
	return fields
}

// Values fills the configured share of tasks with values for 1..3 distinct
// fields drawn without replacement.
func (g *CustomFieldGenerator) Values(tasks []models.Task, fields []models.CustomFieldDefinition, ratio float64) []models.CustomFieldValue {
	if len(tasks) == 0 || len(fields) == 0 {
		return nil
	}

	r := g.env.Rand
	var values []models.CustomFieldValue

	for _, task := range tasks {
		if r.Float64() > ratio {
			continue
		}

		count := 1 + r.Intn(maxFieldsPerTask)
		if count > len(fields) {
			count = len(fields)
		}

		for _, idx := range r.Perm(len(fields))[:count] {
			values = append(values, models.CustomFieldValue{
				ID:      utils.NewID(r),
				FieldID: fields[idx].ID,
				TaskID:  task.ID,
				Value:   g.fieldValue(&fields[idx]),
			})
		}
	}
	return values
}

// fieldValue draws a value consistent with the field's type: enum fields
// pick one of their options, number fields draw story points or 1..100,
// text fields mint an external link.
func (g *CustomFieldGenerator) fieldValue(field *models.CustomFieldDefinition) string {
	r := g.env.Rand
	switch field.FieldType {
	case models.FieldTypeEnum:
		options := field.Options()
		if len(options) == 0 {
			return ""
		}
		return options[r.Intn(len(options))]
	case models.FieldTypeNumber:
		if strings.Contains(field.Name, "Points") {
			return storyPoints[r.Intn(len(storyPoints))]
		}
		return strconv.Itoa(1 + r.Intn(100))
	case models.FieldTypeText:
		return "https://example.com/" + utils.HexToken(r, 4)
	default:
		return ""
	}
}
