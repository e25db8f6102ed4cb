package models

import "encoding/json"

type FieldType string

const (
	FieldTypeEnum   FieldType = "enum"
	FieldTypeNumber FieldType = "number"
	FieldTypeText   FieldType = "text"
)

type CustomFieldDefinition struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrganizationID string    `gorm:"type:varchar(36);not null;index" json:"organization_id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	FieldType      FieldType `gorm:"type:varchar(20);not null" json:"field_type"`
	// EnumOptions is a JSON-encoded string array, set only for enum fields.
	EnumOptions *string `gorm:"type:text" json:"enum_options"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

// Options decodes the enum option list. It returns nil for non-enum fields
// or undecodable payloads.
func (d *CustomFieldDefinition) Options() []string {
	if d.FieldType != FieldTypeEnum || d.EnumOptions == nil {
		return nil
	}
	var options []string
	if err := json.Unmarshal([]byte(*d.EnumOptions), &options); err != nil {
		return nil
	}
	return options
}

type CustomFieldValue struct {
	ID      string `gorm:"type:varchar(36);primaryKey" json:"id"`
	FieldID string `gorm:"type:varchar(36);not null;index" json:"field_id"`
	TaskID  string `gorm:"type:varchar(36);not null;index" json:"task_id"`
	Value   string `gorm:"type:text;not null" json:"value"`

	// Relations
	Field CustomFieldDefinition `gorm:"foreignKey:FieldID" json:"field,omitempty"`
	Task  Task                  `gorm:"foreignKey:TaskID" json:"-"`
}
