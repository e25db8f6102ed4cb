package models

// TableInfo pairs a table name with the model that defines it.
type TableInfo struct {
	Name  string
	Model interface{}
}

// Tables lists every generated table in pipeline stage order. Migration,
// the run summary and the inspector all iterate this list so they stay in
// sync with the data model.
func Tables() []TableInfo {
	return []TableInfo{
		{Name: "organizations", Model: &Organization{}},
		{Name: "users", Model: &User{}},
		{Name: "teams", Model: &Team{}},
		{Name: "team_memberships", Model: &TeamMembership{}},
		{Name: "projects", Model: &Project{}},
		{Name: "sections", Model: &Section{}},
		{Name: "tags", Model: &Tag{}},
		{Name: "custom_field_definitions", Model: &CustomFieldDefinition{}},
		{Name: "tasks", Model: &Task{}},
		{Name: "subtasks", Model: &Subtask{}},
		{Name: "task_tags", Model: &TaskTag{}},
		{Name: "custom_field_values", Model: &CustomFieldValue{}},
		{Name: "comments", Model: &Comment{}},
		{Name: "attachments", Model: &Attachment{}},
	}
}
