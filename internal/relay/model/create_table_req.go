package model

import "strings"

// CreateTableRequest is the body of POST /bases/:baseId/tables.
type CreateTableRequest struct {
	Name   string            `json:"name" validate:"required"`
	Fields []FieldDefinition `json:"fields,omitempty"`
}

func (r *CreateTableRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// DefaultTableFields is the schema substituted when a caller supplies no
// fields: Name, Notes, a three-choice Status select and a system-generated
// Created timestamp, in that order.
func DefaultTableFields() []FieldDefinition {
	return []FieldDefinition{
		{Name: "Name", Type: "singleLineText"},
		{Name: "Notes", Type: "multilineText"},
		{
			Name: "Status",
			Type: "singleSelect",
			Options: &FieldOptions{
				Choices: []SelectChoice{
					{Name: "Active", Color: "green"},
					{Name: "Inactive", Color: "red"},
					{Name: "Pending", Color: "yellow"},
				},
			},
		},
		{Name: "Created", Type: "createdTime"},
	}
}
