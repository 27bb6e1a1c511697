package model

// Base is the projection of an Airtable base returned to callers.
type Base struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PermissionLevel string `json:"permissionLevel"`
}

// TableSummary is the projection of a table returned by the table listing.
type TableSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PrimaryFieldID string `json:"primaryFieldId"`
	FieldCount     int    `json:"fieldCount"`
}

// FieldDefinition describes one column of a table.
type FieldDefinition struct {
	Name    string        `json:"name"`
	Type    string        `json:"type"`
	Options *FieldOptions `json:"options,omitempty"`
}

type FieldOptions struct {
	Choices []SelectChoice `json:"choices,omitempty"`
}

type SelectChoice struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Upstream response schemas. These are decoded explicitly so that a success
// status with an unexpected body surfaces as a contract violation instead of
// a raw deserialization fault.

type ListBasesResponse struct {
	Bases []Base `json:"bases"`
}

type ListTablesResponse struct {
	Tables []UpstreamTable `json:"tables"`
}

// UpstreamTable is a table as Airtable returns it, field list included.
type UpstreamTable struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	PrimaryFieldID string            `json:"primaryFieldId"`
	Fields         []FieldDefinition `json:"fields"`
}

// Relay response envelopes.

type StatusResponse struct {
	Status    string   `json:"status"`
	Service   string   `json:"service"`
	Endpoints []string `json:"endpoints"`
	Timestamp string   `json:"timestamp"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	HasToken  bool   `json:"hasToken"`
	Timestamp string `json:"timestamp"`
}

type LogsResponse struct {
	Logs  []string `json:"logs"`
	Total int      `json:"total"`
}

type BasesResponse struct {
	Bases []Base `json:"bases"`
}

type TablesResponse struct {
	Tables []TableSummary `json:"tables"`
}

// CreatedTable echoes the values Airtable returned for a new table, not the
// request that produced it.
type CreatedTable struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Fields []FieldDefinition `json:"fields"`
}

type CreateTableResponse struct {
	Success bool         `json:"success"`
	Table   CreatedTable `json:"table"`
}

type TestSuccessResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	BasesFound int    `json:"basesFound"`
	Timestamp  string `json:"timestamp"`
}

type TestErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse for consistent error handling on the proxied routes.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
