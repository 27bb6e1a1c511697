package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"airtable-relay/internal/relay/model"
)

// DefaultBaseURL is the fixed root of the Airtable REST API.
const DefaultBaseURL = "https://api.airtable.com"

// AirtableClient is the HTTP client for the Airtable metadata API.
type AirtableClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// UpstreamError carries the status and error payload of a failed upstream
// call so handlers can relay the details verbatim.
type UpstreamError struct {
	StatusCode int
	Message    string
	// Body is the upstream error payload: a decoded JSON object when the
	// response was JSON, otherwise the raw body string.
	Body any
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// ContractError marks a 2xx upstream response whose body did not match the
// documented schema. It is distinct from a transport or status failure.
type ContractError struct {
	Endpoint string
	Err      error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("unexpected response shape from %s: %v", e.Endpoint, e.Err)
}

func (e *ContractError) Unwrap() error { return e.Err }

// CreateTableSpec is the table definition submitted upstream.
type CreateTableSpec struct {
	Name   string                  `json:"name"`
	Fields []model.FieldDefinition `json:"fields"`
}

// NewAirtableClient creates a client for the given API root. Pass
// DefaultBaseURL outside of tests.
func NewAirtableClient(baseURL, token string, timeout time.Duration) *AirtableClient {
	return &AirtableClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListBases fetches all bases visible to the credential.
func (c *AirtableClient) ListBases(ctx context.Context) ([]model.Base, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v0/meta/bases", nil)
	if err != nil {
		return nil, err
	}

	var result model.ListBasesResponse
	if err := c.do(req, "/v0/meta/bases", &result); err != nil {
		return nil, err
	}

	return result.Bases, nil
}

// ListTables fetches the tables of one base. The base ID is forwarded as
// given; Airtable rejects malformed identifiers itself.
func (c *AirtableClient) ListTables(ctx context.Context, baseID string) ([]model.UpstreamTable, error) {
	url := fmt.Sprintf("%s/v0/meta/bases/%s/tables", c.baseURL, baseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var result model.ListTablesResponse
	if err := c.do(req, "/v0/meta/bases/{baseId}/tables", &result); err != nil {
		return nil, err
	}

	return result.Tables, nil
}

// CreateTable submits a new table definition to a base and returns the
// table as Airtable recorded it.
func (c *AirtableClient) CreateTable(ctx context.Context, baseID string, spec CreateTableSpec) (*model.UpstreamTable, error) {
	body, err := json.Marshal(spec)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v0/meta/bases/%s/tables", c.baseURL, baseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var result model.UpstreamTable
	if err := c.do(req, "/v0/meta/bases/{baseId}/tables", &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// do executes one upstream request with auth headers attached and decodes a
// successful response into out. Non-2xx statuses become *UpstreamError with
// whatever error payload Airtable produced; undecodable success bodies
// become *ContractError.
func (c *AirtableClient) do(req *http.Request, endpoint string, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("airtable request to %s failed with status %d", endpoint, resp.StatusCode),
			Body:       decodeErrorBody(raw),
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &ContractError{Endpoint: endpoint, Err: err}
	}

	return nil
}

func decodeErrorBody(raw []byte) any {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err == nil {
		return payload
	}
	return string(raw)
}
