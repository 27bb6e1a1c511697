package handler

import (
	"net/http"
	"time"

	"airtable-relay/internal/relay/config"
	"airtable-relay/internal/relay/model"
	"airtable-relay/internal/relay/service"

	"github.com/labstack/echo/v4"
)

const serviceName = "airtable-relay"

// logReturnLimit caps how many entries GET /logs returns.
const logReturnLimit = 50

type RelayHandler struct {
	Service service.RelayService
	Config  *config.Config
}

func NewRelayHandler(s service.RelayService, cfg *config.Config) *RelayHandler {
	return &RelayHandler{Service: s, Config: cfg}
}

// GetStatus handles GET /
func (h *RelayHandler) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, model.StatusResponse{
		Status:  "ok",
		Service: serviceName,
		Endpoints: []string{
			"GET /",
			"GET /health",
			"GET /logs",
			"GET /bases",
			"GET /bases/:baseId/tables",
			"POST /bases/:baseId/tables",
			"POST /test",
			"GET /metrics",
		},
		Timestamp: timestamp(),
	})
}

// GetHealth handles GET /health. Healthy iff a credential is configured;
// no upstream call is made.
func (h *RelayHandler) GetHealth(c echo.Context) error {
	if !h.Config.HasToken() {
		return c.JSON(http.StatusInternalServerError, model.HealthResponse{
			Status:    "unhealthy",
			HasToken:  false,
			Timestamp: timestamp(),
		})
	}
	return c.JSON(http.StatusOK, model.HealthResponse{
		Status:    "healthy",
		HasToken:  true,
		Timestamp: timestamp(),
	})
}

// GetLogs handles GET /logs
func (h *RelayHandler) GetLogs(c echo.Context) error {
	logs, total := h.Service.RecentLogs(logReturnLimit)
	return c.JSON(http.StatusOK, model.LogsResponse{Logs: logs, Total: total})
}

// GetBases handles GET /bases
func (h *RelayHandler) GetBases(c echo.Context) error {
	bases, err := h.Service.ListBases(c.Request().Context())
	if err != nil {
		code, body := relayError("Failed to fetch bases", err)
		return c.JSON(code, body)
	}
	if bases == nil {
		bases = []model.Base{}
	}
	return c.JSON(http.StatusOK, model.BasesResponse{Bases: bases})
}

// GetTables handles GET /bases/:baseId/tables
func (h *RelayHandler) GetTables(c echo.Context) error {
	baseID := c.Param("baseId")

	tables, err := h.Service.ListTables(c.Request().Context(), baseID)
	if err != nil {
		code, body := relayError("Failed to fetch tables", err)
		return c.JSON(code, body)
	}
	if tables == nil {
		tables = []model.TableSummary{}
	}
	return c.JSON(http.StatusOK, model.TablesResponse{Tables: tables})
}

// PostTable handles POST /bases/:baseId/tables
func (h *RelayHandler) PostTable(c echo.Context) error {
	baseID := c.Param("baseId")

	var req model.CreateTableRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body", Details: err.Error(),
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Table name is required", Details: err.Error(),
		})
	}

	table, err := h.Service.CreateTable(c.Request().Context(), baseID, req)
	if err != nil {
		code, body := relayError("Failed to create table", err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.CreateTableResponse{Success: true, Table: *table})
}

// PostTest handles POST /test. Probes the base listing without returning it.
func (h *RelayHandler) PostTest(c echo.Context) error {
	count, err := h.Service.TestConnection(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, model.TestErrorResponse{
			Success:   false,
			Error:     err.Error(),
			Timestamp: timestamp(),
		})
	}

	return c.JSON(http.StatusOK, model.TestSuccessResponse{
		Success:    true,
		Message:    "Airtable connection successful",
		BasesFound: count,
		Timestamp:  timestamp(),
	})
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
