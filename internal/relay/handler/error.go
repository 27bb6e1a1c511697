package handler

import (
	"errors"
	"net/http"

	"airtable-relay/internal/relay/client"
	"airtable-relay/internal/relay/model"
	"airtable-relay/internal/relay/service"
)

// relayError maps a relay failure to HTTP status and body. The message is
// the relay's own; details carry whatever the upstream call produced.
func relayError(message string, err error) (int, model.ErrorResponse) {
	if errors.Is(err, service.ErrNameRequired) {
		return http.StatusBadRequest, model.ErrorResponse{
			Error: "Table name is required",
		}
	}

	var upErr *client.UpstreamError
	if errors.As(err, &upErr) {
		return http.StatusInternalServerError, model.ErrorResponse{
			Error:   message,
			Details: upErr.Body,
		}
	}

	var contractErr *client.ContractError
	if errors.As(err, &contractErr) {
		return http.StatusInternalServerError, model.ErrorResponse{
			Error:   message,
			Details: contractErr.Error(),
		}
	}

	// Network-level or unexpected failure.
	return http.StatusInternalServerError, model.ErrorResponse{
		Error:   message,
		Details: err.Error(),
	}
}
