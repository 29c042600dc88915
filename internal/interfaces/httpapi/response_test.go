package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/league-simulator/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "1.0" {
		t.Fatalf("expected apiVersion=1.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
	items, ok := errorObj["errors"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one error item, got %v", errorObj["errors"])
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		httpStatus int
		status     string
	}{
		{name: "invalid input", err: usecase.ErrInvalidInput, httpStatus: http.StatusBadRequest, status: "INVALID_ARGUMENT"},
		{name: "attribute range", err: usecase.ErrAttributeRange, httpStatus: http.StatusBadRequest, status: "INVALID_ARGUMENT"},
		{name: "not found", err: usecase.ErrNotFound, httpStatus: http.StatusNotFound, status: "NOT_FOUND"},
		{name: "season state", err: usecase.ErrInvalidSeasonState, httpStatus: http.StatusConflict, status: "FAILED_PRECONDITION"},
		{name: "insufficient roster", err: usecase.ErrInsufficientRoster, httpStatus: http.StatusUnprocessableEntity, status: "FAILED_PRECONDITION"},
		{name: "unknown", err: fmt.Errorf("boom"), httpStatus: http.StatusInternalServerError, status: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapError(fmt.Errorf("wrapped: %w", tt.err))
			if mapped.HTTPStatus != tt.httpStatus {
				t.Fatalf("unexpected http status: got=%d want=%d", mapped.HTTPStatus, tt.httpStatus)
			}
			if mapped.Status != tt.status {
				t.Fatalf("unexpected status: got=%s want=%s", mapped.Status, tt.status)
			}
		})
	}
}
