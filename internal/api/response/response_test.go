package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Verderen/MoneyHiver/internal/api/response"
)

// TestRespondJSON tests the shared JSON writer.
//
// WHY: Every handler routes its body through RespondJSON, so the header
// and status handling here define the wire behavior of the whole API.
func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.RespondJSON(rec, http.StatusCreated, map[string]string{"name": "BTC"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected application/json content type, got %q", got)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["name"] != "BTC" {
		t.Errorf("Expected name BTC, got %q", body["name"])
	}
}

// TestRespondError tests the standard error shape.
//
// WHY: Handlers rely on omitted details marshaling to a bare {"error": ...}
// object, which is the error contract the dashboard client parses.
func TestRespondError(t *testing.T) {
	t.Run("without details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		response.RespondError(rec, http.StatusBadRequest, "invalid request body", nil)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", rec.Code)
		}

		var body map[string]json.RawMessage
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if string(body["error"]) != `"invalid request body"` {
			t.Errorf("Expected error message, got %s", body["error"])
		}
		if _, ok := body["details"]; ok {
			t.Error("Expected details to be omitted when nil")
		}
	})

	t.Run("with details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		response.RespondError(rec, http.StatusBadRequest, "validation failed", map[string]string{
			"title": "is required",
		})

		var body struct {
			Error   string            `json:"error"`
			Details map[string]string `json:"details"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if body.Details["title"] != "is required" {
			t.Errorf("Expected title detail, got %q", body.Details["title"])
		}
	})
}
