package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Verderen/MoneyHiver/internal/api/handlers"
	"github.com/Verderen/MoneyHiver/internal/testutil"
)

type recordingMailer struct {
	to       []string
	subjects []string
}

func (m *recordingMailer) Send(to, subject, _ string) error {
	m.to = append(m.to, to)
	m.subjects = append(m.subjects, subject)
	return nil
}

// TestAlertHandler_Subscribe tests the subscription endpoint.
func TestAlertHandler_Subscribe(t *testing.T) {
	t.Run("confirms the subscription", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAlertService(t, db, newStubQuoteService(), &recordingMailer{})
		handler := handlers.NewAlertHandler(svc)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/subscribe", map[string]interface{}{
			"email": "user@example.com",
			"asset": "BTC",
			"price": 70000,
		})
		rec := httptest.NewRecorder()
		handler.Subscribe(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var resp map[string]string
		testutil.DecodeJSON(t, rec, &resp)
		if !strings.Contains(resp["success"], "BTC") || !strings.Contains(resp["success"], "$70000.00") {
			t.Errorf("Unexpected confirmation %q", resp["success"])
		}
	})

	t.Run("rejects invalid payloads with 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAlertService(t, db, newStubQuoteService(), &recordingMailer{})
		handler := handlers.NewAlertHandler(svc)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/subscribe", map[string]interface{}{
			"email": "no-at-sign",
			"asset": "BTC",
			"price": 70000,
		})
		rec := httptest.NewRecorder()
		handler.Subscribe(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("responds 503 when alerting is disabled", func(t *testing.T) {
		handler := handlers.NewAlertHandler(nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/subscribe", map[string]interface{}{
			"email": "user@example.com",
			"asset": "BTC",
			"price": 70000,
		})
		rec := httptest.NewRecorder()
		handler.Subscribe(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected status 503, got %d", rec.Code)
		}
	})
}

// TestAlertHandler_Message tests the contact form endpoint.
func TestAlertHandler_Message(t *testing.T) {
	t.Run("relays to the admin address", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		mailer := &recordingMailer{}
		svc := testutil.NewTestAlertService(t, db, newStubQuoteService(), mailer)
		handler := handlers.NewAlertHandler(svc)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/message", map[string]interface{}{
			"name":    "Alice",
			"email":   "alice@example.com",
			"message": "Hello there",
		})
		rec := httptest.NewRecorder()
		handler.Message(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		if len(mailer.to) != 1 || mailer.to[0] != "admin@example.com" {
			t.Errorf("Expected one mail to admin@example.com, got %v", mailer.to)
		}
	})

	t.Run("rejects empty fields with 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAlertService(t, db, newStubQuoteService(), &recordingMailer{})
		handler := handlers.NewAlertHandler(svc)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/message", map[string]interface{}{
			"name": "Alice",
		})
		rec := httptest.NewRecorder()
		handler.Message(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}
