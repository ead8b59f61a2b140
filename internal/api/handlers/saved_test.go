package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Verderen/MoneyHiver/internal/api/handlers"
	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/model"
	"github.com/Verderen/MoneyHiver/internal/testutil"
)

type listResponse struct {
	Success      bool                       `json:"success"`
	Calculations []model.CalculationSummary `json:"calculations"`
	Error        string                     `json:"error"`
}

type detailsResponse struct {
	Success     bool                   `json:"success"`
	Calculation map[string]interface{} `json:"calculation"`
	Error       string                 `json:"error"`
}

type mutationResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// TestSavedCalculationHandler_List tests the history list endpoints.
//
// WHY: The dashboard keys every store response on the success flag, so
// lists must carry {success: true, calculations: [...]} even when empty.
func TestSavedCalculationHandler_List(t *testing.T) {
	t.Run("empty store lists successfully", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedCalculationHandler(testutil.NewTestCalculationService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/get_saved_pl", nil)
		rec := httptest.NewRecorder()
		handler.ListProfitLoss(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var resp listResponse
		testutil.DecodeJSON(t, rec, &resp)
		if !resp.Success {
			t.Error("Expected success to be true")
		}
		if len(resp.Calculations) != 0 {
			t.Errorf("Expected no calculations, got %d", len(resp.Calculations))
		}
	})

	t.Run("lists saved calculations newest first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedCalculationHandler(testutil.NewTestCalculationService(t, db))

		older := testutil.NewDividend().Build(t, db)
		newer := testutil.NewDividend().Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/get_saved_div", nil)
		rec := httptest.NewRecorder()
		handler.ListDividend(rec, req)

		var resp listResponse
		testutil.DecodeJSON(t, rec, &resp)
		if len(resp.Calculations) != 2 {
			t.Fatalf("Expected 2 calculations, got %d", len(resp.Calculations))
		}
		if resp.Calculations[0].CalculationID != newer.ID {
			t.Errorf("Expected newest first, got %s", resp.Calculations[0].CalculationID)
		}
		if resp.Calculations[1].CalculationID != older.ID {
			t.Errorf("Expected oldest last, got %s", resp.Calculations[1].CalculationID)
		}
	})

	t.Run("database failure responds with a stable message", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedCalculationHandler(testutil.NewTestCalculationService(t, db))
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/get_saved_pl", nil)
		rec := httptest.NewRecorder()
		handler.ListProfitLoss(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("Expected status 500, got %d", rec.Code)
		}

		var resp listResponse
		testutil.DecodeJSON(t, rec, &resp)
		if resp.Success {
			t.Error("Expected success to be false")
		}
		if resp.Error != apperrors.ErrFailedToRetrieveCalculations.Error() {
			t.Errorf("Expected stable error message, got %q", resp.Error)
		}
	})
}

// TestSavedCalculationHandler_Details tests the details endpoints.
func TestSavedCalculationHandler_Details(t *testing.T) {
	t.Run("returns the full saved row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedCalculationHandler(testutil.NewTestCalculationService(t, db))

		saved := testutil.NewProfitLoss().Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/get_pl_details", map[string]string{"id": saved.ID})
		rec := httptest.NewRecorder()
		handler.ProfitLossDetails(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var resp detailsResponse
		testutil.DecodeJSON(t, rec, &resp)
		if !resp.Success {
			t.Error("Expected success to be true")
		}
		if resp.Calculation["calculation_id"] != saved.ID {
			t.Errorf("Expected ID %s, got %v", saved.ID, resp.Calculation["calculation_id"])
		}
		if resp.Calculation["profit_loss"] != float64(20) {
			t.Errorf("Expected profit_loss 20, got %v", resp.Calculation["profit_loss"])
		}
	})

	t.Run("unknown ID responds 404 with success false", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedCalculationHandler(testutil.NewTestCalculationService(t, db))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/get_rrr_details", map[string]string{"id": testutil.MakeID()})
		rec := httptest.NewRecorder()
		handler.RiskRewardDetails(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("Expected status 404, got %d", rec.Code)
		}

		var resp mutationResponse
		testutil.DecodeJSON(t, rec, &resp)
		if resp.Success {
			t.Error("Expected success to be false")
		}
		if resp.Error == "" {
			t.Error("Expected an error message")
		}
	})

	t.Run("missing id responds 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedCalculationHandler(testutil.NewTestCalculationService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/get_div_details", nil)
		rec := httptest.NewRecorder()
		handler.DividendDetails(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}

// TestSavedCalculationHandler_Save tests the save endpoints.
func TestSavedCalculationHandler_Save(t *testing.T) {
	t.Run("computes and persists from submitted inputs", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedCalculationHandler(testutil.NewTestCalculationService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/save_pl", map[string]interface{}{
			"title":       "BTC spring long",
			"asset_type":  "crypto",
			"pair":        "BTCUSDT",
			"open_price":  100,
			"close_price": 110,
			"amount":      2,
		})
		rec := httptest.NewRecorder()
		handler.SaveProfitLoss(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var resp detailsResponse
		testutil.DecodeJSON(t, rec, &resp)
		if !resp.Success {
			t.Error("Expected success to be true")
		}
		if resp.Calculation["profit_loss"] != float64(20) {
			t.Errorf("Expected computed profit_loss 20, got %v", resp.Calculation["profit_loss"])
		}

		listReq := httptest.NewRequest(http.MethodGet, "/get_saved_pl", nil)
		listRec := httptest.NewRecorder()
		handler.ListProfitLoss(listRec, listReq)

		var list listResponse
		testutil.DecodeJSON(t, listRec, &list)
		if len(list.Calculations) != 1 {
			t.Fatalf("Expected 1 saved calculation, got %d", len(list.Calculations))
		}
		if list.Calculations[0].Title != "BTC spring long" {
			t.Errorf("Expected saved title, got %q", list.Calculations[0].Title)
		}
	})

	t.Run("missing title responds 400 without persisting", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedCalculationHandler(testutil.NewTestCalculationService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/save_rrr", map[string]interface{}{
			"open_price":     100,
			"take_profit":    120,
			"stop_loss":      90,
			"balance":        1000,
			"risk_per_trade": 2,
		})
		rec := httptest.NewRecorder()
		handler.SaveRiskReward(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", rec.Code)
		}

		listReq := httptest.NewRequest(http.MethodGet, "/get_saved_rrr", nil)
		listRec := httptest.NewRecorder()
		handler.ListRiskReward(listRec, listReq)

		var list listResponse
		testutil.DecodeJSON(t, listRec, &list)
		if len(list.Calculations) != 0 {
			t.Errorf("Expected nothing persisted, got %d", len(list.Calculations))
		}
	})
}

// TestSavedCalculationHandler_Delete tests the delete endpoints.
//
// WHY: A rejected delete must answer success false and leave the stored
// list exactly as it was.
func TestSavedCalculationHandler_Delete(t *testing.T) {
	t.Run("removes the targeted calculation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedCalculationHandler(testutil.NewTestCalculationService(t, db))

		saved := testutil.NewProfitLoss().Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/delete_pl", map[string]string{
			"calculation_id": saved.ID,
		})
		rec := httptest.NewRecorder()
		handler.DeleteProfitLoss(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var resp mutationResponse
		testutil.DecodeJSON(t, rec, &resp)
		if !resp.Success {
			t.Error("Expected success to be true")
		}
	})

	t.Run("rejected delete leaves the list unchanged", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedCalculationHandler(testutil.NewTestCalculationService(t, db))

		saved := testutil.NewDividend().Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/delete_div", map[string]string{
			"calculation_id": testutil.MakeID(),
		})
		rec := httptest.NewRecorder()
		handler.DeleteDividend(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("Expected status 404, got %d", rec.Code)
		}

		var resp mutationResponse
		testutil.DecodeJSON(t, rec, &resp)
		if resp.Success {
			t.Error("Expected success to be false")
		}

		listReq := httptest.NewRequest(http.MethodGet, "/get_saved_div", nil)
		listRec := httptest.NewRecorder()
		handler.ListDividend(listRec, listReq)

		var list listResponse
		testutil.DecodeJSON(t, listRec, &list)
		if len(list.Calculations) != 1 || list.Calculations[0].CalculationID != saved.ID {
			t.Errorf("Expected the saved calculation to remain, got %+v", list.Calculations)
		}
	})

	t.Run("malformed ID responds 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSavedCalculationHandler(testutil.NewTestCalculationService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/delete_rrr", map[string]string{
			"calculation_id": "not-a-uuid",
		})
		rec := httptest.NewRecorder()
		handler.DeleteRiskReward(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}
