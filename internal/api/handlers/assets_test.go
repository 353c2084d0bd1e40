package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/request"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/repository"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/testutil"
)

func setupAssetHandler(t *testing.T) (*AssetHandler, *repository.MemoryAssetRepository) {
	t.Helper()
	repo := repository.NewMemoryAssetRepository()
	return NewAssetHandler(testutil.NewTestAssetService(t, repo)), repo
}

func TestAssetHandler_Assets(t *testing.T) {
	t.Run("lists rows in insertion order", func(t *testing.T) {
		handler, repo := setupAssetHandler(t)
		testutil.SeedAssets(t, repo, testutil.DemoAssets())

		w := httptest.NewRecorder()
		handler.Assets(w, httptest.NewRequest(http.MethodGet, "/api/assets", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		rows := testutil.DecodeJSON[[]model.AssetValuation](t, w)
		if len(rows) != 5 {
			t.Fatalf("Expected 5 rows, got %d", len(rows))
		}
		if rows[0].Asset.Name != "OT-TX 2028" {
			t.Errorf("Expected first row OT-TX 2028, got %q", rows[0].Asset.Name)
		}
		if rows[0].CurrentValue != 1_050_000 || rows[0].Profit != 50_000 {
			t.Errorf("Unexpected figures %+v", rows[0])
		}
	})

	t.Run("filters by query", func(t *testing.T) {
		handler, repo := setupAssetHandler(t)
		testutil.SeedAssets(t, repo, testutil.DemoAssets())

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/assets", map[string]string{"q": "sonangol"})
		w := httptest.NewRecorder()
		handler.Assets(w, req)

		rows := testutil.DecodeJSON[[]model.AssetValuation](t, w)
		if len(rows) != 1 || rows[0].Asset.Name != "Sonangol 2027" {
			t.Errorf("Expected only Sonangol 2027, got %+v", rows)
		}
	})

	t.Run("empty collection is an empty array", func(t *testing.T) {
		handler, _ := setupAssetHandler(t)

		w := httptest.NewRecorder()
		handler.Assets(w, httptest.NewRequest(http.MethodGet, "/api/assets", nil))

		if strings.TrimSpace(w.Body.String()) != "[]" {
			t.Errorf("Expected [], got %s", w.Body.String())
		}
	})
}

func TestAssetHandler_GetAsset(t *testing.T) {
	t.Run("returns the asset", func(t *testing.T) {
		handler, repo := setupAssetHandler(t)
		asset := testutil.NewAsset().WithName("OT 2030").Build(t, repo)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/assets/"+asset.ID, map[string]string{"uuid": asset.ID})
		w := httptest.NewRecorder()
		handler.GetAsset(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		got := testutil.DecodeJSON[model.Asset](t, w)
		if got.Name != "OT 2030" {
			t.Errorf("Expected OT 2030, got %q", got.Name)
		}
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		handler, _ := setupAssetHandler(t)
		id := testutil.MakeID()

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/assets/"+id, map[string]string{"uuid": id})
		w := httptest.NewRecorder()
		handler.GetAsset(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestAssetHandler_CreateAsset(t *testing.T) {
	t.Run("creates with defaults", func(t *testing.T) {
		// Setup
		handler, repo := setupAssetHandler(t)
		body := request.AssetRequest{
			Name:           "OT-NR 2029",
			Type:           "TREASURY_BOND",
			Quantity:       4,
			InvestedAmount: 400_000,
			PurchaseDate:   "2024-06-01",
			InterestRate:   testutil.Float(17),
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assets", body, nil)
		w := httptest.NewRecorder()

		// Execute
		handler.CreateAsset(w, req)

		// Assert
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
		got := testutil.DecodeJSON[model.Asset](t, w)
		if got.ID == "" {
			t.Error("Expected an id")
		}
		if got.CurrentPrice != 100_000 {
			t.Errorf("Expected currentPrice 100000, got %v", got.CurrentPrice)
		}
		if n, _ := repo.Count(context.Background()); n != 1 {
			t.Errorf("Expected 1 stored asset, got %d", n)
		}
	})

	t.Run("invalid request is 400 and stores nothing", func(t *testing.T) {
		handler, repo := setupAssetHandler(t)
		body := request.AssetRequest{Name: " ", Type: "CRYPTO", Quantity: 0, InvestedAmount: -1}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assets", body, nil)
		w := httptest.NewRecorder()

		handler.CreateAsset(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
		if n, _ := repo.Count(context.Background()); n != 0 {
			t.Errorf("Expected nothing stored, got %d", n)
		}
	})

	t.Run("malformed JSON is 400", func(t *testing.T) {
		handler, _ := setupAssetHandler(t)
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assets", `{"name":`, nil)
		w := httptest.NewRecorder()

		handler.CreateAsset(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestAssetHandler_ReplaceAsset(t *testing.T) {
	t.Run("overwrites the record", func(t *testing.T) {
		handler, repo := setupAssetHandler(t)
		asset := testutil.NewAsset().Build(t, repo)
		body := request.AssetRequest{
			Name:           "Renamed",
			Type:           "EQUITY",
			Quantity:       10,
			InvestedAmount: 50_000,
			CurrentPrice:   testutil.Float(6_000),
			PurchaseDate:   "2024-01-15",
		}

		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/assets/"+asset.ID, body, map[string]string{"uuid": asset.ID})
		w := httptest.NewRecorder()
		handler.ReplaceAsset(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		stored, err := repo.Get(context.Background(), asset.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Name != "Renamed" || stored.Type != model.AssetTypeEquity {
			t.Errorf("Expected replaced record, got %+v", stored)
		}
		if stored.InterestRate != nil {
			t.Errorf("Expected omitted interestRate to be cleared, got %v", *stored.InterestRate)
		}
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		handler, _ := setupAssetHandler(t)
		id := testutil.MakeID()
		body := request.AssetRequest{Name: "X", Type: "EQUITY", Quantity: 1, InvestedAmount: 1}

		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/assets/"+id, body, map[string]string{"uuid": id})
		w := httptest.NewRecorder()
		handler.ReplaceAsset(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestAssetHandler_DeleteAsset(t *testing.T) {
	handler, repo := setupAssetHandler(t)
	asset := testutil.NewAsset().Build(t, repo)

	req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/assets/"+asset.ID, map[string]string{"uuid": asset.ID})
	w := httptest.NewRecorder()
	handler.DeleteAsset(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.DeleteAsset(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 on second delete, got %d", w.Code)
	}
}

func TestAssetHandler_CSV(t *testing.T) {
	t.Run("export is a CSV attachment", func(t *testing.T) {
		handler, repo := setupAssetHandler(t)
		testutil.SeedAssets(t, repo, testutil.DemoAssets())

		w := httptest.NewRecorder()
		handler.ExportCSV(w, httptest.NewRequest(http.MethodGet, "/api/assets/export", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Errorf("Expected text/csv, got %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "assets.csv") {
			t.Errorf("Expected attachment filename, got %q", cd)
		}
		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
		if len(lines) != 6 {
			t.Errorf("Expected header plus 5 rows, got %d lines", len(lines))
		}
	})

	t.Run("import appends the rows", func(t *testing.T) {
		handler, repo := setupAssetHandler(t)
		body := "id,name,type,quantity,investedAmount,currentPrice,purchaseDate,maturityDate,interestRate\n" +
			",OT 2031,TREASURY_BOND,2,200000,,2024-02-01,2031-02-01,15\n" +
			",BAI,Ações,100,250000,2600,2024-03-01,,\n"
		req := httptest.NewRequest(http.MethodPost, "/api/assets/import", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.ImportCSV(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
		resp := testutil.DecodeJSON[ImportResponse](t, w)
		if resp.Imported != 2 {
			t.Errorf("Expected 2 imported, got %d", resp.Imported)
		}
		if n, _ := repo.Count(context.Background()); n != 2 {
			t.Errorf("Expected 2 stored, got %d", n)
		}
	})

	t.Run("malformed CSV is 400", func(t *testing.T) {
		handler, repo := setupAssetHandler(t)
		body := "id,name,type,quantity,investedAmount,currentPrice,purchaseDate,maturityDate,interestRate\n" +
			",OT 2031,TREASURY_BOND,abc,200000,,2024-02-01,,\n"
		req := httptest.NewRequest(http.MethodPost, "/api/assets/import", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.ImportCSV(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
		if n, _ := repo.Count(context.Background()); n != 0 {
			t.Errorf("Expected nothing stored, got %d", n)
		}
	})
}
