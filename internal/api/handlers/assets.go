package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/request"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/response"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/apperrors"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/service"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/validation"
)

// AssetHandler handles asset-related HTTP requests.
// It serves the asset table, the add-asset form and CSV import/export.
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler with the provided service dependency.
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// ImportResponse reports how many assets a CSV import added.
type ImportResponse struct {
	Imported int           `json:"imported"`
	Assets   []model.Asset `json:"assets"`
}

// Assets handles GET requests to list assets with their derived figures.
// Rows keep insertion order.
//
// Endpoint: GET /api/assets
// Query Parameters:
//   - q: optional case-insensitive match on name or type label
//
// Response: 200 OK with array of AssetValuation
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetHandler) Assets(w http.ResponseWriter, r *http.Request) {
	filter := model.AssetFilter{Query: r.URL.Query().Get("q")}

	rows, err := h.assetService.Rows(r.Context(), filter)
	if err != nil {
		respondInternal(w, r, apperrors.ErrFailedToRetrieveAssets.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, rows)
}

// GetAsset handles GET requests to retrieve a single asset.
//
// Endpoint: GET /api/assets/{uuid}
// Response: 200 OK with Asset
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	asset, err := h.assetService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		respondInternal(w, r, apperrors.ErrFailedToRetrieveAssets.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, asset)
}

// CreateAsset handles POST requests to add an asset.
//
// Endpoint: POST /api/assets
// Request Body: AssetRequest
// Response: 201 Created with Asset
// Error: 400 Bad Request if validation fails
// Error: 500 Internal Server Error if the asset cannot be stored
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AssetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateAssetRequest(req); err != nil {
		respondValidation(w, err)
		return
	}

	asset, err := h.assetService.Create(r.Context(), req)
	if err != nil {
		respondInternal(w, r, apperrors.ErrFailedToStoreAsset.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, asset)
}

// ReplaceAsset handles PUT requests to overwrite an asset.
// Omitted optional fields are defaulted as on create.
//
// Endpoint: PUT /api/assets/{uuid}
// Request Body: AssetRequest
// Response: 200 OK with Asset
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if the update fails
func (h *AssetHandler) ReplaceAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.AssetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateAssetRequest(req); err != nil {
		respondValidation(w, err)
		return
	}

	asset, err := h.assetService.Replace(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		respondInternal(w, r, apperrors.ErrFailedToStoreAsset.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, asset)
}

// DeleteAsset handles DELETE requests to remove an asset.
//
// Endpoint: DELETE /api/assets/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if asset not found
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	if err := h.assetService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		respondInternal(w, r, "failed to delete asset", err)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ExportCSV streams every asset as a CSV attachment.
//
// Endpoint: GET /api/assets/export
// Response: 200 OK with text/csv body
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.assetService.ExportCSV(r.Context(), &buf); err != nil {
		respondInternal(w, r, apperrors.ErrFailedToRetrieveAssets.Error(), err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="assets.csv"`)
	response.RespondBytes(w, http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ImportCSV appends the assets in the CSV request body.
// Rows follow the same rules as CreateAsset. The file is rejected as a whole
// if any row is invalid, and nothing is kept if storing fails part way.
//
// Endpoint: POST /api/assets/import
// Request Body: text/csv in the export format
// Response: 201 Created with ImportResponse
// Error: 400 Bad Request if the CSV is malformed or a row is invalid
// Error: 500 Internal Server Error if storing fails
func (h *AssetHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	imported, err := h.assetService.ImportCSV(r.Context(), io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCSV) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCSV.Error(), err.Error())
			return
		}
		respondInternal(w, r, apperrors.ErrFailedToStoreAsset.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, ImportResponse{Imported: len(imported), Assets: imported})
}
