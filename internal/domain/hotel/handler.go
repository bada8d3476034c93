package hotel

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hotelfinder/hotelfinder-api/internal/pkg/errorhandler"
	"github.com/hotelfinder/hotelfinder-api/internal/pkg/liteapi"
	"github.com/hotelfinder/hotelfinder-api/internal/pkg/response"
	"github.com/hotelfinder/hotelfinder-api/internal/pkg/validator"
)

// Handler handles hotel inventory HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new hotel handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search handles GET /hotels?countryCode=XX&cityName=YY
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	countryCode := r.URL.Query().Get("countryCode")
	cityName := r.URL.Query().Get("cityName")
	if countryCode == "" || cityName == "" {
		response.BadRequest(w, "countryCode and cityName are required")
		return
	}

	data, err := h.service.Search(r.Context(), countryCode, cityName)
	if err != nil {
		h.writeError(w, r, "/hotels", err)
		return
	}

	response.Raw(w, http.StatusOK, dataResponse{Data: data})
}

// Details handles GET /hotels/{id}
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "id")

	data, err := h.service.Details(r.Context(), hotelID)
	if err != nil {
		h.writeError(w, r, "/hotel", err)
		return
	}

	response.Raw(w, http.StatusOK, dataResponse{Data: data})
}

// Rates handles POST /hotels/rates
func (h *Handler) Rates(w http.ResponseWriter, r *http.Request) {
	var req RatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if err := validator.Struct(&req); err != nil {
		response.BadRequest(w, "hotelId, checkinDate, checkoutDate and occupancies are required")
		return
	}

	data, err := h.service.Rates(r.Context(), req.toProviderRequest())
	if err != nil {
		h.writeError(w, r, "/hotels/rates", err)
		return
	}

	response.Raw(w, http.StatusOK, dataResponse{Data: data})
}

// writeError maps provider failures onto the proxy response. Provider
// rejections pass through with their own status and message; transport
// failures become a 502.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	var perr *liteapi.ProviderError
	if errors.As(err, &perr) {
		response.Raw(w, perr.StatusCode, providerErrorResponse{
			Error: providerErrorInfo{Code: perr.StatusCode, Message: perr.Message},
		})
		return
	}

	errorhandler.LogExternalServiceError(r.Context(), "liteapi", endpoint, err)
	response.BadGateway(w, "Hotel inventory provider is unavailable")
}
