package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hotelfinder/hotelfinder-api/internal/middleware"
	"github.com/hotelfinder/hotelfinder-api/internal/pkg/errorhandler"
	"github.com/hotelfinder/hotelfinder-api/internal/pkg/response"
	"github.com/hotelfinder/hotelfinder-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new booking handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /bookings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Raw(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		h.writeError(w, r, err, "Failed to create booking")
		return
	}

	created, err := h.service.Create(r.Context(), draft)
	if err != nil {
		h.writeError(w, r, err, "Failed to create booking")
		return
	}

	response.Raw(w, http.StatusCreated, createResponse{
		Success: true,
		Booking: created.ToResponse(),
		Message: "Booking created successfully",
	})
}

// List handles GET /bookings
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Failed to fetch bookings")
		return
	}

	response.Raw(w, http.StatusOK, listResponse{
		Success:  true,
		Count:    len(bookings),
		Bookings: toResponses(bookings),
	})
}

// ListMine handles GET /bookings/my for the authenticated guest.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if email == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	bookings, err := h.service.ListByGuest(r.Context(), email)
	if err != nil {
		h.writeError(w, r, err, "Failed to fetch bookings")
		return
	}

	response.Raw(w, http.StatusOK, listResponse{
		Success:  true,
		Count:    len(bookings),
		Bookings: toResponses(bookings),
	})
}

// GetByID handles GET /bookings/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Raw(w, http.StatusBadRequest, errorResponse{Error: "Invalid booking ID"})
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "Failed to fetch booking")
		return
	}

	response.Raw(w, http.StatusOK, getResponse{Success: true, Booking: b.ToResponse()})
}

// CheckAvailability handles POST /bookings/check-availability
func (h *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Raw(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}

	if err := validator.Struct(&req); err != nil {
		response.Raw(w, http.StatusBadRequest, errorResponse{
			Error: "Missing required fields: hotelId, roomId, checkinDate, checkoutDate",
		})
		return
	}

	roomID, err := req.RoomID.Int()
	if err != nil {
		response.Raw(w, http.StatusBadRequest, errorResponse{Error: "roomId must be an integer"})
		return
	}
	checkin, err := ParseDate(req.CheckinDate)
	if err != nil {
		response.Raw(w, http.StatusBadRequest, errorResponse{Error: "checkinDate must be a YYYY-MM-DD date"})
		return
	}
	checkout, err := ParseDate(req.CheckoutDate)
	if err != nil {
		response.Raw(w, http.StatusBadRequest, errorResponse{Error: "checkoutDate must be a YYYY-MM-DD date"})
		return
	}

	result, err := h.service.CheckAvailability(r.Context(), req.HotelID, roomID, checkin, checkout)
	if err != nil {
		h.writeError(w, r, err, "Failed to check availability")
		return
	}

	if result.Available {
		response.Raw(w, http.StatusOK, availabilityResponse{
			Success:   true,
			Available: true,
			Message:   "Room is available for the selected dates",
		})
		return
	}

	next := result.NextAvailable
	response.Raw(w, http.StatusOK, availabilityResponse{
		Success:             true,
		Available:           false,
		ConflictingBookings: toResponses(result.Conflicts),
		NextAvailableDate:   &next,
	})
}

// writeError translates domain errors into the route's wire format.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var verr *ValidationError
	var cerr *ConflictError

	switch {
	case errors.As(err, &verr):
		response.Raw(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
	case errors.As(err, &cerr):
		next := cerr.NextAvailable
		response.Raw(w, http.StatusConflict, errorResponse{
			Error:               "Room is already booked for the selected dates",
			ConflictingBookings: toResponses(cerr.Conflicts),
			NextAvailableDate:   &next,
		})
	case errors.Is(err, ErrNotFound):
		response.Raw(w, http.StatusNotFound, errorResponse{Error: "Booking not found"})
	default:
		errorhandler.LogStorageError(r.Context(), "booking", err)
		response.Raw(w, http.StatusInternalServerError, errorResponse{Error: fallback})
	}
}
