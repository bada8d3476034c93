package hotel

import (
	"encoding/json"

	"github.com/hotelfinder/hotelfinder-api/internal/pkg/liteapi"
)

// RatesRequest for POST /hotels/rates.
type RatesRequest struct {
	HotelID      string             `json:"hotelId" validate:"required"`
	CheckinDate  string             `json:"checkinDate" validate:"required"`
	CheckoutDate string             `json:"checkoutDate" validate:"required"`
	Occupancies  []liteapi.Occupancy `json:"occupancies" validate:"required,min=1"`
}

// toProviderRequest maps the API request onto the provider payload.
// Currency and nationality follow what the booking flow quotes in.
func (r *RatesRequest) toProviderRequest() liteapi.RatesRequest {
	return liteapi.RatesRequest{
		HotelIDs:         []string{r.HotelID},
		Checkin:          r.CheckinDate,
		Checkout:         r.CheckoutDate,
		Occupancies:      r.Occupancies,
		Currency:         "USD",
		GuestNationality: "US",
		MappedRoomID:     true,
	}
}

// dataResponse wraps a provider payload in the envelope the front end
// already consumes.
type dataResponse struct {
	Data json.RawMessage `json:"data"`
}

type providerErrorResponse struct {
	Error providerErrorInfo `json:"error"`
}

type providerErrorInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
