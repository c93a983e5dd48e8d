package location

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"wayfarer/middleware"
	"wayfarer/models"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
)

// PingStore appends location pings; there is no read path.
type PingStore interface {
	Insert(ctx context.Context, ping *models.LocationPing) (string, error)
}

type Handler struct {
	pings PingStore
}

func NewHandler(pings PingStore) *Handler {
	return &Handler{pings: pings}
}

type updateRequest struct {
	TourID   string           `json:"tour_id"`
	Location *models.GeoPoint `json:"location"`
}

// Update handles POST /api/location/update. The ping is stamped with the
// server clock, not the client's.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.TourID == "" || req.Location == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "tour_id and location are required")
		return
	}

	ping := &models.LocationPing{
		UserID:    user.ID.Hex(),
		TourID:    req.TourID,
		Location:  *req.Location,
		Timestamp: time.Now().UTC(),
	}
	if _, err := h.pings.Insert(r.Context(), ping); err != nil {
		log.Printf("location: insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error storing location")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status":  "success",
		"message": "Location updated",
	})
}
