package usertours

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"wayfarer/events"
	"wayfarer/middleware"
	"wayfarer/models"
	"wayfarer/store"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
)

// EnrollmentStore is the slice of the persistence gateway the enrollment
// handlers use.
type EnrollmentStore interface {
	FindByUserAndTour(ctx context.Context, userID, tourID string) (*models.UserTour, error)
	ListByUser(ctx context.Context, userID string) ([]models.UserTour, error)
	Insert(ctx context.Context, enrollment *models.UserTour) (string, error)
}

// TourFinder checks that an enrollment target exists.
type TourFinder interface {
	FindByID(ctx context.Context, id string) (*models.Tour, error)
}

type Handler struct {
	enrollments EnrollmentStore
	tours       TourFinder
	events      *events.Emitter
}

func NewHandler(enrollments EnrollmentStore, tours TourFinder, e *events.Emitter) *Handler {
	return &Handler{enrollments: enrollments, tours: tours, events: e}
}

type enrollRequest struct {
	TourID string `json:"tour_id"`
}

// Enroll handles POST /api/user-tours/enroll. Enrolling twice in the same
// tour returns the existing enrollment; the check is a lookup before
// insert, so concurrent duplicate enrolls can race.
func (h *Handler) Enroll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var req enrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.TourID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "tour_id is required")
		return
	}

	ctx := r.Context()
	if _, err := h.tours.FindByID(ctx, req.TourID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching tour")
		return
	}

	userID := user.ID.Hex()
	existing, err := h.enrollments.FindByUserAndTour(ctx, userID, req.TourID)
	if err == nil {
		utils.RespondWithJSON(w, http.StatusOK, existing)
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error checking enrollment")
		return
	}

	enrollment := &models.UserTour{
		UserID:    userID,
		TourID:    req.TourID,
		Status:    models.StatusNotStarted,
		Progress:  0,
		StartedAt: time.Now().UTC(),
	}
	enrollmentID, err := h.enrollments.Insert(ctx, enrollment)
	if err != nil {
		log.Printf("usertours: insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating enrollment")
		return
	}

	h.events.Emit(ctx, events.Event{Name: "user-enrolled", EntityID: enrollmentID, UserID: userID})

	utils.RespondWithJSON(w, http.StatusOK, enrollment)
}

// List handles GET /api/user-tours: the caller's enrollments, capped at 100.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	enrollments, err := h.enrollments.ListByUser(r.Context(), user.ID.Hex())
	if err != nil {
		log.Printf("usertours: list error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching enrollments")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, enrollments)
}
