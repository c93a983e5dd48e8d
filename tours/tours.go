package tours

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

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// TourStore is the slice of the persistence gateway the tour handlers use.
type TourStore interface {
	List(ctx context.Context, category string) ([]models.TourSummary, error)
	FindByID(ctx context.Context, id string) (*models.Tour, error)
	Insert(ctx context.Context, tour *models.Tour) (string, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, tours []models.Tour) (int, error)
}

type Handler struct {
	tours  TourStore
	events *events.Emitter
}

func NewHandler(tours TourStore, e *events.Emitter) *Handler {
	return &Handler{tours: tours, events: e}
}

type poiPayload struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Location    *models.GeoPoint `json:"location"`
	Image       string           `json:"image"`
	AudioURL    string           `json:"audio_url"`
	Order       int              `json:"order"`
}

type createTourRequest struct {
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Difficulty       string       `json:"difficulty"`
	Duration         string       `json:"duration"`
	Distance         string       `json:"distance"`
	Category         string       `json:"category"`
	Image            string       `json:"image"`
	PointsOfInterest []poiPayload `json:"points_of_interest"`
	Rating           float64      `json:"rating"`
	ReviewsCount     int          `json:"reviews_count"`
}

// List handles GET /api/tours. The category query parameter filters the
// listing; "all" or an absent category returns everything, capped at 100.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	category := r.URL.Query().Get("category")

	summaries, err := h.tours.List(r.Context(), category)
	if err != nil {
		log.Printf("tours: list error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching tours")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summaries)
}

// Get handles GET /api/tours/:id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tour, err := h.tours.FindByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching tour")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tour)
}

// Create handles POST /api/tours. Any authenticated user may create a tour;
// there is no role check.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Name == "" || req.Description == "" || req.Duration == "" ||
		req.Distance == "" || req.Category == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !models.ValidDifficulty(req.Difficulty) {
		utils.RespondWithError(w, http.StatusBadRequest, "Difficulty must be easy, moderate or hard")
		return
	}

	pois := make([]models.PointOfInterest, 0, len(req.PointsOfInterest))
	for _, p := range req.PointsOfInterest {
		if p.Name == "" || p.Description == "" || p.Location == nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Each point of interest needs a name, description and location")
			return
		}
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		pois = append(pois, models.PointOfInterest{
			ID:          id,
			Name:        p.Name,
			Description: p.Description,
			Location:    *p.Location,
			Image:       p.Image,
			AudioURL:    p.AudioURL,
			Order:       p.Order,
		})
	}

	tour := &models.Tour{
		Name:             req.Name,
		Description:      req.Description,
		Difficulty:       req.Difficulty,
		Duration:         req.Duration,
		Distance:         req.Distance,
		Category:         req.Category,
		Image:            req.Image,
		PointsOfInterest: pois,
		Rating:           req.Rating,
		ReviewsCount:     req.ReviewsCount,
		CreatedAt:        time.Now().UTC(),
	}

	ctx := r.Context()
	tourID, err := h.tours.Insert(ctx, tour)
	if err != nil {
		log.Printf("tours: insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating tour")
		return
	}

	if user := middleware.UserFromContext(ctx); user != nil {
		h.events.Emit(ctx, events.Event{Name: "tour-created", EntityID: tourID, UserID: user.ID.Hex()})
	}

	utils.RespondWithJSON(w, http.StatusOK, tour)
}

// Seed handles POST /api/seed-tours, a development helper. It refuses to
// add sample tours when any already exist unless force=true.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	force := r.URL.Query().Get("force") == "true"

	count, err := h.tours.Count(ctx)
	if err != nil {
		log.Printf("tours: count error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error counting tours")
		return
	}
	if count > 0 && !force {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"message":        "Tours already seeded",
			"existing_count": count,
			"hint":           "Use ?force=true to add more tours",
		})
		return
	}

	samples := SampleTours()
	added, err := h.tours.InsertMany(ctx, samples)
	if err != nil {
		log.Printf("tours: seed error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error seeding tours")
		return
	}

	total, err := h.tours.Count(ctx)
	if err != nil {
		total = count + int64(added)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":     "Successfully seeded tours",
		"added":       added,
		"total_tours": total,
	})
}
