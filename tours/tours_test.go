package tours

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wayfarer/models"
	"wayfarer/store"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTourStore struct {
	tours []models.Tour
}

func (f *fakeTourStore) List(ctx context.Context, category string) ([]models.TourSummary, error) {
	summaries := []models.TourSummary{}
	for _, tour := range f.tours {
		if category != "" && category != "all" && tour.Category != category {
			continue
		}
		summaries = append(summaries, models.TourSummary{
			ID:           tour.ID,
			Name:         tour.Name,
			Description:  tour.Description,
			Difficulty:   tour.Difficulty,
			Duration:     tour.Duration,
			Distance:     tour.Distance,
			Category:     tour.Category,
			Image:        tour.Image,
			Rating:       tour.Rating,
			ReviewsCount: tour.ReviewsCount,
		})
		if len(summaries) == 100 {
			break
		}
	}
	return summaries, nil
}

func (f *fakeTourStore) FindByID(ctx context.Context, id string) (*models.Tour, error) {
	for i := range f.tours {
		if f.tours[i].ID.Hex() == id {
			return &f.tours[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeTourStore) Insert(ctx context.Context, tour *models.Tour) (string, error) {
	tour.ID = primitive.NewObjectID()
	f.tours = append(f.tours, *tour)
	return tour.ID.Hex(), nil
}

func (f *fakeTourStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.tours)), nil
}

func (f *fakeTourStore) InsertMany(ctx context.Context, tours []models.Tour) (int, error) {
	for i := range tours {
		tours[i].ID = primitive.NewObjectID()
		f.tours = append(f.tours, tours[i])
	}
	return len(tours), nil
}

func seededStore() *fakeTourStore {
	f := &fakeTourStore{}
	f.Insert(context.Background(), &models.Tour{Name: "Walk A", Category: "walking", Difficulty: models.DifficultyEasy})
	f.Insert(context.Background(), &models.Tour{Name: "Ride B", Category: "cycling", Difficulty: models.DifficultyModerate})
	f.Insert(context.Background(), &models.Tour{Name: "Walk C", Category: "walking", Difficulty: models.DifficultyHard})
	return f
}

func TestListFilterByCategory(t *testing.T) {
	h := NewHandler(seededStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tours?category=cycling", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []models.TourSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Ride B" {
		t.Fatalf("expected only the cycling tour, got %+v", got)
	}
}

func TestListUnfiltered(t *testing.T) {
	h := NewHandler(seededStore(), nil)

	for _, path := range []string{"/api/tours", "/api/tours?category=all"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.List(rec, req, nil)

		var got []models.TourSummary
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("%s: expected 3 tours, got %d", path, len(got))
		}
	}
}

func TestGetTourNotFound(t *testing.T) {
	h := NewHandler(seededStore(), nil)

	for _, id := range []string{primitive.NewObjectID().Hex(), "not-a-hex-id"} {
		req := httptest.NewRequest(http.MethodGet, "/api/tours/"+id, nil)
		rec := httptest.NewRecorder()
		h.Get(rec, req, httprouter.Params{{Key: "id", Value: id}})
		if rec.Code != http.StatusNotFound {
			t.Errorf("id %q: expected 404, got %d", id, rec.Code)
		}
	}
}

func TestGetTour(t *testing.T) {
	f := seededStore()
	h := NewHandler(f, nil)
	id := f.tours[0].ID.Hex()

	req := httptest.NewRequest(http.MethodGet, "/api/tours/"+id, nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req, httprouter.Params{{Key: "id", Value: id}})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got models.Tour
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if got.Name != "Walk A" {
		t.Fatalf("unexpected tour %+v", got)
	}
}

func TestCreateTour(t *testing.T) {
	f := &fakeTourStore{}
	h := NewHandler(f, nil)

	body := `{
		"name": "Harbor Loop",
		"description": "Short waterfront walk",
		"difficulty": "easy",
		"duration": "1 hour",
		"distance": "2 km",
		"category": "walking",
		"points_of_interest": [
			{"name": "Pier", "description": "Old pier", "location": {"lat": 1.0, "lng": 2.0}, "order": 1},
			{"id": "poi-x", "name": "Lighthouse", "description": "Still working", "location": {"lat": 1.1, "lng": 2.1}, "order": 2}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/tours", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got models.Tour
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if got.ID.IsZero() {
		t.Fatal("created tour must carry a generated id")
	}
	if len(got.PointsOfInterest) != 2 {
		t.Fatalf("expected 2 POIs, got %d", len(got.PointsOfInterest))
	}
	if got.PointsOfInterest[0].ID == "" {
		t.Fatal("blank POI id must be generated")
	}
	if got.PointsOfInterest[1].ID != "poi-x" {
		t.Fatalf("caller-supplied POI id must be preserved, got %q", got.PointsOfInterest[1].ID)
	}
}

func TestCreateTourValidation(t *testing.T) {
	h := NewHandler(&fakeTourStore{}, nil)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"description":"d","difficulty":"easy","duration":"1h","distance":"1 km","category":"walking"}`},
		{"bad difficulty", `{"name":"n","description":"d","difficulty":"extreme","duration":"1h","distance":"1 km","category":"walking"}`},
		{"poi without location", `{"name":"n","description":"d","difficulty":"easy","duration":"1h","distance":"1 km","category":"walking","points_of_interest":[{"name":"p","description":"d"}]}`},
		{"bad json", `{`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/tours", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		h.Create(rec, req, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, rec.Code)
		}
	}
}

func TestSeedRefusesWhenToursExist(t *testing.T) {
	f := seededStore()
	h := NewHandler(f, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/seed-tours", nil)
	rec := httptest.NewRecorder()
	h.Seed(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(f.tours) != 3 {
		t.Fatalf("seed must not add tours without force, count=%d", len(f.tours))
	}

	req = httptest.NewRequest(http.MethodPost, "/api/seed-tours?force=true", nil)
	rec = httptest.NewRecorder()
	h.Seed(rec, req, nil)

	if len(f.tours) != 3+len(SampleTours()) {
		t.Fatalf("forced seed must add the sample set, count=%d", len(f.tours))
	}
}

func TestSeedEmptyStore(t *testing.T) {
	f := &fakeTourStore{}
	h := NewHandler(f, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/seed-tours", nil)
	rec := httptest.NewRecorder()
	h.Seed(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(f.tours) != len(SampleTours()) {
		t.Fatalf("expected %d seeded tours, got %d", len(SampleTours()), len(f.tours))
	}
}
