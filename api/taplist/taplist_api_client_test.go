package taplist

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pintwatch/api"
	"pintwatch/models"
	"pintwatch/models/venue"
)

func TestGetVenues(t *testing.T) {
	p := 8.5
	wantResp := models.VenuesResponse{
		Status:  "OK",
		VenuesN: 1,
		Venues: []venue.Venue{
			{Slug: "the-royal-oak", Name: "The Royal Oak", Suburb: "Newtown", Price: &p},
		},
	}

	// Handler to verify request and return stubbed JSON
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/venues" {
			t.Errorf("expected path /venues; got %s", r.URL.Path)
		}

		// must include the api key header
		if got := r.Header.Get("X-Api-Key"); got != "secret" {
			t.Errorf("X-Api-Key = %q; want secret", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wantResp)
	}))
	defer srv.Close()

	client := NewTapListApiClient(api.NewHTTPClient(srv.URL))
	client.SetAPIKey("secret")

	got, err := client.GetVenues()
	if err != nil {
		t.Fatal(err)
	}
	// response unmarshaled correctly
	if got.Status != wantResp.Status {
		t.Errorf("Status = %q; want %q", got.Status, wantResp.Status)
	}
	if len(got.Venues) != 1 {
		t.Fatalf("Venues = %d; want 1", len(got.Venues))
	}
	if got.Venues[0].Slug != "the-royal-oak" {
		t.Errorf("Slug = %q; want the-royal-oak", got.Venues[0].Slug)
	}
	if got.Venues[0].Price == nil || *got.Venues[0].Price != 8.5 {
		t.Errorf("Price = %v; want 8.5", got.Venues[0].Price)
	}
}

func TestGetVenue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/venues/the-royal-oak" {
			t.Errorf("expected path /venues/the-royal-oak; got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(venue.Venue{Slug: "the-royal-oak", Name: "The Royal Oak"})
	}))
	defer srv.Close()

	client := NewTapListApiClient(api.NewHTTPClient(srv.URL))
	client.SetAPIKey("secret")

	got, err := client.GetVenue("the-royal-oak")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "The Royal Oak" {
		t.Errorf("Name = %q; want The Royal Oak", got.Name)
	}
}

func TestGetDailyPick(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/daily-pick" {
			t.Errorf("expected path /daily-pick; got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.DailyPickResponse{
			Status: "OK",
			Pick: &models.DailyPick{
				Venue:          venue.Venue{Slug: "the-royal-oak"},
				EffectivePrice: 6.5,
				Reason:         "Happy hour on",
			},
		})
	}))
	defer srv.Close()

	client := NewTapListApiClient(api.NewHTTPClient(srv.URL))
	client.SetAPIKey("secret")

	got, err := client.GetDailyPick()
	if err != nil {
		t.Fatal(err)
	}
	if got.Pick == nil {
		t.Fatal("expected a pick")
	}
	if got.Pick.EffectivePrice != 6.5 {
		t.Errorf("EffectivePrice = %v; want 6.5", got.Pick.EffectivePrice)
	}
}

func TestGetDailyPick_NullPick(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "OK", "pick": null}`))
	}))
	defer srv.Close()

	client := NewTapListApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetDailyPick()
	if err != nil {
		t.Fatal(err)
	}
	if got.Pick != nil {
		t.Errorf("expected nil pick, got %+v", got.Pick)
	}
}
