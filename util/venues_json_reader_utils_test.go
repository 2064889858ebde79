package util

import (
	"os"
	"testing"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp("", "test*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_, err = tempFile.Write([]byte(content))
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadVenuesResponseFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"status": "OK",
		"venues_n": 1,
		"venues": [
			{
				"slug": "the-royal-oak",
				"name": "The Royal Oak",
				"suburb": "Newtown",
				"price": 8.5,
				"last_verified": "2025-08-28T10:00:00+10:00"
			}
		]
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	response, err := ReadVenuesResponseFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if response.Status != "OK" {
		t.Errorf("Expected Status 'OK', got %s", response.Status)
	}
	if len(response.Venues) != 1 {
		t.Fatalf("Expected 1 venue, got %d", len(response.Venues))
	}
	v := response.Venues[0]
	if v.Slug != "the-royal-oak" {
		t.Errorf("Expected slug 'the-royal-oak', got %s", v.Slug)
	}
	if v.Price == nil || *v.Price != 8.5 {
		t.Errorf("Expected price 8.5, got %v", v.Price)
	}
	if v.LastVerified == nil {
		t.Error("Expected last_verified to be parsed")
	}
}

func TestReadVenuesResponseFromJSON_NullableFields(t *testing.T) {
	content := `{
		"status": "OK",
		"venues_n": 1,
		"venues": [
			{"slug": "the-duke", "name": "The Duke", "suburb": "Enmore", "price": null, "last_verified": null}
		]
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	response, err := ReadVenuesResponseFromJSON(tempFile)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	v := response.Venues[0]
	if v.Price != nil {
		t.Errorf("Expected nil price, got %v", *v.Price)
	}
	if v.LastVerified != nil {
		t.Errorf("Expected nil last_verified, got %v", *v.LastVerified)
	}
	if v.HappyHour != nil {
		t.Errorf("Expected nil happy_hour, got %v", *v.HappyHour)
	}
}

func TestReadVenuesResponseFromJSON_MalformedFile(t *testing.T) {
	tempFile := createTempFile(t, `{"invalid_json`)
	defer os.Remove(tempFile)

	if _, err := ReadVenuesResponseFromJSON(tempFile); err == nil {
		t.Error("Expected an error for malformed JSON")
	}
}

func TestReadVenueFromJSON(t *testing.T) {
	content := `{
		"slug": "the-royal-oak",
		"name": "The Royal Oak",
		"suburb": "Newtown",
		"price": 8.5,
		"happy_hour": {"days": ["Mon", "Fri"], "start": "16:00", "end": "18:00"}
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	v, err := ReadVenueFromJSON(tempFile)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v.HappyHour == nil {
		t.Fatal("Expected happy_hour to be parsed")
	}
	if len(v.HappyHour.Days) != 2 || v.HappyHour.Start != "16:00" {
		t.Errorf("Unexpected happy hour window: %+v", v.HappyHour)
	}
}

func TestReadDailyPickResponseFromJSON(t *testing.T) {
	content := `{
		"status": "OK",
		"pick": {
			"venue": {"slug": "the-royal-oak", "name": "The Royal Oak", "suburb": "Newtown"},
			"effective_price": 6.5,
			"reason": "Happy hour on"
		}
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	resp, err := ReadDailyPickResponseFromJSON(tempFile)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Pick == nil {
		t.Fatal("Expected a pick")
	}
	if resp.Pick.EffectivePrice != 6.5 {
		t.Errorf("Expected effective price 6.5, got %v", resp.Pick.EffectivePrice)
	}
}

func TestReadDailyPickResponseFromJSON_NullPick(t *testing.T) {
	tempFile := createTempFile(t, `{"status": "OK", "pick": null}`)
	defer os.Remove(tempFile)

	resp, err := ReadDailyPickResponseFromJSON(tempFile)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Pick != nil {
		t.Errorf("Expected nil pick, got %+v", resp.Pick)
	}
}
