// Seeder populates a running scooter-service instance with demo data:
// it registers a technician account, books in randomized repair records
// and walks a portion of them through the workflow.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

type credentials struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type repairItem struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
}

type vehicleState struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
}

type createRecordRequest struct {
	Model        string        `json:"model"`
	SerialNumber string        `json:"serialNumber"`
	VehicleState *vehicleState `json:"vehicleState,omitempty"`
	RepairItems  []repairItem  `json:"repairItems"`
}

var models = []string{"BirdOne", "BirdThree", "BirdBike", "eES600"}

var states = []vehicleState{
	{ID: "1", Value: "revision", Label: "Revision"},
	{ID: "2", Value: "offline", Label: "Offline"},
	{ID: "5", Value: "water_rain_damage", Label: "Water/Rain Damage"},
	{ID: "6", Value: "maintenance", Label: "Maintenance"},
	{ID: "8", Value: "vandalized", Label: "Vandalized"},
}

var repairs = []repairItem{
	{ID: "1", Value: "brakes", Label: "Brakes"},
	{ID: "2", Value: "lights", Label: "Lights"},
	{ID: "3", Value: "wheels_front", Label: "Wheels(Front)"},
	{ID: "12", Value: "suspension", Label: "Suspension"},
	{ID: "14", Value: "display_unit", Label: "Display Unit"},
	{ID: "17", Value: "charging_issues", Label: "Charging Issues"},
	{ID: "18", Value: "connectivity", Label: "Connectivity"},
}

var statuses = []string{"in-progress", "awaiting-parts", "completed"}

var authToken string

func authorizedRequest(method, url string, body *bytes.Buffer) (*http.Response, error) {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func login(apiURL string) error {
	creds := credentials{
		Username:  "seeder",
		Email:     "seeder@example.com",
		Password:  "seeder-password",
		FirstName: "Seed",
		LastName:  "Bot",
		Role:      "technician",
	}
	data, _ := json.Marshal(creds)

	// Try registering first; an existing account just falls through to login.
	resp, err := http.Post(apiURL+"/auth/register", "application/json", bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("register request failed: %w", err)
	}
	resp.Body.Close()

	loginData, _ := json.Marshal(map[string]string{
		"username": creds.Username,
		"password": creds.Password,
	})
	resp, err = http.Post(apiURL+"/auth/login", "application/json", bytes.NewBuffer(loginData))
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status: %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}
	authToken = result.Token
	return nil
}

func randomSerial() string {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	n := 4 + rand.Intn(9) // 4-12 characters
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

func randomRepairs() []repairItem {
	n := 1 + rand.Intn(3)
	picked := make([]repairItem, 0, n)
	seen := map[string]bool{}
	for len(picked) < n {
		item := repairs[rand.Intn(len(repairs))]
		if seen[item.Value] {
			continue
		}
		seen[item.Value] = true
		picked = append(picked, item)
	}
	return picked
}

func createRecord(apiURL string) (string, error) {
	record := createRecordRequest{
		Model:        models[rand.Intn(len(models))],
		SerialNumber: randomSerial(),
		RepairItems:  randomRepairs(),
	}
	if rand.Float64() < 0.8 {
		state := states[rand.Intn(len(states))]
		record.VehicleState = &state
	}

	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal record: %w", err)
	}

	resp, err := authorizedRequest(http.MethodPost, apiURL+"/records", bytes.NewBuffer(data))
	if err != nil {
		return "", fmt.Errorf("failed to create record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("record creation failed with status: %d", resp.StatusCode)
	}

	var result struct {
		ID           string `json:"id"`
		SerialNumber string `json:"serialNumber"`
		Model        string `json:"model"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	log.WithFields(log.Fields{
		"record_id": result.ID,
		"serial":    result.SerialNumber,
		"model":     result.Model,
	}).Info("Created service record")

	return result.ID, nil
}

func advanceStatus(apiURL, recordID string) error {
	status := statuses[rand.Intn(len(statuses))]
	data, _ := json.Marshal(map[string]string{"status": status})

	resp, err := authorizedRequest(http.MethodPut, apiURL+"/records/"+recordID+"/status", bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status update failed with status: %d", resp.StatusCode)
	}

	log.WithFields(log.Fields{
		"record_id": recordID,
		"status":    status,
	}).Info("Updated record status")
	return nil
}

func main() {
	rand.Seed(time.Now().UnixNano())

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}

	count := 20
	if countStr := os.Getenv("SEED_COUNT"); countStr != "" {
		if parsed, err := strconv.Atoi(countStr); err == nil && parsed > 0 {
			count = parsed
		}
	}

	if err := login(apiURL); err != nil {
		log.WithError(err).Fatal("failed to authenticate")
	}
	log.Info("Authenticated against API")

	for i := 0; i < count; i++ {
		recordID, err := createRecord(apiURL)
		if err != nil {
			log.WithError(err).Error("record creation failed")
			continue
		}
		// Leave roughly a third pending to keep the board realistic.
		if rand.Float64() < 0.66 {
			if err := advanceStatus(apiURL, recordID); err != nil {
				log.WithError(err).Error("status update failed")
			}
		}
	}

	log.WithField("count", count).Info("Seeding complete")
}
