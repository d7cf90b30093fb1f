//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// Smoke test against a running server; point E2E_BASE_URL at a deployment.
func TestRemoteAPI_MainEndpoints(t *testing.T) {
	baseURL := strings.TrimRight(envOr("E2E_BASE_URL", "http://127.0.0.1:8080"), "/")
	client := &http.Client{Timeout: 20 * time.Second}

	var petID string

	t.Run("create pet", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodPost, baseURL+"/api/pets", map[string]any{"name": "e2e-pet"})
		if status != http.StatusOK {
			t.Fatalf("create status=%d body=%s", status, string(body))
		}
		var created struct {
			ID        string `json:"id"`
			Stage     string `json:"stage"`
			Happiness int    `json:"happiness"`
		}
		if err := json.Unmarshal(body, &created); err != nil {
			t.Fatalf("unmarshal create: %v body=%s", err, string(body))
		}
		if created.ID == "" || created.Stage != "egg" || created.Happiness != 50 {
			t.Fatalf("unexpected created pet: %s", string(body))
		}
		petID = created.ID
	})

	t.Run("unknown pet is 404", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, baseURL+"/api/pets/does-not-exist", nil)
		if status != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", status, string(body))
		}
	})

	t.Run("feed play train", func(t *testing.T) {
		for _, action := range []string{"feed", "play", "train"} {
			status, body := mustJSON(t, client, http.MethodPost, baseURL+"/api/pets/"+petID+"/"+action, nil)
			if status != http.StatusOK {
				t.Fatalf("%s status=%d body=%s", action, status, string(body))
			}
			var resp struct {
				Message string `json:"message"`
				Pet     struct {
					Happiness int `json:"happiness"`
					Health    int `json:"health"`
				} `json:"pet"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				t.Fatalf("unmarshal %s: %v body=%s", action, err, string(body))
			}
			if resp.Message == "" {
				t.Fatalf("%s returned no message: %s", action, string(body))
			}
			if resp.Pet.Happiness > 100 || resp.Pet.Health > 100 {
				t.Fatalf("%s pushed stats out of bounds: %s", action, string(body))
			}
		}
	})

	t.Run("log and list moods", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodPost, baseURL+"/api/moods", map[string]any{
			"pet_id": petID, "emotion": "happy", "intensity": 6,
		})
		if status != http.StatusOK {
			t.Fatalf("log mood status=%d body=%s", status, string(body))
		}

		status, body = mustJSON(t, client, http.MethodGet, baseURL+"/api/moods/"+petID, nil)
		if status != http.StatusOK {
			t.Fatalf("list moods status=%d body=%s", status, string(body))
		}
		var entries []map[string]any
		if err := json.Unmarshal(body, &entries); err != nil {
			t.Fatalf("unmarshal moods: %v body=%s", err, string(body))
		}
		if len(entries) == 0 {
			t.Fatalf("expected at least one mood entry")
		}
	})

	t.Run("shop and achievements", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, baseURL+"/api/shop", nil)
		if status != http.StatusOK {
			t.Fatalf("shop status=%d body=%s", status, string(body))
		}
		var items []map[string]any
		if err := json.Unmarshal(body, &items); err != nil {
			t.Fatalf("unmarshal shop: %v body=%s", err, string(body))
		}
		if len(items) != 5 {
			t.Fatalf("shop items=%d, want 5", len(items))
		}

		status, body = mustJSON(t, client, http.MethodGet, baseURL+"/api/achievements/"+petID, nil)
		if status != http.StatusOK {
			t.Fatalf("achievements status=%d body=%s", status, string(body))
		}
		var records []map[string]any
		if err := json.Unmarshal(body, &records); err != nil {
			t.Fatalf("unmarshal achievements: %v body=%s", err, string(body))
		}
		if len(records) != 5 {
			t.Fatalf("achievements=%d, want 5", len(records))
		}
	})
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func mustJSON(t *testing.T, client *http.Client, method, url string, payload any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, body
}
