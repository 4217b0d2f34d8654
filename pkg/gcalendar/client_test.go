package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"express-sms/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCalendarCredentials(t *testing.T) {
	installedCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Unknown credentials format", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app with token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Installed app with bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds), tokenPath)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds), filepath.Join(t.TempDir(), "missing.json"))
		if err == nil {
			t.Fatalf("expected missing token error")
		}
	})

	t.Run("From file", func(t *testing.T) {
		credsPath := filepath.Join(t.TempDir(), "creds.json")
		os.WriteFile(credsPath, []byte(`{"broken":true}`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), credsPath, ""); err == nil {
			t.Errorf("expected failure loading broken file")
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json", ""); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Sends private properties", func(t *testing.T) {
		var got map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				json.NewDecoder(r.Body).Decode(&got)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"id": "event-123", "summary": "取件码: 1234", "htmlLink": "https://calendar.google.com/event-uri"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:     "取件码: 1234",
			Description: "位置: 南门驿站",
			StartTime:   time.Now(),
			EndTime:     time.Now().Add(time.Hour),
			Timezone:    "Asia/Shanghai",
			Private:     map[string]string{"list": "取件码", "priority": "5"},
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected event: %+v", event)
		}

		ext, _ := got["extendedProperties"].(map[string]any)
		private, _ := ext["private"].(map[string]any)
		if private["list"] != "取件码" || private["priority"] != "5" {
			t.Errorf("expected private properties in request, got %v", got["extendedProperties"])
		}
	})

	t.Run("API error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{}); err == nil {
			t.Fatalf("expected create event error")
		}
	})
}

func TestListEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/test-fail/events" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("pageToken") == "" {
			w.Write([]byte(`{
				"nextPageToken": "p2",
				"items": [
					{
						"id": "event-1",
						"summary": "取件码: 1234",
						"start": { "dateTime": "2026-10-19T10:00:00+08:00" },
						"end": { "dateTime": "2026-10-20T10:00:00+08:00" },
						"extendedProperties": { "private": { "list": "取件码", "priority": "5" } }
					}
				]
			}`))
			return
		}
		w.Write([]byte(`{
			"items": [
				{
					"id": "event-2",
					"summary": "All day",
					"start": { "date": "2026-10-21" },
					"end": { "date": "2026-10-22" }
				}
			]
		}`))
	})

	t.Run("Follows pages", func(t *testing.T) {
		events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			TimeMin: time.Now(),
			TimeMax: time.Now().Add(7 * 24 * time.Hour),
		})
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].Summary != "取件码: 1234" || events[0].Private["priority"] != "5" {
			t.Errorf("unexpected first event: %+v", events[0])
		}
		if events[1].StartTime.Format("2006-01-02") != "2026-10-21" {
			t.Errorf("expected all-day start parsed, got %v", events[1].StartTime)
		}
	})

	t.Run("API error", func(t *testing.T) {
		_, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "test-fail",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(time.Hour),
		})
		if err == nil {
			t.Fatalf("expected api error on test-fail")
		}
	})
}
