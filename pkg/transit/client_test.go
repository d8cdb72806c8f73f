package transit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestAgentAction(t *testing.T) {
	t.Run("success round-trip", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/agent/action" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.Method != http.MethodPost {
				t.Errorf("unexpected method %s", r.Method)
			}

			var req AgentActionRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}
			if req.Intent != "update_route_status" {
				t.Errorf("expected intent update_route_status, got %s", req.Intent)
			}
			if req.Context.CurrentPage != "manageRoute" {
				t.Errorf("expected currentPage manageRoute, got %s", req.Context.CurrentPage)
			}

			json.NewEncoder(w).Encode(AgentActionResponse{
				Message: "This needs confirmation.",
				Consequence: &Consequence{
					RequiresConfirmation: true,
					Reason:               "Setting the route to inactive will hide it from live dashboards.",
				},
			})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, 5*time.Second)
		resp, err := c.AgentAction(context.Background(), AgentActionRequest{
			Intent:     "update_route_status",
			Parameters: map[string]any{"route_id": 1, "status": "Inactive"},
			Context:    AgentContext{CurrentPage: "manageRoute"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Consequence == nil {
			t.Fatal("expected consequence to be set")
		}
		if resp.Consequence.Reason == "" {
			t.Error("expected consequence reason")
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, 5*time.Second)
		_, err := c.AgentAction(context.Background(), AgentActionRequest{Intent: "list_daily_trips"})
		if err == nil {
			t.Fatal("expected error on 500")
		}
		if !strings.Contains(err.Error(), "500") {
			t.Errorf("expected status in error, got %v", err)
		}
	})

	t.Run("unreachable backend is an error", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:1", 500*time.Millisecond)
		_, err := c.AgentAction(context.Background(), AgentActionRequest{Intent: "list_daily_trips"})
		if err == nil {
			t.Fatal("expected transport error")
		}
	})
}

func TestListEndpoints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/trips":
			json.NewEncoder(w).Encode([]Trip{{TripID: 1, DisplayName: "Bulk - 00:01"}})
		case "/drivers/available":
			json.NewEncoder(w).Encode([]Driver{{DriverID: 101, Name: "Sanjay Kumar", IsAvailable: true}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	t.Run("trips", func(t *testing.T) {
		trips, err := c.ListTrips(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(trips) != 1 || trips[0].DisplayName != "Bulk - 00:01" {
			t.Errorf("unexpected trips: %+v", trips)
		}
	})

	t.Run("available drivers", func(t *testing.T) {
		drivers, err := c.ListAvailableDrivers(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(drivers) != 1 || !drivers[0].IsAvailable {
			t.Errorf("unexpected drivers: %+v", drivers)
		}
	})

	t.Run("missing endpoint is an error", func(t *testing.T) {
		if _, err := c.ListStops(context.Background()); err == nil {
			t.Fatal("expected error on 404")
		}
	})
}

func TestMatchScreenshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "bulk-0001.png" {
			t.Errorf("unexpected filename %s", header.Filename)
		}
		json.NewEncoder(w).Encode(VisionMatch{Match: "Bulk - 00:01", Confidence: 0.75})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	match, err := c.MatchScreenshot(context.Background(), "bulk-0001.png", strings.NewReader("fake-png-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match.Match != "Bulk - 00:01" || match.Confidence != 0.75 {
		t.Errorf("unexpected match: %+v", match)
	}
}
