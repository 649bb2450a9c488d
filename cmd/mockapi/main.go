// Command mockapi serves a fixture NWS active-alerts feature collection so the
// viewer and CLI can run without reaching api.weather.gov.
//
// Usage:
//
//	go run ./cmd/mockapi -addr :8081
//	NWS_BASE_URL=http://localhost:8081 go run ./cmd/viewer
//
// Pass -status 503 to make every request fail with that status.
package main

import (
	_ "embed"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

//go:embed testdata/alerts_active.json
var fixture []byte

type featureCollection struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}

// feature is the subset of an alert needed for area filtering.
type feature struct {
	Properties struct {
		Geocode struct {
			UGC []string `json:"UGC"`
		} `json:"geocode"`
	} `json:"properties"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	addr := flag.String("addr", ":8081", "listen address")
	status := flag.Int("status", 0, "if set, respond to every request with this HTTP status")
	flag.Parse()

	h, err := newHandler(fixture, *status)
	if err != nil {
		return fmt.Errorf("load fixture: %w", err)
	}

	log.Printf("mock NWS API listening on %s", *addr)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newHandler(data []byte, forcedStatus int) (http.Handler, error) {
	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Get("/alerts/active", func(w http.ResponseWriter, req *http.Request) {
		if forcedStatus != 0 {
			http.Error(w, http.StatusText(forcedStatus), forcedStatus)
			return
		}
		out := featureCollection{Type: "FeatureCollection", Features: filterByArea(fc.Features, req.URL.Query().Get("area"))}
		w.Header().Set("Content-Type", "application/geo+json")
		if err := json.NewEncoder(w).Encode(out); err != nil {
			log.Printf("encode response: %v", err)
		}
	})
	return r, nil
}

// filterByArea keeps features with at least one UGC code starting with area.
// An empty area keeps everything.
func filterByArea(features []json.RawMessage, area string) []json.RawMessage {
	out := []json.RawMessage{}
	area = strings.ToUpper(area)
	for _, raw := range features {
		if area == "" {
			out = append(out, raw)
			continue
		}
		var f feature
		if err := json.Unmarshal(raw, &f); err != nil {
			continue
		}
		for _, code := range f.Properties.Geocode.UGC {
			if strings.HasPrefix(code, area) {
				out = append(out, raw)
				break
			}
		}
	}
	return out
}
