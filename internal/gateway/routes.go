package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	catalog_http "github.com/JESURAJA7/Roger-Keys/internal/modules/catalog/interfaces/http"
	library_http "github.com/JESURAJA7/Roger-Keys/internal/modules/library/interfaces/http"
	subscriber_http "github.com/JESURAJA7/Roger-Keys/internal/modules/subscriber/interfaces/http"
)

// RouterConfig holds all the handlers needed for routing
type RouterConfig struct {
	TrackHandler      *catalog_http.TrackHandler
	SubscriberHandler *subscriber_http.SubscriberHandler
	LibraryHandler    *library_http.LibraryHandler
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Catalog Routes
	mux.HandleFunc("GET /api/tracks", config.TrackHandler.List)
	mux.HandleFunc("POST /api/tracks", config.TrackHandler.Create)

	// Subscriber Routes
	mux.HandleFunc("POST /api/subscribe", config.SubscriberHandler.Subscribe)

	// Local Library Routes
	mux.HandleFunc("GET /api/local-files", config.LibraryHandler.List)

	return mux
}
