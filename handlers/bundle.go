package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Catalog *CatalogHandler
	Sarthi  *SarthiHandler
	Booking *BookingHandler
	Admin   *AdminHandler
	Health  *HealthHandler

	// Metrics serves the Prometheus exposition format.
	Metrics http.Handler

	Logger            *zap.Logger
	MaxRequestsPerMin int
}
