package controllers

import (
	"net/http"

	"github.com/alkapone312/shared-checklist/internal/runtime"
)

// GeneralController handles endpoints that are not room-scoped.
type GeneralController struct {
	rt *runtime.Runtime
}

// NewGeneralController creates a new general controller.
func NewGeneralController(rt *runtime.Runtime) *GeneralController {
	return &GeneralController{rt: rt}
}

// RegisterRoutes registers general routes with the given mux.
func (c *GeneralController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/healthz", c.handleHealth)
	mux.HandleFunc("/", c.handleUnknown)
}

// handleHealth returns the health status of the service.
func (c *GeneralController) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := c.rt.CheckHealth(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "not_serving")
		return
	}
	writeData(w, map[string]string{"status": "ok"})
}

// handleUnknown is the catch-all for unrecognized paths.
func (c *GeneralController) handleUnknown(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Unknown action")
}
