package controllers

import (
	"net/http"

	checklistsvc "github.com/alkapone312/shared-checklist/internal/services/checklist"
)

// RoomsController handles room lifecycle endpoints: creation, token
// validation, and the expiration deadline.
type RoomsController struct {
	svc *checklistsvc.Service
}

// NewRoomsController creates a new rooms controller.
func NewRoomsController(svc *checklistsvc.Service) *RoomsController {
	return &RoomsController{svc: svc}
}

// RegisterRoutes registers room routes with the given mux.
func (c *RoomsController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/rooms/create", c.handleCreate)
	mux.HandleFunc("/v1/rooms/get", c.handleGet)
	mux.HandleFunc("/v1/rooms/expiration", c.handleExpiration)
}

// handleCreate creates a room and returns its id and token. This is the
// only response that ever carries the token.
func (c *RoomsController) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	view, err := c.svc.CreateRoom(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, view)
}

// handleGet validates room ownership and returns the room id.
func (c *RoomsController) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	q := r.URL.Query()
	id, err := c.svc.GetRoom(r.Context(), q.Get("id"), q.Get("token"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, roomResp{ID: id})
}

// handleExpiration returns the deadline after which the room becomes
// eligible for the expiration sweep.
func (c *RoomsController) handleExpiration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	q := r.URL.Query()
	exp, err := c.svc.GetExpiration(r.Context(), q.Get("room_id"), q.Get("token"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, exp)
}
