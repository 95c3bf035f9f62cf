package controllers

import (
	"encoding/json"
	"net/http"

	checklistsvc "github.com/alkapone312/shared-checklist/internal/services/checklist"
)

// EventsController handles the event log endpoints: append and cursor-based
// polling.
type EventsController struct {
	svc *checklistsvc.Service
}

// NewEventsController creates a new events controller.
func NewEventsController(svc *checklistsvc.Service) *EventsController {
	return &EventsController{svc: svc}
}

// RegisterRoutes registers event routes with the given mux.
func (c *EventsController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/events/append", c.handleAppend)
	mux.HandleFunc("/v1/events/list", c.handleList)
}

// handleAppend appends one mutation event and returns its sequence.
func (c *EventsController) handleAppend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req appendReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	seq, err := c.svc.AppendEvent(r.Context(), req.RoomID, req.Token, req.Type, req.Payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, seqResp{Seq: seq})
}

// handleList returns every event with seq greater than the client cursor.
func (c *EventsController) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	q := r.URL.Query()
	events, err := c.svc.ListEvents(r.Context(), q.Get("room_id"), q.Get("token"), parseSince(q.Get("since")))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, eventsResp{Events: events})
}
