package controllers

import (
	checklistsvc "github.com/alkapone312/shared-checklist/internal/services/checklist"
)

// Common request/response types for HTTP controllers

// envelope is the response shell shared by every endpoint.
type envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// appendReq represents a request to append one mutation event.
type appendReq struct {
	RoomID  string                 `json:"room_id"`
	Token   string                 `json:"token"`
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload"`
}

// seqResp carries the sequence assigned to an appended event.
type seqResp struct {
	Seq uint64 `json:"seq"`
}

// roomResp is the token-validated view of a room; the token is never
// echoed back.
type roomResp struct {
	ID string `json:"id"`
}

// eventsResp carries a batch of events newer than the client's cursor.
type eventsResp struct {
	Events []checklistsvc.Event `json:"events"`
}
