package checklistsvc

import "errors"

// ErrBadRequest is the sentinel matched by errors.Is for every validation
// failure: missing fields, unknown event types, and oversized payloads.
var ErrBadRequest = errors.New("bad request")

type badRequestError struct{ msg string }

func (e *badRequestError) Error() string        { return e.msg }
func (e *badRequestError) Is(target error) bool { return target == ErrBadRequest }

func badRequest(msg string) error { return &badRequestError{msg: msg} }

// eventTypes is the closed set of mutation kinds shared with clients.
// Extending it is a protocol change, never a runtime decision.
var eventTypes = map[string]struct{}{
	"add_item":      {},
	"remove_item":   {},
	"toggle":        {},
	"rename_item":   {},
	"clear_checked": {},
	"move_item":     {},
}

// RoomView is the creator's one-time view of a new room. The token is
// never returned by any other operation.
type RoomView struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// Event is a decoded log entry as returned to polling clients.
type Event struct {
	Seq     uint64                 `json:"seq"`
	Ts      int64                  `json:"ts"`
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload"`
}

// Expiration is the caller-visible deadline after which a room becomes
// eligible for the next sweep.
type Expiration struct {
	RoomID    string `json:"room_id"`
	ExpiresAt int64  `json:"expires_at"`
}
