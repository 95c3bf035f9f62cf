package checklistsvc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alkapone312/shared-checklist/internal/room"
	"github.com/alkapone312/shared-checklist/internal/runtime"
	logpkg "github.com/alkapone312/shared-checklist/pkg/log"
)

// Service is the checklist sync facade consumed by transports. It owns
// input validation, payload sanitization, the event-type contract, and the
// sweep-on-access policy; storage semantics live in the room and eventlog
// packages underneath.
type Service struct {
	rt     *runtime.Runtime
	logger logpkg.Logger
	// now is the single clock for timestamps and sweep staleness checks.
	now func() int64
}

// New returns a Service using a default logger.
func New(rt *runtime.Runtime) *Service {
	return NewWithLogger(rt, nil)
}

// NewWithLogger constructs the service with an injected logger.
func NewWithLogger(rt *runtime.Runtime, logger logpkg.Logger) *Service {
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("checklist"))
	}
	return &Service{rt: rt, logger: logger, now: func() int64 { return time.Now().Unix() }}
}

// sweepOnAccess runs the expiration sweep before an operation. Failures
// are logged and the operation proceeds; the next request retries.
func (s *Service) sweepOnAccess(ctx context.Context) {
	if err := s.Sweep(ctx); err != nil {
		s.logger.Warn("expiration sweep failed", logpkg.Err(err))
	}
}

// CreateRoom generates a room with fresh random id and token. The returned
// view is the only time the token is ever echoed back.
func (s *Service) CreateRoom(ctx context.Context) (RoomView, error) {
	s.sweepOnAccess(ctx)
	m, err := room.Create(s.rt.DB(), s.now())
	if err != nil {
		return RoomView{}, err
	}
	s.logger.Info("room created", logpkg.Str("room_id", m.ID))
	return RoomView{ID: m.ID, Token: m.Token}, nil
}

// GetRoom validates ownership and returns the room id only.
func (s *Service) GetRoom(ctx context.Context, roomID, token string) (string, error) {
	s.sweepOnAccess(ctx)
	if roomID == "" || token == "" {
		return "", badRequest("Missing fields")
	}
	m, err := room.ValidateToken(s.rt.DB(), roomID, token)
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

// AppendEvent validates, sanitizes and appends one mutation event,
// returning the assigned sequence. Corrections are expressed as new
// events; nothing is ever updated in place.
func (s *Service) AppendEvent(ctx context.Context, roomID, token, eventType string, payload map[string]interface{}) (uint64, error) {
	s.sweepOnAccess(ctx)
	eventType = sanitizeText(eventType)
	if roomID == "" || token == "" || eventType == "" || payload == nil {
		return 0, badRequest("Missing fields")
	}
	if _, err := room.ValidateToken(s.rt.DB(), roomID, token); err != nil {
		return 0, err
	}
	if _, ok := eventTypes[eventType]; !ok {
		return 0, badRequest("Invalid event type")
	}

	encoded, err := json.Marshal(sanitizePayload(payload))
	if err != nil {
		return 0, badRequest("Invalid payload")
	}
	if max := s.rt.Config().PayloadMaxBytes; len(encoded) > max {
		return 0, badRequest("Payload too large")
	}

	seq, err := s.rt.Log().Append(ctx, roomID, s.now(), eventType, encoded)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("event appended",
		logpkg.Str("room_id", roomID),
		logpkg.Str("type", eventType),
		logpkg.Uint64("seq", seq),
	)
	return seq, nil
}

// ListEvents returns every event for the room with seq > since, ascending.
// Clients poll with since set to the highest seq they have observed.
func (s *Service) ListEvents(ctx context.Context, roomID, token string, since uint64) ([]Event, error) {
	s.sweepOnAccess(ctx)
	if roomID == "" || token == "" {
		return nil, badRequest("Missing fields")
	}
	if _, err := room.ValidateToken(s.rt.DB(), roomID, token); err != nil {
		return nil, err
	}
	items, err := s.rt.Log().ReadSince(roomID, since)
	if err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(items))
	for _, it := range items {
		var payload map[string]interface{}
		if err := json.Unmarshal(it.Payload, &payload); err != nil {
			// Entries are checksummed on read; a payload that stopped being
			// valid JSON indicates store corruption.
			s.logger.Error("undecodable event payload",
				logpkg.Str("room_id", roomID),
				logpkg.Uint64("seq", it.Seq),
			)
			continue
		}
		events = append(events, Event{Seq: it.Seq, Ts: it.Ts, Type: it.Type, Payload: payload})
	}
	return events, nil
}

// GetExpiration returns the deadline after which the room becomes eligible
// for the next sweep: last activity plus the retention window.
func (s *Service) GetExpiration(ctx context.Context, roomID, token string) (Expiration, error) {
	s.sweepOnAccess(ctx)
	if roomID == "" || token == "" {
		return Expiration{}, badRequest("Missing fields")
	}
	m, err := room.ValidateToken(s.rt.DB(), roomID, token)
	if err != nil {
		return Expiration{}, err
	}
	last := m.CreatedAt
	if ts, ok := s.rt.Log().LastActivity(m.ID); ok {
		last = ts
	}
	return Expiration{
		RoomID:    m.ID,
		ExpiresAt: last + s.rt.Config().RetentionSeconds,
	}, nil
}
