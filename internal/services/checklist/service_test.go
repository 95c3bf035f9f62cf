package checklistsvc

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfgpkg "github.com/alkapone312/shared-checklist/internal/config"
	"github.com/alkapone312/shared-checklist/internal/room"
	"github.com/alkapone312/shared-checklist/internal/runtime"
	pebblestore "github.com/alkapone312/shared-checklist/internal/storage/pebble"
	logpkg "github.com/alkapone312/shared-checklist/pkg/log"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	rt, err := runtime.Open(runtime.Options{
		DataDir: t.TempDir(),
		Fsync:   pebblestore.FsyncModeAlways,
		Config:  cfgpkg.Default(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close() })
	logger, err := logpkg.ApplyConfig(&logpkg.Config{Level: "error"})
	require.NoError(t, err)
	return NewWithLogger(rt, logger)
}

func TestCreateAppendPollScenario(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.CreateRoom(ctx)
	require.NoError(t, err)
	assert.Len(t, view.ID, 32)
	assert.Len(t, view.Token, 32)

	seq, err := svc.AppendEvent(ctx, view.ID, view.Token, "add_item", map[string]interface{}{"text": "milk"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq)

	seq, err = svc.AppendEvent(ctx, view.ID, view.Token, "toggle", map[string]interface{}{"id": 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), seq)

	events, err := svc.ListEvents(ctx, view.ID, view.Token, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, uint64(1), events[0].Seq)
	assert.Equal(t, "add_item", events[0].Type)
	assert.Equal(t, "milk", events[0].Payload["text"])
	assert.Equal(t, uint64(2), events[1].Seq)

	tail, err := svc.ListEvents(ctx, view.ID, view.Token, 1)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, uint64(2), tail[0].Seq)

	_, err = svc.ListEvents(ctx, view.ID, "wrong-token", 0)
	assert.ErrorIs(t, err, room.ErrForbidden)

	_, err = svc.ListEvents(ctx, strings.Repeat("0", 32), view.Token, 0)
	assert.ErrorIs(t, err, room.ErrNotFound)
}

func TestGetRoomNeverEchoesToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	view, err := svc.CreateRoom(ctx)
	require.NoError(t, err)

	id, err := svc.GetRoom(ctx, view.ID, view.Token)
	require.NoError(t, err)
	assert.Equal(t, view.ID, id)

	_, err = svc.GetRoom(ctx, view.ID, "nope")
	assert.ErrorIs(t, err, room.ErrForbidden)
}

func TestAppendRejectsUnknownType(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	view, err := svc.CreateRoom(ctx)
	require.NoError(t, err)

	_, err = svc.AppendEvent(ctx, view.ID, view.Token, "drop_table", map[string]interface{}{})
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.EqualError(t, err, "Invalid event type")
}

func TestAppendRejectsOversizedPayload(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	view, err := svc.CreateRoom(ctx)
	require.NoError(t, err)

	_, err = svc.AppendEvent(ctx, view.ID, view.Token, "add_item", map[string]interface{}{
		"text": strings.Repeat("x", 300),
	})
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.EqualError(t, err, "Payload too large")
}

func TestAppendRejectsMissingFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	view, err := svc.CreateRoom(ctx)
	require.NoError(t, err)

	_, err = svc.AppendEvent(ctx, "", view.Token, "add_item", map[string]interface{}{})
	assert.ErrorIs(t, err, ErrBadRequest)
	_, err = svc.AppendEvent(ctx, view.ID, "", "add_item", map[string]interface{}{})
	assert.ErrorIs(t, err, ErrBadRequest)
	_, err = svc.AppendEvent(ctx, view.ID, view.Token, "", map[string]interface{}{})
	assert.ErrorIs(t, err, ErrBadRequest)
	_, err = svc.AppendEvent(ctx, view.ID, view.Token, "add_item", nil)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestAppendSanitizesTopLevelStrings(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	view, err := svc.CreateRoom(ctx)
	require.NoError(t, err)

	_, err = svc.AppendEvent(ctx, view.ID, view.Token, "rename_item", map[string]interface{}{
		"text":   "  new\x00name\x1f ",
		"nested": map[string]interface{}{"inner": " keep \x01 "},
		"count":  float64(3),
	})
	require.NoError(t, err)

	events, err := svc.ListEvents(ctx, view.ID, view.Token, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "newname", events[0].Payload["text"])
	assert.Equal(t, float64(3), events[0].Payload["count"])
	nested, ok := events[0].Payload["nested"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, " keep \x01 ", nested["inner"])
}

func TestExpirationFromCreationWhenNoEvents(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	base := time.Now().Unix()
	svc.now = func() int64 { return base }

	view, err := svc.CreateRoom(ctx)
	require.NoError(t, err)

	exp, err := svc.GetExpiration(ctx, view.ID, view.Token)
	require.NoError(t, err)
	assert.Equal(t, view.ID, exp.RoomID)
	assert.Equal(t, base+86400, exp.ExpiresAt)
}

func TestExpirationFromLastEvent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	base := time.Now().Unix()

	svc.now = func() int64 { return base }
	view, err := svc.CreateRoom(ctx)
	require.NoError(t, err)

	svc.now = func() int64 { return base + 500 }
	_, err = svc.AppendEvent(ctx, view.ID, view.Token, "add_item", map[string]interface{}{"text": "a"})
	require.NoError(t, err)

	exp, err := svc.GetExpiration(ctx, view.ID, view.Token)
	require.NoError(t, err)
	assert.Equal(t, base+500+86400, exp.ExpiresAt)
}
