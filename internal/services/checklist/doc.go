// Package checklistsvc implements the checklist sync facade on top of the
// internal room registry and event log. It is consumed by the HTTP
// transport and owns the protocol-level rules:
//
//   - every operation runs the expiration sweep first (garbage collection
//     on access, no background scheduler),
//   - event types are a closed six-member contract,
//   - top-level string payload fields are trimmed and stripped of control
//     characters before persisting,
//   - serialized payloads are size-bounded (256 bytes by default).
//
// Example:
//
//	svc := checklistsvc.New(rt)
//	view, _ := svc.CreateRoom(ctx)
//	seq, _ := svc.AppendEvent(ctx, view.ID, view.Token, "add_item", map[string]any{"text": "milk"})
//	events, _ := svc.ListEvents(ctx, view.ID, view.Token, 0)
//	_ = seq
//	_ = events
package checklistsvc
