// Package room stores room metadata records in the shared Pebble keyspace
// and owns token validation.
//
// Records live under room/{id} as JSON. A room is created once, never
// updated, and deleted only by the expiration sweep together with its
// events. The token never appears in logs or in any response other than
// the creator's.
package room
