// Package id generates the opaque 128-bit identifiers used for rooms and
// their access tokens.
//
// Ids are unguessable by construction: 16 bytes from crypto/rand, encoded
// as 32 lowercase hex digits. Uniqueness is probabilistic; callers do not
// retry on collision.
//
//	roomID, _ := id.NewString()
//	token, _ := id.NewString()
package id
