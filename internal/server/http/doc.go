// Package httpserver exposes the checklist sync protocol as a JSON HTTP
// API. Every response is an envelope: {"ok":true,"data":...} on success,
// {"ok":false,"error":"..."} with a 4xx/5xx status on failure.
package httpserver
