package models

import "time"

// AddRecordRequest is the request body for POST /dns.
//
// Field contents are validated by the engine, not by binding tags, so the
// API can report the specific violated rule with the right status code.
type AddRecordRequest struct {
	Hostname string `json:"hostname"`
	Type     string `json:"type"`
	Value    string `json:"value"`
}

// RecordResponse is a single DNS record as returned by the API.
type RecordResponse struct {
	ID        string    `json:"id"`
	Hostname  string    `json:"hostname"`
	Type      string    `json:"type"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// ResolveResponse is the response for GET /dns/{hostname}: the original
// query plus every terminal A record value.
type ResolveResponse struct {
	Hostname  string   `json:"hostname"`
	Addresses []string `json:"addresses"`
}
