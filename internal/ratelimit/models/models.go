// Package models holds the rate limiting value types.
package models

import "time"

// EndpointClass groups endpoints that share a limit.
type EndpointClass string

const (
	// ClassRead covers queries.
	ClassRead EndpointClass = "read"
	// ClassWrite covers club mutations and treasury withdrawals.
	ClassWrite EndpointClass = "write"
)

// Limit is a request budget per sliding window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// RateLimitResult is the outcome of one check against a bucket.
type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter int // seconds
}

// RateLimitExceededResponse is the 429 body.
type RateLimitExceededResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}
