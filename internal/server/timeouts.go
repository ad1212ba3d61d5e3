package server

import "time"

const (
	readTimeout  = 10 * time.Second
	// The chat relay may wait on two LLM backends in sequence, so the
	// write timeout is generous.
	writeTimeout = 75 * time.Second
	idleTimeout  = 60 * time.Second

	// minRequestInterval smooths bursts toward the upstream API when
	// several live matches are being watched at once.
	minRequestInterval = 2 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
