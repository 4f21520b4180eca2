// Package timeouts defines shared timeout constants used by ritual commands.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the ritual server.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single ritualctl request.
const GRPCRequest = 2 * time.Second

// ReadHeader limits how long the metrics HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long servers wait for in-flight requests during
// graceful shutdown before forcing a stop.
const Shutdown = 5 * time.Second
