// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations such as
// server shutdown and backend client pings.
const DefaultTimeout = 10 * time.Second
