// Package lifecycle holds shared constants for service startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of the delivery servers.
const DefaultTimeout = 10 * time.Second
