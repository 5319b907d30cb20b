// Package lifecycle holds shared constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers, collections, buckets and publishers.
const DefaultTimeout = 10 * time.Second
