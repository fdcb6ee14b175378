package server

import "time"

// DefaultShutdownTimeout is the default timeout for graceful server shutdown
const DefaultShutdownTimeout = 30 * time.Second

// DefaultReadHeaderTimeout bounds how long a client may take to send headers.
const DefaultReadHeaderTimeout = 10 * time.Second
