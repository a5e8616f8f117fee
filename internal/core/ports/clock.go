package ports

import "time"

// Clock tells the current time. Handlers take it as a dependency so tests can pin it.
type Clock interface {
	Now() time.Time
}
