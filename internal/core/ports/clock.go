package ports

import "time"

// Clock abstracts wall-clock time so handlers and jobs can be tested with
// fixed timestamps.
type Clock interface {
	Now() time.Time
}
