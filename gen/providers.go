package gen

import (
	"time"

	"github.com/google/uuid"
)

// Providers supplies the nondeterministic inputs renderers need. Injecting
// them keeps rendered output reproducible under test.
type Providers struct {
	NewID func() uuid.UUID
	Now   func() time.Time
}

// DefaultProviders returns wall-clock and random-UUID providers.
func DefaultProviders() Providers {
	return Providers{
		NewID: uuid.New,
		Now:   func() time.Time { return time.Now().UTC() },
	}
}
