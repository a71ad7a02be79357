package identity

import (
	"time"

	"github.com/google/uuid"
)

// Generator issues UUIDv7 identifiers. The timestamp prefix makes them
// lexically sortable, so natural key order approximates creation order.
type Generator struct{}

func (Generator) NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

type UTCClock struct{}

func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}
