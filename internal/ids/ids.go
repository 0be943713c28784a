package ids

import (
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

// NewEntity returns a random identifier for companies, users and assets.
func NewEntity() string {
	return uuid.NewString()
}

// NewAudit returns a lexicographically sortable identifier. IDs issued within
// the same millisecond still sort in issue order.
func NewAudit() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
