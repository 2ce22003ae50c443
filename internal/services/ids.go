package services

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// newULID mints a lexicographically time-ordered identifier. Listings,
// messages, and offers use ULIDs so IDs sort by creation time.
func newULID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Now(), entropy).String()
}
