package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New generates a ULID string for notification, feedback and expense rows.
// ULIDs sort lexicographically by creation time, so id-keyed tables keep a
// rough chronological order for free.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
