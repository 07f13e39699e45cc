// Package uuid generates the string identifiers used for every persisted record.
package uuid

import (
	"strconv"
	"strings"
	"time"

	google_uuid "github.com/google/uuid"
)

// Generator returns a new identifier on every call.
type Generator func() string

// suffixLength is the number of random hex characters appended to the timestamp.
const suffixLength = 13

// New returns an identifier consisting of the base-36 encoded Unix milliseconds
// followed by random characters of a version 4 UUID.
func New() string {
	return NewAt(time.Now())
}

// NewAt is New with an explicit timestamp for the prefix.
func NewAt(t time.Time) string {
	random := strings.ReplaceAll(google_uuid.NewString(), "-", "")
	return strconv.FormatInt(t.UnixMilli(), 36) + random[:suffixLength]
}
