// Package ids generates the opaque identifiers used across the platform.
package ids

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const suffixLength = 5

// NewComplaintID returns a tracking ID built from a time-derived prefix and a
// short random suffix. Uniqueness is practical within one running instance,
// not cryptographically guaranteed.
func NewComplaintID() string {
	var b strings.Builder
	b.WriteByte('C')
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	for i := 0; i < suffixLength; i++ {
		b.WriteByte(suffixAlphabet[rand.Intn(len(suffixAlphabet))])
	}
	return b.String()
}

// NewID returns an opaque identifier for users, comments and audit records
func NewID() string {
	return uuid.NewString()
}
