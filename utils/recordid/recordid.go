package recordid

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyOnce sync.Once
	entropy     *ulid.MonotonicEntropy
)

func newEntropy() *ulid.MonotonicEntropy {
	entropyOnce.Do(func() {
		source := rand.NewSource(time.Now().UnixNano())
		entropy = ulid.Monotonic(rand.New(source), 0)
	})
	return entropy
}

// New returns a fresh mp_* ULID string used as a record identifier.
// Identifiers are generated on the writing side before any upload so that
// storage keys can be namespaced under the record before the row exists.
func New() string {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), newEntropy())
	return "mp_" + strings.ToLower(id.String())
}

// IsValid reports whether the string is an mp_* ULID.
func IsValid(value string) bool {
	if !strings.HasPrefix(value, "mp_") {
		return false
	}
	_, err := Parse(value)
	return err == nil
}

// Parse strips the mp_ prefix and returns the ULID.
func Parse(value string) (ulid.ULID, error) {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "mp_")
	value = strings.TrimPrefix(value, "MP_")
	return ulid.Parse(value)
}
