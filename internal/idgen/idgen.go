// Package idgen provides surrogate key generation backed by google/uuid.
package idgen

import "github.com/google/uuid"

// Generator returns a new unique id on every call.
type Generator func() string

// UUID returns a random (version 4) UUID string.
func UUID() string {
	return uuid.NewString()
}

// Sequence returns a Generator yielding the given ids in order, then
// panicking. Intended for tests that need predictable ids.
func Sequence(ids ...string) Generator {
	i := 0
	return func() string {
		if i >= len(ids) {
			panic("idgen: sequence exhausted")
		}
		id := ids[i]
		i++
		return id
	}
}
