package ids

import "github.com/google/uuid"

// Source issues unique row ids. Stores take one so tests can swap in a
// deterministic sequence.
type Source interface {
	NewID() uuid.UUID
}

type randomSource struct{}

func (randomSource) NewID() uuid.UUID { return uuid.New() }

// Random returns the production Source backed by uuid.New.
func Random() Source { return randomSource{} }
