package usecase

import (
	"time"

	"github.com/google/uuid"
)

// newID returns a fresh item identifier.
func (uc *implUseCase) newID() string {
	return uuid.NewString()
}

// now returns the creation timestamp at the precision every backend can store.
func (uc *implUseCase) now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
