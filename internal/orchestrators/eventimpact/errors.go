package eventimpact

import (
	"fmt"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// ApplicationError reports the impact that failed while applying an event.
// Impacts applied before it in the same call have been undone.
type ApplicationError struct {
	EventID    string
	Index      int
	ImpactType entities.ImpactType
	Cause      error
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("event %s: impact %d (%s) failed: %v", e.EventID, e.Index, e.ImpactType, e.Cause)
}

func (e *ApplicationError) Unwrap() error {
	return e.Cause
}
