package controller

import (
	"github.com/google/uuid"
)

// generateTimeBasedId returns a time-ordered id for log correlation.
func (c controller) generateTimeBasedId() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
