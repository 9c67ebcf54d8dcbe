package domain

import "github.com/google/uuid"

type DrainOutcome struct {
	CommissionID uuid.UUID
	Status       Status // Status after the attempt.
	Err          error
}

type DrainResult struct {
	// Attempted counts claimed items, whether or not they settled.
	Attempted int
	Outcomes  []DrainOutcome
}

func (r DrainResult) Failed() int {
	var n int
	for _, o := range r.Outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
