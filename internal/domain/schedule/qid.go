package schedule

import (
	"fmt"
	"math/rand/v2"
)

// NewQID builds the public appointment identifier:
// {patient_id}-{doctor_id}-{4 random digits}. Uniqueness is enforced by
// the database; callers regenerate on collision.
func NewQID(patientID, doctorID uint) string {
	return fmt.Sprintf("%d-%d-%04d", patientID, doctorID, rand.IntN(10000))
}
