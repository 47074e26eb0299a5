// Package patient manages the practice's patient roster. Superbills snapshot
// the patient name and date of birth at creation, so edits here do not
// rewrite issued documents.
package patient

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	DOB       *time.Time `json:"dob,omitempty" db:"dob"`
	Phone     string     `json:"phone" db:"phone"`
	Email     string     `json:"email" db:"email"`
	Address   string     `json:"address" db:"address"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
