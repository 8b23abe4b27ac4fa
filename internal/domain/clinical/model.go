package clinical

import (
	"time"

	"github.com/google/uuid"
)

// Note maps to the clinical_notes table. Notes are append-only: there is no
// update or delete path, so the record of treatment stays immutable.
type Note struct {
	ID        uuid.UUID `db:"id" json:"id"`
	DentistID uuid.UUID `db:"dentist_id" json:"-"`
	PatientID uuid.UUID `db:"patient_id" json:"paciente_id"`

	Date        string   `db:"date" json:"data"`
	Procedure   *string  `db:"procedure" json:"procedimento,omitempty"`
	Tooth       *string  `db:"tooth" json:"dente,omitempty"`
	Description string   `db:"description" json:"descricao"`
	Price       *float64 `db:"price" json:"valor,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"criado_em"`
}
