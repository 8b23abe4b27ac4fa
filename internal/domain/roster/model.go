package roster

import (
	"time"

	"github.com/google/uuid"
)

// Professional is a calendar-displayed practitioner of the practice. It is a
// display record, not a login: accounts live in the account package.
type Professional struct {
	ID        uuid.UUID `db:"id" json:"id"`
	DentistID uuid.UUID `db:"dentist_id" json:"-"`

	Name      string  `db:"name" json:"nome"`
	CRO       *string `db:"cro" json:"cro,omitempty"`
	Specialty *string `db:"specialty" json:"especialidade,omitempty"`
	Icon      *string `db:"icon" json:"icone,omitempty"`
	Photo     *string `db:"photo" json:"foto,omitempty"`
	Color     *string `db:"color" json:"cor,omitempty"`
	Active    bool    `db:"active" json:"ativo"`

	CreatedAt time.Time `db:"created_at" json:"criado_em"`
	UpdatedAt time.Time `db:"updated_at" json:"atualizado_em"`
}

// DeleteInput carries the password re-entry required to remove a
// professional from the roster.
type DeleteInput struct {
	Password string `json:"senha"`
}
