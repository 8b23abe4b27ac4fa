package waitlist

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a waiting patient hoping for a freed slot. Entries map to the
// waitlist_entries table.
type Entry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	DentistID uuid.UUID `db:"dentist_id" json:"-"`

	Name   string  `db:"name" json:"nome"`
	Phone  *string `db:"phone" json:"telefone,omitempty"`
	Reason *string `db:"reason" json:"motivo,omitempty"`
	Urgent bool    `db:"urgent" json:"urgente"`

	Resolved   bool       `db:"resolved" json:"resolvido"`
	ResolvedAt *time.Time `db:"resolved_at" json:"resolvido_em,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"criado_em"`
}
