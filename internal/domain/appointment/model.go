package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Canonical status values. Anything else supplied by a client is stored
// verbatim; the original surface treats status as free-form text.
const (
	StatusScheduled = "agendado"
	StatusConfirmed = "confirmado"
	StatusCancelled = "cancelado"
)

// Appointment maps to the appointments table. The patient name and phone are
// a point-in-time snapshot written at creation/update; they are not kept in
// sync with the patient row and survive its deletion.
//
// Dates and times are stored as ISO strings ("2006-01-02", "15:04"), which
// order correctly both lexicographically and in SQL.
type Appointment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	DentistID uuid.UUID `db:"dentist_id" json:"-"`

	PatientID    *uuid.UUID `db:"patient_id" json:"paciente_id,omitempty"`
	PatientName  string     `db:"patient_name" json:"paciente_nome"`
	PatientPhone *string    `db:"patient_phone" json:"paciente_telefone,omitempty"`

	Date        string   `db:"date" json:"data"`
	Time        string   `db:"time" json:"hora"`
	DurationMin int      `db:"duration_min" json:"duracao"`
	Procedure   *string  `db:"procedure" json:"procedimento,omitempty"`
	Price       *float64 `db:"price" json:"valor,omitempty"`
	Status      string   `db:"status" json:"status"`
	FitIn       bool     `db:"fit_in" json:"encaixe"`
	Code        string   `db:"code" json:"codigo_confirmacao"`

	CreatedAt time.Time `db:"created_at" json:"criado_em"`
	UpdatedAt time.Time `db:"updated_at" json:"atualizado_em"`
}

// PublicView is the reduced shape returned by the unauthenticated
// confirmation endpoints. Possession of the code is the credential, so the
// view exposes only what the patient needs to recognize the visit.
type PublicView struct {
	PatientName string  `json:"paciente_nome"`
	Date        string  `json:"data"`
	Time        string  `json:"hora"`
	Procedure   *string `json:"procedimento,omitempty"`
	Status      string  `json:"status"`
	Clinic      string  `json:"clinica"`
	Dentist     string  `json:"dentista"`
	Phone       string  `json:"telefone"`
}

// ConfirmInput is the payload of the public confirm/cancel endpoint.
type ConfirmInput struct {
	Code   string `json:"codigo"`
	Action string `json:"acao"`
}
