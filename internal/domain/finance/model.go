package finance

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeIncome  = "receita"
	TypeExpense = "despesa"
)

// Entry maps to the financial_entries table. Entries stay mutable and are
// removed with a hard delete, matching how a ledger correction works here.
type Entry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	DentistID uuid.UUID `db:"dentist_id" json:"-"`

	Type        string     `db:"type" json:"tipo"`
	Description string     `db:"description" json:"descricao"`
	Amount      float64    `db:"amount" json:"valor"`
	Date        string     `db:"date" json:"data"`
	Status      string     `db:"status" json:"status"`
	Method      *string    `db:"method" json:"forma_pagamento,omitempty"`
	Installment *int       `db:"installments" json:"parcelas,omitempty"`
	PatientID   *uuid.UUID `db:"patient_id" json:"paciente_id,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"criado_em"`
	UpdatedAt time.Time `db:"updated_at" json:"atualizado_em"`
}

// Invoice maps to the invoices table. Number is a per-dentist sequence
// assigned at insert time.
type Invoice struct {
	ID        uuid.UUID `db:"id" json:"id"`
	DentistID uuid.UUID `db:"dentist_id" json:"-"`

	Number      int     `db:"number" json:"numero"`
	Amount      float64 `db:"amount" json:"valor"`
	IssueDate   string  `db:"issue_date" json:"data_emissao"`
	ServiceDesc string  `db:"service_desc" json:"descricao_servico"`
	Status      string  `db:"status" json:"status"`

	CreatedAt time.Time `db:"created_at" json:"criado_em"`
}

// EntryFilter narrows an entry listing. Month is "2006-01" and matches the
// date column by prefix.
type EntryFilter struct {
	Type   string
	Status string
	Month  string
}
