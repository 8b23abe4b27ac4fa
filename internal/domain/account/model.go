package account

import (
	"time"

	"github.com/google/uuid"
)

// Dentist maps to the dentists table. A dentist account is the tenant every
// other record in the system is scoped to.
type Dentist struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"nome"`
	CRO          string    `db:"cro" json:"cro"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Clinic       *string   `db:"clinic" json:"clinica,omitempty"`
	Specialty    *string   `db:"specialty" json:"especialidade,omitempty"`
	Phone        *string   `db:"phone" json:"telefone,omitempty"`
	Active       bool      `db:"active" json:"ativo"`
	Plan         string    `db:"plan" json:"plano"`
	CreatedAt    time.Time `db:"created_at" json:"criado_em"`
	UpdatedAt    time.Time `db:"updated_at" json:"atualizado_em"`
}

// RegisterInput is the payload accepted by the registration endpoint.
type RegisterInput struct {
	Name      string `json:"nome"`
	CRO       string `json:"cro"`
	Email     string `json:"email"`
	Password  string `json:"senha"`
	Clinic    string `json:"clinica"`
	Specialty string `json:"especialidade"`
	Phone     string `json:"telefone"`
}

// LoginInput is the payload accepted by the login endpoint.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// ProfileInput is the payload accepted by the profile update endpoint.
type ProfileInput struct {
	Name      string `json:"nome"`
	CRO       string `json:"cro"`
	Clinic    string `json:"clinica"`
	Specialty string `json:"especialidade"`
	Phone     string `json:"telefone"`
}
