package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. Every row is owned by exactly one
// dentist account.
//
// Two identity-document modes coexist: the domestic CPF/RG fields and the
// foreign passport fields. Both sets persist regardless of which mode is in
// use; exclusivity is intentionally not enforced.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	DentistID uuid.UUID `db:"dentist_id" json:"-"`

	Name      string  `db:"name" json:"nome"`
	CPF       *string `db:"cpf" json:"cpf,omitempty"`
	RG        *string `db:"rg" json:"rg,omitempty"`
	BirthDate *string `db:"birth_date" json:"data_nascimento,omitempty"`
	Phone     *string `db:"phone" json:"telefone,omitempty"`
	Email     *string `db:"email" json:"email,omitempty"`
	Address   *string `db:"address" json:"endereco,omitempty"`
	City      *string `db:"city" json:"cidade,omitempty"`
	State     *string `db:"state" json:"estado,omitempty"`
	ZipCode   *string `db:"zip_code" json:"cep,omitempty"`

	// Guardian sub-record, required in practice when the patient is a minor.
	GuardianName     *string `db:"guardian_name" json:"responsavel_nome,omitempty"`
	GuardianCPF      *string `db:"guardian_cpf" json:"responsavel_cpf,omitempty"`
	GuardianRG       *string `db:"guardian_rg" json:"responsavel_rg,omitempty"`
	GuardianPhone    *string `db:"guardian_phone" json:"responsavel_telefone,omitempty"`
	GuardianRelation *string `db:"guardian_relation" json:"responsavel_parentesco,omitempty"`

	// Foreign-resident sub-record, the alternative identity-document mode.
	Passport    *string `db:"passport" json:"passaporte,omitempty"`
	Country     *string `db:"country" json:"pais_origem,omitempty"`
	Nationality *string `db:"nationality" json:"nacionalidade,omitempty"`

	Notes *string `db:"notes" json:"observacoes,omitempty"`

	Active    bool      `db:"active" json:"ativo"`
	CreatedAt time.Time `db:"created_at" json:"criado_em"`
	UpdatedAt time.Time `db:"updated_at" json:"atualizado_em"`
}
