package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etapas nominales del pipeline de ventas. Stage es texto libre: se aceptan
// valores fuera de esta lista y no hay máquina de estados entre etapas.
const (
	StageLead        = "lead"
	StageQualified   = "qualified"
	StageProposal    = "proposal"
	StageNegotiation = "negotiation"
	StageWon         = "won"
	StageLost        = "lost"
)

// Deal representa un negocio/oportunidad. Esquema fijo, sin campos
// personalizados. ContactID y CompanyID son asociaciones opcionales que la FK
// deja en NULL al borrar el registro referenciado.
type Deal struct {
	ID          string
	UserID      string
	ContactID   *string
	CompanyID   *string
	Title       string
	Value       decimal.Decimal
	Stage       string
	ContactName string // derivado del JOIN con contacts, no se persiste
	CompanyName string // derivado del JOIN con companies, no se persiste
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
