package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType is the closed movement enum.
type TransactionType string

const (
	TxGiven    TransactionType = "given"
	TxReturned TransactionType = "returned"
)

// Transaction is a dated record of quantity movement of a product to or from
// a party. Transactions are immutable once created: there is no update path,
// only insert and read.
type Transaction struct {
	BaseModel
	PartyID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"party_id" validate:"uuid_required"`
	Party           *Party          `json:"party,omitempty" validate:"-"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product         *Product        `json:"product,omitempty" validate:"-"`
	TransactionType TransactionType `gorm:"type:varchar(10);not null" json:"transaction_type" validate:"required,oneof=given returned"`
	Quantity        int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	TransactionDate time.Time       `gorm:"type:date;not null;index" json:"transaction_date" validate:"required"`
	Notes           *string         `gorm:"type:text" json:"notes,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}
