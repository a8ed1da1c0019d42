package model

// PartyStatus is a tagged status rather than a raw boolean so future states
// (e.g. blacklisted) don't reinterpret the flag.
type PartyStatus string

const (
	PartyActive   PartyStatus = "active"
	PartyInactive PartyStatus = "inactive"
)

// Party is a customer account that can hold rented items. Parties are never
// physically deleted; a delete flips Status to inactive and read paths filter
// on active parties only.
type Party struct {
	BaseModel
	PartyName     string      `gorm:"type:varchar(255);not null" json:"party_name" validate:"required"`
	ContactPerson *string     `gorm:"type:varchar(255)" json:"contact_person,omitempty"`
	PhoneNumber   *string     `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Email         *string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address       *string     `gorm:"type:text" json:"address,omitempty"`
	Status        PartyStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status" validate:"required,oneof=active inactive"`

	Transactions []Transaction `json:"transactions,omitempty"`
}

func (Party) TableName() string {
	return "parties"
}

// IsActive preserves the boolean surface of the stored schema contract.
func (p *Party) IsActive() bool {
	return p.Status == PartyActive
}
