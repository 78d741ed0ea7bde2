package models

import "time"

// TransactionType is one of the OFX transaction type codes.
type TransactionType string

const (
	TrnTypeCredit      TransactionType = "CREDIT"
	TrnTypeDebit       TransactionType = "DEBIT"
	TrnTypeInterest    TransactionType = "INT"
	TrnTypeDividend    TransactionType = "DIV"
	TrnTypeFee         TransactionType = "FEE"
	TrnTypeServCharge  TransactionType = "SRVCHG"
	TrnTypeDeposit     TransactionType = "DEP"
	TrnTypeATM         TransactionType = "ATM"
	TrnTypePOS         TransactionType = "POS"
	TrnTypeTransfer    TransactionType = "XFER"
	TrnTypeCheck       TransactionType = "CHECK"
	TrnTypePayment     TransactionType = "PAYMENT"
	TrnTypeCash        TransactionType = "CASH"
	TrnTypeDirectDep   TransactionType = "DIRECTDEP"
	TrnTypeDirectDebit TransactionType = "DIRECTDEBIT"
	TrnTypeRepeatPmt   TransactionType = "REPEATPMT"
	TrnTypeHold        TransactionType = "HOLD"
	TrnTypeOther       TransactionType = "OTHER"
)

// TransactionTypes lists every valid OFX transaction type code.
var TransactionTypes = []TransactionType{
	TrnTypeCredit, TrnTypeDebit, TrnTypeInterest, TrnTypeDividend,
	TrnTypeFee, TrnTypeServCharge, TrnTypeDeposit, TrnTypeATM,
	TrnTypePOS, TrnTypeTransfer, TrnTypeCheck, TrnTypePayment,
	TrnTypeCash, TrnTypeDirectDep, TrnTypeDirectDebit, TrnTypeRepeatPmt,
	TrnTypeHold, TrnTypeOther,
}

// Transaction represents a bank transaction imported for a user. Categories
// tag transactions through a non-owning many-to-many relation.
type Transaction struct {
	Base
	UserID    string          `gorm:"type:uuid;not null;index" json:"userId" validate:"required,uuid4"`
	Date      time.Time       `gorm:"not null" json:"date" validate:"required"`
	Amount    float64         `gorm:"not null" json:"amount"`
	Name      string          `gorm:"size:255" json:"name,omitempty" validate:"omitempty,max=255"`
	Type      TransactionType `gorm:"type:varchar(11);not null" json:"type" validate:"required,trn_type"`
	PublicID  string          `gorm:"size:255" json:"publicId,omitempty" validate:"omitempty,max=255"`
	Currency  string          `gorm:"type:varchar(3);not null" json:"currency" validate:"required,iso4217"`
	Balance   float64         `gorm:"not null" json:"balance"`
	BankID    string          `gorm:"size:9" json:"bankId,omitempty" validate:"omitempty,max=9"`
	AccountID string          `gorm:"size:22" json:"accountId,omitempty" validate:"omitempty,max=22"`

	// Relationships
	Categories []Category `gorm:"many2many:transaction_categories" json:"categories" validate:"-"`
}
