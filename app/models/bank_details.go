package models

import "errors"

// ErrBankDetailsNotFound is returned when a bank details id matches nothing.
var ErrBankDetailsNotFound = errors.New("bank details not found")

// BankDetails is the account customers transfer to. Plain CRUD record.
type BankDetails struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	BankName      string `gorm:"size:255;not null" json:"bank_name"`
	AccountName   string `gorm:"size:255;not null" json:"account_name"`
	AccountNumber string `gorm:"size:255;not null" json:"account_number"`
}

func (b *BankDetails) TableName() string {
	return "bank_details"
}
