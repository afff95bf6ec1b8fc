package model

import "time"

type Payment struct {
	DTO
	BookingId   uint       `gorm:"not null;index" json:"bookingId"`
	Booking     Booking    `gorm:"foreignKey:BookingId" json:"-"`
	Amount      float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency    string     `gorm:"size:3;default:'USD'" json:"currency"`
	Method      string     `gorm:"not null" json:"method"` // CARD, BANK_TRANSFER
	Status      string     `gorm:"not null;default:'PENDING'" json:"status"`
	PaymentCode string     `gorm:"unique;size:30" json:"paymentCode"`
	GatewayRef  string     `json:"gatewayRef"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
}

type CreatePaymentInput struct {
	BookingId uint   `json:"bookingId" validate:"required"`
	Method    string `json:"method" validate:"required,oneof=CARD BANK_TRANSFER"`
}

type ConfirmPaymentInput struct {
	PaymentCode string `json:"paymentCode" validate:"required"`
}

// PaymentRequest is the contract handed to the gateway: final total plus currency.
type PaymentRequest struct {
	Amount    float64
	Currency  string
	OrderInfo string
	TxnRef    string
	IPAddr    string
}

type PaymentResult struct {
	IsSuccess bool
	TxnRef    string
	Message   string
}
