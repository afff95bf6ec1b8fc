package model

import "time"

type Promotion struct {
	DTO
	HotelId       *uint     `gorm:"index" json:"hotelId,omitempty"` // nil = site-wide
	Hotel         *Hotel    `gorm:"foreignKey:HotelId" json:"hotel,omitempty"`
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	Code          string    `gorm:"unique;not null" json:"code"`
	DiscountType  string    `gorm:"not null" json:"discountType"` // PERCENTAGE, FIXED_AMOUNT, FREE_NIGHTS
	DiscountValue float64   `gorm:"type:decimal(10,2);not null" json:"discountValue"`
	MaxDiscount   *float64  `gorm:"type:decimal(10,2)" json:"maxDiscount,omitempty"`
	StartDate     time.Time `gorm:"not null" json:"startDate"`
	EndDate       time.Time `gorm:"not null" json:"endDate"`
	UsageLimit    *int      `json:"usageLimit,omitempty"`
	UsageCount    int       `gorm:"default:0" json:"usageCount"`
	MinAmount     *float64  `gorm:"type:decimal(10,2)" json:"minAmount,omitempty"`
	MinNights     *int      `json:"minNights,omitempty"`
	IsActive      bool      `gorm:"default:true" json:"isActive"`
}
type Promotions []Promotion

type CreatePromotionInput struct {
	HotelId       *uint    `json:"hotelId" validate:"omitempty"`
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"omitempty,min=10"`
	Code          string   `json:"code" validate:"required,min=3"`
	DiscountType  string   `json:"discountType" validate:"required,oneof=PERCENTAGE FIXED_AMOUNT FREE_NIGHTS"`
	DiscountValue float64  `json:"discountValue" validate:"required,gt=0"`
	MaxDiscount   *float64 `json:"maxDiscount" validate:"omitempty,gt=0"`
	StartDate     string   `json:"startDate" validate:"required"`
	EndDate       string   `json:"endDate" validate:"required"`
	UsageLimit    *int     `json:"usageLimit" validate:"omitempty,gt=0"`
	MinAmount     *float64 `json:"minAmount" validate:"omitempty,gt=0"`
	MinNights     *int     `json:"minNights" validate:"omitempty,min=1"`
}

type UpdatePromotionInput struct {
	Title         *string  `json:"title" validate:"omitempty"`
	Description   *string  `json:"description" validate:"omitempty,min=10"`
	DiscountValue *float64 `json:"discountValue" validate:"omitempty,gt=0"`
	MaxDiscount   *float64 `json:"maxDiscount" validate:"omitempty,gt=0"`
	StartDate     *string  `json:"startDate" validate:"omitempty"`
	EndDate       *string  `json:"endDate" validate:"omitempty"`
	UsageLimit    *int     `json:"usageLimit" validate:"omitempty,gt=0"`
	MinAmount     *float64 `json:"minAmount" validate:"omitempty,gt=0"`
	MinNights     *int     `json:"minNights" validate:"omitempty,min=1"`
	IsActive      *bool    `json:"isActive" validate:"omitempty"`
}

type ValidatePromotionInput struct {
	Code          string  `json:"code" validate:"required"`
	HotelId       *uint   `json:"hotelId" validate:"omitempty"`
	BookingAmount float64 `json:"bookingAmount" validate:"required,gt=0"`
	Nights        int     `json:"nights" validate:"required,min=1"`
}
