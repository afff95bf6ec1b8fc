package model

import "time"

type RatePlan struct {
	DTO
	RoomId    uint      `gorm:"not null;index" json:"roomId"`
	Room      Room      `gorm:"foreignKey:RoomId" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	BasePrice float64   `gorm:"type:decimal(10,2);not null" json:"basePrice"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`
	MinStay   *int      `json:"minStay,omitempty"`
	MaxStay   *int      `json:"maxStay,omitempty"`
	Discount  *float64  `gorm:"type:decimal(5,2)" json:"discount,omitempty"` // percentage off the ledger sum
	Markup    *float64  `gorm:"type:decimal(5,2)" json:"markup,omitempty"`   // percentage on top of the ledger sum
	Priority  int       `gorm:"default:0" json:"priority"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
}
type RatePlans []RatePlan

type CreateRatePlanInput struct {
	Name      string   `json:"name" validate:"required"`
	BasePrice float64  `json:"basePrice" validate:"required,gt=0"`
	StartDate string   `json:"startDate" validate:"required"`
	EndDate   string   `json:"endDate" validate:"required"`
	MinStay   *int     `json:"minStay" validate:"omitempty,min=1"`
	MaxStay   *int     `json:"maxStay" validate:"omitempty,min=1"`
	Discount  *float64 `json:"discount" validate:"omitempty,gt=0,lt=100"`
	Markup    *float64 `json:"markup" validate:"omitempty,gt=0"`
	Priority  int      `json:"priority" validate:"omitempty"`
}
