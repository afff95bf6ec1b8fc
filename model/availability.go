package model

import "time"

// Availability is the inventory ledger: one row per room per calendar date.
type Availability struct {
	DTO
	HotelId   uint      `gorm:"not null;index" json:"hotelId"`
	RoomId    uint      `gorm:"not null;uniqueIndex:idx_room_date" json:"roomId"`
	Room      Room      `gorm:"foreignKey:RoomId" json:"-"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_room_date" json:"date"`
	Available int       `gorm:"not null;default:0" json:"available"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Currency  string    `gorm:"size:3;default:'USD'" json:"currency"`
	MinStay   *int      `json:"minStay,omitempty"`
	MaxStay   *int      `json:"maxStay,omitempty"`
	IsBlocked bool      `gorm:"default:false" json:"isBlocked"`
	Reason    *string   `json:"reason,omitempty"`
}
type Availabilities []Availability

type UpdateAvailabilityInput struct {
	HotelId   uint     `json:"hotelId" validate:"required"`
	RoomId    uint     `json:"roomId" validate:"required"`
	Date      string   `json:"date" validate:"required"`
	Available int      `json:"available" validate:"min=0"`
	Price     float64  `json:"price" validate:"required,gt=0"`
	Currency  string   `json:"currency" validate:"omitempty,len=3"`
	MinStay   *int     `json:"minStay" validate:"omitempty,min=1"`
	MaxStay   *int     `json:"maxStay" validate:"omitempty,min=1"`
	IsBlocked *bool    `json:"isBlocked" validate:"omitempty"`
	Reason    *string  `json:"reason" validate:"omitempty"`
}

type BulkAvailabilityInput struct {
	HotelId   uint     `json:"hotelId" validate:"required"`
	RoomId    uint     `json:"roomId" validate:"required"`
	StartDate string   `json:"startDate" validate:"required"`
	EndDate   string   `json:"endDate" validate:"required"`
	Available *int     `json:"available" validate:"omitempty,min=0"`
	Price     *float64 `json:"price" validate:"omitempty,gt=0"`
	MinStay   *int     `json:"minStay" validate:"omitempty,min=1"`
	MaxStay   *int     `json:"maxStay" validate:"omitempty,min=1"`
}

type BlockDatesInput struct {
	HotelId   uint    `json:"hotelId" validate:"required"`
	RoomId    uint    `json:"roomId" validate:"required"`
	StartDate string  `json:"startDate" validate:"required"`
	EndDate   string  `json:"endDate" validate:"required"`
	IsBlocked bool    `json:"isBlocked"`
	Reason    *string `json:"reason" validate:"omitempty"`
}

type CheckAvailabilityQuery struct {
	HotelId  uint   `query:"hotelId" validate:"required"`
	CheckIn  string `query:"checkIn" validate:"required"`
	CheckOut string `query:"checkOut" validate:"required"`
	Adults   int    `query:"adults" validate:"omitempty,min=1,max=20"`
	Children int    `query:"children" validate:"omitempty,min=0,max=10"`
	Rooms    int    `query:"rooms" validate:"omitempty,min=1,max=10"`
}
