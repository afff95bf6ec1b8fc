package model

import "time"

const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCheckedIn = "CHECKED_IN"
	BookingCheckedOut = "CHECKED_OUT"
	BookingCancelled = "CANCELLED"
	BookingNoShow    = "NO_SHOW"

	PaymentPending           = "PENDING"
	PaymentProcessing        = "PROCESSING"
	PaymentCompleted         = "COMPLETED"
	PaymentFailed            = "FAILED"
	PaymentRefunded          = "REFUNDED"
	PaymentPartiallyRefunded = "PARTIALLY_REFUNDED"
)

type Booking struct {
	DTO
	BookingNumber  string     `gorm:"uniqueIndex;size:30;not null" json:"bookingNumber"`
	AccountId      uint       `gorm:"not null;index" json:"accountId"`
	Account        Account    `gorm:"foreignKey:AccountId" json:"-"`
	HotelId        uint       `gorm:"not null;index" json:"hotelId"`
	Hotel          Hotel      `gorm:"foreignKey:HotelId" json:"hotel,omitempty"`
	GuestFirstName string     `gorm:"not null" json:"guestFirstName"`
	GuestLastName  string     `gorm:"not null" json:"guestLastName"`
	GuestEmail     string     `gorm:"not null" json:"guestEmail"`
	GuestPhone     string     `gorm:"not null" json:"guestPhone"`
	CheckIn        time.Time  `gorm:"not null" json:"checkIn"`
	CheckOut       time.Time  `gorm:"not null" json:"checkOut"`
	Nights         int        `gorm:"not null" json:"nights"`
	Adults         int        `gorm:"default:1" json:"adults"`
	Children       int        `gorm:"default:0" json:"children"`
	Infants        int        `gorm:"default:0" json:"infants"`
	Subtotal       float64    `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Taxes          float64    `gorm:"type:decimal(10,2);not null" json:"taxes"`
	Fees           float64    `gorm:"type:decimal(10,2);not null" json:"fees"`
	Discount       float64    `gorm:"type:decimal(10,2);default:0" json:"discount"`
	Total          float64    `gorm:"type:decimal(10,2);not null" json:"total"`
	Currency       string     `gorm:"size:3;default:'USD'" json:"currency"`
	Status         string     `gorm:"not null;default:'PENDING'" json:"status"`
	PaymentStatus  string     `gorm:"not null;default:'PENDING'" json:"paymentStatus"`
	PromoCode      *string    `json:"promoCode,omitempty"`
	SpecialRequests string    `gorm:"type:text" json:"specialRequests"`
	CancellationReason string `json:"cancellationReason,omitempty"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty"`
	RefundAmount   *float64   `gorm:"type:decimal(10,2)" json:"refundAmount,omitempty"`

	Rooms    []BookingRoom `gorm:"foreignKey:BookingId" json:"rooms,omitempty"`
	Payments []Payment     `gorm:"foreignKey:BookingId" json:"payments,omitempty"`
}
type Bookings []Booking

type BookingRoom struct {
	DTO
	BookingId uint    `gorm:"not null;index" json:"bookingId"`
	RoomId    uint    `gorm:"not null;index" json:"roomId"`
	Room      Room    `gorm:"foreignKey:RoomId" json:"room,omitempty"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"` // average nightly price
	Total     float64 `gorm:"type:decimal(10,2);not null" json:"total"`
}

type BookingRoomInput struct {
	RoomId   uint `json:"roomId" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,min=1,max=10"`
}

type CreateBookingInput struct {
	HotelId         uint               `json:"hotelId" validate:"required"`
	Rooms           []BookingRoomInput `json:"rooms" validate:"required,min=1,dive"`
	CheckIn         string             `json:"checkIn" validate:"required"`
	CheckOut        string             `json:"checkOut" validate:"required"`
	Adults          int                `json:"adults" validate:"required,min=1,max=20"`
	Children        int                `json:"children" validate:"omitempty,min=0,max=10"`
	Infants         int                `json:"infants" validate:"omitempty,min=0,max=5"`
	GuestFirstName  string             `json:"guestFirstName" validate:"required"`
	GuestLastName   string             `json:"guestLastName" validate:"required"`
	GuestEmail      string             `json:"guestEmail" validate:"required,email"`
	GuestPhone      string             `json:"guestPhone" validate:"required"`
	SpecialRequests string             `json:"specialRequests" validate:"omitempty"`
	PromoCode       string             `json:"promoCode" validate:"omitempty"`
}

type UpdateBookingInput struct {
	CheckIn         *string `json:"checkIn" validate:"omitempty"`
	CheckOut        *string `json:"checkOut" validate:"omitempty"`
	Adults          *int    `json:"adults" validate:"omitempty,min=1,max=20"`
	Children        *int    `json:"children" validate:"omitempty,min=0,max=10"`
	Infants         *int    `json:"infants" validate:"omitempty,min=0,max=5"`
	GuestFirstName  *string `json:"guestFirstName" validate:"omitempty"`
	GuestLastName   *string `json:"guestLastName" validate:"omitempty"`
	GuestEmail      *string `json:"guestEmail" validate:"omitempty,email"`
	GuestPhone      *string `json:"guestPhone" validate:"omitempty"`
	SpecialRequests *string `json:"specialRequests" validate:"omitempty"`
}

type CancelBookingInput struct {
	Reason string `json:"reason" validate:"omitempty"`
}

type FilterBookingInput struct {
	Pagination
	HotelId   *uint      `json:"hotelId" validate:"omitempty"`
	Status    *string    `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED CHECKED_IN CHECKED_OUT CANCELLED NO_SHOW"`
	StartDate *time.Time `json:"startDate" validate:"omitempty"`
	EndDate   *time.Time `json:"endDate" validate:"omitempty"`
}
