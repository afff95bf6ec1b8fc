package model

type Review struct {
	DTO
	HotelId           uint    `gorm:"not null;index" json:"hotelId"`
	Hotel             Hotel   `gorm:"foreignKey:HotelId" json:"-"`
	AccountId         uint    `gorm:"not null;index" json:"accountId"`
	Account           Account `gorm:"foreignKey:AccountId" json:"-"`
	BookingId         *uint   `gorm:"index" json:"bookingId,omitempty"`
	OverallRating     int     `gorm:"not null" json:"overallRating"`
	CleanlinessRating *int    `json:"cleanlinessRating,omitempty"`
	ServiceRating     *int    `json:"serviceRating,omitempty"`
	LocationRating    *int    `json:"locationRating,omitempty"`
	ValueRating       *int    `json:"valueRating,omitempty"`
	Title             string  `json:"title"`
	Content           string  `gorm:"type:text;not null" json:"content"`
	Pros              string  `json:"pros"`
	Cons              string  `json:"cons"`
	IsApproved        bool    `gorm:"default:false" json:"isApproved"`
}
type Reviews []Review

type CreateReviewInput struct {
	HotelId           uint   `json:"hotelId" validate:"required"`
	BookingId         *uint  `json:"bookingId" validate:"omitempty"`
	OverallRating     int    `json:"overallRating" validate:"required,min=1,max=5"`
	CleanlinessRating *int   `json:"cleanlinessRating" validate:"omitempty,min=1,max=5"`
	ServiceRating     *int   `json:"serviceRating" validate:"omitempty,min=1,max=5"`
	LocationRating    *int   `json:"locationRating" validate:"omitempty,min=1,max=5"`
	ValueRating       *int   `json:"valueRating" validate:"omitempty,min=1,max=5"`
	Title             string `json:"title" validate:"omitempty"`
	Content           string `json:"content" validate:"required,min=10"`
	Pros              string `json:"pros" validate:"omitempty"`
	Cons              string `json:"cons" validate:"omitempty"`
}
