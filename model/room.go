package model

type Room struct {
	DTO
	HotelId     uint    `gorm:"not null;index" json:"hotelId"`
	Hotel       Hotel   `gorm:"foreignKey:HotelId" json:"-"`
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"not null;index" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Type        string  `gorm:"not null" json:"type"` // BEACH_VILLA, OVERWATER_VILLA, GARDEN_VILLA, SUITE, STANDARD_ROOM, FAMILY_ROOM, PRESIDENTIAL_SUITE
	Capacity    int     `gorm:"not null" json:"capacity"`
	BedType     string  `gorm:"not null" json:"bedType"`
	View        string  `json:"view"`
	BasePrice   float64 `gorm:"type:decimal(10,2);not null" json:"basePrice"`
	Currency    string  `gorm:"size:3;default:'USD'" json:"currency"`
	TotalUnits  int     `gorm:"not null" json:"totalUnits"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`

	RatePlans []RatePlan `gorm:"foreignKey:RoomId" json:"ratePlans,omitempty"`
}
type Rooms []Room

type CreateRoomInput struct {
	HotelId     uint    `json:"hotelId" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required,min=10"`
	Type        string  `json:"type" validate:"required,oneof=BEACH_VILLA OVERWATER_VILLA GARDEN_VILLA SUITE STANDARD_ROOM FAMILY_ROOM PRESIDENTIAL_SUITE"`
	Capacity    int     `json:"capacity" validate:"required,min=1,max=10"`
	BedType     string  `json:"bedType" validate:"required"`
	View        string  `json:"view" validate:"omitempty"`
	BasePrice   float64 `json:"basePrice" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
	TotalUnits  int     `json:"totalUnits" validate:"required,min=1"`
}

type UpdateRoomInput struct {
	Name        *string  `json:"name" validate:"omitempty"`
	Description *string  `json:"description" validate:"omitempty,min=10"`
	Type        *string  `json:"type" validate:"omitempty,oneof=BEACH_VILLA OVERWATER_VILLA GARDEN_VILLA SUITE STANDARD_ROOM FAMILY_ROOM PRESIDENTIAL_SUITE"`
	Capacity    *int     `json:"capacity" validate:"omitempty,min=1,max=10"`
	BedType     *string  `json:"bedType" validate:"omitempty"`
	View        *string  `json:"view" validate:"omitempty"`
	BasePrice   *float64 `json:"basePrice" validate:"omitempty,gt=0"`
	TotalUnits  *int     `json:"totalUnits" validate:"omitempty,min=1"`
	IsActive    *bool    `json:"isActive" validate:"omitempty"`
}
