package model

type Hotel struct {
	DTO
	Name         string   `gorm:"not null" json:"name"`
	Slug         string   `gorm:"unique;not null" json:"slug"`
	Description  string   `gorm:"type:text" json:"description"`
	ShortDesc    string   `json:"shortDesc"`
	Email        string   `gorm:"not null" json:"email"`
	Phone        string   `gorm:"not null" json:"phone"`
	Island       string   `gorm:"not null" json:"island"`
	Atoll        string   `gorm:"not null" json:"atoll"`
	Category     string   `gorm:"not null" json:"category"` // LUXURY_RESORT, BOUTIQUE_HOTEL, OVERWATER_VILLA, BEACH_RESORT, ECO_RESORT, BUDGET_HOTEL
	StarRating   int      `gorm:"not null" json:"starRating"`
	TotalRooms   int      `gorm:"default:0" json:"totalRooms"`
	CheckInTime  string   `gorm:"default:'14:00'" json:"checkInTime"`
	CheckOutTime string   `gorm:"default:'12:00'" json:"checkOutTime"`
	IsActive     bool     `gorm:"default:true" json:"isActive"`
	IsApproved   bool     `gorm:"default:false" json:"isApproved"`
	ManagerId    *uint    `gorm:"index" json:"managerId"`
	Manager      *Account `gorm:"foreignKey:ManagerId" json:"manager,omitempty"`

	Rooms []Room `gorm:"foreignKey:HotelId" json:"rooms,omitempty"`
}
type Hotels []Hotel

type CreateHotelInput struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required,min=10"`
	ShortDesc    string `json:"shortDesc" validate:"omitempty"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Island       string `json:"island" validate:"required"`
	Atoll        string `json:"atoll" validate:"required"`
	Category     string `json:"category" validate:"required,oneof=LUXURY_RESORT BOUTIQUE_HOTEL OVERWATER_VILLA BEACH_RESORT ECO_RESORT BUDGET_HOTEL"`
	StarRating   int    `json:"starRating" validate:"required,min=1,max=5"`
	CheckInTime  string `json:"checkInTime" validate:"omitempty"`
	CheckOutTime string `json:"checkOutTime" validate:"omitempty"`
	ManagerId    *uint  `json:"managerId" validate:"omitempty"`
}

type UpdateHotelInput struct {
	Name         *string `json:"name" validate:"omitempty"`
	Description  *string `json:"description" validate:"omitempty,min=10"`
	ShortDesc    *string `json:"shortDesc" validate:"omitempty"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty"`
	Island       *string `json:"island" validate:"omitempty"`
	Atoll        *string `json:"atoll" validate:"omitempty"`
	Category     *string `json:"category" validate:"omitempty,oneof=LUXURY_RESORT BOUTIQUE_HOTEL OVERWATER_VILLA BEACH_RESORT ECO_RESORT BUDGET_HOTEL"`
	StarRating   *int    `json:"starRating" validate:"omitempty,min=1,max=5"`
	CheckInTime  *string `json:"checkInTime" validate:"omitempty"`
	CheckOutTime *string `json:"checkOutTime" validate:"omitempty"`
	IsActive     *bool   `json:"isActive" validate:"omitempty"`
	IsApproved   *bool   `json:"isApproved" validate:"omitempty"`
	ManagerId    *uint   `json:"managerId" validate:"omitempty"`
}

type HotelFilter struct {
	Pagination
	Search     *string `json:"search"`
	Category   *string `json:"category"`
	Atoll      *string `json:"atoll"`
	StarRating *int    `json:"starRating"`
}
