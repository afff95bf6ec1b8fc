package helper

import (
	"fmt"

	"resort_booking/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// MakeHotelSlug generates a unique slug for a hotel name, suffixing a counter
// when the plain slug is taken.
func MakeHotelSlug(db *gorm.DB, name string) string {
	base := slug.Make(name)
	candidate := base
	for i := 2; ; i++ {
		var count int64
		db.Model(&model.Hotel{}).Where("slug = ?", candidate).Count(&count)
		if count == 0 {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// MakeRoomSlug generates a room slug unique within its hotel.
func MakeRoomSlug(db *gorm.DB, hotelId uint, name string) string {
	base := slug.Make(name)
	candidate := base
	for i := 2; ; i++ {
		var count int64
		db.Model(&model.Room{}).Where("hotel_id = ? AND slug = ?", hotelId, candidate).Count(&count)
		if count == 0 {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
