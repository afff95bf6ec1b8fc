package database

import (
	"log"
	"time"

	"resort_booking/constants"
	"resort_booking/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin12345"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "admin12345"
	}
	accounts := []model.Account{
		{Email: "admin@resortbooking.mv", Password: HashPassword, FirstName: "Site", LastName: "Admin", IsActive: true, Role: constants.ROLE_ADMIN},
		{Email: "manager@paradise-island.mv", Password: HashPassword, FirstName: "Hotel", LastName: "Manager", IsActive: true, Role: constants.ROLE_MANAGER},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Email: account.Email}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Email, "error:", err)
		}
	}

	var manager model.Account
	db.Where(model.Account{Email: "manager@paradise-island.mv"}).First(&manager)

	hotel := model.Hotel{
		Name:        "Paradise Island Resort",
		Slug:        "paradise-island-resort",
		Description: "A luxury resort on a private island with overwater villas and a house reef.",
		Email:       "stay@paradise-island.mv",
		Phone:       "+960 664 0011",
		Island:      "Lankanfinolhu",
		Atoll:       "North Male Atoll",
		Category:    "LUXURY_RESORT",
		StarRating:  5,
		TotalRooms:  40,
		IsActive:    true,
		IsApproved:  true,
		ManagerId:   &manager.ID,
	}
	if err := db.Where(model.Hotel{Slug: hotel.Slug}).FirstOrCreate(&hotel).Error; err != nil {
		log.Println("failed to seed hotel:", err)
	}

	rooms := []model.Room{
		{HotelId: hotel.ID, Name: "Beach Villa", Slug: "beach-villa", Description: "Spacious villa right on the beach with a private terrace.", Type: "BEACH_VILLA", Capacity: 3, BedType: "King", BasePrice: 450, Currency: "USD", TotalUnits: 20, IsActive: true},
		{HotelId: hotel.ID, Name: "Overwater Villa", Slug: "overwater-villa", Description: "Villa on stilts over the lagoon with direct water access.", Type: "OVERWATER_VILLA", Capacity: 2, BedType: "King", BasePrice: 780, Currency: "USD", TotalUnits: 12, IsActive: true},
	}
	for _, room := range rooms {
		if err := db.Where(model.Room{HotelId: hotel.ID, Slug: room.Slug}).FirstOrCreate(&room).Error; err != nil {
			log.Println("failed to seed room:", room.Name, "error:", err)
		}
	}

	hotelId := hotel.ID
	promotion := model.Promotion{
		HotelId:       &hotelId,
		Title:         "Early Bird Special",
		Description:   "Book ahead and save 15% on your stay.",
		Code:          "EARLYBIRD15",
		DiscountType:  "PERCENTAGE",
		DiscountValue: 15,
		StartDate:     parseDate("2026-01-01"),
		EndDate:       parseDate("2026-12-31"),
		MinNights:     ptrInt(3),
		IsActive:      true,
	}
	if err := db.Where(model.Promotion{Code: promotion.Code}).FirstOrCreate(&promotion).Error; err != nil {
		log.Println("failed to seed promotion:", err)
	}
}

func ptrInt(v int) *int {
	return &v
}
