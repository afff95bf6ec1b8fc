package handler

import (
	"errors"
	"time"

	"resort_booking/constants"
	"resort_booking/database"
	"resort_booking/helper"
	"resort_booking/model"
	"resort_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

type roomAvailability struct {
	Room         model.Room `json:"room"`
	IsAvailable  bool       `json:"isAvailable"`
	Available    int        `json:"available"`
	TotalPrice   float64    `json:"totalPrice"`
	NightlyPrice float64    `json:"nightlyPrice"`
	Nights       int        `json:"nights"`
	Currency     string     `json:"currency"`
}

// stayWithinLimits checks the per-date stay restrictions on the ledger rows.
func stayWithinLimits(records []model.Availability, nights int) bool {
	for _, rec := range records {
		if rec.MinStay != nil && nights < *rec.MinStay {
			return false
		}
		if rec.MaxStay != nil && nights > *rec.MaxStay {
			return false
		}
	}
	return true
}

// CheckAvailability is the public search: every active room of the hotel with
// its availability verdict and priced stay.
func CheckAvailability(c *fiber.Ctx) error {
	query, ok := c.Locals("checkQuery").(model.CheckAvailabilityQuery)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	checkIn := c.Locals("checkIn").(time.Time)
	checkOut := c.Locals("checkOut").(time.Time)
	db := database.DB

	nights := utils.Nights(checkIn, checkOut)

	var rooms model.Rooms
	if err := db.Where("hotel_id = ? AND is_active = true AND capacity >= ?", query.HotelId, query.Adults).
		Order("base_price asc").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	results := make([]roomAvailability, 0, len(rooms))
	for _, room := range rooms {
		records, err := helper.GetLedgerRange(db, room.ID, checkIn, checkOut)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		entry := roomAvailability{Room: room, Nights: nights, Currency: room.Currency}
		if helper.LedgerCovers(records, nights, query.Rooms) && stayWithinLimits(records, nights) {
			plans, err := helper.GetEligibleRatePlans(db, room.ID, checkIn, checkOut)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
			perUnit := helper.PriceRoomStay(records, plans, nights)
			entry.IsAvailable = true
			entry.TotalPrice = utils.Round2(perUnit)
			entry.NightlyPrice = utils.Round2(perUnit / float64(nights))

			minAvail := records[0].Available
			for _, rec := range records {
				if rec.Available < minAvail {
					minAvail = rec.Available
				}
			}
			entry.Available = minAvail
		}
		results = append(results, entry)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"checkIn":  checkIn.Format(utils.DateLayout),
		"checkOut": checkOut.Format(utils.DateLayout),
		"nights":   nights,
		"rooms":    results,
	})
}

// GetAvailabilityCalendar returns the raw ledger rows of a room for a date
// range, for the manager calendar view.
func GetAvailabilityCalendar(c *fiber.Ctx) error {
	roomId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	start := utils.Midnight(time.Now())
	end := start.AddDate(0, 3, 0)
	if s := c.Query("startDate"); s != "" {
		parsed, err := utils.ParseDate(s)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid start date", err)
		}
		start = parsed
	}
	if s := c.Query("endDate"); s != "" {
		parsed, err := utils.ParseDate(s)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid end date", err)
		}
		end = parsed
	}

	var records model.Availabilities
	if err := db.Where("room_id = ? AND date >= ? AND date <= ?", roomId, start, end).
		Order("date asc").Find(&records).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, records)
}

func UpdateAvailability(c *fiber.Ctx) error {
	input, ok := c.Locals("updateInput").(model.UpdateAvailabilityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	date := c.Locals("date").(time.Time)
	db := database.DB

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !(isManager && helper.ManagesHotel(accountInfo.AccountId, input.HotelId)) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_HOTEL_MANAGER, errors.New("not the hotel manager"))
	}

	var room model.Room
	if err := db.Where("id = ? AND hotel_id = ?", input.RoomId, input.HotelId).First(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	record := model.Availability{
		HotelId:   input.HotelId,
		RoomId:    input.RoomId,
		Date:      date,
		Available: input.Available,
		Price:     input.Price,
		Currency:  room.Currency,
		MinStay:   input.MinStay,
		MaxStay:   input.MaxStay,
		Reason:    input.Reason,
	}
	if input.Currency != "" {
		record.Currency = input.Currency
	}
	if input.IsBlocked != nil {
		record.IsBlocked = *input.IsBlocked
		if record.IsBlocked {
			record.Available = 0
		}
	}

	// Upsert on (room, date) so the same endpoint creates and edits.
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"available", "price", "currency", "min_stay", "max_stay", "is_blocked", "reason"}),
	}).Create(&record).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	PublishAvailability(input.HotelId, input.RoomId)

	return utils.SuccessResponse(c, fiber.StatusOK, record)
}

func BulkUpdateAvailability(c *fiber.Ctx) error {
	input, ok := c.Locals("bulkInput").(model.BulkAvailabilityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	startDate := c.Locals("startDate").(time.Time)
	endDate := c.Locals("endDate").(time.Time)
	db := database.DB

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !(isManager && helper.ManagesHotel(accountInfo.AccountId, input.HotelId)) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_HOTEL_MANAGER, errors.New("not the hotel manager"))
	}

	updates := map[string]any{}
	if input.Available != nil {
		updates["available"] = *input.Available
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.MinStay != nil {
		updates["min_stay"] = *input.MinStay
	}
	if input.MaxStay != nil {
		updates["max_stay"] = *input.MaxStay
	}

	result := db.Model(&model.Availability{}).
		Where("room_id = ? AND date >= ? AND date <= ?", input.RoomId, startDate, endDate).
		Updates(updates)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, result.Error)
	}

	PublishAvailability(input.HotelId, input.RoomId)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"updated": result.RowsAffected})
}

func BlockDates(c *fiber.Ctx) error {
	input, ok := c.Locals("blockInput").(model.BlockDatesInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	startDate := c.Locals("startDate").(time.Time)
	endDate := c.Locals("endDate").(time.Time)
	db := database.DB

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !(isManager && helper.ManagesHotel(accountInfo.AccountId, input.HotelId)) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_HOTEL_MANAGER, errors.New("not the hotel manager"))
	}

	if err := helper.SetLedgerBlocked(db, input.RoomId, startDate, endDate, input.IsBlocked, input.Reason); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	PublishAvailability(input.HotelId, input.RoomId)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"roomId":    input.RoomId,
		"startDate": startDate.Format(utils.DateLayout),
		"endDate":   endDate.Format(utils.DateLayout),
		"isBlocked": input.IsBlocked,
	})
}

// GetAvailabilityStats aggregates occupancy over the next 30 days for a hotel.
func GetAvailabilityStats(c *fiber.Ctx) error {
	hotelId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !(isManager && helper.ManagesHotel(accountInfo.AccountId, uint(hotelId))) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_HOTEL_MANAGER, errors.New("not the hotel manager"))
	}

	start := utils.Midnight(time.Now())
	end := start.AddDate(0, 0, 30)

	type statsRow struct {
		RoomId       uint    `json:"roomId"`
		TotalDays    int64   `json:"totalDays"`
		BlockedDays  int64   `json:"blockedDays"`
		SoldOutDays  int64   `json:"soldOutDays"`
		AvgAvailable float64 `json:"avgAvailable"`
		AvgPrice     float64 `json:"avgPrice"`
	}
	var rows []statsRow
	err := db.Model(&model.Availability{}).
		Select("room_id as room_id, "+
			"COUNT(*) as total_days, "+
			"COUNT(*) FILTER (WHERE is_blocked) as blocked_days, "+
			"COUNT(*) FILTER (WHERE available = 0 AND NOT is_blocked) as sold_out_days, "+
			"AVG(available) as avg_available, "+
			"AVG(price) as avg_price").
		Where("hotel_id = ? AND date >= ? AND date < ?", hotelId, start, end).
		Group("room_id").
		Scan(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"from":  start.Format(utils.DateLayout),
		"to":    end.Format(utils.DateLayout),
		"rooms": rows,
	})
}
