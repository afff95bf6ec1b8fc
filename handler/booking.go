package handler

import (
	"encoding/base64"
	"errors"
	"log"
	"strings"
	"time"

	"resort_booking/constants"
	"resort_booking/database"
	"resort_booking/helper"
	"resort_booking/model"
	"resort_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// allowed booking status transitions
var bookingTransitions = map[string][]string{
	model.BookingPending:   {model.BookingConfirmed, model.BookingCancelled},
	model.BookingConfirmed: {model.BookingCheckedIn, model.BookingCancelled, model.BookingNoShow},
	model.BookingCheckedIn: {model.BookingCheckedOut, model.BookingCancelled},
}

func canTransition(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// QuoteBooking prices a stay without committing anything. Same calculation as
// the real creation path.
func QuoteBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("createInput").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	checkIn := c.Locals("checkIn").(time.Time)
	checkOut := c.Locals("checkOut").(time.Time)

	calc, err := helper.CalculateBookingTotal(database.DB, input.HotelId, input.Rooms, checkIn, checkOut, input.PromoCode)
	if err != nil {
		return bookingError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, calc.Rounded())
}

func CreateBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("createInput").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	checkIn := c.Locals("checkIn").(time.Time)
	checkOut := c.Locals("checkOut").(time.Time)
	db := database.DB

	accountInfo, _, _ := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return nil
	}

	var hotel model.Hotel
	if err := db.Where("id = ? AND is_active = true AND is_approved = true", input.HotelId).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var booking model.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		calc, err := helper.CalculateBookingTotal(tx, input.HotelId, input.Rooms, checkIn, checkOut, input.PromoCode)
		if err != nil {
			return err
		}
		rounded := calc.Rounded()

		booking = model.Booking{
			AccountId:       accountInfo.AccountId,
			HotelId:         input.HotelId,
			GuestFirstName:  input.GuestFirstName,
			GuestLastName:   input.GuestLastName,
			GuestEmail:      input.GuestEmail,
			GuestPhone:      input.GuestPhone,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			Nights:          calc.Nights,
			Adults:          input.Adults,
			Children:        input.Children,
			Infants:         input.Infants,
			Subtotal:        rounded.Subtotal,
			Taxes:           rounded.Taxes,
			Fees:            rounded.Fees,
			Discount:        rounded.Discount,
			Total:           rounded.Total,
			Currency:        rounded.Currency,
			Status:          model.BookingPending,
			PaymentStatus:   model.PaymentPending,
			PromoCode:       utils.StringPtr(calc.PromoCode),
			SpecialRequests: input.SpecialRequests,
		}

		// The unique index backs the number; retry a couple of times on the
		// rare collision.
		for attempt := 0; ; attempt++ {
			booking.BookingNumber = helper.GenerateBookingNumber()
			createErr := tx.Create(&booking).Error
			if createErr == nil {
				break
			}
			if attempt < 2 && strings.Contains(createErr.Error(), "duplicate") {
				continue
			}
			return createErr
		}

		for _, charge := range rounded.RoomCharges {
			if err := tx.Create(&model.BookingRoom{
				BookingId: booking.ID,
				RoomId:    charge.RoomId,
				Quantity:  charge.Quantity,
				Price:     charge.Price,
				Total:     charge.Total,
			}).Error; err != nil {
				return err
			}
			if err := helper.DecrementLedger(tx, charge.RoomId, checkIn, checkOut, charge.Quantity); err != nil {
				return err
			}
		}

		if calc.PromoCode != "" {
			if err := helper.RedeemPromotion(tx, calc.PromoCode); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return bookingError(c, err)
	}

	for _, rb := range input.Rooms {
		PublishAvailability(input.HotelId, rb.RoomId)
	}

	db.Preload("Rooms.Room").First(&booking, booking.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func GetMyBookings(c *fiber.Ctx) error {
	db := database.DB

	accountInfo, _, _ := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return nil
	}

	var bookings model.Bookings
	if err := db.Preload("Hotel").Preload("Rooms.Room").
		Where("account_id = ?", accountInfo.AccountId).
		Order("created_at desc").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

func GetBookingById(c *fiber.Ctx) error {
	bookingId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return nil
	}

	var booking model.Booking
	if err := db.Preload("Hotel").Preload("Rooms.Room").Preload("Payments").
		First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if booking.AccountId != accountInfo.AccountId && !isAdmin &&
		!(isManager && helper.ManagesHotel(accountInfo.AccountId, booking.HotelId)) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_PERMISSION, errors.New("not your booking"))
	}

	// QR for check-in desk scanning
	var qrCode string
	if png, err := utils.GenerateQRCode(booking.BookingNumber, 256); err == nil {
		qrCode = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking": booking,
		"qrCode":  qrCode,
	})
}

func UpdateBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("updateInput").(model.UpdateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	bookingId, ok := c.Locals("bookingId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	accountInfo, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return nil
	}

	var booking model.Booking
	if err := db.First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if booking.AccountId != accountInfo.AccountId && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_PERMISSION, errors.New("not your booking"))
	}
	if !helper.CanModifyBooking(booking.Status) {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Booking can no longer be modified", errors.New("final status"))
	}

	// Date changes reprice and re-reserve inventory; guests cancel and rebook
	// instead.
	if input.CheckIn != nil || input.CheckOut != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dates cannot be changed, cancel and rebook instead", nil)
	}

	updates := map[string]any{}
	if input.Adults != nil {
		updates["adults"] = *input.Adults
	}
	if input.Children != nil {
		updates["children"] = *input.Children
	}
	if input.Infants != nil {
		updates["infants"] = *input.Infants
	}
	if input.GuestFirstName != nil {
		updates["guest_first_name"] = *input.GuestFirstName
	}
	if input.GuestLastName != nil {
		updates["guest_last_name"] = *input.GuestLastName
	}
	if input.GuestEmail != nil {
		updates["guest_email"] = *input.GuestEmail
	}
	if input.GuestPhone != nil {
		updates["guest_phone"] = *input.GuestPhone
	}
	if input.SpecialRequests != nil {
		updates["special_requests"] = *input.SpecialRequests
	}
	if len(updates) > 0 {
		if err := db.Model(&booking).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func CancelBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("cancelInput").(model.CancelBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	bookingId, ok := c.Locals("bookingId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return nil
	}

	var booking model.Booking
	if err := db.Preload("Rooms").First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if booking.AccountId != accountInfo.AccountId && !isAdmin &&
		!(isManager && helper.ManagesHotel(accountInfo.AccountId, booking.HotelId)) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_PERMISSION, errors.New("not your booking"))
	}
	if !helper.CanModifyBooking(booking.Status) {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Booking cannot be cancelled", errors.New("status "+booking.Status))
	}

	refund := utils.Round2(helper.CalculateRefund(booking.Total, booking.CheckIn, time.Now()))

	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		updates := map[string]any{
			"status":              model.BookingCancelled,
			"cancellation_reason": input.Reason,
			"cancelled_at":        now,
			"refund_amount":       refund,
		}
		if booking.PaymentStatus == model.PaymentCompleted {
			if refund >= booking.Total {
				updates["payment_status"] = model.PaymentRefunded
			} else if refund > 0 {
				updates["payment_status"] = model.PaymentPartiallyRefunded
			}
		}
		if err := tx.Model(&model.Booking{}).Where("id = ?", booking.ID).Updates(updates).Error; err != nil {
			return err
		}

		// Inventory goes back exactly as reserved, per line item.
		for _, line := range booking.Rooms {
			if err := helper.RestoreLedger(tx, line.RoomId, booking.CheckIn, booking.CheckOut, line.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	for _, line := range booking.Rooms {
		PublishAvailability(booking.HotelId, line.RoomId)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingNumber": booking.BookingNumber,
		"status":        model.BookingCancelled,
		"refundAmount":  refund,
	})
}

// GetHotelBookings lists bookings of a hotel for its manager or an admin, with
// optional status and date filters.
func GetHotelBookings(c *fiber.Ctx) error {
	hotelId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !(isManager && helper.ManagesHotel(accountInfo.AccountId, uint(hotelId))) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_HOTEL_MANAGER, errors.New("not the hotel manager"))
	}

	filterInput := new(model.FilterBookingInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	condition := db.Model(&model.Booking{}).Where("hotel_id = ?", hotelId)
	if filterInput.Status != nil && *filterInput.Status != "" {
		condition = condition.Where("status = ?", *filterInput.Status)
	}
	if filterInput.StartDate != nil {
		condition = condition.Where("check_in >= ?", *filterInput.StartDate)
	}
	if filterInput.EndDate != nil {
		condition = condition.Where("check_in <= ?", *filterInput.EndDate)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var bookings model.Bookings
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Preload("Rooms.Room").Order("check_in asc").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       bookings,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func UpdateBookingStatus(c *fiber.Ctx) error {
	status, ok := c.Locals("status").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	bookingId, ok := c.Locals("bookingId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	var booking model.Booking
	if err := db.First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !(isManager && helper.ManagesHotel(accountInfo.AccountId, booking.HotelId)) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_HOTEL_MANAGER, errors.New("not the hotel manager"))
	}

	if !canTransition(booking.Status, status) {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Invalid status transition",
			errors.New(booking.Status+" -> "+status))
	}

	// Free the held inventory when the desk cancels or marks a no-show.
	if status == model.BookingCancelled || status == model.BookingNoShow {
		var lines []model.BookingRoom
		db.Where("booking_id = ?", booking.ID).Find(&lines)
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&model.Booking{}).Where("id = ?", booking.ID).Update("status", status).Error; err != nil {
				return err
			}
			if status == model.BookingCancelled {
				for _, line := range lines {
					if err := helper.RestoreLedger(tx, line.RoomId, booking.CheckIn, booking.CheckOut, line.Quantity); err != nil {
						return err
					}
				}
			}
			return nil
		})
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
		}
	} else {
		if err := db.Model(&model.Booking{}).Where("id = ?", booking.ID).Update("status", status).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
		}
	}

	booking.Status = status
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// ExpireBookings cancels PENDING bookings whose payment never arrived and
// returns their inventory. Runs from the periodic sweeper in main.
func ExpireBookings() {
	db := database.DB
	cutoff := time.Now().Add(-30 * time.Minute)

	var stale model.Bookings
	if err := db.Preload("Rooms").
		Where("status = ? AND payment_status = ? AND created_at < ?", model.BookingPending, model.PaymentPending, cutoff).
		Find(&stale).Error; err != nil {
		log.Printf("expire bookings query failed: %v", err)
		return
	}

	for _, booking := range stale {
		b := booking
		err := db.Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&model.Booking{}).
				Where("id = ? AND status = ?", b.ID, model.BookingPending).
				Updates(map[string]any{
					"status":              model.BookingCancelled,
					"cancellation_reason": "Payment not completed in time",
					"cancelled_at":        time.Now(),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				// Paid or cancelled in the meantime.
				return nil
			}
			for _, line := range b.Rooms {
				if err := helper.RestoreLedger(tx, line.RoomId, b.CheckIn, b.CheckOut, line.Quantity); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			log.Printf("expire booking %s failed: %v", b.BookingNumber, err)
			continue
		}
		for _, line := range b.Rooms {
			PublishAvailability(b.HotelId, line.RoomId)
		}
		log.Printf("expired booking %s", b.BookingNumber)
	}
}

// bookingError maps calculation failures to HTTP responses.
func bookingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, helper.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	case errors.Is(err, helper.ErrUnavailable), errors.Is(err, helper.ErrInsufficientInventory):
		return utils.ErrorResponse(c, fiber.StatusConflict, "Rooms are not available for the selected dates", err)
	case errors.Is(err, helper.ErrInvalidPromotion):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Promotion code is not valid", err)
	case errors.Is(err, helper.ErrInvalidDateRange):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date range", err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}
