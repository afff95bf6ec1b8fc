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
	"gorm.io/gorm"
)

// GetHotelStatistics aggregates a hotel's booking and revenue numbers over a
// window, defaulting to the last 30 days. Cancelled bookings count separately
// and never add revenue.
func GetHotelStatistics(c *fiber.Ctx) error {
	hotelId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !(isManager && helper.ManagesHotel(accountInfo.AccountId, uint(hotelId))) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_HOTEL_MANAGER, errors.New("not the hotel manager"))
	}

	end := time.Now()
	start := end.AddDate(0, 0, -30)
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
		end = parsed.AddDate(0, 0, 1)
	}

	type summary struct {
		TotalBookings     int64   `json:"totalBookings"`
		CancelledBookings int64   `json:"cancelledBookings"`
		TotalNights       int64   `json:"totalNights"`
		TotalRevenue      float64 `json:"totalRevenue"`
		TotalRefunded     float64 `json:"totalRefunded"`
		AvgBookingValue   float64 `json:"avgBookingValue"`
	}
	var result summary

	base := db.Model(&model.Booking{}).Where("hotel_id = ? AND created_at >= ? AND created_at < ?", hotelId, start, end)

	base.Session(&gorm.Session{}).Count(&result.TotalBookings)
	base.Session(&gorm.Session{}).Where("status = ?", model.BookingCancelled).Count(&result.CancelledBookings)

	type sums struct {
		Nights  int64
		Revenue float64
	}
	var s sums
	db.Model(&model.Booking{}).
		Select("COALESCE(SUM(nights),0) as nights, COALESCE(SUM(total),0) as revenue").
		Where("hotel_id = ? AND created_at >= ? AND created_at < ? AND status != ?", hotelId, start, end, model.BookingCancelled).
		Scan(&s)
	result.TotalNights = s.Nights
	result.TotalRevenue = utils.Round2(s.Revenue)

	var refunded float64
	db.Model(&model.Booking{}).
		Select("COALESCE(SUM(refund_amount),0)").
		Where("hotel_id = ? AND created_at >= ? AND created_at < ? AND status = ?", hotelId, start, end, model.BookingCancelled).
		Scan(&refunded)
	result.TotalRefunded = utils.Round2(refunded)

	paid := result.TotalBookings - result.CancelledBookings
	if paid > 0 {
		result.AvgBookingValue = utils.Round2(s.Revenue / float64(paid))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"from":    start.Format(utils.DateLayout),
		"to":      end.Format(utils.DateLayout),
		"summary": result,
	})
}
