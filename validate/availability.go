package validate

import (
	"resort_booking/model"
	"resort_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CheckAvailability() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var query model.CheckAvailabilityQuery
		if err := c.QueryParser(&query); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid query", err)
		}
		if err := validate.Struct(query); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		checkIn, err := utils.ParseDate(query.CheckIn)
		if err != nil {
			return utils.ErrorResponse(c, 400, "Invalid check-in date", err)
		}
		checkOut, err := utils.ParseDate(query.CheckOut)
		if err != nil {
			return utils.ErrorResponse(c, 400, "Invalid check-out date", err)
		}
		if !checkOut.After(checkIn) {
			return utils.ErrorResponse(c, 400, "Check-out date must be after check-in date", nil)
		}
		if query.Rooms == 0 {
			query.Rooms = 1
		}
		if query.Adults == 0 {
			query.Adults = 2
		}

		c.Locals("checkQuery", query)
		c.Locals("checkIn", checkIn)
		c.Locals("checkOut", checkOut)
		return c.Next()
	}
}

func UpdateAvailability() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateAvailabilityInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		date, err := utils.ParseDate(input.Date)
		if err != nil {
			return utils.ErrorResponse(c, 400, "Invalid date", err)
		}
		if input.MinStay != nil && input.MaxStay != nil && *input.MaxStay < *input.MinStay {
			return utils.ErrorResponse(c, 400, "Max stay cannot be below min stay", nil)
		}

		c.Locals("updateInput", input)
		c.Locals("date", date)
		return c.Next()
	}
}

func BulkAvailability() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BulkAvailabilityInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		startDate, err := utils.ParseDate(input.StartDate)
		if err != nil {
			return utils.ErrorResponse(c, 400, "Invalid start date", err)
		}
		endDate, err := utils.ParseDate(input.EndDate)
		if err != nil {
			return utils.ErrorResponse(c, 400, "Invalid end date", err)
		}
		if endDate.Before(startDate) {
			return utils.ErrorResponse(c, 400, "End date must not be before start date", nil)
		}
		if input.Available == nil && input.Price == nil && input.MinStay == nil && input.MaxStay == nil {
			return utils.ErrorResponse(c, 400, "No fields to update", nil)
		}

		c.Locals("bulkInput", input)
		c.Locals("startDate", startDate)
		c.Locals("endDate", endDate)
		return c.Next()
	}
}

func BlockDates() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BlockDatesInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		startDate, err := utils.ParseDate(input.StartDate)
		if err != nil {
			return utils.ErrorResponse(c, 400, "Invalid start date", err)
		}
		endDate, err := utils.ParseDate(input.EndDate)
		if err != nil {
			return utils.ErrorResponse(c, 400, "Invalid end date", err)
		}
		if endDate.Before(startDate) {
			return utils.ErrorResponse(c, 400, "End date must not be before start date", nil)
		}

		c.Locals("blockInput", input)
		c.Locals("startDate", startDate)
		c.Locals("endDate", endDate)
		return c.Next()
	}
}
