package validate

import (
	"errors"
	"strconv"
	"time"

	"resort_booking/constants"
	"resort_booking/model"
	"resort_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		checkIn, err := utils.ParseDate(input.CheckIn)
		if err != nil {
			return utils.ErrorResponse(c, 400, "Invalid check-in date", err)
		}
		checkOut, err := utils.ParseDate(input.CheckOut)
		if err != nil {
			return utils.ErrorResponse(c, 400, "Invalid check-out date", err)
		}
		if !checkIn.After(utils.Midnight(time.Now())) {
			return utils.ErrorResponse(c, 400, "Check-in date must be in the future", nil)
		}
		if !checkOut.After(checkIn) {
			return utils.ErrorResponse(c, 400, "Check-out date must be after check-in date", nil)
		}
		if input.Adults == 0 {
			input.Adults = 1
		}

		c.Locals("createInput", input)
		c.Locals("checkIn", checkIn)
		c.Locals("checkOut", checkOut)
		return c.Next()
	}
}

func UpdateBooking(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		bookingId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("updateInput", input)
		c.Locals("bookingId", bookingId)
		return c.Next()
	}
}

func CancelBooking(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		bookingId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.CancelBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid input", err)
		}

		c.Locals("cancelInput", input)
		c.Locals("bookingId", bookingId)
		return c.Next()
	}
}

func UpdateBookingStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		bookingId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input struct {
			Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CHECKED_IN CHECKED_OUT CANCELLED NO_SHOW"`
		}
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid booking status", err)
		}

		c.Locals("status", input.Status)
		c.Locals("bookingId", bookingId)
		return c.Next()
	}
}
