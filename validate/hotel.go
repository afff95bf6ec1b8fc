package validate

import (
	"errors"
	"strconv"

	"resort_booking/constants"
	"resort_booking/model"
	"resort_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateHotel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateHotelInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func EditHotel(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		hotelId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateHotelInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("updateInput", input)
		c.Locals("hotelId", hotelId)
		return c.Next()
	}
}
