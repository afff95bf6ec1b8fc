package validate

import (
	"errors"
	"strconv"

	"resort_booking/constants"
	"resort_booking/model"
	"resort_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateContentInput
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

func UpdateContent(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		contentId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateContentInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("updateInput", input)
		c.Locals("contentId", contentId)
		return c.Next()
	}
}
