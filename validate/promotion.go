package validate

import (
	"errors"
	"strconv"
	"strings"

	"resort_booking/constants"
	"resort_booking/model"
	"resort_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePromotion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePromotionInput
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
		if !endDate.After(startDate) {
			return utils.ErrorResponse(c, 400, "End date must be after start date", nil)
		}
		// codes match case-sensitively, only surrounding whitespace is dropped
		input.Code = strings.TrimSpace(input.Code)

		c.Locals("createInput", input)
		c.Locals("startDate", startDate)
		c.Locals("endDate", endDate)
		return c.Next()
	}
}

func UpdatePromotion(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		promotionId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdatePromotionInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		if input.StartDate != nil {
			startDate, err := utils.ParseDate(*input.StartDate)
			if err != nil {
				return utils.ErrorResponse(c, 400, "Invalid start date", err)
			}
			c.Locals("startDate", startDate)
		}
		if input.EndDate != nil {
			endDate, err := utils.ParseDate(*input.EndDate)
			if err != nil {
				return utils.ErrorResponse(c, 400, "Invalid end date", err)
			}
			c.Locals("endDate", endDate)
		}

		c.Locals("updateInput", input)
		c.Locals("promotionId", promotionId)
		return c.Next()
	}
}

func ValidatePromotion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ValidatePromotionInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		input.Code = strings.TrimSpace(input.Code)

		c.Locals("validateInput", input)
		return c.Next()
	}
}
