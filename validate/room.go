package validate

import (
	"errors"
	"strconv"

	"resort_booking/constants"
	"resort_booking/model"
	"resort_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		if input.Currency == "" {
			input.Currency = "USD"
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func EditRoom(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		roomId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateRoomInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("updateInput", input)
		c.Locals("roomId", roomId)
		return c.Next()
	}
}

func CreateRatePlan(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		roomId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.CreateRatePlanInput
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
		if input.MinStay != nil && input.MaxStay != nil && *input.MaxStay < *input.MinStay {
			return utils.ErrorResponse(c, 400, "Max stay cannot be below min stay", nil)
		}

		c.Locals("createInput", model.RatePlan{
			RoomId:    uint(roomId),
			Name:      input.Name,
			BasePrice: input.BasePrice,
			StartDate: startDate,
			EndDate:   endDate,
			MinStay:   input.MinStay,
			MaxStay:   input.MaxStay,
			Discount:  input.Discount,
			Markup:    input.Markup,
			Priority:  input.Priority,
			IsActive:  true,
		})
		c.Locals("roomId", roomId)
		return c.Next()
	}
}
