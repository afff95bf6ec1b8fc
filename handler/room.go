package handler

import (
	"errors"

	"resort_booking/constants"
	"resort_booking/database"
	"resort_booking/helper"
	"resort_booking/model"
	"resort_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetRoomsByHotel(c *fiber.Ctx) error {
	hotelId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	var rooms model.Rooms
	if err := db.Where("hotel_id = ? AND is_active = true", hotelId).Order("base_price asc").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rooms)
}

func GetRoomById(c *fiber.Ctx) error {
	roomId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	var room model.Room
	if err := db.Preload("RatePlans", "is_active = true").First(&room, roomId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func CreateRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("createInput").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !(isManager && helper.ManagesHotel(accountInfo.AccountId, input.HotelId)) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_HOTEL_MANAGER, errors.New("not the hotel manager"))
	}

	var hotel model.Hotel
	if err := db.First(&hotel, input.HotelId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	room := model.Room{IsActive: true}
	copier.Copy(&room, &input)
	room.Slug = helper.MakeRoomSlug(db, input.HotelId, input.Name)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&room).Error; err != nil {
			return err
		}
		// A fresh room gets a ledger row per day out to the horizon.
		if err := helper.SeedLedger(tx, &room, helper.LedgerHorizonDays); err != nil {
			return err
		}
		return tx.Model(&model.Hotel{}).Where("id = ?", hotel.ID).
			Update("total_rooms", gorm.Expr("total_rooms + ?", room.TotalUnits)).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

func UpdateRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("updateInput").(model.UpdateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	roomId, ok := c.Locals("roomId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	var room model.Room
	if err := db.First(&room, roomId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !(isManager && helper.ManagesHotel(accountInfo.AccountId, room.HotelId)) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_HOTEL_MANAGER, errors.New("not the hotel manager"))
	}

	if input.Name != nil && *input.Name != room.Name {
		room.Slug = helper.MakeRoomSlug(db, room.HotelId, *input.Name)
	}
	copier.CopyWithOption(&room, &input, copier.Option{IgnoreEmpty: true})

	if err := db.Save(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func CreateRatePlan(c *fiber.Ctx) error {
	plan, ok := c.Locals("createInput").(model.RatePlan)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	var room model.Room
	if err := db.First(&room, plan.RoomId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !(isManager && helper.ManagesHotel(accountInfo.AccountId, room.HotelId)) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_HOTEL_MANAGER, errors.New("not the hotel manager"))
	}

	if err := db.Create(&plan).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, plan)
}

func GetRatePlans(c *fiber.Ctx) error {
	roomId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	var plans model.RatePlans
	if err := db.Where("room_id = ?", roomId).Order("priority desc, created_at desc").Find(&plans).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, plans)
}
