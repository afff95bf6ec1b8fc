package handler

import (
	"errors"
	"strings"

	"resort_booking/constants"
	"resort_booking/database"
	"resort_booking/helper"
	"resort_booking/model"
	"resort_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetHotels(c *fiber.Ctx) error {
	filterInput := new(model.HotelFilter)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Hotel{}).Where("is_active = true AND is_approved = true")
	if filterInput.Search != nil && *filterInput.Search != "" {
		search := "%" + strings.ToLower(*filterInput.Search) + "%"
		condition = condition.Where("LOWER(name) LIKE ? OR LOWER(island) LIKE ? OR LOWER(atoll) LIKE ?", search, search, search)
	}
	if filterInput.Category != nil && *filterInput.Category != "" {
		condition = condition.Where("category = ?", *filterInput.Category)
	}
	if filterInput.Atoll != nil && *filterInput.Atoll != "" {
		condition = condition.Where("LOWER(atoll) LIKE ?", "%"+strings.ToLower(*filterInput.Atoll)+"%")
	}
	if filterInput.StarRating != nil {
		condition = condition.Where("star_rating = ?", *filterInput.StarRating)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var hotels model.Hotels
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("star_rating desc, name asc").Find(&hotels).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       hotels,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetHotelById(c *fiber.Ctx) error {
	hotelId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	var hotel model.Hotel
	if err := db.Preload("Rooms", "is_active = true").First(&hotel, hotelId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

func GetHotelBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")
	db := database.DB

	var hotel model.Hotel
	if err := db.Preload("Rooms", "is_active = true").Where("slug = ?", slugParam).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

func CreateHotel(c *fiber.Ctx) error {
	input, ok := c.Locals("createInput").(model.CreateHotelInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_PERMISSION, errors.New("guest cannot create hotels"))
	}

	hotel := model.Hotel{}
	copier.Copy(&hotel, &input)
	hotel.Slug = helper.MakeHotelSlug(db, input.Name)
	hotel.IsActive = true
	// Only admin-created hotels are live immediately; managers wait for approval.
	hotel.IsApproved = isAdmin
	if isManager {
		hotel.ManagerId = &accountInfo.AccountId
	}
	if hotel.CheckInTime == "" {
		hotel.CheckInTime = "14:00"
	}
	if hotel.CheckOutTime == "" {
		hotel.CheckOutTime = "12:00"
	}

	if err := db.Create(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, hotel)
}

func UpdateHotel(c *fiber.Ctx) error {
	input, ok := c.Locals("updateInput").(model.UpdateHotelInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	hotelId, ok := c.Locals("hotelId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !(isManager && helper.ManagesHotel(accountInfo.AccountId, uint(hotelId))) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_HOTEL_MANAGER, errors.New("not the hotel manager"))
	}

	var hotel model.Hotel
	if err := db.First(&hotel, hotelId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Approval and manager assignment are admin-only fields.
	if !isAdmin {
		input.IsApproved = nil
		input.ManagerId = nil
	}
	if input.Name != nil && *input.Name != hotel.Name {
		hotel.Slug = helper.MakeHotelSlug(db, *input.Name)
	}
	copier.CopyWithOption(&hotel, &input, copier.Option{IgnoreEmpty: true})

	if err := db.Save(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

func DeleteHotels(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("admin only"))
	}

	// Soft delete by deactivating; booking history keeps its foreign keys.
	if err := db.Model(&model.Hotel{}).Where("id IN ?", input.IDs).Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, input.IDs)
}

// GetManagedHotels lists the hotels owned by the authenticated manager, or all
// hotels for an admin, approval state included.
func GetManagedHotels(c *fiber.Ctx) error {
	db := database.DB

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_PERMISSION, errors.New("manager only"))
	}

	condition := db.Model(&model.Hotel{})
	if !isAdmin {
		condition = condition.Where("manager_id = ?", accountInfo.AccountId)
	}

	var hotels model.Hotels
	if err := condition.Order("name asc").Find(&hotels).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, hotels)
}
