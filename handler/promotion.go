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

// GetPromotions lists currently running promotions: site-wide ones plus, when
// hotelId is given, that hotel's own.
func GetPromotions(c *fiber.Ctx) error {
	db := database.DB
	now := time.Now()

	condition := db.Model(&model.Promotion{}).
		Where("is_active = true AND start_date <= ? AND end_date >= ?", now, now)

	if hotelId := c.QueryInt("hotelId"); hotelId > 0 {
		condition = condition.Where("hotel_id IS NULL OR hotel_id = ?", hotelId)
	} else {
		condition = condition.Where("hotel_id IS NULL")
	}

	var promotions model.Promotions
	if err := condition.Order("end_date asc").Find(&promotions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promotions)
}

// ValidatePromotion is the dry-run: evaluates a code against a hypothetical
// stay and returns the discount without redeeming anything.
func ValidatePromotion(c *fiber.Ctx) error {
	input, ok := c.Locals("validateInput").(model.ValidatePromotionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	promo, err := helper.FindPromotionByCode(db, input.Code)
	if err != nil {
		if errors.Is(err, helper.ErrInvalidPromotion) {
			return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"valid": false, "reason": err.Error()})
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	hotelId := uint(0)
	if input.HotelId != nil {
		hotelId = *input.HotelId
	}
	discount, err := helper.EvaluatePromotion(promo, hotelId, input.BookingAmount, input.Nights, time.Now())
	if err != nil {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"valid": false, "reason": err.Error()})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"valid":        true,
		"code":         promo.Code,
		"discountType": promo.DiscountType,
		"discount":     utils.Round2(discount),
	})
}

func CreatePromotion(c *fiber.Ctx) error {
	input, ok := c.Locals("createInput").(model.CreatePromotionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	startDate := c.Locals("startDate").(time.Time)
	endDate := c.Locals("endDate").(time.Time)
	db := database.DB

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	// Site-wide promotions are admin territory; managers create for their own
	// hotel only.
	if input.HotelId == nil {
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("site-wide promotions are admin only"))
		}
	} else if !isAdmin && !(isManager && helper.ManagesHotel(accountInfo.AccountId, *input.HotelId)) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_HOTEL_MANAGER, errors.New("not the hotel manager"))
	}

	var count int64
	db.Model(&model.Promotion{}).Where("code = ?", input.Code).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Promotion code already exists", errors.New("duplicate code"))
	}

	promo := model.Promotion{
		HotelId:       input.HotelId,
		Title:         input.Title,
		Description:   input.Description,
		Code:          input.Code,
		DiscountType:  input.DiscountType,
		DiscountValue: input.DiscountValue,
		MaxDiscount:   input.MaxDiscount,
		StartDate:     startDate,
		EndDate:       endDate,
		UsageLimit:    input.UsageLimit,
		MinAmount:     input.MinAmount,
		MinNights:     input.MinNights,
		IsActive:      true,
	}
	if err := db.Create(&promo).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, promo)
}

func UpdatePromotion(c *fiber.Ctx) error {
	input, ok := c.Locals("updateInput").(model.UpdatePromotionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	promotionId, ok := c.Locals("promotionId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	var promo model.Promotion
	if err := db.First(&promo, promotionId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	accountInfo, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if promo.HotelId == nil {
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("site-wide promotions are admin only"))
		}
	} else if !isAdmin && !(isManager && helper.ManagesHotel(accountInfo.AccountId, *promo.HotelId)) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_HOTEL_MANAGER, errors.New("not the hotel manager"))
	}

	if input.Title != nil {
		promo.Title = *input.Title
	}
	if input.Description != nil {
		promo.Description = *input.Description
	}
	if input.DiscountValue != nil {
		promo.DiscountValue = *input.DiscountValue
	}
	if input.MaxDiscount != nil {
		promo.MaxDiscount = input.MaxDiscount
	}
	if startDate, ok := c.Locals("startDate").(time.Time); ok {
		promo.StartDate = startDate
	}
	if endDate, ok := c.Locals("endDate").(time.Time); ok {
		promo.EndDate = endDate
	}
	if input.UsageLimit != nil {
		promo.UsageLimit = input.UsageLimit
	}
	if input.MinAmount != nil {
		promo.MinAmount = input.MinAmount
	}
	if input.MinNights != nil {
		promo.MinNights = input.MinNights
	}
	if input.IsActive != nil {
		promo.IsActive = *input.IsActive
	}
	if !promo.EndDate.After(promo.StartDate) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "End date must be after start date", nil)
	}

	if err := db.Save(&promo).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promo)
}

func DeletePromotions(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("admin only"))
	}

	// Deactivate rather than delete: redeemed bookings keep their code.
	if err := db.Model(&model.Promotion{}).Where("id IN ?", input.IDs).Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, input.IDs)
}
