package handler

import (
	"errors"

	"resort_booking/constants"
	"resort_booking/database"
	"resort_booking/helper"
	"resort_booking/model"
	"resort_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func GetHotelReviews(c *fiber.Ctx) error {
	hotelId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	var reviews model.Reviews
	if err := db.Where("hotel_id = ? AND is_approved = true", hotelId).
		Order("created_at desc").Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var average float64
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.OverallRating
		}
		average = utils.Round2(float64(sum) / float64(len(reviews)))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"reviews":       reviews,
		"averageRating": average,
		"totalReviews":  len(reviews),
	})
}

func CreateReview(c *fiber.Ctx) error {
	input, ok := c.Locals("createInput").(model.CreateReviewInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	accountInfo, _, _ := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return nil
	}

	var hotel model.Hotel
	if err := db.First(&hotel, input.HotelId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	// A review against a booking requires a completed stay at this hotel by
	// this guest.
	if input.BookingId != nil {
		var booking model.Booking
		if err := db.Where("id = ? AND account_id = ? AND hotel_id = ? AND status = ?",
			*input.BookingId, accountInfo.AccountId, input.HotelId, model.BookingCheckedOut).
			First(&booking).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Review requires a completed stay", err)
		}
	}

	var count int64
	db.Model(&model.Review{}).Where("hotel_id = ? AND account_id = ?", input.HotelId, accountInfo.AccountId).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "You already reviewed this hotel", errors.New("duplicate review"))
	}

	review := model.Review{
		HotelId:           input.HotelId,
		AccountId:         accountInfo.AccountId,
		BookingId:         input.BookingId,
		OverallRating:     input.OverallRating,
		CleanlinessRating: input.CleanlinessRating,
		ServiceRating:     input.ServiceRating,
		LocationRating:    input.LocationRating,
		ValueRating:       input.ValueRating,
		Title:             input.Title,
		Content:           input.Content,
		Pros:              input.Pros,
		Cons:              input.Cons,
	}
	if err := db.Create(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, review)
}

// ApproveReview publishes or hides a review. Admin only.
func ApproveReview(c *fiber.Ctx) error {
	reviewId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("admin only"))
	}

	type approveInput struct {
		IsApproved bool `json:"isApproved"`
	}
	var input approveInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	result := db.Model(&model.Review{}).Where("id = ?", reviewId).Update("is_approved", input.IsApproved)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("review not found"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": reviewId, "isApproved": input.IsApproved})
}
