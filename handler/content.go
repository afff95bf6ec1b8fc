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
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func GetContents(c *fiber.Ctx) error {
	db := database.DB

	condition := db.Model(&model.Content{}).Where("is_published = true")
	if contentType := c.Query("type"); contentType != "" {
		condition = condition.Where("type = ?", contentType)
	}
	if language := c.Query("language"); language != "" {
		condition = condition.Where("language = ?", language)
	}

	var contents model.Contents
	if err := condition.Order("published_at desc").Find(&contents).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, contents)
}

func GetContentBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")
	db := database.DB

	var content model.Content
	if err := db.Where("slug = ? AND is_published = true", slugParam).First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, content)
}

func CreateContent(c *fiber.Ctx) error {
	input, ok := c.Locals("createInput").(model.CreateContentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("admin only"))
	}

	content := model.Content{
		Type:     input.Type,
		Title:    input.Title,
		Slug:     slug.Make(input.Title),
		Content:  input.Content,
		Excerpt:  input.Excerpt,
		Language: "en",
	}
	if input.Language != "" {
		content.Language = input.Language
	}
	if input.IsPublished != nil && *input.IsPublished {
		now := time.Now()
		content.IsPublished = true
		content.PublishedAt = &now
	}

	if err := db.Create(&content).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, content)
}

func UpdateContent(c *fiber.Ctx) error {
	input, ok := c.Locals("updateInput").(model.UpdateContentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	contentId, ok := c.Locals("contentId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("admin only"))
	}

	var content model.Content
	if err := db.First(&content, contentId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Title != nil {
		content.Title = *input.Title
		content.Slug = slug.Make(*input.Title)
	}
	if input.Content != nil {
		content.Content = *input.Content
	}
	if input.Excerpt != nil {
		content.Excerpt = *input.Excerpt
	}
	if input.Language != nil {
		content.Language = *input.Language
	}
	if input.IsPublished != nil {
		content.IsPublished = *input.IsPublished
		if *input.IsPublished && content.PublishedAt == nil {
			now := time.Now()
			content.PublishedAt = &now
		}
	}

	if err := db.Save(&content).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, content)
}

func DeleteContents(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("admin only"))
	}

	if err := db.Where("id IN ?", input.IDs).Delete(&model.Content{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, input.IDs)
}
