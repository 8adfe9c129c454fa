package controllers

import (
	"strings"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/anand-jaiswal-IN/youtube-clone/config"
	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/errors"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/anand-jaiswal-IN/youtube-clone/schemas"
	"github.com/anand-jaiswal-IN/youtube-clone/services"
	"github.com/anand-jaiswal-IN/youtube-clone/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const categoryImageSizeLimit = 100 * 1000

// Category is a struct that contains category controllers
type Category struct {
	Conn *connect.Connector
	Env  *config.Env
}

// Create is a function that is used to create a new category, category names are
// unique regardless of the case
func (cat *Category) Create(c *fiber.Ctx) error {
	var payload struct {
		Name        string `json:"name" validate:"required,min=4,max=30"`
		Description string `json:"description" validate:"required,min=5,max=200"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	payload.Name = strings.ToLower(strings.TrimSpace(payload.Name))
	payload.Description = strings.TrimSpace(payload.Description)

	v := validator.New()
	if err := v.Struct(payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	categoryS := services.Category{Conn: cat.Conn}
	category, err := categoryS.Create(c.Context(), models.Category{
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		if ok := (errors.CheckDBError{}.DuplicateKey(err)); ok {
			return errors.CategoryAlreadyExists(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusCreated).JSON(schemas.Ok(
		fiber.StatusCreated,
		category,
		"category created",
	))
}

// UpdateImage is a function that is used to update the image of the category
func (cat *Category) UpdateImage(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("categoryID"))
	if err != nil {
		return errors.BadRequest(c)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return errors.BadRequest(c)
	}
	if fileHeader.Size > categoryImageSizeLimit {
		return errors.FileTooLarge(c)
	}

	localPath, contentType, err := saveTemp(c, "image")
	if err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	media := utils.Media{Conn: cat.Conn, Env: cat.Env}
	imageURL, err := media.Upload(localPath, "categories", contentType)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	categoryS := services.Category{Conn: cat.Conn}
	category, err := categoryS.UpdateImage(c.Context(), categoryID, imageURL)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NotFound(c, errors.ErrCategoryNotFound)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Ok(
		fiber.StatusOK,
		category,
		"category image updated",
	))
}

// GetAll is a function that is used to get all the categories
func (cat *Category) GetAll(c *fiber.Ctx) error {
	categoryS := services.Category{Conn: cat.Conn}
	categories, err := categoryS.GetAll(c.Context())
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Ok(
		fiber.StatusOK,
		categories,
		"categories fetched",
	))
}

// CreateSub is a function that is used to create a new sub category under an
// exsisting category
func (cat *Category) CreateSub(c *fiber.Ctx) error {
	var payload struct {
		Name        string `json:"name" validate:"required,min=4,max=30"`
		Description string `json:"description" validate:"required,min=5,max=200"`
		Category    string `json:"category" validate:"required"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	v := validator.New()
	if err := v.Struct(payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	categoryS := services.Category{Conn: cat.Conn}
	categories, err := categoryS.GetByNames(c.Context(), []string{strings.ToLower(payload.Category)})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.InvalidCategory(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	sub, err := categoryS.CreateSub(c.Context(), models.SubCategory{
		CategoryID:  categories[0].ID,
		Name:        strings.TrimSpace(payload.Name),
		Description: strings.TrimSpace(payload.Description),
	})
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusCreated).JSON(schemas.Ok(
		fiber.StatusCreated,
		sub,
		"sub category created",
	))
}

// GetAllSub is a function that is used to get all the sub categories of a category
func (cat *Category) GetAllSub(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("categoryID"))
	if err != nil {
		return errors.BadRequest(c)
	}

	categoryS := services.Category{Conn: cat.Conn}
	subs, err := categoryS.GetAllSub(c.Context(), categoryID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Ok(
		fiber.StatusOK,
		subs,
		"sub categories fetched",
	))
}
