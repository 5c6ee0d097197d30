package handler

import (
	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/service"
)

// CreateTag godoc
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body service.CreateTagRequest true "Tag"
// @Success 201 {object} model.Tag
// @Failure 400,409 {object} errorPayload
// @Router /tags [post]
func CreateTag(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.CreateTagRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		tag, err := svc.Create(c.UserContext(), req)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(tag)
	}
}

func GetTag(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		tag, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(tag)
	}
}

func GetTagBySlug(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tag, err := svc.GetBySlug(c.UserContext(), c.Params("slug"))
		if err != nil {
			return err
		}
		return c.JSON(tag)
	}
}

func ListTags(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tags, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(tags)
	}
}

func UpdateTag(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		var req service.UpdateTagRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		tag, err := svc.Update(c.UserContext(), id, req)
		if err != nil {
			return err
		}
		return c.JSON(tag)
	}
}

func DeleteTag(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
