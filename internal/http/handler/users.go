package handler

import (
	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/service"
)

// CreateUser godoc
// @Summary Create a user account
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User"
// @Success 201 {object} model.User
// @Failure 400,409 {object} errorPayload
// @Router /users [post]
func CreateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.CreateUserRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		u, err := svc.Create(c.UserContext(), req)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

func GetUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		u, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(u)
	}
}

func GetUserByUsername(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.GetByUsername(c.UserContext(), c.Params("username"))
		if err != nil {
			return err
		}
		return c.JSON(u)
	}
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param activeOnly query bool false "Only active accounts"
// @Success 200 {array} model.User
// @Router /users [get]
func ListUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.UserContext(), c.QueryBool("activeOnly", false))
		if err != nil {
			return err
		}
		return c.JSON(users)
	}
}

func UpdateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		var req service.UpdateUserRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		u, err := svc.Update(c.UserContext(), id, req)
		if err != nil {
			return err
		}
		return c.JSON(u)
	}
}

func DeleteUser(svc service.UserService) fiber.Handler {
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
