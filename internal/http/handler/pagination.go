package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/service"
)

// pageRequest reads page, size, sortBy and sortDir from the query string.
// Absent values are left zero so the service applies its defaults.
func pageRequest(c *fiber.Ctx) (service.PageRequest, error) {
	var pr service.PageRequest
	var err error

	if pr.Page, err = queryInt(c, "page"); err != nil {
		return pr, err
	}
	if pr.Size, err = queryInt(c, "size"); err != nil {
		return pr, err
	}
	pr.SortBy = c.Query("sortBy")
	pr.SortDir = c.Query("sortDir")
	return pr, nil
}

func queryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest(key + " must be an integer")
	}
	return v, nil
}

// pathID parses a positive int64 route parameter.
func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("invalid " + name)
	}
	return id, nil
}

// parseBody decodes a JSON request body into dst.
func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return badRequest("malformed request body")
	}
	return nil
}
