package handler

import (
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/model"
	"cmsapi/internal/service"
)

// UploadMedia godoc
// @Summary Upload a media file
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File"
// @Param uploadedById formData int false "Uploader user id"
// @Param altText formData string false "Alt text"
// @Param caption formData string false "Caption"
// @Success 201 {object} model.Media
// @Failure 400,404 {object} errorPayload
// @Failure 500 {object} errorPayload "File Operation Error"
// @Router /media/upload [post]
func UploadMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return badRequest("file is required")
		}

		in := service.UploadMediaInput{
			ContentType:      fh.Header.Get(fiber.HeaderContentType),
			OriginalFilename: fh.Filename,
			AltText:          optionalForm(c, "altText"),
			Caption:          optionalForm(c, "caption"),
		}
		if raw := c.FormValue("uploadedById"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				return badRequest("invalid uploadedById")
			}
			in.UploadedByID = &id
		}

		f, err := fh.Open()
		if err != nil {
			return badRequest("cannot open uploaded file")
		}
		defer f.Close()

		if in.Data, err = io.ReadAll(f); err != nil {
			return badRequest("cannot read uploaded file")
		}

		m, err := svc.Upload(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

func optionalForm(c *fiber.Ctx, key string) *string {
	if v := c.FormValue(key); v != "" {
		return &v
	}
	return nil
}

// GetMedia godoc
// @Summary Get a media record
// @Tags media
// @Produce json
// @Param id path int true "Media id"
// @Success 200 {object} model.Media
// @Failure 404 {object} errorPayload
// @Router /media/{id} [get]
func GetMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		m, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(m)
	}
}

func mediaPage(list func(c *fiber.Ctx, pr service.PageRequest) (*service.Page[model.Media], error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pr, err := pageRequest(c)
		if err != nil {
			return err
		}
		page, err := list(c, pr)
		if err != nil {
			return err
		}
		return c.JSON(page)
	}
}

func ListMedia(svc service.MediaService) fiber.Handler {
	return mediaPage(func(c *fiber.Ctx, pr service.PageRequest) (*service.Page[model.Media], error) {
		return svc.List(c.UserContext(), pr)
	})
}

func ListMediaByType(svc service.MediaService) fiber.Handler {
	return mediaPage(func(c *fiber.Ctx, pr service.PageRequest) (*service.Page[model.Media], error) {
		mt, ok := model.ParseMediaType(c.Params("mediaType"))
		if !ok {
			return nil, badRequest("mediaType must be one of IMAGE VIDEO AUDIO DOCUMENT OTHER")
		}
		return svc.ListByType(c.UserContext(), mt, pr)
	})
}

func ListMediaByUploader(svc service.MediaService) fiber.Handler {
	return mediaPage(func(c *fiber.Ctx, pr service.PageRequest) (*service.Page[model.Media], error) {
		id, err := pathID(c, "uploadedById")
		if err != nil {
			return nil, err
		}
		return svc.ListByUploader(c.UserContext(), id, pr)
	})
}

type signedURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expiresIn"`
}

// MediaSignedURL godoc
// @Summary Presigned download link for a media object
// @Tags media
// @Produce json
// @Param id path int true "Media id"
// @Param expiresIn query int false "Lifetime in seconds (max 604800)"
// @Success 200 {object} signedURLResponse
// @Failure 400,404 {object} errorPayload
// @Router /media/{id}/signed-url [get]
func MediaSignedURL(svc service.MediaService, defaultTTL time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		ttl := defaultTTL
		if raw := c.Query("expiresIn"); raw != "" {
			secs, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return badRequest("expiresIn must be an integer number of seconds")
			}
			ttl = time.Duration(secs) * time.Second
		}

		url, err := svc.SignedURL(c.UserContext(), id, ttl)
		if err != nil {
			return err
		}
		return c.JSON(signedURLResponse{URL: url, ExpiresIn: int64(ttl / time.Second)})
	}
}

func UpdateMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		var req service.UpdateMediaRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		m, err := svc.UpdateMetadata(c.UserContext(), id, req)
		if err != nil {
			return err
		}
		return c.JSON(m)
	}
}

// DeleteMedia godoc
// @Summary Delete a media file and its record
// @Tags media
// @Param id path int true "Media id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload "File Operation Error"
// @Router /media/{id} [delete]
func DeleteMedia(svc service.MediaService) fiber.Handler {
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
