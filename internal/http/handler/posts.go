package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/model"
	"cmsapi/internal/service"
)

// CreatePost godoc
// @Summary Create a blog post
// @Tags posts
// @Accept json
// @Produce json
// @Param authorId query int true "Author user id"
// @Param post body service.CreatePostRequest true "Post"
// @Success 201 {object} model.Post
// @Failure 400,404,409 {object} errorPayload
// @Router /posts [post]
func CreatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorID, err := strconv.ParseInt(c.Query("authorId"), 10, 64)
		if err != nil || authorID <= 0 {
			return badRequest("authorId is required")
		}
		var req service.CreatePostRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}

		post, err := svc.Create(c.UserContext(), authorID, req)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	}
}

// GetPost godoc
// @Summary Get a blog post by id
// @Tags posts
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} model.Post
// @Failure 404 {object} errorPayload
// @Router /posts/{id} [get]
func GetPost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		post, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(post)
	}
}

func GetPostBySlug(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := svc.GetBySlug(c.UserContext(), c.Params("slug"))
		if err != nil {
			return err
		}
		return c.JSON(post)
	}
}

// postPage adapts a paged post listing to a handler; list reads any path or
// query parameters of its own.
func postPage(list func(c *fiber.Ctx, pr service.PageRequest) (*service.Page[model.PostSummary], error)) fiber.Handler {
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

// ListPosts godoc
// @Summary List posts of every status
// @Tags posts
// @Produce json
// @Param page query int false "0-based page"
// @Param size query int false "Page size (max 100)"
// @Param sortBy query string false "createdAt, updatedAt, publishedAt, title, viewCount"
// @Param sortDir query string false "asc or desc"
// @Success 200 {object} service.Page[model.PostSummary]
// @Router /posts [get]
func ListPosts(svc service.PostService) fiber.Handler {
	return postPage(func(c *fiber.Ctx, pr service.PageRequest) (*service.Page[model.PostSummary], error) {
		return svc.List(c.UserContext(), pr)
	})
}

func ListPostsByStatus(svc service.PostService) fiber.Handler {
	return postPage(func(c *fiber.Ctx, pr service.PageRequest) (*service.Page[model.PostSummary], error) {
		status, _ := model.ParsePostStatus(c.Params("status"))
		return svc.ListByStatus(c.UserContext(), status, pr)
	})
}

func ListPublishedPosts(svc service.PostService) fiber.Handler {
	return postPage(func(c *fiber.Ctx, pr service.PageRequest) (*service.Page[model.PostSummary], error) {
		return svc.ListPublished(c.UserContext(), pr)
	})
}

func ListPostsByAuthor(svc service.PostService) fiber.Handler {
	return postPage(func(c *fiber.Ctx, pr service.PageRequest) (*service.Page[model.PostSummary], error) {
		id, err := pathID(c, "authorId")
		if err != nil {
			return nil, err
		}
		return svc.ListByAuthor(c.UserContext(), id, pr)
	})
}

func ListPostsByTag(svc service.PostService) fiber.Handler {
	return postPage(func(c *fiber.Ctx, pr service.PageRequest) (*service.Page[model.PostSummary], error) {
		id, err := pathID(c, "tagId")
		if err != nil {
			return nil, err
		}
		return svc.ListByTag(c.UserContext(), id, pr)
	})
}

func ListFeaturedPosts(svc service.PostService) fiber.Handler {
	return postPage(func(c *fiber.Ctx, pr service.PageRequest) (*service.Page[model.PostSummary], error) {
		return svc.ListFeatured(c.UserContext(), pr)
	})
}

// SearchPosts godoc
// @Summary Search published posts by title or excerpt
// @Tags posts
// @Produce json
// @Param searchTerm query string true "Case-insensitive term"
// @Success 200 {object} service.Page[model.PostSummary]
// @Failure 400 {object} errorPayload
// @Router /posts/search [get]
func SearchPosts(svc service.PostService) fiber.Handler {
	return postPage(func(c *fiber.Ctx, pr service.PageRequest) (*service.Page[model.PostSummary], error) {
		return svc.Search(c.UserContext(), c.Query("searchTerm"), pr)
	})
}

// UpdatePost godoc
// @Summary Patch a blog post
// @Description Absent fields are kept, null clears nullable fields, tagIds replaces the tag set.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post id"
// @Param post body service.UpdatePostRequest true "Changes"
// @Success 200 {object} model.Post
// @Failure 400,404,409 {object} errorPayload
// @Router /posts/{id} [put]
func UpdatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		var req service.UpdatePostRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}

		post, err := svc.Update(c.UserContext(), id, req)
		if err != nil {
			return err
		}
		return c.JSON(post)
	}
}

func IncrementPostViews(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		if err := svc.IncrementViewCount(c.UserContext(), id); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func DeletePost(svc service.PostService) fiber.Handler {
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
