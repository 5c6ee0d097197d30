package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cmsapi/internal/service"
)

// Services groups what the HTTP layer depends on.
type Services struct {
	Posts service.PostService
	Media service.MediaService
	Tags  service.TagService
	Users service.UserService
	// SignedURLTTL is used when a signed-url request has no expiresIn.
	SignedURLTTL time.Duration
}

// RegisterRoutes attaches the ops endpoints and the /api/v1 resources to app.
// Static segments are registered ahead of /:id so they are not parsed as ids.
func RegisterRoutes(app *fiber.App, db *sql.DB, gatherer prometheus.Gatherer, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := app.Group("/api/v1")

	posts := api.Group("/posts")
	posts.Post("/", CreatePost(svc.Posts))
	posts.Get("/", ListPosts(svc.Posts))
	posts.Get("/published", ListPublishedPosts(svc.Posts))
	posts.Get("/featured", ListFeaturedPosts(svc.Posts))
	posts.Get("/search", SearchPosts(svc.Posts))
	posts.Get("/slug/:slug", GetPostBySlug(svc.Posts))
	posts.Get("/status/:status", ListPostsByStatus(svc.Posts))
	posts.Get("/author/:authorId", ListPostsByAuthor(svc.Posts))
	posts.Get("/tag/:tagId", ListPostsByTag(svc.Posts))
	posts.Get("/:id", GetPost(svc.Posts))
	posts.Put("/:id", UpdatePost(svc.Posts))
	posts.Post("/:id/view", IncrementPostViews(svc.Posts))
	posts.Delete("/:id", DeletePost(svc.Posts))

	media := api.Group("/media")
	media.Post("/upload", UploadMedia(svc.Media))
	media.Get("/", ListMedia(svc.Media))
	media.Get("/type/:mediaType", ListMediaByType(svc.Media))
	media.Get("/user/:uploadedById", ListMediaByUploader(svc.Media))
	media.Get("/:id", GetMedia(svc.Media))
	media.Get("/:id/signed-url", MediaSignedURL(svc.Media, svc.SignedURLTTL))
	media.Put("/:id", UpdateMedia(svc.Media))
	media.Delete("/:id", DeleteMedia(svc.Media))

	tags := api.Group("/tags")
	tags.Post("/", CreateTag(svc.Tags))
	tags.Get("/", ListTags(svc.Tags))
	tags.Get("/slug/:slug", GetTagBySlug(svc.Tags))
	tags.Get("/:id", GetTag(svc.Tags))
	tags.Put("/:id", UpdateTag(svc.Tags))
	tags.Delete("/:id", DeleteTag(svc.Tags))

	users := api.Group("/users")
	users.Post("/", CreateUser(svc.Users))
	users.Get("/", ListUsers(svc.Users))
	users.Get("/username/:username", GetUserByUsername(svc.Users))
	users.Get("/:id", GetUser(svc.Users))
	users.Put("/:id", UpdateUser(svc.Users))
	users.Delete("/:id", DeleteUser(svc.Users))
}
