package controllers

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ocl-logistics/ocl-backend/app/models"
	"github.com/ocl-logistics/ocl-backend/app/repository"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/actorcontext"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/apperr"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/slugify"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/storage"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/upload"
)

const (
	newsDefaultLimit = 10
	newsMaxLimit     = 50
)

// NewsController handles the news publishing HTTP requests
type NewsController struct {
	repo  repository.NewsRepository
	media *storage.MediaStore
}

// NewNewsController creates a new news controller with repository
func NewNewsController(repo repository.NewsRepository, media *storage.MediaStore) *NewsController {
	return &NewsController{repo: repo, media: media}
}

// newsItem is the wire shape of a post: the stored record plus the derived
// image URLs.
type newsItem struct {
	models.NewsPost
	ImageURL string `json:"imageUrl"`
	ThumbURL string `json:"thumbUrl"`
}

func toNewsItem(post models.NewsPost) newsItem {
	item := newsItem{NewsPost: post}
	if post.HasImage() {
		item.ImageURL = storage.PublicURL(post.ImageKey)
		item.ThumbURL = storage.PublicURL(storage.ThumbKey(post.ImageKey))
	}
	return item
}

func toNewsItems(posts []models.NewsPost) []newsItem {
	items := make([]newsItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, toNewsItem(p))
	}
	return items
}

// HandleList returns a page of posts. Anonymous callers only ever see
// published posts; admins can widen the view with ?published=false or drop
// the filter with ?published=all.
func (nc *NewsController) HandleList(c *fiber.Ctx) error {
	page, limit := parsePagination(c, newsDefaultLimit, newsMaxLimit)

	filter := repository.NewsFilter{Category: c.Query("category")}
	if v := c.Query("featured"); v != "" {
		featured := v == "true" || v == "1"
		filter.Featured = &featured
	}

	published := true
	filter.Published = &published
	if actorcontext.IsAuthenticated(c) {
		switch c.Query("published") {
		case "false", "0":
			published = false
		case "all":
			filter.Published = nil
		}
	}

	posts, total, err := nc.repo.List(filter, (page-1)*limit, limit)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.Map{
		"posts": toNewsItems(posts),
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": pageCount(total, limit),
		},
	})
}

// HandleFeatured returns the most recent featured published posts
func (nc *NewsController) HandleFeatured(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > newsMaxLimit {
		limit = 5
	}

	posts, err := nc.repo.GetFeatured(limit)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, toNewsItems(posts))
}

// HandleCategories returns the distinct categories of published posts
func (nc *NewsController) HandleCategories(c *fiber.Ctx) error {
	categories, err := nc.repo.Categories()
	if err != nil {
		return respondError(c, err)
	}
	if categories == nil {
		categories = []string{}
	}
	return respondData(c, categories)
}

// HandleGetByID returns one post. Drafts are only visible to authenticated
// staff; published reads count a view.
func (nc *NewsController) HandleGetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	post, err := nc.repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if !post.Published && !actorcontext.IsAuthenticated(c) {
		return respondError(c, apperr.NotFound("news post not found"))
	}

	nc.countView(post)
	return respondData(c, toNewsItem(*post))
}

// HandleGetBySlug returns one published post by its slug and counts a view
func (nc *NewsController) HandleGetBySlug(c *fiber.Ctx) error {
	post, err := nc.repo.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	if !post.Published && !actorcontext.IsAuthenticated(c) {
		return respondError(c, apperr.NotFound("news post not found"))
	}

	nc.countView(post)
	return respondData(c, toNewsItem(*post))
}

// countView bumps the view counter for published posts. The increment is
// fire-and-forget; a failed bump never fails the read.
func (nc *NewsController) countView(post *models.NewsPost) {
	if !post.Published {
		return
	}
	if err := nc.repo.IncrementViews(post.ID); err != nil {
		log.Warnf("[News] view increment failed for post %d: %v", post.ID, err)
		return
	}
	post.Views++
}

// HandleCreate creates a post from a multipart form, deriving a unique slug
// from the title and attaching the optional image.
func (nc *NewsController) HandleCreate(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	excerpt := strings.TrimSpace(c.FormValue("excerpt"))
	content := c.FormValue("content")
	if title == "" || excerpt == "" || strings.TrimSpace(content) == "" {
		return respondError(c, apperr.Validation("title, excerpt and content are required"))
	}

	slug, err := nc.resolveSlug(title)
	if err != nil {
		return respondError(c, err)
	}

	post := &models.NewsPost{
		Title:    title,
		Slug:     slug,
		Excerpt:  excerpt,
		Content:  content,
		Category: c.FormValue("category", "General"),
		Author:   c.FormValue("author", models.DefaultNewsAuthor),
		AuthorID: actorcontext.GetAdminID(c),
		Featured: formBool(c.FormValue("featured")),
		Tags:     parseTags(c.FormValue("tags")),
	}
	post.SetPublished(formBool(c.FormValue("published")), time.Now())

	if key, err := nc.saveUploadedImage(c); err != nil {
		return respondError(c, err)
	} else if key != "" {
		post.ImageKey = key
		post.Image = storage.PublicURL(key)
	}

	if err := nc.repo.Create(post); err != nil {
		if post.HasImage() {
			nc.deleteImage(post.ImageKey)
		}
		return respondError(c, err)
	}

	return respondCreated(c, toNewsItem(*post))
}

// HandleUpdate applies a partial update from a multipart form. The slug is
// fixed at creation and never changes, so published URLs stay stable.
func (nc *NewsController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	post, err := nc.repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	if v := strings.TrimSpace(c.FormValue("title")); v != "" {
		post.Title = v
	}
	if v := strings.TrimSpace(c.FormValue("excerpt")); v != "" {
		post.Excerpt = v
	}
	if v := c.FormValue("content"); strings.TrimSpace(v) != "" {
		post.Content = v
	}
	if v := c.FormValue("category"); v != "" {
		post.Category = v
	}
	if v := c.FormValue("author"); v != "" {
		post.Author = v
	}
	if v := c.FormValue("tags"); v != "" {
		post.Tags = parseTags(v)
	}
	if v := c.FormValue("featured"); v != "" {
		post.Featured = formBool(v)
	}
	if v := c.FormValue("published"); v != "" {
		post.SetPublished(formBool(v), time.Now())
	}

	oldKey := post.ImageKey
	if key, err := nc.saveUploadedImage(c); err != nil {
		return respondError(c, err)
	} else if key != "" {
		post.ImageKey = key
		post.Image = storage.PublicURL(key)
	} else if formBool(c.FormValue("removeImage")) {
		post.ImageKey = ""
		post.Image = ""
	}

	if err := nc.repo.Update(post); err != nil {
		if post.ImageKey != oldKey && post.HasImage() {
			nc.deleteImage(post.ImageKey)
		}
		return respondError(c, err)
	}

	if oldKey != "" && post.ImageKey != oldKey {
		nc.deleteImage(oldKey)
	}

	return respondData(c, toNewsItem(*post))
}

// HandleDelete removes a post and its attached image
func (nc *NewsController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	post, err := nc.repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	if err := nc.repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	if post.HasImage() {
		nc.deleteImage(post.ImageKey)
	}

	return respondData(c, fiber.Map{"deleted": true})
}

// resolveSlug derives a slug from the title and suffixes it when the base
// already exists, including among soft-deleted posts.
func (nc *NewsController) resolveSlug(title string) (string, error) {
	base := slugify.Make(title)
	if base == "" {
		base = "post"
	}

	count, err := nc.repo.CountSlugs(base)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}
	return slugify.WithSuffix(base, count), nil
}

// saveUploadedImage validates and stores the optional "image" form file.
// Returns the stored key, or "" when no file was sent.
func (nc *NewsController) saveUploadedImage(c *fiber.Ctx) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	if err := upload.ValidateImageSize(fh.Size); err != nil {
		return "", apperr.Validation(err.Error())
	}

	src, err := fh.Open()
	if err != nil {
		return "", apperr.Validation("could not read uploaded image")
	}
	head := make([]byte, 512)
	n, _ := io.ReadFull(src, head)
	src.Close()

	if _, err := upload.ValidateImageBySniff(fh.Filename, head[:n]); err != nil {
		return "", apperr.Validation(err.Error())
	}

	key, err := nc.media.SaveNewsImage(fh)
	if err != nil {
		return "", err
	}
	return key, nil
}

func (nc *NewsController) deleteImage(key string) {
	if err := nc.media.DeleteNewsImage(key); err != nil {
		log.Warnf("[News] image cleanup failed for %s: %v", key, err)
	}
}

func parseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func formBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// Global news controller instance

var newsController *NewsController

// InitializeNewsController initializes the global news controller
func InitializeNewsController() {
	repo := repository.GetGlobalFactory().GetNewsRepository()
	newsController = NewNewsController(repo, storage.GetMediaStore())
}

// GetNewsController returns the global news controller instance
func GetNewsController() *NewsController {
	if newsController == nil {
		InitializeNewsController()
	}
	return newsController
}
