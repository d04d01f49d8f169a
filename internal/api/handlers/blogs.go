package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pratyay/profile-service/internal/api/dto"
	"github.com/pratyay/profile-service/internal/api/middleware"
	domainerrors "github.com/pratyay/profile-service/internal/domain/errors"
	"github.com/pratyay/profile-service/internal/domain/models"
	"github.com/pratyay/profile-service/internal/services/blog"
)

// Bounds of the num parameter of /blogs.
const (
	DefaultBlogPosts = 10
	MaxBlogPosts     = 50
)

// BlogsHandler proxies the publication's recent posts.
type BlogsHandler struct {
	client blog.Client
}

// NewBlogsHandler creates a new BlogsHandler.
func NewBlogsHandler(client blog.Client) *BlogsHandler {
	return &BlogsHandler{client: client}
}

// GetPosts handles GET /blogs
// @Summary Recent blog posts
// @Tags Blogs
// @Produce json
// @Param num query int false "Number of posts (1-50)" default(10)
// @Success 200 {array} models.BlogPost
// @Failure 400 {object} dto.ErrorResponse "Invalid num"
// @Failure 500 {object} dto.ErrorResponse "Upstream failure"
// @Router /blogs [get]
func (h *BlogsHandler) GetPosts(c *gin.Context) {
	num := DefaultBlogPosts
	if raw := c.Query(dto.ParamNum); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxBlogPosts {
			middleware.HandleError(c, domainerrors.NewValidationError("num must be an integer between 1 and 50", raw))
			return
		}
		num = n
	}

	posts, err := h.client.GetPosts(c.Request.Context(), num)
	if err != nil {
		middleware.GetRequestLogger(c).Error().Err(err).Int("num", num).Msg("failed to fetch blogs")
		middleware.HandleError(c, domainerrors.NewInternalError("failed to fetch blogs", err))
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}

	c.JSON(http.StatusOK, posts)
}
