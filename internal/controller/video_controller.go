package controller

import (
	"encoding/json"
	"errors"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/service"
	"manhaj_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type VideoController struct {
	VideoService *service.VideoService
}

func NewVideoController(videoService *service.VideoService) *VideoController {
	return &VideoController{VideoService: videoService}
}

type CreateVideoFromURLRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	VideoURL     string     `json:"videoUrl" binding:"required,url"`
	Category     string     `json:"category"`
	GradeLevel   int        `json:"gradeLevel"`
	AllowedRoles []string   `json:"allowedRoles"`
	PublishedAt  *time.Time `json:"publishedAt"` // future date schedules the item
}

type UpdateVideoRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	VideoURL     *string    `json:"videoUrl"`
	Category     *string    `json:"category"`
	IsVisible    *bool      `json:"isVisible"`
	AllowedRoles []string   `json:"allowedRoles"`
	PublishedAt  *time.Time `json:"publishedAt"`
}

// @Summary List videos
// @Tags videos
// @Produce json
// @Param grade query int false "Grade level"
// @Param category query string false "Category"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Security BearerAuth
// @Router /videos [get]
func (c *VideoController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page := util.MustParseInt(ctx.DefaultQuery("page", "1"))
	limit := util.MustParseInt(ctx.DefaultQuery("limit", "20"))

	videos, total, err := c.VideoService.ListVisible(
		claims.Role,
		util.MustParseInt(ctx.Query("grade")),
		ctx.Query("category"),
		page, limit,
	)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: videos, Total: total, Page: page, Limit: limit})
}

// @Summary Register an external video
// @Description Registers a YouTube or Google Drive video by URL. The URL is normalized to its embeddable form before saving.
// @Tags videos
// @Accept json
// @Produce json
// @Param request body CreateVideoFromURLRequest true "Video payload"
// @Success 201 {object} util.Response{data=model.VideoItem}
// @Security BearerAuth
// @Router /videos [post]
func (c *VideoController) CreateFromURL(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateVideoFromURLRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	video := &model.VideoItem{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Category:    req.Category,
		GradeLevel:  req.GradeLevel,
		OwnerUserID: claims.UserID,
		SchoolID:    claims.SchoolID,
		IsVisible:   true,
		PublishedAt: req.PublishedAt,
	}
	if raw, err := json.Marshal(util.NormalizeRoles(req.AllowedRoles)); err == nil {
		video.AllowedRoles = datatypes.JSON(raw)
	}

	if err := c.VideoService.CreateFromURL(video); err != nil {
		if errors.Is(err, util.ErrEmptyFilePath) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, video)
}

// @Summary Upload a video file
// @Description Uploads a video, probes its duration and generates a thumbnail
// @Tags videos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Video file"
// @Param title formData string false "Title"
// @Success 201 {object} util.Response{data=model.VideoItem}
// @Security BearerAuth
// @Router /videos/upload [post]
func (c *VideoController) Upload(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "video file required")
		return
	}

	video := &model.VideoItem{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
		Category:    ctx.PostForm("category"),
		GradeLevel:  util.MustParseInt(ctx.PostForm("gradeLevel")),
		OwnerUserID: claims.UserID,
		SchoolID:    claims.SchoolID,
		IsVisible:   true,
	}
	if v := ctx.PostForm("publishedAt"); v != "" {
		if at, err := time.Parse(time.RFC3339, v); err == nil {
			video.PublishedAt = &at
		}
	}
	if raw, err := json.Marshal(util.NormalizeRoles(ctx.PostFormArray("allowedRoles"))); err == nil {
		video.AllowedRoles = datatypes.JSON(raw)
	}

	if err := c.VideoService.UploadVideo(ctx.Request.Context(), file, video); err != nil {
		if errors.Is(err, util.ErrInvalidVideoUpload) {
			util.BadRequest(ctx, "unsupported video format")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, video)
}

func (c *VideoController) Update(ctx *gin.Context) {
	var req UpdateVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.VideoURL != nil {
		updates["video_url"] = *req.VideoURL
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.IsVisible != nil {
		updates["is_visible"] = *req.IsVisible
	}
	if req.AllowedRoles != nil {
		updates["allowed_roles"] = req.AllowedRoles
	}
	if req.PublishedAt != nil {
		updates["published_at"] = *req.PublishedAt
	}

	if err := c.VideoService.Update(ctx.Param("id"), updates); err != nil {
		if errors.Is(err, util.ErrVideoNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *VideoController) Delete(ctx *gin.Context) {
	if err := c.VideoService.Delete(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrVideoNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
