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

type DocumentController struct {
	DocService *service.DocumentService
}

func NewDocumentController(docService *service.DocumentService) *DocumentController {
	return &DocumentController{DocService: docService}
}

type CreateDocumentRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	FilePath     string     `json:"filePath" binding:"required"`
	FileName     string     `json:"fileName"`
	Category     string     `json:"category"`
	GradeLevel   int        `json:"gradeLevel"`
	AllowedRoles []string   `json:"allowedRoles"`
	PublishedAt  *time.Time `json:"publishedAt"` // future date schedules the item
}

type UpdateDocumentRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Category     *string    `json:"category"`
	IsVisible    *bool      `json:"isVisible"`
	AllowedRoles []string   `json:"allowedRoles"`
	PublishedAt  *time.Time `json:"publishedAt"`
}

// @Summary List documents
// @Description Lists library documents visible to the caller. Staff see everything; other roles only visible items their role is allowed to access.
// @Tags documents
// @Produce json
// @Param grade query int false "Grade level"
// @Param category query string false "Category"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Security BearerAuth
// @Router /documents [get]
func (c *DocumentController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page := util.MustParseInt(ctx.DefaultQuery("page", "1"))
	limit := util.MustParseInt(ctx.DefaultQuery("limit", "20"))

	docs, total, err := c.DocService.ListVisible(
		claims.Role,
		util.MustParseInt(ctx.Query("grade")),
		ctx.Query("category"),
		page, limit,
	)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: docs, Total: total, Page: page, Limit: limit})
}

// @Summary Create document record
// @Tags documents
// @Accept json
// @Produce json
// @Param request body CreateDocumentRequest true "Document payload"
// @Success 201 {object} util.Response{data=model.Document}
// @Security BearerAuth
// @Router /documents [post]
func (c *DocumentController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	doc := &model.Document{
		Title:       req.Title,
		Description: req.Description,
		FilePath:    req.FilePath,
		FileName:    req.FileName,
		Category:    req.Category,
		GradeLevel:  req.GradeLevel,
		OwnerUserID: claims.UserID,
		SchoolID:    claims.SchoolID,
		IsVisible:   true,
		PublishedAt: req.PublishedAt,
	}
	if raw, err := json.Marshal(util.NormalizeRoles(req.AllowedRoles)); err == nil {
		doc.AllowedRoles = datatypes.JSON(raw)
	}

	if err := c.DocService.Create(doc); err != nil {
		if errors.Is(err, util.ErrEmptyFilePath) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, doc)
}

// @Summary Bulk upload documents
// @Description Uploads several files in one request. Each file is attempted independently; failures are reported per file and do not abort the rest.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files to upload"
// @Param category formData string false "Category"
// @Param gradeLevel formData int false "Grade level"
// @Param identifier formData string false "Progress tracking key"
// @Success 200 {object} util.Response{data=[]service.BulkUploadResult}
// @Security BearerAuth
// @Router /documents/bulk [post]
func (c *DocumentController) BulkUpload(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		util.BadRequest(ctx, "multipart form required")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		util.BadRequest(ctx, "no files provided")
		return
	}

	files := make([]service.BulkFile, 0, len(headers))
	var closers []interface{ Close() error }
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()

	for _, h := range headers {
		src, err := h.Open()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		closers = append(closers, src)
		files = append(files, service.BulkFile{
			FileName:    h.Filename,
			Reader:      src,
			Size:        h.Size,
			ContentType: h.Header.Get("Content-Type"),
		})
	}

	meta := service.BulkMeta{
		Category:     ctx.PostForm("category"),
		GradeLevel:   util.MustParseInt(ctx.PostForm("gradeLevel")),
		OwnerUserID:  claims.UserID,
		SchoolID:     claims.SchoolID,
		AllowedRoles: form.Value["allowedRoles"],
		Identifier:   ctx.PostForm("identifier"),
	}

	results, err := c.DocService.BulkUpload(ctx.Request.Context(), meta, files)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// @Summary Get bulk upload progress
// @Tags documents
// @Produce json
// @Param identifier path string true "Progress tracking key"
// @Success 200 {object} util.Response{data=[]service.BulkUploadResult}
// @Security BearerAuth
// @Router /documents/bulk/{identifier}/progress [get]
func (c *DocumentController) BulkProgress(ctx *gin.Context) {
	results, err := c.DocService.GetBulkProgress(ctx.Request.Context(), ctx.Param("identifier"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, results)
}

func (c *DocumentController) Update(ctx *gin.Context) {
	var req UpdateDocumentRequest
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

	if err := c.DocService.Update(ctx.Param("id"), updates); err != nil {
		if errors.Is(err, util.ErrDocumentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *DocumentController) Delete(ctx *gin.Context) {
	if err := c.DocService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrDocumentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Toggle role on a document
// @Description Flips one role in the allowed-roles set. Selecting "all" clears the specific roles; selecting a specific role clears "all".
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /documents/{id}/roles [patch]
func (c *DocumentController) ToggleRole(ctx *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	doc, err := c.DocService.DocRepo.FindByID(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	roles, err := service.RolesOf(doc.AllowedRoles)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	toggled := util.ToggleRole(roles, req.Role)
	if err := c.DocService.Update(doc.ID, map[string]interface{}{"allowed_roles": toggled}); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"allowedRoles": toggled})
}
