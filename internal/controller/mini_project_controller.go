package controller

import (
	"errors"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/service"
	"manhaj_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type MiniProjectController struct {
	ProjectService *service.MiniProjectService
}

func NewMiniProjectController(projectService *service.MiniProjectService) *MiniProjectController {
	return &MiniProjectController{ProjectService: projectService}
}

type CreateProjectRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	DueDate     *time.Time `json:"dueDate"`
}

type UpdateProjectContentRequest struct {
	Title              *string `json:"title"`
	Description        *string `json:"description"`
	Content            *string `json:"content"`
	ProgressPercentage *int    `json:"progressPercentage"`
}

// @Summary List own mini projects
// @Tags projects
// @Produce json
// @Success 200 {object} util.Response{data=[]model.MiniProject}
// @Security BearerAuth
// @Router /projects/mine [get]
func (c *MiniProjectController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	projects, err := c.ProjectService.ListForStudent(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, projects)
}

// @Summary List all mini projects
// @Tags projects
// @Produce json
// @Param status query string false "Status filter"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Security BearerAuth
// @Router /projects [get]
func (c *MiniProjectController) List(ctx *gin.Context) {
	page := util.MustParseInt(ctx.DefaultQuery("page", "1"))
	limit := util.MustParseInt(ctx.DefaultQuery("limit", "20"))

	projects, total, err := c.ProjectService.List(model.MiniProjectStatus(ctx.Query("status")), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: projects, Total: total, Page: page, Limit: limit})
}

// @Summary Create mini project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body CreateProjectRequest true "Project payload"
// @Success 201 {object} util.Response{data=model.MiniProject}
// @Security BearerAuth
// @Router /projects [post]
func (c *MiniProjectController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	project := &model.MiniProject{
		StudentID:   claims.UserID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		DueDate:     req.DueDate,
	}
	if err := c.ProjectService.Create(project); err != nil {
		if errors.Is(err, util.ErrTitleRequired) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, project)
}

// @Summary Update project content
// @Description Only the owning student may edit content; status is never changed here
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /projects/{id} [put]
func (c *MiniProjectController) UpdateContent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProjectContentRequest
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
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.ProgressPercentage != nil {
		updates["progress_percentage"] = *req.ProgressPercentage
	}

	if err := c.ProjectService.UpdateContent(ctx.Param("id"), claims.UserID, updates); err != nil {
		c.projectError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Update project status
// @Description Staff-only status transition
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /projects/{id}/status [patch]
func (c *MiniProjectController) UpdateStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Status model.MiniProjectStatus `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProjectService.UpdateStatus(ctx.Param("id"), claims.Role, req.Status); err != nil {
		c.projectError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *MiniProjectController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ProjectService.Delete(ctx.Param("id"), claims.Role); err != nil {
		c.projectError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *MiniProjectController) projectError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrProjectNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrInvalidStatus):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
