package controller

import (
	"errors"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/service"
	"manhaj_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Language   *string `json:"language"`
	GradeLevel *int    `json:"gradeLevel"`
}

type SetRoleRequest struct {
	Role model.UserRole `json:"role" binding:"required"`
}

// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} util.Response{data=model.User}
// @Security BearerAuth
// @Router /users/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetByID(claims.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, user)
}

// @Summary Update own profile
// @Description Role and school assignment are excluded; those go through the admin endpoints
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /users/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Language != nil {
		updates["language"] = *req.Language
	}
	if req.GradeLevel != nil {
		updates["grade_level"] = *req.GradeLevel
	}

	if err := c.UserService.UpdateProfile(claims.UserID, updates); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Upload avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Avatar image"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /users/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "avatar file required")
		return
	}

	url, err := c.UserService.UploadAvatar(ctx.Request.Context(), claims.UserID, file)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDocumentUpload) {
			util.BadRequest(ctx, "unsupported image format")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"avatar": url})
}

// @Summary List users
// @Tags admin
// @Produce json
// @Param schoolId query int false "School filter"
// @Param role query string false "Role filter"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Security BearerAuth
// @Router /admin/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page := util.MustParseInt(ctx.DefaultQuery("page", "1"))
	limit := util.MustParseInt(ctx.DefaultQuery("limit", "20"))

	var schoolID *uint
	if s := ctx.Query("schoolId"); s != "" {
		id := util.MustParseUint(s)
		schoolID = &id
	}

	users, total, err := c.UserService.List(schoolID, model.UserRole(ctx.Query("role")), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// @Summary Set user role
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body SetRoleRequest true "Role payload"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /admin/users/{id}/role [patch]
func (c *UserController) SetRole(ctx *gin.Context) {
	var req SetRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.SetRole(util.MustParseUint(ctx.Param("id")), req.Role); err != nil {
		if errors.Is(err, util.ErrInvalidStatus) {
			util.BadRequest(ctx, "invalid role")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *UserController) SetDisabled(ctx *gin.Context) {
	var req struct {
		Disabled *bool `json:"disabled" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.SetDisabled(util.MustParseUint(ctx.Param("id")), *req.Disabled); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *UserController) Delete(ctx *gin.Context) {
	if err := c.UserService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
