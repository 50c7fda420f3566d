package controller

import (
	"errors"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/service"
	"manhaj_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type RegisterRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	GradeLevel int    `json:"gradeLevel" binding:"omitempty,min=1,max=12"`
	SchoolID   *uint  `json:"schoolId"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary Register
// @Description Creates a student account. Staff roles are assigned later by an administrator.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 409 {object} util.Response
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		GradeLevel: req.GradeLevel,
		SchoolID:   req.SchoolID,
	}
	if err := c.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Conflict(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Error(ctx, http.StatusForbidden, "Account disabled")
			return
		}
		util.Error(ctx, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	util.Success(ctx, gin.H{"token": token})
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response{data=model.User}
// @Security BearerAuth
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}
