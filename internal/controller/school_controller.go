package controller

import (
	"errors"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/service"
	"manhaj_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SchoolController struct {
	SchoolService *service.SchoolService
}

func NewSchoolController(schoolService *service.SchoolService) *SchoolController {
	return &SchoolController{SchoolService: schoolService}
}

type SchoolRequest struct {
	Name    string `json:"name" binding:"required"`
	Region  string `json:"region"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// @Summary List schools
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response{data=[]model.School}
// @Security BearerAuth
// @Router /admin/schools [get]
func (c *SchoolController) List(ctx *gin.Context) {
	schools, err := c.SchoolService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, schools)
}

// @Summary Create school
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SchoolRequest true "School payload"
// @Success 201 {object} util.Response{data=model.School}
// @Security BearerAuth
// @Router /admin/schools [post]
func (c *SchoolController) Create(ctx *gin.Context) {
	var req SchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	school := &model.School{
		Name:    req.Name,
		Region:  req.Region,
		Address: req.Address,
		Phone:   req.Phone,
	}
	if err := c.SchoolService.Create(school); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, school)
}

func (c *SchoolController) Update(ctx *gin.Context) {
	var req struct {
		Name    *string `json:"name"`
		Region  *string `json:"region"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
		Active  *bool   `json:"active"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.SchoolService.Update(util.MustParseUint(ctx.Param("id")), func(s *model.School) {
		if req.Name != nil {
			s.Name = *req.Name
		}
		if req.Region != nil {
			s.Region = *req.Region
		}
		if req.Address != nil {
			s.Address = *req.Address
		}
		if req.Phone != nil {
			s.Phone = *req.Phone
		}
		if req.Active != nil {
			s.Active = *req.Active
		}
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *SchoolController) Delete(ctx *gin.Context) {
	if err := c.SchoolService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
