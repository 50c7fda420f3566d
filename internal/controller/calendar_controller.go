package controller

import (
	"errors"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/service"
	"manhaj_backend/internal/util"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CalendarController struct {
	CalendarService *service.CalendarService
}

func NewCalendarController(calendarService *service.CalendarService) *CalendarController {
	return &CalendarController{CalendarService: calendarService}
}

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
	EndsAt      time.Time `json:"endsAt"`
	AllDay      bool      `json:"allDay"`
	Color       string    `json:"color"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartsAt    *time.Time `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
	AllDay      *bool      `json:"allDay"`
	Color       *string    `json:"color"`
}

type CalendarSettingsRequest struct {
	WeekStartsOn  int    `json:"weekStartsOn" binding:"min=0,max=6"`
	DefaultView   string `json:"defaultView"`
	ShowWeekends  bool   `json:"showWeekends"`
	ReminderAhead int    `json:"reminderAhead"`
}

// @Summary Get calendar events
// @Description Returns the caller's events. When the database is unreachable the last mirrored copy is served instead.
// @Tags calendar
// @Produce json
// @Success 200 {object} util.Response{data=[]model.CalendarEvent}
// @Security BearerAuth
// @Router /calendar/events [get]
func (c *CalendarController) GetEvents(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	events, err := c.CalendarService.GetEvents(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrCalendarUnavailable) {
			util.Error(ctx, http.StatusServiceUnavailable, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, events)
}

// @Summary Create calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event payload"
// @Success 201 {object} util.Response{data=model.CalendarEvent}
// @Security BearerAuth
// @Router /calendar/events [post]
func (c *CalendarController) CreateEvent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event := &model.CalendarEvent{
		UserID:      claims.UserID,
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		AllDay:      req.AllDay,
		Color:       req.Color,
	}
	if err := c.CalendarService.CreateEvent(ctx.Request.Context(), event); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, event)
}

func (c *CalendarController) UpdateEvent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateEventRequest
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
	if req.StartsAt != nil {
		updates["starts_at"] = *req.StartsAt
	}
	if req.EndsAt != nil {
		updates["ends_at"] = *req.EndsAt
	}
	if req.AllDay != nil {
		updates["all_day"] = *req.AllDay
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}

	if err := c.CalendarService.UpdateEvent(ctx.Request.Context(), ctx.Param("id"), claims.UserID, updates); err != nil {
		c.calendarError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *CalendarController) DeleteEvent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.CalendarService.DeleteEvent(ctx.Request.Context(), ctx.Param("id"), claims.UserID); err != nil {
		c.calendarError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Get calendar settings
// @Tags calendar
// @Produce json
// @Success 200 {object} util.Response{data=model.CalendarSettings}
// @Security BearerAuth
// @Router /calendar/settings [get]
func (c *CalendarController) GetSettings(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	settings, err := c.CalendarService.GetSettings(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

// @Summary Save calendar settings
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body CalendarSettingsRequest true "Settings payload"
// @Success 200 {object} util.Response{data=model.CalendarSettings}
// @Security BearerAuth
// @Router /calendar/settings [put]
func (c *CalendarController) SaveSettings(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CalendarSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	settings := &model.CalendarSettings{
		UserID:        claims.UserID,
		WeekStartsOn:  req.WeekStartsOn,
		DefaultView:   req.DefaultView,
		ShowWeekends:  req.ShowWeekends,
		ReminderAhead: req.ReminderAhead,
	}
	if err := c.CalendarService.SaveSettings(ctx.Request.Context(), settings); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

func (c *CalendarController) calendarError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, gorm.ErrRecordNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
