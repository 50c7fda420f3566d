package controller

import (
	"errors"
	"manhaj_backend/internal/service"
	"manhaj_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GameController struct {
	GameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{GameService: gameService}
}

type RecordScoreRequest struct {
	Score    int `json:"score" binding:"min=0"`
	MaxScore int `json:"maxScore" binding:"required,min=1"`
}

// @Summary List games
// @Tags games
// @Produce json
// @Param grade query int false "Grade level"
// @Success 200 {object} util.Response{data=[]model.Game}
// @Router /games [get]
func (c *GameController) List(ctx *gin.Context) {
	games, err := c.GameService.List(util.MustParseInt(ctx.Query("grade")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, games)
}

// @Summary Get game by slug
// @Tags games
// @Produce json
// @Param slug path string true "Game slug"
// @Success 200 {object} util.Response{data=model.Game}
// @Router /games/{slug} [get]
func (c *GameController) GetBySlug(ctx *gin.Context) {
	game, err := c.GameService.GetBySlug(ctx.Param("slug"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, game)
}

func (c *GameController) SetEnabled(ctx *gin.Context) {
	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.GameService.SetEnabled(ctx.Param("id"), *req.Enabled); err != nil {
		c.gameError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Start game session
// @Tags games
// @Param id path string true "Game ID"
// @Success 201 {object} util.Response
// @Security BearerAuth
// @Router /games/{id}/sessions [post]
func (c *GameController) StartSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.GameService.StartSession(ctx.Param("id"), claims.UserID); err != nil {
		c.gameError(ctx, err)
		return
	}
	util.Created(ctx, nil)
}

// @Summary Record game score
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body RecordScoreRequest true "Score payload"
// @Success 201 {object} util.Response
// @Security BearerAuth
// @Router /games/{id}/scores [post]
func (c *GameController) RecordScore(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req RecordScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.GameService.RecordScore(ctx.Param("id"), claims.UserID, req.Score, req.MaxScore); err != nil {
		c.gameError(ctx, err)
		return
	}
	util.Created(ctx, nil)
}

// @Summary Top scores for a game
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Param limit query int false "Number of entries"
// @Success 200 {object} util.Response{data=[]model.GameScore}
// @Router /games/{id}/scores [get]
func (c *GameController) TopScores(ctx *gin.Context) {
	scores, err := c.GameService.TopScores(ctx.Param("id"), util.MustParseInt(ctx.Query("limit")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, scores)
}

// @Summary Reset game statistics
// @Description Wipes scores and sessions for one game, or for every game when no id is given
// @Tags games
// @Produce json
// @Param gameId query string false "Game ID, empty for all"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /games/stats/reset [post]
func (c *GameController) ResetStats(ctx *gin.Context) {
	if err := c.GameService.ResetGameData(ctx.Query("gameId")); err != nil {
		c.gameError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *GameController) gameError(ctx *gin.Context, err error) {
	if errors.Is(err, util.ErrGameNotFound) {
		util.NotFound(ctx)
		return
	}
	util.LogInternalError(ctx, err)
}
