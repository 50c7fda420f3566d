package controller

import (
	"errors"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/service"
	"manhaj_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

type QuestionRequest struct {
	QuestionText  string                `json:"questionText" binding:"required"`
	QuestionType  model.QuestionType    `json:"questionType" binding:"required"`
	Choices       datatypes.JSON        `json:"choices"`
	CorrectAnswer string                `json:"correctAnswer"`
	Points        int                   `json:"points"`
	Difficulty    model.DifficultyLevel `json:"difficulty"`
	GradeLevel    int                   `json:"gradeLevel"`
	SectionID     *string               `json:"sectionId"`
}

func (r *QuestionRequest) toModel(createdBy uint) *model.Question {
	return &model.Question{
		QuestionText:  r.QuestionText,
		QuestionType:  r.QuestionType,
		Choices:       r.Choices,
		CorrectAnswer: r.CorrectAnswer,
		Points:        r.Points,
		Difficulty:    r.Difficulty,
		GradeLevel:    r.GradeLevel,
		CreatedBy:     createdBy,
		SectionID:     r.SectionID,
	}
}

// @Summary List questions
// @Tags questions
// @Produce json
// @Param type query string false "Question type"
// @Param difficulty query string false "Difficulty"
// @Param sectionId query string false "Section ID"
// @Param grade query int false "Grade level"
// @Param q query string false "Text search"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Security BearerAuth
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	page := util.MustParseInt(ctx.DefaultQuery("page", "1"))
	limit := util.MustParseInt(ctx.DefaultQuery("limit", "20"))

	filter := repository.QuestionFilter{
		Type:       model.QuestionType(ctx.Query("type")),
		Difficulty: model.DifficultyLevel(ctx.Query("difficulty")),
		GradeLevel: util.MustParseInt(ctx.Query("grade")),
		Search:     ctx.Query("q"),
	}
	if sectionID := ctx.Query("sectionId"); sectionID != "" {
		filter.SectionID = sectionID
	}

	questions, total, err := c.QuestionService.List(filter, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: questions, Total: total, Page: page, Limit: limit})
}

// @Summary Create question
// @Description Validates the question against its declared type before saving. Multiple-choice questions need at least two unique choices containing the correct answer.
// @Tags questions
// @Accept json
// @Produce json
// @Param request body QuestionRequest true "Question payload"
// @Success 201 {object} util.Response{data=model.Question}
// @Security BearerAuth
// @Router /questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q := req.toModel(claims.UserID)
	if err := c.QuestionService.Create(q); err != nil {
		c.questionError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

func (c *QuestionController) Update(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q := req.toModel(0)
	if err := c.QuestionService.Update(ctx.Param("id"), q); err != nil {
		c.questionError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

func (c *QuestionController) Delete(ctx *gin.Context) {
	if err := c.QuestionService.Delete(ctx.Param("id")); err != nil {
		c.questionError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *QuestionController) questionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuestionNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrNotEnoughChoices),
		errors.Is(err, util.ErrAnswerNotInChoices),
		errors.Is(err, util.ErrInvalidTrueFalse),
		errors.Is(err, util.ErrInvalidDifficulty),
		errors.Is(err, util.ErrInvalidQuestionType):
		util.Error(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
