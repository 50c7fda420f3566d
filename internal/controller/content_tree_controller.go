package controller

import (
	"errors"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/service"
	"manhaj_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type ContentTreeController struct {
	TreeService *service.ContentTreeService
}

func NewContentTreeController(treeService *service.ContentTreeService) *ContentTreeController {
	return &ContentTreeController{TreeService: treeService}
}

type CreateSectionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	GradeLevel  int    `json:"gradeLevel" binding:"required,min=1,max=12"`
}

type CreateTopicRequest struct {
	SectionID string `json:"sectionId" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content"`
}

type CreateLessonRequest struct {
	TopicID string `json:"topicId" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type CreateMediaRequest struct {
	LessonID  string          `json:"lessonId" binding:"required"`
	MediaType model.MediaType `json:"mediaType" binding:"required"`
	FilePath  string          `json:"filePath" binding:"required"`
	FileName  string          `json:"fileName"`
	Metadata  datatypes.JSON  `json:"metadata"`
}

type UpdateMediaRequest struct {
	MediaType model.MediaType `json:"mediaType" binding:"required"`
	FilePath  string          `json:"filePath" binding:"required"`
	FileName  string          `json:"fileName"`
	Metadata  datatypes.JSON  `json:"metadata"`
}

// ReorderRequest carries the complete new order of one sibling group.
type ReorderRequest struct {
	OrderedIDs []string `json:"orderedIds" binding:"required,min=1"`
}

// @Summary Get content tree
// @Description Returns the Section→Topic→Lesson→Media tree for a grade, optionally filtered by a search query and facet
// @Tags content
// @Produce json
// @Param grade query int true "Grade level"
// @Param q query string false "Search query"
// @Param facet query string false "Facet: with_media or sections_only"
// @Success 200 {object} util.Response{data=[]model.Section}
// @Router /content/tree [get]
func (c *ContentTreeController) GetTree(ctx *gin.Context) {
	grade := util.MustParseInt(ctx.Query("grade"))
	if grade <= 0 {
		util.BadRequest(ctx, "grade query parameter is required")
		return
	}

	tree, err := c.TreeService.LoadTree(grade)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	filtered := service.FilterTree(tree, ctx.Query("q"), service.TreeFacet(ctx.Query("facet")))
	util.Success(ctx, filtered)
}

// @Summary Create section
// @Tags content
// @Accept json
// @Produce json
// @Param request body CreateSectionRequest true "Section payload"
// @Success 201 {object} util.Response{data=model.Section}
// @Router /content/sections [post]
func (c *ContentTreeController) CreateSection(ctx *gin.Context) {
	var req CreateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section := &model.Section{
		Title:       req.Title,
		Description: req.Description,
		GradeLevel:  req.GradeLevel,
	}
	if err := c.TreeService.AddSection(section); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, section)
}

// @Summary Update section
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} util.Response
// @Router /content/sections/{id} [put]
func (c *ContentTreeController) UpdateSection(ctx *gin.Context) {
	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}
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

	if err := c.TreeService.UpdateSection(ctx.Param("id"), updates); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Delete section
// @Description Deletes a section together with all of its topics, lessons and media
// @Tags content
// @Param id path string true "Section ID"
// @Success 200 {object} util.Response
// @Router /content/sections/{id} [delete]
func (c *ContentTreeController) DeleteSection(ctx *gin.Context) {
	if err := c.TreeService.DeleteSection(ctx.Param("id")); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Reorder sections
// @Description Applies a complete new sibling order for one grade level in a single transaction
// @Tags content
// @Accept json
// @Produce json
// @Param grade query int true "Grade level"
// @Param request body ReorderRequest true "Full ordered id list"
// @Success 200 {object} util.Response
// @Router /content/sections/reorder [put]
func (c *ContentTreeController) ReorderSections(ctx *gin.Context) {
	grade := util.MustParseInt(ctx.Query("grade"))
	if grade <= 0 {
		util.BadRequest(ctx, "grade query parameter is required")
		return
	}

	var req ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TreeService.ReorderSections(grade, req.OrderedIDs); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Create topic
// @Tags content
// @Accept json
// @Produce json
// @Param request body CreateTopicRequest true "Topic payload"
// @Success 201 {object} util.Response{data=model.Topic}
// @Router /content/topics [post]
func (c *ContentTreeController) CreateTopic(ctx *gin.Context) {
	var req CreateTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	topic := &model.Topic{
		SectionID: req.SectionID,
		Title:     req.Title,
		Content:   req.Content,
	}
	if err := c.TreeService.AddTopic(topic); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Created(ctx, topic)
}

func (c *ContentTreeController) UpdateTopic(ctx *gin.Context) {
	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}

	if err := c.TreeService.UpdateTopic(ctx.Param("id"), updates); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ContentTreeController) DeleteTopic(ctx *gin.Context) {
	if err := c.TreeService.DeleteTopic(ctx.Param("id")); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Reorder topics
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Section ID"
// @Param request body ReorderRequest true "Full ordered id list"
// @Success 200 {object} util.Response
// @Router /content/sections/{id}/topics/reorder [put]
func (c *ContentTreeController) ReorderTopics(ctx *gin.Context) {
	var req ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TreeService.ReorderTopics(ctx.Param("id"), req.OrderedIDs); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Create lesson
// @Tags content
// @Accept json
// @Produce json
// @Param request body CreateLessonRequest true "Lesson payload"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Router /content/lessons [post]
func (c *ContentTreeController) CreateLesson(ctx *gin.Context) {
	var req CreateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson := &model.Lesson{
		TopicID: req.TopicID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := c.TreeService.AddLesson(lesson); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

func (c *ContentTreeController) UpdateLesson(ctx *gin.Context) {
	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}

	if err := c.TreeService.UpdateLesson(ctx.Param("id"), updates); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ContentTreeController) DeleteLesson(ctx *gin.Context) {
	if err := c.TreeService.DeleteLesson(ctx.Param("id")); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ContentTreeController) ReorderLessons(ctx *gin.Context) {
	var req ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TreeService.ReorderLessons(ctx.Param("id"), req.OrderedIDs); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Attach media to a lesson
// @Description Adds a typed media item (video, image, lottie or code) to a lesson. The metadata payload is validated against the declared type.
// @Tags content
// @Accept json
// @Produce json
// @Param request body CreateMediaRequest true "Media payload"
// @Success 201 {object} util.Response{data=model.LessonMedia}
// @Router /content/media [post]
func (c *ContentTreeController) CreateMedia(ctx *gin.Context) {
	var req CreateMediaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	media := &model.LessonMedia{
		LessonID:  req.LessonID,
		MediaType: req.MediaType,
		FilePath:  req.FilePath,
		FileName:  req.FileName,
		Metadata:  req.Metadata,
	}
	if err := c.TreeService.AddMedia(media); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Created(ctx, media)
}

func (c *ContentTreeController) UpdateMedia(ctx *gin.Context) {
	var req UpdateMediaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	media := &model.LessonMedia{
		MediaType: req.MediaType,
		FilePath:  req.FilePath,
		FileName:  req.FileName,
		Metadata:  req.Metadata,
	}
	if err := c.TreeService.UpdateMedia(ctx.Param("id"), media); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ContentTreeController) DeleteMedia(ctx *gin.Context) {
	if err := c.TreeService.DeleteMedia(ctx.Param("id")); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ContentTreeController) ReorderMedia(ctx *gin.Context) {
	var req ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TreeService.ReorderMedia(ctx.Param("id"), req.OrderedIDs); err != nil {
		c.treeError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ContentTreeController) treeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSectionNotFound),
		errors.Is(err, util.ErrTopicNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrMediaNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrReorderSetMismatch):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrEmptyFilePath),
		errors.Is(err, util.ErrInvalidMediaType),
		errors.Is(err, util.ErrInvalidLottiePayload),
		errors.Is(err, util.ErrCodeLanguageRequired):
		util.Error(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
