package service

import (
	"context"
	"encoding/json"
	"io"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/util"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/datatypes"
)

const bulkUploadProgressKeyPrefix = "bulk_upload_progress:"

type DocumentService struct {
	DocRepo *repository.DocumentRepository
	Storage StorageProvider
	Redis   *redis.Client
}

func NewDocumentService(docRepo *repository.DocumentRepository, storage StorageProvider, rdb *redis.Client) *DocumentService {
	return &DocumentService{
		DocRepo: docRepo,
		Storage: storage,
		Redis:   rdb,
	}
}

// BulkFile is one entry of a bulk upload.
type BulkFile struct {
	FileName    string
	Reader      io.Reader
	Size        int64
	ContentType string
}

// BulkMeta carries the fields shared by every file of a bulk upload.
type BulkMeta struct {
	Category     string
	GradeLevel   int
	OwnerUserID  uint
	SchoolID     *uint
	AllowedRoles []string
	Identifier   string // progress key, optional
}

// BulkUploadResult reports the per-file outcome of a bulk upload.
type BulkUploadResult struct {
	FileName string `json:"fileName"`
	FilePath string `json:"filePath,omitempty"`
	Progress int    `json:"progress"`
	Error    string `json:"error,omitempty"`
}

// BulkUpload attempts every file independently: a failure on one file resets
// that file's progress and records its error while the rest continue. Files
// that uploaded successfully are written as one batch at the end, so a bulk
// operation can finish in a mixed success/failure state.
func (s *DocumentService) BulkUpload(ctx context.Context, meta BulkMeta, files []BulkFile) ([]BulkUploadResult, error) {
	roles := util.NormalizeRoles(meta.AllowedRoles)
	rolesJSON, err := json.Marshal(roles)
	if err != nil {
		return nil, err
	}

	results := make([]BulkUploadResult, len(files))
	var batch []model.Document

	for i, f := range files {
		results[i] = BulkUploadResult{FileName: f.FileName}

		if !util.HasAllowedExtension(f.FileName, util.AllowedDocumentExtensions) {
			results[i].Error = util.ErrInvalidDocumentUpload.Error()
			continue
		}

		key := util.BuildStorageKey("documents", f.FileName)
		url, err := s.Storage.Upload(ctx, key, f.Reader, f.Size, f.ContentType)
		if err != nil {
			results[i].Progress = 0
			results[i].Error = err.Error()
			s.mirrorProgress(ctx, meta.Identifier, results)
			continue
		}

		results[i].Progress = 100
		results[i].FilePath = url
		s.mirrorProgress(ctx, meta.Identifier, results)

		batch = append(batch, model.Document{
			Title:        titleFromFilename(f.FileName),
			FilePath:     url,
			FileName:     f.FileName,
			Category:     meta.Category,
			GradeLevel:   meta.GradeLevel,
			OwnerUserID:  meta.OwnerUserID,
			SchoolID:     meta.SchoolID,
			IsVisible:    true,
			AllowedRoles: datatypes.JSON(rolesJSON),
			Size:         f.Size,
		})
	}

	if err := s.DocRepo.CreateBatch(batch); err != nil {
		return results, err
	}
	return results, nil
}

func (s *DocumentService) mirrorProgress(ctx context.Context, identifier string, results []BulkUploadResult) {
	if s.Redis == nil || identifier == "" {
		return
	}
	payload, err := json.Marshal(results)
	if err != nil {
		return
	}
	s.Redis.Set(ctx, bulkUploadProgressKeyPrefix+identifier, payload, 24*time.Hour)
}

func (s *DocumentService) GetBulkProgress(ctx context.Context, identifier string) ([]BulkUploadResult, error) {
	val, err := s.Redis.Get(ctx, bulkUploadProgressKeyPrefix+identifier).Result()
	if err != nil {
		return nil, err
	}
	var results []BulkUploadResult
	if err := json.Unmarshal([]byte(val), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *DocumentService) Create(doc *model.Document) error {
	if strings.TrimSpace(doc.FilePath) == "" {
		return util.ErrEmptyFilePath
	}
	roles, err := RolesOf(doc.AllowedRoles)
	if err != nil {
		return err
	}
	normalized, err := json.Marshal(util.NormalizeRoles(roles))
	if err != nil {
		return err
	}
	doc.AllowedRoles = datatypes.JSON(normalized)
	// A future publish date keeps the item hidden until the sweep flips it.
	if doc.PublishedAt != nil && doc.PublishedAt.After(time.Now()) {
		doc.IsVisible = false
	}
	return s.DocRepo.Create(doc)
}

func (s *DocumentService) Update(id string, updates map[string]interface{}) error {
	if _, err := s.DocRepo.FindByID(id); err != nil {
		return util.ErrDocumentNotFound
	}
	if roles, ok := updates["allowed_roles"].([]string); ok {
		normalized, err := json.Marshal(util.NormalizeRoles(roles))
		if err != nil {
			return err
		}
		updates["allowed_roles"] = datatypes.JSON(normalized)
	}
	if at, ok := updates["published_at"].(time.Time); ok && at.After(time.Now()) {
		updates["is_visible"] = false
	}
	return s.DocRepo.UpdateFields(id, updates)
}

func (s *DocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.DocRepo.FindByID(id)
	if err != nil {
		return util.ErrDocumentNotFound
	}
	if err := s.DocRepo.Delete(id); err != nil {
		return err
	}
	// Best effort: the record is gone either way.
	if key := strings.TrimPrefix(doc.FilePath, "/uploads/"); key != doc.FilePath {
		s.Storage.Delete(ctx, key)
	}
	return nil
}

// ListVisible returns documents the given role may see: staff see everything,
// other roles only visible items whose allowed-roles set admits them.
func (s *DocumentService) ListVisible(role model.UserRole, gradeLevel int, category string, page, limit int) ([]model.Document, int64, error) {
	docs, total, err := s.DocRepo.List(gradeLevel, category, page, limit)
	if err != nil {
		return nil, 0, err
	}
	if role.IsStaff() {
		return docs, total, nil
	}

	out := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		if !d.IsVisible {
			continue
		}
		roles, err := RolesOf(d.AllowedRoles)
		if err != nil {
			continue
		}
		if util.RolesAllow(roles, role) {
			out = append(out, d)
		}
	}
	return out, int64(len(out)), nil
}

// PublishDue flips visibility on for documents whose scheduled publish time
// has passed. Called from the background ticker.
func (s *DocumentService) PublishDue() (int64, error) {
	return s.DocRepo.PublishDue(time.Now())
}

// RolesOf decodes an allowed-roles JSON column.
func RolesOf(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return []string{model.RoleAll}, nil
	}
	var roles []string
	if err := json.Unmarshal(raw, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func titleFromFilename(filename string) string {
	name := filename
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}
