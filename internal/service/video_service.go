package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"manhaj_backend/internal/config"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/util"
	"manhaj_backend/pkg/logger"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type VideoService struct {
	VideoRepo *repository.VideoRepository
	Storage   *StorageService
	Cfg       *config.Config
}

func NewVideoService(videoRepo *repository.VideoRepository, storage *StorageService, cfg *config.Config) *VideoService {
	return &VideoService{
		VideoRepo: videoRepo,
		Storage:   storage,
		Cfg:       cfg,
	}
}

// CreateFromURL registers an external video. The pasted URL is normalized to
// its embeddable form before anything is written.
func (s *VideoService) CreateFromURL(video *model.VideoItem) error {
	url := strings.TrimSpace(video.VideoURL)
	if url == "" {
		return util.ErrEmptyFilePath
	}
	video.VideoURL = util.NormalizeVideoURL(url)

	roles, err := RolesOf(video.AllowedRoles)
	if err != nil {
		return err
	}
	normalized, err := json.Marshal(util.NormalizeRoles(roles))
	if err != nil {
		return err
	}
	video.AllowedRoles = datatypes.JSON(normalized)
	// A future publish date keeps the item hidden until the sweep flips it.
	if video.PublishedAt != nil && video.PublishedAt.After(time.Now()) {
		video.IsVisible = false
	}
	return s.VideoRepo.Create(video)
}

// UploadVideo stores an uploaded video file, probes its duration and renders
// a thumbnail, then registers the library item.
func (s *VideoService) UploadVideo(ctx context.Context, file *multipart.FileHeader, video *model.VideoItem) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !util.HasAllowedExtension(file.Filename, util.AllowedVideoExtensions) {
		return util.ErrInvalidVideoUpload
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if _, err := util.ValidateMimeType(src, []string{util.MimeVideo}); err != nil {
		return fmt.Errorf("invalid video content: %v", err)
	}
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	// Stage locally for probing and thumbnail extraction.
	tempDir := filepath.Join(s.Cfg.Storage.LocalPath, "temp")
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return err
	}
	tempPath := filepath.Join(tempDir, fmt.Sprintf("temp_video_%d%s", time.Now().UnixNano(), ext))
	defer os.Remove(tempPath)

	dst, err := os.Create(tempPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	dst.Close()

	key := util.BuildStorageKey("videos", file.Filename)
	videoURL, err := s.Storage.UploadFile(ctx, key, tempPath, file.Header.Get("Content-Type"))
	if err != nil {
		return err
	}

	thumbKey := util.BuildStorageKey("thumbnails", "thumb.jpg")
	thumbPath := filepath.Join(tempDir, filepath.Base(thumbKey))
	defer os.Remove(thumbPath)

	thumbnailURL := s.Storage.GetURL("thumbnails/default-video-thumbnail.jpg")
	if err := util.GenerateThumbnail(tempPath, thumbPath, "3"); err != nil {
		logger.Log.Error("thumbnail generation failed", zap.Error(err))
	} else if url, err := s.Storage.UploadFile(ctx, thumbKey, thumbPath, "image/jpeg"); err == nil {
		thumbnailURL = url
	}

	var duration float64
	if info, err := util.GetVideoInfo(tempPath); err == nil {
		duration = info.Duration
	}

	if video.Title == "" {
		video.Title = strings.TrimSuffix(file.Filename, ext)
	}
	video.VideoURL = videoURL
	video.Thumbnail = thumbnailURL
	video.Duration = duration

	roles, err := RolesOf(video.AllowedRoles)
	if err != nil {
		return err
	}
	normalized, err := json.Marshal(util.NormalizeRoles(roles))
	if err != nil {
		return err
	}
	video.AllowedRoles = datatypes.JSON(normalized)

	if video.PublishedAt != nil && video.PublishedAt.After(time.Now()) {
		video.IsVisible = false
	}
	return s.VideoRepo.Create(video)
}

func (s *VideoService) Update(id string, updates map[string]interface{}) error {
	if _, err := s.VideoRepo.FindByID(id); err != nil {
		return util.ErrVideoNotFound
	}
	if url, ok := updates["video_url"].(string); ok {
		updates["video_url"] = util.NormalizeVideoURL(url)
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
	return s.VideoRepo.UpdateFields(id, updates)
}

func (s *VideoService) Delete(id string) error {
	if _, err := s.VideoRepo.FindByID(id); err != nil {
		return util.ErrVideoNotFound
	}
	return s.VideoRepo.Delete(id)
}

func (s *VideoService) PublishDue() (int64, error) {
	return s.VideoRepo.PublishDue(time.Now())
}

// ListVisible mirrors DocumentService.ListVisible for the video library.
func (s *VideoService) ListVisible(role model.UserRole, gradeLevel int, category string, page, limit int) ([]model.VideoItem, int64, error) {
	videos, total, err := s.VideoRepo.List(gradeLevel, category, page, limit)
	if err != nil {
		return nil, 0, err
	}
	if role.IsStaff() {
		return videos, total, nil
	}

	out := make([]model.VideoItem, 0, len(videos))
	for _, v := range videos {
		if !v.IsVisible {
			continue
		}
		roles, err := RolesOf(v.AllowedRoles)
		if err != nil {
			continue
		}
		if util.RolesAllow(roles, role) {
			out = append(out, v)
		}
	}
	return out, int64(len(out)), nil
}
