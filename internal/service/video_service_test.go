package service

import (
	"context"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/util"
	"mime/multipart"
	"testing"
	"time"
)

func newVideoService(t *testing.T) *VideoService {
	t.Helper()
	db := newTestDB(t)
	return NewVideoService(repository.NewVideoRepository(db), nil, nil)
}

func TestCreateFromURLNormalizesLink(t *testing.T) {
	svc := newVideoService(t)

	video := &model.VideoItem{Title: "شرح TCP", VideoURL: "https://www.youtube.com/watch?v=abc123", IsVisible: true}
	if err := svc.CreateFromURL(video); err != nil {
		t.Fatalf("CreateFromURL: %v", err)
	}

	got, err := svc.VideoRepo.FindByID(video.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.VideoURL != "https://www.youtube.com/embed/abc123" {
		t.Fatalf("url not normalized: %s", got.VideoURL)
	}
	if !got.IsVisible {
		t.Fatalf("unscheduled video should stay visible")
	}
}

func TestVideoScheduledPublish(t *testing.T) {
	svc := newVideoService(t)

	future := time.Now().Add(time.Hour)
	video := &model.VideoItem{Title: "قادم", VideoURL: "https://youtu.be/xyz789", IsVisible: true, PublishedAt: &future}
	if err := svc.CreateFromURL(video); err != nil {
		t.Fatalf("CreateFromURL: %v", err)
	}
	got, err := svc.VideoRepo.FindByID(video.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.IsVisible {
		t.Fatalf("scheduled video visible before its publish time")
	}

	past := time.Now().Add(-time.Minute)
	due := &model.VideoItem{Title: "مستحق", VideoURL: "https://www.youtube.com/embed/due1", PublishedAt: &past}
	if err := svc.VideoRepo.Create(due); err != nil {
		t.Fatalf("Create due: %v", err)
	}

	n, err := svc.PublishDue()
	if err != nil {
		t.Fatalf("PublishDue: %v", err)
	}
	if n != 1 {
		t.Fatalf("published %d videos, want 1", n)
	}
	published, err := svc.VideoRepo.FindByID(due.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !published.IsVisible {
		t.Fatalf("due video still hidden after sweep")
	}
}

func TestUploadVideoRejectsBadExtension(t *testing.T) {
	svc := newVideoService(t)

	header := &multipart.FileHeader{Filename: "clip.exe"}
	err := svc.UploadVideo(context.Background(), header, &model.VideoItem{Title: "x"})
	if err != util.ErrInvalidVideoUpload {
		t.Fatalf("UploadVideo(exe) = %v, want ErrInvalidVideoUpload", err)
	}
}
