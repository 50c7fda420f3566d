package service

import (
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/util"
	"testing"
)

func newProjectService(t *testing.T) *MiniProjectService {
	t.Helper()
	return NewMiniProjectService(repository.NewMiniProjectRepository(newTestDB(t)))
}

func seedProject(t *testing.T, svc *MiniProjectService, studentID uint) *model.MiniProject {
	t.Helper()
	p := &model.MiniProject{
		StudentID: studentID,
		Title:     "مشروع الروبوت",
		Content:   "<p>الفكرة الأولية</p>",
	}
	if err := svc.Create(p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return p
}

func TestCreateProjectDefaults(t *testing.T) {
	svc := newProjectService(t)

	p := &model.MiniProject{StudentID: 1, Title: "مشروع", ProgressPercentage: 150}
	if err := svc.Create(p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Status != model.ProjectDraft {
		t.Fatalf("status = %s, want draft", p.Status)
	}
	if p.ProgressPercentage != 100 {
		t.Fatalf("progress = %d, want clamped to 100", p.ProgressPercentage)
	}

	if err := svc.Create(&model.MiniProject{StudentID: 1, Title: "  "}); err != util.ErrTitleRequired {
		t.Fatalf("blank title: got %v, want ErrTitleRequired", err)
	}
}

func TestUpdateContentOwnerOnly(t *testing.T) {
	svc := newProjectService(t)
	p := seedProject(t, svc, 10)

	err := svc.UpdateContent(p.ID, 99, map[string]interface{}{"content": "سرقة"})
	if err != util.ErrPermissionDenied {
		t.Fatalf("foreign student edit: got %v, want ErrPermissionDenied", err)
	}

	if err := svc.UpdateContent(p.ID, 10, map[string]interface{}{
		"content":             "<p>نسخة ثانية</p>",
		"progress_percentage": 250,
	}); err != nil {
		t.Fatalf("owner edit: %v", err)
	}

	got, err := svc.ProjectRepo.FindByID(p.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Content != "<p>نسخة ثانية</p>" {
		t.Fatalf("content not updated")
	}
	if got.ProgressPercentage != 100 {
		t.Fatalf("progress = %d, want clamped to 100", got.ProgressPercentage)
	}
}

func TestUpdateContentStripsStatus(t *testing.T) {
	svc := newProjectService(t)
	p := seedProject(t, svc, 10)

	if err := svc.UpdateContent(p.ID, 10, map[string]interface{}{
		"status": model.ProjectReviewed,
		"title":  "عنوان جديد",
	}); err != nil {
		t.Fatalf("UpdateContent: %v", err)
	}

	got, _ := svc.ProjectRepo.FindByID(p.ID)
	if got.Status != model.ProjectDraft {
		t.Fatalf("student edit changed status to %s", got.Status)
	}
	if got.Title != "عنوان جديد" {
		t.Fatalf("title not updated")
	}
}

func TestUpdateStatusStaffOnly(t *testing.T) {
	svc := newProjectService(t)
	p := seedProject(t, svc, 10)

	if err := svc.UpdateStatus(p.ID, model.Student, model.ProjectCompleted); err != util.ErrPermissionDenied {
		t.Fatalf("student transition: got %v, want ErrPermissionDenied", err)
	}
	if err := svc.UpdateStatus(p.ID, model.Teacher, "archived"); err != util.ErrInvalidStatus {
		t.Fatalf("bad status: got %v, want ErrInvalidStatus", err)
	}
	if err := svc.UpdateStatus(p.ID, model.Teacher, model.ProjectReviewed); err != nil {
		t.Fatalf("teacher transition: %v", err)
	}

	got, _ := svc.ProjectRepo.FindByID(p.ID)
	if got.Status != model.ProjectReviewed {
		t.Fatalf("status = %s, want reviewed", got.Status)
	}
}

func TestDeleteProjectStaffOnly(t *testing.T) {
	svc := newProjectService(t)
	p := seedProject(t, svc, 10)

	if err := svc.Delete(p.ID, model.Student); err != util.ErrPermissionDenied {
		t.Fatalf("student delete: got %v, want ErrPermissionDenied", err)
	}
	if err := svc.Delete(p.ID, model.SchoolAdmin); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := svc.ProjectRepo.FindByID(p.ID); err == nil {
		t.Fatalf("project still present after delete")
	}
}
