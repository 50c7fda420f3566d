package service

import (
	"context"
	"errors"
	"io"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/util"
	"strings"
	"testing"
	"time"
)

// failingStorage fails uploads whose payload is marked, since the storage key
// no longer carries the original filename.
type failingStorage struct {
	failNames map[string]bool
	uploaded  []string
}

func (f *failingStorage) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	payload, _ := io.ReadAll(reader)
	if f.failNames[string(payload)] {
		return "", errors.New("storage unavailable")
	}
	f.uploaded = append(f.uploaded, filename)
	return "/uploads/" + filename, nil
}

func (f *failingStorage) UploadFile(ctx context.Context, filename, localPath, contentType string) (string, error) {
	f.uploaded = append(f.uploaded, filename)
	return "/uploads/" + filename, nil
}

func (f *failingStorage) Delete(ctx context.Context, filename string) error { return nil }

func (f *failingStorage) GetURL(filename string) string { return "/uploads/" + filename }

func newDocService(t *testing.T) (*DocumentService, *failingStorage) {
	t.Helper()
	db := newTestDB(t)
	storage := &failingStorage{failNames: map[string]bool{}}
	return NewDocumentService(repository.NewDocumentRepository(db), storage, nil), storage
}

func TestBulkUploadMixedOutcome(t *testing.T) {
	svc, storage := newDocService(t)
	storage.failNames["payload-two"] = true

	files := []BulkFile{
		{FileName: "خطة-الدرس.pdf", Reader: strings.NewReader("payload-one"), Size: 11, ContentType: "application/pdf"},
		{FileName: "ورقة-عمل.docx", Reader: strings.NewReader("payload-two"), Size: 11, ContentType: "application/msword"},
		{FileName: "جدول.xlsx", Reader: strings.NewReader("payload-three"), Size: 13, ContentType: "application/vnd.ms-excel"},
	}
	meta := BulkMeta{Category: "worksheets", GradeLevel: 6, OwnerUserID: 1}

	results, err := svc.BulkUpload(context.Background(), meta, files)
	if err != nil {
		t.Fatalf("BulkUpload: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if results[0].Progress != 100 || results[0].Error != "" {
		t.Fatalf("file 1 = %+v, want success", results[0])
	}
	if results[1].Progress != 0 || results[1].Error == "" {
		t.Fatalf("file 2 = %+v, want recorded failure", results[1])
	}
	if results[2].Progress != 100 || results[2].Error != "" {
		t.Fatalf("file 3 = %+v, want success despite earlier failure", results[2])
	}

	// Only the successful files reach the database.
	docs, total, err := svc.DocRepo.List(6, "worksheets", 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 {
		t.Fatalf("persisted %d documents, want 2", total)
	}
	for _, d := range docs {
		if d.FileName == "ورقة-عمل.docx" {
			t.Fatalf("failed file was persisted")
		}
	}
}

func TestBulkUploadRejectsDisallowedExtension(t *testing.T) {
	svc, storage := newDocService(t)

	files := []BulkFile{
		{FileName: "malware.exe", Reader: strings.NewReader("x"), Size: 1},
		{FileName: "تقرير.pdf", Reader: strings.NewReader("y"), Size: 1, ContentType: "application/pdf"},
	}
	results, err := svc.BulkUpload(context.Background(), BulkMeta{OwnerUserID: 1}, files)
	if err != nil {
		t.Fatalf("BulkUpload: %v", err)
	}
	if results[0].Error != util.ErrInvalidDocumentUpload.Error() {
		t.Fatalf("exe result = %+v, want extension rejection", results[0])
	}
	if results[1].Progress != 100 {
		t.Fatalf("pdf result = %+v, want success", results[1])
	}
	if len(storage.uploaded) != 1 {
		t.Fatalf("storage saw %d uploads, want 1", len(storage.uploaded))
	}
}

func TestBulkUploadKeyHidesOriginalFilename(t *testing.T) {
	svc, storage := newDocService(t)

	files := []BulkFile{
		{FileName: "أسماء الطلاب السرية.pdf", Reader: strings.NewReader("z"), Size: 1, ContentType: "application/pdf"},
	}
	if _, err := svc.BulkUpload(context.Background(), BulkMeta{OwnerUserID: 1}, files); err != nil {
		t.Fatalf("BulkUpload: %v", err)
	}
	if len(storage.uploaded) != 1 {
		t.Fatalf("no upload recorded")
	}
	key := storage.uploaded[0]
	if strings.Contains(key, "أسماء") || strings.Contains(key, "الطلاب") {
		t.Fatalf("original filename leaked into storage key: %s", key)
	}
	if !strings.HasPrefix(key, "documents/") || !strings.HasSuffix(key, ".pdf") {
		t.Fatalf("unexpected key shape: %s", key)
	}
}

func TestDocumentVisibilityFiltering(t *testing.T) {
	svc, _ := newDocService(t)

	seed := []model.Document{
		{Title: "للجميع", FilePath: "/uploads/a.pdf", IsVisible: true, AllowedRoles: []byte(`["all"]`)},
		{Title: "للمعلمين", FilePath: "/uploads/b.pdf", IsVisible: true, AllowedRoles: []byte(`["teacher"]`)},
		{Title: "مخفي", FilePath: "/uploads/c.pdf", IsVisible: false, AllowedRoles: []byte(`["all"]`)},
	}
	for i := range seed {
		if err := svc.DocRepo.Create(&seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	student, _, err := svc.ListVisible(model.Student, 0, "", 1, 10)
	if err != nil {
		t.Fatalf("ListVisible student: %v", err)
	}
	if len(student) != 1 || student[0].Title != "للجميع" {
		t.Fatalf("student sees %d docs, want only the all-roles one", len(student))
	}

	teacher, _, err := svc.ListVisible(model.Teacher, 0, "", 1, 10)
	if err != nil {
		t.Fatalf("ListVisible teacher: %v", err)
	}
	// Staff see everything, including hidden items.
	if len(teacher) != 3 {
		t.Fatalf("teacher sees %d docs, want 3", len(teacher))
	}
}

func TestHiddenDocumentStaysHidden(t *testing.T) {
	svc, _ := newDocService(t)

	doc := &model.Document{Title: "مخفي", FilePath: "/uploads/h.pdf", IsVisible: false, AllowedRoles: []byte(`["all"]`)}
	if err := svc.DocRepo.Create(doc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.DocRepo.FindByID(doc.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.IsVisible {
		t.Fatalf("document created hidden was persisted visible")
	}
}

func TestScheduledPublishFlow(t *testing.T) {
	svc, _ := newDocService(t)

	future := time.Now().Add(time.Hour)
	scheduled := &model.Document{Title: "قادم", FilePath: "/uploads/s.pdf", IsVisible: true, PublishedAt: &future}
	if err := svc.Create(scheduled); err != nil {
		t.Fatalf("Create scheduled: %v", err)
	}
	got, err := svc.DocRepo.FindByID(scheduled.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.IsVisible {
		t.Fatalf("scheduled document visible before its publish time")
	}

	past := time.Now().Add(-time.Minute)
	due := &model.Document{Title: "مستحق", FilePath: "/uploads/d.pdf", PublishedAt: &past}
	if err := svc.DocRepo.Create(due); err != nil {
		t.Fatalf("Create due: %v", err)
	}

	n, err := svc.PublishDue()
	if err != nil {
		t.Fatalf("PublishDue: %v", err)
	}
	if n != 1 {
		t.Fatalf("published %d documents, want 1", n)
	}

	published, err := svc.DocRepo.FindByID(due.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !published.IsVisible {
		t.Fatalf("due document still hidden after sweep")
	}
	still, err := svc.DocRepo.FindByID(scheduled.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if still.IsVisible {
		t.Fatalf("future-dated document published early")
	}
}

func TestCreateNormalizesAllowedRoles(t *testing.T) {
	svc, _ := newDocService(t)

	doc := &model.Document{
		Title:        "مستند",
		FilePath:     "/uploads/x.pdf",
		AllowedRoles: []byte(`["all","teacher","teacher",""]`),
	}
	if err := svc.Create(doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	roles, err := RolesOf(doc.AllowedRoles)
	if err != nil {
		t.Fatalf("RolesOf: %v", err)
	}
	// A specific role evicts the "all" sentinel and duplicates collapse.
	if len(roles) != 1 || roles[0] != "teacher" {
		t.Fatalf("roles = %v, want [teacher]", roles)
	}
}
