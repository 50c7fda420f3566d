package service

import (
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/util"
	"testing"

	"gorm.io/datatypes"
)

func TestAddSectionAssignsContiguousOrder(t *testing.T) {
	svc, _ := newTreeService(t)

	for i, title := range []string{"الشبكات", "البرمجة", "الخوارزميات"} {
		s := &model.Section{Title: title, GradeLevel: 7}
		if err := svc.AddSection(s); err != nil {
			t.Fatalf("AddSection: %v", err)
		}
		if s.OrderIndex != i {
			t.Fatalf("section %q got order %d, want %d", title, s.OrderIndex, i)
		}
	}

	// A different grade starts its own sibling group at zero.
	other := &model.Section{Title: "مقدمة", GradeLevel: 8}
	if err := svc.AddSection(other); err != nil {
		t.Fatalf("AddSection: %v", err)
	}
	if other.OrderIndex != 0 {
		t.Fatalf("other grade got order %d, want 0", other.OrderIndex)
	}
}

func TestDeleteSectionCascadesAndCompacts(t *testing.T) {
	svc, db := newTreeService(t)

	sections := make([]*model.Section, 3)
	for i, title := range []string{"أ", "ب", "ج"} {
		sections[i] = &model.Section{Title: title, GradeLevel: 5}
		if err := svc.AddSection(sections[i]); err != nil {
			t.Fatalf("AddSection: %v", err)
		}
	}

	topic := &model.Topic{SectionID: sections[1].ID, Title: "بروتوكولات"}
	if err := svc.AddTopic(topic); err != nil {
		t.Fatalf("AddTopic: %v", err)
	}
	lesson := &model.Lesson{TopicID: topic.ID, Title: "TCP/IP"}
	if err := svc.AddLesson(lesson); err != nil {
		t.Fatalf("AddLesson: %v", err)
	}
	media := &model.LessonMedia{
		LessonID:  lesson.ID,
		MediaType: model.MediaImage,
		FilePath:  "images/diagram.png",
	}
	if err := svc.AddMedia(media); err != nil {
		t.Fatalf("AddMedia: %v", err)
	}

	if err := svc.DeleteSection(sections[1].ID); err != nil {
		t.Fatalf("DeleteSection: %v", err)
	}

	var topicCount, lessonCount, mediaCount int64
	db.Model(&model.Topic{}).Where("section_id = ?", sections[1].ID).Count(&topicCount)
	db.Model(&model.Lesson{}).Where("topic_id = ?", topic.ID).Count(&lessonCount)
	db.Model(&model.LessonMedia{}).Where("lesson_id = ?", lesson.ID).Count(&mediaCount)
	if topicCount != 0 || lessonCount != 0 || mediaCount != 0 {
		t.Fatalf("cascade left descendants: topics=%d lessons=%d media=%d", topicCount, lessonCount, mediaCount)
	}

	// Survivors renumbered 0..n-1 without gaps.
	var orders []int
	db.Model(&model.Section{}).Where("grade_level = ?", 5).Order("order_index").Pluck("order_index", &orders)
	if len(orders) != 2 || orders[0] != 0 || orders[1] != 1 {
		t.Fatalf("orders after delete = %v, want [0 1]", orders)
	}
}

func TestReorderSections(t *testing.T) {
	svc, db := newTreeService(t)

	ids := make([]string, 3)
	for i, title := range []string{"أول", "ثاني", "ثالث"} {
		s := &model.Section{Title: title, GradeLevel: 6}
		if err := svc.AddSection(s); err != nil {
			t.Fatalf("AddSection: %v", err)
		}
		ids[i] = s.ID
	}

	reversed := []string{ids[2], ids[1], ids[0]}
	if err := svc.ReorderSections(6, reversed); err != nil {
		t.Fatalf("ReorderSections: %v", err)
	}

	var got []string
	db.Model(&model.Section{}).Where("grade_level = ?", 6).Order("order_index").Pluck("id", &got)
	for i := range reversed {
		if got[i] != reversed[i] {
			t.Fatalf("position %d = %s, want %s", i, got[i], reversed[i])
		}
	}

	// Applying the same order again is a no-op, not an error.
	if err := svc.ReorderSections(6, reversed); err != nil {
		t.Fatalf("idempotent reorder: %v", err)
	}
}

func TestReorderRejectsMismatchedIDSet(t *testing.T) {
	svc, _ := newTreeService(t)

	a := &model.Section{Title: "أ", GradeLevel: 9}
	b := &model.Section{Title: "ب", GradeLevel: 9}
	for _, s := range []*model.Section{a, b} {
		if err := svc.AddSection(s); err != nil {
			t.Fatalf("AddSection: %v", err)
		}
	}

	cases := [][]string{
		{a.ID},                         // missing sibling
		{a.ID, b.ID, "not-a-real-id"},  // extra id
		{a.ID, a.ID},                   // duplicate
		{a.ID, "not-a-real-id"},        // substituted
	}
	for _, c := range cases {
		if err := svc.ReorderSections(9, c); err != util.ErrReorderSetMismatch {
			t.Fatalf("ReorderSections(%v) = %v, want ErrReorderSetMismatch", c, err)
		}
	}
}

func TestAddTopicRequiresExistingSection(t *testing.T) {
	svc, _ := newTreeService(t)

	err := svc.AddTopic(&model.Topic{SectionID: "missing", Title: "x"})
	if err != util.ErrSectionNotFound {
		t.Fatalf("AddTopic = %v, want ErrSectionNotFound", err)
	}
}

func TestAddMediaValidatesPayload(t *testing.T) {
	svc, _ := newTreeService(t)

	section := &model.Section{Title: "قسم", GradeLevel: 4}
	if err := svc.AddSection(section); err != nil {
		t.Fatalf("AddSection: %v", err)
	}
	topic := &model.Topic{SectionID: section.ID, Title: "موضوع"}
	if err := svc.AddTopic(topic); err != nil {
		t.Fatalf("AddTopic: %v", err)
	}
	lesson := &model.Lesson{TopicID: topic.ID, Title: "درس"}
	if err := svc.AddLesson(lesson); err != nil {
		t.Fatalf("AddLesson: %v", err)
	}

	err := svc.AddMedia(&model.LessonMedia{
		LessonID:  lesson.ID,
		MediaType: model.MediaCode,
		FilePath:  "code/hello.c",
	})
	if err != util.ErrCodeLanguageRequired {
		t.Fatalf("code without language = %v, want ErrCodeLanguageRequired", err)
	}

	good := &model.LessonMedia{
		LessonID:  lesson.ID,
		MediaType: model.MediaCode,
		FilePath:  "code/hello.c",
		Metadata:  datatypes.JSON(`{"language":"c","speed":30}`),
	}
	if err := svc.AddMedia(good); err != nil {
		t.Fatalf("valid code media: %v", err)
	}
	if good.OrderIndex != 0 {
		t.Fatalf("first media order = %d, want 0", good.OrderIndex)
	}
}

func TestLoadTreeReturnsOrderedHierarchy(t *testing.T) {
	svc, _ := newTreeService(t)

	section := &model.Section{Title: "الشبكات", GradeLevel: 7}
	if err := svc.AddSection(section); err != nil {
		t.Fatalf("AddSection: %v", err)
	}
	for _, title := range []string{"بروتوكولات", "عناوين IP"} {
		if err := svc.AddTopic(&model.Topic{SectionID: section.ID, Title: title}); err != nil {
			t.Fatalf("AddTopic: %v", err)
		}
	}

	tree, err := svc.LoadTree(7)
	if err != nil {
		t.Fatalf("LoadTree: %v", err)
	}
	if len(tree) != 1 {
		t.Fatalf("got %d sections, want 1", len(tree))
	}
	if len(tree[0].Topics) != 2 {
		t.Fatalf("got %d topics, want 2", len(tree[0].Topics))
	}
	if tree[0].Topics[0].Title != "بروتوكولات" {
		t.Fatalf("first topic = %q, want insertion order preserved", tree[0].Topics[0].Title)
	}
}
