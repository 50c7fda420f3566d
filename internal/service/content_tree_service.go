package service

import (
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/util"

	"gorm.io/gorm"
)

// ContentTreeService owns the Section → Topic → Lesson → Media hierarchy for
// each grade level. Every mutation keeps order_index unique and contiguous
// within the affected sibling group, and deletes always cascade downward.
type ContentTreeService struct {
	SectionRepo *repository.SectionRepository
	TopicRepo   *repository.TopicRepository
	LessonRepo  *repository.LessonRepository
	MediaRepo   *repository.LessonMediaRepository
	DB          *gorm.DB
}

func NewContentTreeService(
	sectionRepo *repository.SectionRepository,
	topicRepo *repository.TopicRepository,
	lessonRepo *repository.LessonRepository,
	mediaRepo *repository.LessonMediaRepository,
	db *gorm.DB,
) *ContentTreeService {
	return &ContentTreeService{
		SectionRepo: sectionRepo,
		TopicRepo:   topicRepo,
		LessonRepo:  lessonRepo,
		MediaRepo:   mediaRepo,
		DB:          db,
	}
}

// LoadTree returns the full tree for one grade level in one composed read.
func (s *ContentTreeService) LoadTree(gradeLevel int) ([]model.Section, error) {
	return s.SectionRepo.FindTreeByGrade(gradeLevel)
}

func (s *ContentTreeService) AddSection(section *model.Section) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Section{}).
			Where("grade_level = ?", section.GradeLevel).
			Count(&count).Error; err != nil {
			return err
		}
		section.OrderIndex = int(count)
		return tx.Create(section).Error
	})
}

func (s *ContentTreeService) UpdateSection(id string, updates map[string]interface{}) error {
	if _, err := s.SectionRepo.FindByID(id); err != nil {
		return util.ErrSectionNotFound
	}
	return s.SectionRepo.UpdateFields(id, updates)
}

// DeleteSection removes a section with all of its topics, lessons and media
// in one transaction, then compacts the order of the surviving siblings.
func (s *ContentTreeService) DeleteSection(id string) error {
	section, err := s.SectionRepo.FindByID(id)
	if err != nil {
		return util.ErrSectionNotFound
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var topicIDs []string
		if err := tx.Model(&model.Topic{}).
			Where("section_id = ?", id).
			Pluck("id", &topicIDs).Error; err != nil {
			return err
		}

		if err := deleteLessonsOfTopics(tx, topicIDs); err != nil {
			return err
		}
		if len(topicIDs) > 0 {
			if err := tx.Where("section_id = ?", id).Delete(&model.Topic{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&model.Section{}, "id = ?", id).Error; err != nil {
			return err
		}

		return compactOrder(tx, &model.Section{}, "grade_level = ?", section.GradeLevel)
	})
}

func (s *ContentTreeService) AddTopic(topic *model.Topic) error {
	if _, err := s.SectionRepo.FindByID(topic.SectionID); err != nil {
		return util.ErrSectionNotFound
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Topic{}).
			Where("section_id = ?", topic.SectionID).
			Count(&count).Error; err != nil {
			return err
		}
		topic.OrderIndex = int(count)
		return tx.Create(topic).Error
	})
}

func (s *ContentTreeService) UpdateTopic(id string, updates map[string]interface{}) error {
	if _, err := s.TopicRepo.FindByID(id); err != nil {
		return util.ErrTopicNotFound
	}
	return s.TopicRepo.UpdateFields(id, updates)
}

func (s *ContentTreeService) DeleteTopic(id string) error {
	topic, err := s.TopicRepo.FindByID(id)
	if err != nil {
		return util.ErrTopicNotFound
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := deleteLessonsOfTopics(tx, []string{id}); err != nil {
			return err
		}
		if err := tx.Delete(&model.Topic{}, "id = ?", id).Error; err != nil {
			return err
		}
		return compactOrder(tx, &model.Topic{}, "section_id = ?", topic.SectionID)
	})
}

func (s *ContentTreeService) AddLesson(lesson *model.Lesson) error {
	if _, err := s.TopicRepo.FindByID(lesson.TopicID); err != nil {
		return util.ErrTopicNotFound
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Lesson{}).
			Where("topic_id = ?", lesson.TopicID).
			Count(&count).Error; err != nil {
			return err
		}
		lesson.OrderIndex = int(count)
		return tx.Create(lesson).Error
	})
}

func (s *ContentTreeService) UpdateLesson(id string, updates map[string]interface{}) error {
	if _, err := s.LessonRepo.FindByID(id); err != nil {
		return util.ErrLessonNotFound
	}
	return s.LessonRepo.UpdateFields(id, updates)
}

func (s *ContentTreeService) DeleteLesson(id string) error {
	lesson, err := s.LessonRepo.FindByID(id)
	if err != nil {
		return util.ErrLessonNotFound
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_id = ?", id).Delete(&model.LessonMedia{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Lesson{}, "id = ?", id).Error; err != nil {
			return err
		}
		return compactOrder(tx, &model.Lesson{}, "topic_id = ?", lesson.TopicID)
	})
}

func (s *ContentTreeService) AddMedia(media *model.LessonMedia) error {
	if _, err := s.LessonRepo.FindByID(media.LessonID); err != nil {
		return util.ErrLessonNotFound
	}
	if err := ValidateMediaPayload(media); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.LessonMedia{}).
			Where("lesson_id = ?", media.LessonID).
			Count(&count).Error; err != nil {
			return err
		}
		media.OrderIndex = int(count)
		return tx.Create(media).Error
	})
}

func (s *ContentTreeService) UpdateMedia(id string, media *model.LessonMedia) error {
	existing, err := s.MediaRepo.FindByID(id)
	if err != nil {
		return util.ErrMediaNotFound
	}
	if err := ValidateMediaPayload(media); err != nil {
		return err
	}
	return s.MediaRepo.UpdateFields(id, map[string]interface{}{
		"media_type": media.MediaType,
		"file_path":  media.FilePath,
		"file_name":  media.FileName,
		"metadata":   media.Metadata,
		"lesson_id":  existing.LessonID,
	})
}

func (s *ContentTreeService) DeleteMedia(id string) error {
	media, err := s.MediaRepo.FindByID(id)
	if err != nil {
		return util.ErrMediaNotFound
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.LessonMedia{}, "id = ?", id).Error; err != nil {
			return err
		}
		return compactOrder(tx, &model.LessonMedia{}, "lesson_id = ?", media.LessonID)
	})
}

// ReorderSections persists a new sibling order for one grade level. The id
// list must contain exactly the current siblings; all order_index values are
// rewritten in one transaction so a failure changes nothing.
func (s *ContentTreeService) ReorderSections(gradeLevel int, orderedIDs []string) error {
	current, err := s.SectionRepo.SiblingIDs(gradeLevel)
	if err != nil {
		return err
	}
	return s.reorder(&model.Section{}, current, orderedIDs)
}

func (s *ContentTreeService) ReorderTopics(sectionID string, orderedIDs []string) error {
	current, err := s.TopicRepo.SiblingIDs(sectionID)
	if err != nil {
		return err
	}
	return s.reorder(&model.Topic{}, current, orderedIDs)
}

func (s *ContentTreeService) ReorderLessons(topicID string, orderedIDs []string) error {
	current, err := s.LessonRepo.SiblingIDs(topicID)
	if err != nil {
		return err
	}
	return s.reorder(&model.Lesson{}, current, orderedIDs)
}

func (s *ContentTreeService) ReorderMedia(lessonID string, orderedIDs []string) error {
	current, err := s.MediaRepo.SiblingIDs(lessonID)
	if err != nil {
		return err
	}
	return s.reorder(&model.LessonMedia{}, current, orderedIDs)
}

func (s *ContentTreeService) reorder(entity interface{}, current, orderedIDs []string) error {
	if !sameIDSet(current, orderedIDs) {
		return util.ErrReorderSetMismatch
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		for pos, id := range orderedIDs {
			if err := tx.Model(entity).
				Where("id = ?", id).
				Update("order_index", pos).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		seen[id]--
		if seen[id] < 0 {
			return false
		}
	}
	return true
}

func deleteLessonsOfTopics(tx *gorm.DB, topicIDs []string) error {
	if len(topicIDs) == 0 {
		return nil
	}
	var lessonIDs []string
	if err := tx.Model(&model.Lesson{}).
		Where("topic_id IN ?", topicIDs).
		Pluck("id", &lessonIDs).Error; err != nil {
		return err
	}
	if len(lessonIDs) > 0 {
		if err := tx.Where("lesson_id IN ?", lessonIDs).Delete(&model.LessonMedia{}).Error; err != nil {
			return err
		}
		if err := tx.Where("topic_id IN ?", topicIDs).Delete(&model.Lesson{}).Error; err != nil {
			return err
		}
	}
	return nil
}

// compactOrder renumbers a sibling group 0..n-1 after a delete so the
// contiguity invariant survives.
func compactOrder(tx *gorm.DB, entity interface{}, groupCond string, groupVal interface{}) error {
	var ids []string
	if err := tx.Model(entity).
		Where(groupCond, groupVal).
		Order("order_index").
		Pluck("id", &ids).Error; err != nil {
		return err
	}
	for pos, id := range ids {
		if err := tx.Model(entity).
			Where("id = ?", id).
			Update("order_index", pos).Error; err != nil {
			return err
		}
	}
	return nil
}
