package service

import (
	"encoding/json"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/util"
	"strings"

	"gorm.io/datatypes"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{QuestionRepo: questionRepo}
}

// ValidateQuestion runs before any write. Multiple-choice questions need at
// least two unique non-empty choices (after trimming) and the correct answer
// must be among them.
func ValidateQuestion(q *model.Question) error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return util.ErrInvalidQuestionType
	}

	switch q.Difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	case "":
		q.Difficulty = model.DifficultyMedium
	default:
		return util.ErrInvalidDifficulty
	}

	switch q.QuestionType {
	case model.MultipleChoice:
		choices, err := decodeChoices(q.Choices)
		if err != nil {
			return util.ErrNotEnoughChoices
		}
		cleaned := dedupeTrimmed(choices)
		if len(cleaned) < 2 {
			return util.ErrNotEnoughChoices
		}
		answer := strings.TrimSpace(q.CorrectAnswer)
		found := false
		for _, c := range cleaned {
			if c == answer {
				found = true
				break
			}
		}
		if !found {
			return util.ErrAnswerNotInChoices
		}
		encoded, err := json.Marshal(cleaned)
		if err != nil {
			return err
		}
		q.Choices = datatypes.JSON(encoded)
	case model.TrueFalse:
		answer := strings.ToLower(strings.TrimSpace(q.CorrectAnswer))
		if answer != "true" && answer != "false" {
			return util.ErrInvalidTrueFalse
		}
		q.CorrectAnswer = answer
		q.Choices = nil
	case model.ShortAnswer, model.Essay:
		q.Choices = nil
	default:
		return util.ErrInvalidQuestionType
	}

	if q.Points <= 0 {
		q.Points = 1
	}
	return nil
}

func (s *QuestionService) Create(q *model.Question) error {
	if err := ValidateQuestion(q); err != nil {
		return err
	}
	return s.QuestionRepo.Create(q)
}

func (s *QuestionService) Update(id string, q *model.Question) error {
	existing, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return util.ErrQuestionNotFound
	}
	if err := ValidateQuestion(q); err != nil {
		return err
	}
	q.ID = existing.ID
	q.CreatedAt = existing.CreatedAt
	q.CreatedBy = existing.CreatedBy
	return s.QuestionRepo.Update(q)
}

func (s *QuestionService) Delete(id string) error {
	if _, err := s.QuestionRepo.FindByID(id); err != nil {
		return util.ErrQuestionNotFound
	}
	return s.QuestionRepo.Delete(id)
}

func (s *QuestionService) List(f repository.QuestionFilter, page, limit int) ([]model.Question, int64, error) {
	return s.QuestionRepo.List(f, page, limit)
}

func decodeChoices(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var choices []string
	if err := json.Unmarshal(raw, &choices); err != nil {
		return nil, err
	}
	return choices, nil
}

func dedupeTrimmed(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		t := strings.TrimSpace(s)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
