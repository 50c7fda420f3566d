package service

import (
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/util"
	"testing"

	"gorm.io/datatypes"
)

func TestValidateQuestionMultipleChoice(t *testing.T) {
	q := &model.Question{
		QuestionText:  "ما هو البروتوكول المستخدم لنقل صفحات الويب؟",
		QuestionType:  model.MultipleChoice,
		Choices:       datatypes.JSON(`["HTTP","FTP","SMTP","HTTP"," FTP "]`),
		CorrectAnswer: "HTTP",
	}
	if err := ValidateQuestion(q); err != nil {
		t.Fatalf("ValidateQuestion: %v", err)
	}
	// Duplicates and padded entries collapse.
	if string(q.Choices) != `["HTTP","FTP","SMTP"]` {
		t.Fatalf("choices not deduped: %s", q.Choices)
	}
	if q.Difficulty != model.DifficultyMedium {
		t.Fatalf("difficulty default = %s, want medium", q.Difficulty)
	}
	if q.Points != 1 {
		t.Fatalf("points default = %d, want 1", q.Points)
	}
}

func TestValidateQuestionMultipleChoiceRejections(t *testing.T) {
	tooFew := &model.Question{
		QuestionText:  "س",
		QuestionType:  model.MultipleChoice,
		Choices:       datatypes.JSON(`["نعم","نعم","  "]`),
		CorrectAnswer: "نعم",
	}
	if err := ValidateQuestion(tooFew); err != util.ErrNotEnoughChoices {
		t.Fatalf("got %v, want ErrNotEnoughChoices", err)
	}

	badAnswer := &model.Question{
		QuestionText:  "س",
		QuestionType:  model.MultipleChoice,
		Choices:       datatypes.JSON(`["أ","ب"]`),
		CorrectAnswer: "ج",
	}
	if err := ValidateQuestion(badAnswer); err != util.ErrAnswerNotInChoices {
		t.Fatalf("got %v, want ErrAnswerNotInChoices", err)
	}
}

func TestValidateQuestionTrueFalse(t *testing.T) {
	q := &model.Question{
		QuestionText:  "س",
		QuestionType:  model.TrueFalse,
		Choices:       datatypes.JSON(`["stale"]`),
		CorrectAnswer: " True ",
	}
	if err := ValidateQuestion(q); err != nil {
		t.Fatalf("ValidateQuestion: %v", err)
	}
	if q.CorrectAnswer != "true" {
		t.Fatalf("answer = %q, want lowercased true", q.CorrectAnswer)
	}
	if q.Choices != nil {
		t.Fatalf("true/false kept stale choices")
	}

	bad := &model.Question{QuestionText: "س", QuestionType: model.TrueFalse, CorrectAnswer: "ربما"}
	if err := ValidateQuestion(bad); err != util.ErrInvalidTrueFalse {
		t.Fatalf("got %v, want ErrInvalidTrueFalse", err)
	}
}

func TestValidateQuestionEssayClearsChoices(t *testing.T) {
	q := &model.Question{
		QuestionText: "اشرح مبدأ عمل الموجه",
		QuestionType: model.Essay,
		Choices:      datatypes.JSON(`["أ","ب"]`),
		Points:       5,
	}
	if err := ValidateQuestion(q); err != nil {
		t.Fatalf("ValidateQuestion: %v", err)
	}
	if q.Choices != nil {
		t.Fatalf("essay kept choices")
	}
	if q.Points != 5 {
		t.Fatalf("explicit points overridden")
	}
}

func TestValidateQuestionRejectsBadInputs(t *testing.T) {
	if err := ValidateQuestion(&model.Question{QuestionText: " ", QuestionType: model.Essay}); err != util.ErrInvalidQuestionType {
		t.Fatalf("blank text: got %v", err)
	}
	if err := ValidateQuestion(&model.Question{QuestionText: "س", QuestionType: "matching"}); err != util.ErrInvalidQuestionType {
		t.Fatalf("unknown type: got %v", err)
	}
	if err := ValidateQuestion(&model.Question{QuestionText: "س", QuestionType: model.Essay, Difficulty: "extreme"}); err != util.ErrInvalidDifficulty {
		t.Fatalf("unknown difficulty: got %v", err)
	}
}
