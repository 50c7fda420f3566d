package service

import (
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/util"
	"testing"
)

func newGameService(t *testing.T) (*GameService, *repository.GameRepository) {
	t.Helper()
	repo := repository.NewGameRepository(newTestDB(t))
	return NewGameService(repo), repo
}

func seedGame(t *testing.T, repo *repository.GameRepository, slug string) *model.Game {
	t.Helper()
	game := &model.Game{Slug: slug, Title: "لعبة " + slug, GradeLevel: 5, Enabled: true}
	if err := repo.DB.Create(game).Error; err != nil {
		t.Fatalf("seed game: %v", err)
	}
	return game
}

func TestRecordScoreRequiresExistingGame(t *testing.T) {
	svc, _ := newGameService(t)
	if err := svc.RecordScore("missing", 1, 5, 10); err != util.ErrGameNotFound {
		t.Fatalf("got %v, want ErrGameNotFound", err)
	}
}

func TestResetGameDataScopedToOneGame(t *testing.T) {
	svc, repo := newGameService(t)
	a := seedGame(t, repo, "binary-blocks")
	b := seedGame(t, repo, "pixel-painter")

	for _, g := range []*model.Game{a, b} {
		if err := svc.StartSession(g.ID, 1); err != nil {
			t.Fatalf("StartSession: %v", err)
		}
		if err := svc.RecordScore(g.ID, 1, 8, 10); err != nil {
			t.Fatalf("RecordScore: %v", err)
		}
	}

	if err := svc.ResetGameData(a.ID); err != nil {
		t.Fatalf("ResetGameData: %v", err)
	}

	var aScores, bScores, aSessions int64
	repo.DB.Unscoped().Model(&model.GameScore{}).Where("game_id = ?", a.ID).Count(&aScores)
	repo.DB.Unscoped().Model(&model.GameScore{}).Where("game_id = ?", b.ID).Count(&bScores)
	repo.DB.Unscoped().Model(&model.GameSession{}).Where("game_id = ?", a.ID).Count(&aSessions)

	if aScores != 0 || aSessions != 0 {
		t.Fatalf("game a stats survived reset: scores=%d sessions=%d", aScores, aSessions)
	}
	if bScores != 1 {
		t.Fatalf("game b stats wiped by scoped reset")
	}

	// Empty id wipes everything.
	if err := svc.ResetGameData(""); err != nil {
		t.Fatalf("ResetGameData all: %v", err)
	}
	repo.DB.Unscoped().Model(&model.GameScore{}).Where("game_id = ?", b.ID).Count(&bScores)
	if bScores != 0 {
		t.Fatalf("global reset left scores behind")
	}

	// The registry itself is untouched.
	games, err := svc.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("reset deleted games: %d left", len(games))
	}
}

func TestTopScoresClampsLimit(t *testing.T) {
	svc, repo := newGameService(t)
	g := seedGame(t, repo, "logic-gates")

	for i := 0; i < 15; i++ {
		if err := svc.RecordScore(g.ID, uint(i+1), i, 20); err != nil {
			t.Fatalf("RecordScore: %v", err)
		}
	}

	scores, err := svc.TopScores(g.ID, 0)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 10 {
		t.Fatalf("default limit = %d entries, want 10", len(scores))
	}
	if scores[0].Score != 14 {
		t.Fatalf("top score = %d, want 14", scores[0].Score)
	}
}
