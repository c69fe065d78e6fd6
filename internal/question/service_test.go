package question

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	questions []Question
}

func (f *fakeRepo) All(ctx context.Context) ([]Question, error) {
	out := make([]Question, len(f.questions))
	copy(out, f.questions)
	return out, nil
}

func (f *fakeRepo) ReplaceAll(ctx context.Context, questions []Question) error {
	f.questions = make([]Question, len(questions))
	copy(f.questions, questions)
	return nil
}

func seedFixture() []Question {
	return []Question{
		{
			Description:   "背景一",
			Question:      "题干一？",
			Answers:       []string{"甲", "乙", "丙"},
			CorrectAnswer: []string{"乙"},
			Why:           "因为乙。",
		},
		{
			Description:   "背景二",
			Question:      "题干二？",
			Answers:       []string{"A", "B"},
			CorrectAnswer: []string{"A", "B"},
			Why:           "多选。",
		},
	}
}

// 列表返回全部种子题目，内容不被修改。
func TestListReturnsSeededQuestionsUnmodified(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	seed := seedFixture()
	require.NoError(t, svc.Reseed(ctx, seed))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, got)
}

func TestReseedReplacesCatalog(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Reseed(ctx, seedFixture()))
	require.NoError(t, svc.Reseed(ctx, seedFixture()[:1]))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	data := `[
		{
			"description": "背景",
			"question": "题干？",
			"answers": ["甲", "乙"],
			"correctAnswer": ["甲"],
			"why": "解释"
		}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	questions, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Equal(t, "背景", q.Description)
	assert.Equal(t, "题干？", q.Question)
	assert.Equal(t, []string{"甲", "乙"}, q.Answers)
	assert.Equal(t, []string{"甲"}, q.CorrectAnswer)
	assert.Equal(t, "解释", q.Why)
}

func TestLoadSeedFileMissing(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadSeedFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadSeedFile(path)
	assert.Error(t, err)
}
