package repository

import (
	"Radiation-Safety-Question-Bank/internal/model"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBank() *model.Bank {
	return model.NewBank("电离辐射安全与防护题库", []model.Question{
		{ID: "S1", Type: model.TypeSingle, Number: 1, Question: "剂量限值 <年>",
			Options: model.Options{{Letter: "B", Text: "20 mSv"}, {Letter: "A", Text: "10 mSv"}}, Answer: "B"},
		{ID: "M1", Type: model.TypeMultiple, Number: 1, Question: "外照射防护方法",
			Options: model.Options{{Letter: "A", Text: "时间"}, {Letter: "B", Text: "距离"}}, Answer: "AB"},
	})
}

func TestMarshal_IndentedWithoutEscaping(t *testing.T) {
	data, err := Marshal(sampleBank())
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "{\n  \"title\": \"电离辐射安全与防护题库\""))
	assert.Contains(t, out, "剂量限值 <年>")
	assert.NotContains(t, out, `\u`)
	assert.Less(t, strings.Index(out, `"B"`), strings.Index(out, `"A"`))
}

func TestBankRepository_SaveAndLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := NewBankRepository(fs, "out/questions.json")
	require.NoError(t, fs.MkdirAll("out", 0755))

	require.NoError(t, repo.Save(sampleBank()))

	other := NewBankRepository(fs, "out/questions.json")
	require.NoError(t, other.Load())

	summary := other.Summary()
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.SingleCount)
	assert.Equal(t, 1, summary.MultipleCount)

	q, err := other.Query("S1")
	require.NoError(t, err)
	assert.Equal(t, "BA", q.Options.Letters())
	assert.Equal(t, "B", q.Answer)

	entries, err := afero.ReadDir(fs, "out")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not remain")
}

func TestBankRepository_SaveReplacesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "questions.json", []byte("old content that is longer than nothing"), 0644))
	repo := NewBankRepository(fs, "questions.json")

	require.NoError(t, repo.Save(model.NewBank("空题库", nil)))

	data, err := afero.ReadFile(fs, "questions.json")
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old content")
	assert.Contains(t, string(data), `"questions": []`)
}

func TestBankRepository_QueryUnknown(t *testing.T) {
	repo := NewBankRepository(afero.NewMemMapFs(), "questions.json")
	repo.Replace(sampleBank())

	_, err := repo.Query("S99")
	assert.ErrorIs(t, err, model.ErrQuestionNotFound)
}

func TestBankRepository_List(t *testing.T) {
	repo := NewBankRepository(afero.NewMemMapFs(), "questions.json")
	repo.Replace(sampleBank())

	assert.Len(t, repo.List(""), 2)
	single := repo.List(model.TypeSingle)
	require.Len(t, single, 1)
	assert.Equal(t, "S1", single[0].ID)
	assert.Len(t, repo.List(model.TypeMultiple), 1)
}

func TestBankRepository_LoadMissingFile(t *testing.T) {
	repo := NewBankRepository(afero.NewMemMapFs(), "missing.json")
	assert.Error(t, repo.Load())
	assert.Equal(t, 0, repo.Summary().Total)
}

func TestLoadAnswerKey(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "answers.json", []byte(`{"s1":" a ","M2":"abd"}`), 0644))

	key, err := LoadAnswerKey(fs, "answers.json")
	require.NoError(t, err)
	assert.Equal(t, model.AnswerKey{"S1": "A", "M2": "ABD"}, key)

	empty, err := LoadAnswerKey(fs, "")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = LoadAnswerKey(fs, "missing.json")
	assert.Error(t, err)
}
