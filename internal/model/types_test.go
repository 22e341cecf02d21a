package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionID(t *testing.T) {
	assert.Equal(t, "S12", QuestionID(TypeSingle, 12))
	assert.Equal(t, "M7", QuestionID(TypeMultiple, 7))
}

func TestOptions_SetKeepsInsertionOrder(t *testing.T) {
	var opts Options
	opts.Set("C", "丙")
	opts.Set("A", "甲")
	opts.Set("C", "丙二")

	assert.Equal(t, "CA", opts.Letters())
	text, ok := opts.Get("C")
	assert.True(t, ok)
	assert.Equal(t, "丙二", text)
	_, ok = opts.Get("E")
	assert.False(t, ok)
}

func TestOptions_MarshalPreservesOrderAndUnicode(t *testing.T) {
	opts := Options{{Letter: "B", Text: "20 mSv"}, {Letter: "A", Text: "<辐射>"}}

	data, err := json.Marshal(opts)
	require.NoError(t, err)
	assert.Equal(t, `{"B":"20 mSv","A":"<辐射>"}`, string(data))
}

func TestOptions_UnmarshalRestoresOrder(t *testing.T) {
	var opts Options
	require.NoError(t, json.Unmarshal([]byte(`{"D":"丁","A":"甲","B":"乙"}`), &opts))

	assert.Equal(t, "DAB", opts.Letters())
	text, _ := opts.Get("A")
	assert.Equal(t, "甲", text)
}

func TestOptions_UnmarshalRejectsArray(t *testing.T) {
	var opts Options
	assert.Error(t, json.Unmarshal([]byte(`["A"]`), &opts))
}

func TestOptions_AppendTo(t *testing.T) {
	opts := Options{{Letter: "A", Text: "外照射防护的三要素是时间、"}}

	assert.True(t, opts.AppendTo("A", "距离和屏蔽"))
	assert.False(t, opts.AppendTo("B", "x"))
	assert.Equal(t, "外照射防护的三要素是时间、距离和屏蔽", opts[0].Text)
}

func TestJoinContinuation(t *testing.T) {
	assert.Equal(t, "dose limit", JoinContinuation("dose", "limit"))
	assert.Equal(t, "剂量限值", JoinContinuation("剂量", "限值"))
	assert.Equal(t, "20 mSv，", JoinContinuation("20 mSv", "，"))
	assert.Equal(t, "next", JoinContinuation("", "next"))
}

func TestNewBank_Counts(t *testing.T) {
	bank := NewBank("题库", []Question{
		{ID: "S1", Type: TypeSingle, Number: 1},
		{ID: "S2", Type: TypeSingle, Number: 2},
		{ID: "M1", Type: TypeMultiple, Number: 1},
	})

	assert.Equal(t, 3, bank.Total)
	assert.Equal(t, 2, bank.SingleCount)
	assert.Equal(t, 1, bank.MultipleCount)
	assert.Equal(t, bank.Total, bank.SingleCount+bank.MultipleCount)
	assert.Equal(t, Summary{Title: "题库", Total: 3, SingleCount: 2, MultipleCount: 1}, bank.Summary())
}

func TestNewBank_EmptySerializesQuestionsArray(t *testing.T) {
	data, err := json.Marshal(NewBank("题库", nil))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"questions":[]`)
}

func TestBank_RoundTripKeepsCounts(t *testing.T) {
	bank := NewBank("电离辐射安全与防护题库", []Question{
		{ID: "S3", Type: TypeSingle, Number: 3, Question: "剂量限值是多少？",
			Options: Options{{Letter: "A", Text: "10 mSv"}, {Letter: "B", Text: "20 mSv"}}, Answer: "B"},
		{ID: "M1", Type: TypeMultiple, Number: 1, Question: "防护措施有哪些？",
			Options: Options{{Letter: "A", Text: "时间"}, {Letter: "B", Text: "距离"}}, Answer: "AB"},
	})

	data, err := json.Marshal(bank)
	require.NoError(t, err)

	var back Bank
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, back.Total, back.SingleCount+back.MultipleCount)
	assert.Equal(t, back.Total, len(back.Questions))
	assert.Equal(t, *bank, back)
}

func TestAnswerKey_LookupAndMerge(t *testing.T) {
	key := AnswerKey{"S1": "A", "M1": "AB"}
	key.Merge(AnswerKey{"M1": "ABC", "S2": "D"})

	assert.Equal(t, "A", key.Lookup(TypeSingle, 1))
	assert.Equal(t, "ABC", key.Lookup(TypeMultiple, 1))
	assert.Equal(t, "D", key.Lookup(TypeSingle, 2))
	assert.Equal(t, "", key.Lookup(TypeSingle, 9))
}
