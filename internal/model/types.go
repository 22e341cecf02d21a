package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type QuestionType string

const (
	TypeSingle   QuestionType = "single"
	TypeMultiple QuestionType = "multiple"
)

func (t QuestionType) Prefix() string {
	if t == TypeSingle {
		return "S"
	}
	return "M"
}

func (t QuestionType) Valid() bool {
	return t == TypeSingle || t == TypeMultiple
}

func QuestionID(t QuestionType, number int) string {
	return fmt.Sprintf("%s%d", t.Prefix(), number)
}

// OptionLetters 选项字母，按出现顺序决定扫描指针位置
const OptionLetters = "ABCDE"

type Option struct {
	Letter string
	Text   string
}

// Options 保持插入顺序，序列化为键顺序与切片一致的 JSON 对象
type Options []Option

func (o Options) Get(letter string) (string, bool) {
	for _, opt := range o {
		if opt.Letter == letter {
			return opt.Text, true
		}
	}
	return "", false
}

func (o *Options) Set(letter, text string) {
	for i := range *o {
		if (*o)[i].Letter == letter {
			(*o)[i].Text = text
			return
		}
	}
	*o = append(*o, Option{Letter: letter, Text: text})
}

func (o Options) AppendTo(letter, text string) bool {
	for i := range o {
		if o[i].Letter == letter {
			o[i].Text = JoinContinuation(o[i].Text, text)
			return true
		}
	}
	return false
}

func (o Options) Letters() string {
	var b strings.Builder
	for _, opt := range o {
		b.WriteString(opt.Letter)
	}
	return b.String()
}

func (o Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, opt := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, opt.Letter); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, opt.Text); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *Options) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*o = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("options: expected object, got %v", tok)
	}
	out := Options{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("options: expected string key, got %v", keyTok)
		}
		var text string
		if err := dec.Decode(&text); err != nil {
			return fmt.Errorf("options: value of %q: %w", key, err)
		}
		out.Set(key, text)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*o = out
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode 追加的换行
	buf.Truncate(buf.Len() - 1)
	return nil
}

type Question struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Number   int          `json:"number"`
	Question string       `json:"question"`
	Options  Options      `json:"options"`
	Answer   string       `json:"answer"`
}

type Bank struct {
	Title         string     `json:"title"`
	Total         int        `json:"total"`
	SingleCount   int        `json:"single_count"`
	MultipleCount int        `json:"multiple_count"`
	Questions     []Question `json:"questions"`
}

func NewBank(title string, questions []Question) *Bank {
	if questions == nil {
		questions = []Question{}
	}
	b := &Bank{Title: title, Questions: questions}
	b.Recount()
	return b
}

// Recount 保证 total == single_count + multiple_count == len(questions)
func (b *Bank) Recount() {
	b.SingleCount, b.MultipleCount = 0, 0
	for _, q := range b.Questions {
		if q.Type == TypeSingle {
			b.SingleCount++
		} else {
			b.MultipleCount++
		}
	}
	b.Total = len(b.Questions)
}

type Summary struct {
	Title         string `json:"title"`
	Total         int    `json:"total"`
	SingleCount   int    `json:"single_count"`
	MultipleCount int    `json:"multiple_count"`
}

func (b *Bank) Summary() Summary {
	return Summary{
		Title:         b.Title,
		Total:         b.Total,
		SingleCount:   b.SingleCount,
		MultipleCount: b.MultipleCount,
	}
}

type AnswerKey map[string]string

func (k AnswerKey) Lookup(t QuestionType, number int) string {
	return k[QuestionID(t, number)]
}

func (k AnswerKey) Merge(other AnswerKey) {
	for id, answer := range other {
		k[id] = answer
	}
}
