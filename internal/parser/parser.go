package parser

import (
	"Radiation-Safety-Question-Bank/internal/model"
	"log"
	"strings"
)

const DefaultTitle = "电离辐射安全与防护题库"

type Options struct {
	Title string
	// ExtraAnswers 覆盖从正文答案区解析出的同名条目
	ExtraAnswers model.AnswerKey
}

// Parse 把题库全文转换为结构化题库：逐行扫描出题目，再独立扫描答案区并回填答案。
func Parse(content string, opts Options) (*model.Bank, error) {
	if strings.TrimSpace(content) == "" {
		return nil, model.ErrEmptyInput
	}
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	questions := scanQuestions(splitLines(content))

	key := ExtractAnswers(content)
	key.Merge(opts.ExtraAnswers)
	unresolved := 0
	for i := range questions {
		questions[i].Answer = key[questions[i].ID]
		if questions[i].Answer == "" {
			unresolved++
		}
	}

	bank := model.NewBank(title, questions)
	log.Printf("[Parser] 解析得到 %d 道题 (单选 %d, 多选 %d)，答案条目 %d 条，未匹配答案 %d 道。",
		bank.Total, bank.SingleCount, bank.MultipleCount, len(key), unresolved)
	return bank, nil
}

func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(content, "\n")
}

func scanQuestions(lines []string) []model.Question {
	st := &scanState{}
	i := 0
scan:
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		switch Classify(line) {
		case SectionSingle:
			st.enter(model.TypeSingle)
			i++
			continue
		case SectionMultiple:
			st.enter(model.TypeMultiple)
			i++
			continue
		case SectionTerminate:
			break scan
		}

		if line == "" || strings.HasPrefix(line, "每题") || strings.HasPrefix(line, "下列") {
			i++
			continue
		}

		number, text, ok := matchHeader(line)
		if !ok || !st.active() {
			i++
			continue
		}
		st.begin(number, text)
		i = scanOptions(lines, i+1, st.current)
	}
	st.finalize()
	return st.questions
}
