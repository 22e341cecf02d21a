package parser

import (
	"Radiation-Safety-Question-Bank/internal/model"
	"regexp"
	"strconv"
	"strings"
)

var (
	answerEntryPattern = regexp.MustCompile(`(\d+)\s*[.．、]\s*([A-E]+)`)
	singleLetterRun    = regexp.MustCompile(`^[A-D]+$`)
)

// ExtractAnswers 在全文中定位答案区并解析其中的 "题号.字母" 条目，与逐行扫描互不依赖。
// 答案区从第一处答案区标题行开始直到文末；找不到时返回空表。
func ExtractAnswers(content string) model.AnswerKey {
	key := model.AnswerKey{}
	lines := strings.Split(content, "\n")
	start := len(lines)
	for i, line := range lines {
		if isAnswerHeading(line) {
			start = i
			break
		}
	}

	var section model.QuestionType
	for _, line := range lines[start:] {
		switch {
		case strings.Contains(line, "单选"):
			section = model.TypeSingle
		case strings.Contains(line, "多选"):
			section = model.TypeMultiple
		}
		for _, m := range answerEntryPattern.FindAllStringSubmatch(line, -1) {
			number, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			addAnswer(key, section, number, m[2])
		}
	}
	return key
}

func addAnswer(key model.AnswerKey, section model.QuestionType, number int, letters string) {
	single := singleLetterRun.MatchString(letters)
	switch section {
	case model.TypeSingle:
		if single {
			key[model.QuestionID(model.TypeSingle, number)] = letters
		}
	case model.TypeMultiple:
		key[model.QuestionID(model.TypeMultiple, number)] = letters
	default:
		// 无子标题时无法区分题型，两类都登记
		if single {
			key[model.QuestionID(model.TypeSingle, number)] = letters
		}
		key[model.QuestionID(model.TypeMultiple, number)] = letters
	}
}
