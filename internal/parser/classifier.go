package parser

import (
	"regexp"
	"strings"
)

// 答案区标题：含 "第三部分" 的行，或整行只是 "答案"、"参考答案"、"二、答案与解析" 之类的标题。
var answerHeadingPattern = regexp.MustCompile(`^([一二三四五六七八九十\d]+\s*[、.．]\s*)?(参考)?答案(与解析|解析)?\s*[:：]?$`)

type Section int

const (
	SectionContinue Section = iota
	SectionSingle
	SectionMultiple
	SectionTerminate
)

func (s Section) String() string {
	switch s {
	case SectionSingle:
		return "single"
	case SectionMultiple:
		return "multiple"
	case SectionTerminate:
		return "terminate"
	default:
		return "continue"
	}
}

// Classify 判断一行是否为题型分区标题或答案区起点。
// 顺序有意义："单选题答案" 之类的行按题型处理。
// "D.以上答案都对" 这类正文里提到答案的行不算答案区起点。
func Classify(line string) Section {
	line = strings.TrimSpace(line)
	switch {
	case strings.Contains(line, "单选题"):
		return SectionSingle
	case strings.Contains(line, "多选题"):
		return SectionMultiple
	case isAnswerHeading(line):
		return SectionTerminate
	default:
		return SectionContinue
	}
}

func isAnswerHeading(line string) bool {
	line = strings.TrimSpace(line)
	return strings.Contains(line, "第三部分") || answerHeadingPattern.MatchString(line)
}
