package parser

import (
	"Radiation-Safety-Question-Bank/internal/model"
	"regexp"
	"strconv"
	"strings"
)

var (
	questionHeaderPattern = regexp.MustCompile(`^(\d+)\s*[.．、]\s*`)
	optionPattern         = regexp.MustCompile(`^([A-E])\s*[.．、:：)）]\s*(.*)$`)
)

// matchHeader 返回题号和去掉题号前缀后的题干。
func matchHeader(line string) (int, string, bool) {
	loc := questionHeaderPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return 0, "", false
	}
	number, err := strconv.Atoi(line[loc[2]:loc[3]])
	if err != nil {
		return 0, "", false
	}
	return number, strings.TrimSpace(line[loc[1]:]), true
}

// scanOptions 从题目标题的下一行开始收集 A–E 选项，返回第一条未消费行的下标。
// 遇到新题号、分区标题或答案区标题时停止且不消费该行；只有字母没有内容的选项行被跳过；
// 其余非空行按续行接到最近的选项，尚无选项时接到题干，"（正确答案不止一个）" 这类行也一样。
func scanOptions(lines []string, start int, q *model.Question) int {
	j := start
	pointer := 0
	lastLetter := ""
	for j < len(lines) && pointer < len(model.OptionLetters) {
		line := strings.TrimSpace(lines[j])
		if line == "" {
			j++
			continue
		}
		if m := optionPattern.FindStringSubmatch(line); m != nil {
			if text := strings.TrimSpace(m[2]); text != "" {
				q.Options.Set(m[1], text)
				pointer = strings.Index(model.OptionLetters, m[1]) + 1
				lastLetter = m[1]
			}
			j++
			continue
		}
		if _, _, ok := matchHeader(line); ok {
			break
		}
		if Classify(line) != SectionContinue {
			break
		}
		if lastLetter == "" {
			q.Question = model.JoinContinuation(q.Question, line)
		} else {
			q.Options.AppendTo(lastLetter, line)
		}
		j++
	}
	return j
}
