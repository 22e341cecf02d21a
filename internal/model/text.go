package model

import (
	"unicode"
	"unicode/utf8"
)

// JoinContinuation 把折行的续行文本接到前文之后。
// 两侧都是 ASCII 字母或数字时补一个空格，中文折行直接拼接。
func JoinContinuation(prev, next string) string {
	if prev == "" {
		return next
	}
	if next == "" {
		return prev
	}
	last, _ := utf8.DecodeLastRuneInString(prev)
	first, _ := utf8.DecodeRuneInString(next)
	if isASCIIWord(last) && isASCIIWord(first) {
		return prev + " " + next
	}
	return prev + next
}

func isASCIIWord(r rune) bool {
	return r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
