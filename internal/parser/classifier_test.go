package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want Section
	}{
		{"第一部分 单选题", SectionSingle},
		{"  一、单选题（每题1分）  ", SectionSingle},
		{"第二部分 多选题", SectionMultiple},
		{"第三部分 参考答案", SectionTerminate},
		{"第三部分", SectionTerminate},
		{"答案", SectionTerminate},
		{"单选题答案", SectionSingle},
		{"参考答案：", SectionTerminate},
		{"三、答案与解析", SectionTerminate},
		{"D.以上答案都对", SectionContinue},
		{"（正确答案不止一个）", SectionContinue},
		{"2.下列答案正确的是", SectionContinue},
		{"1.辐射防护的目的是什么？", SectionContinue},
		{"", SectionContinue},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line))
		})
	}
}
