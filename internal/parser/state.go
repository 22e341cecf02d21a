package parser

import (
	"Radiation-Safety-Question-Bank/internal/model"
	"log"
)

// scanState 是逐行扫描时的累加器：当前题型、正在构建的题目、已完成的题目。
type scanState struct {
	section   model.QuestionType
	current   *model.Question
	questions []model.Question
	seen      map[string]bool
}

func (s *scanState) active() bool {
	return s.section != ""
}

// enter 切换题型前先按旧题型收尾当前题目。
func (s *scanState) enter(t model.QuestionType) {
	s.finalize()
	s.section = t
}

func (s *scanState) begin(number int, text string) {
	s.finalize()
	s.current = &model.Question{
		ID:       model.QuestionID(s.section, number),
		Type:     s.section,
		Number:   number,
		Question: text,
		Options:  model.Options{},
	}
}

// finalize 只保留同时有题干和选项的题目；同一编号重复出现时保留第一道。
func (s *scanState) finalize() {
	q := s.current
	s.current = nil
	if q == nil || q.Question == "" || len(q.Options) == 0 {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[q.ID] {
		log.Printf("[Parser] 题号重复，已忽略: %s", q.ID)
		return
	}
	s.seen[q.ID] = true
	s.questions = append(s.questions, *q)
}
