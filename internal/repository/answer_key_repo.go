package repository

import (
	"Radiation-Safety-Question-Bank/internal/model"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// LoadAnswerKey 读取外部答案表，格式为 {"S1": "A", "M2": "ABD"}。path 为空时返回空表。
func LoadAnswerKey(fs afero.Fs, path string) (model.AnswerKey, error) {
	key := model.AnswerKey{}
	if path == "" {
		return key, nil
	}

	fmt.Println("正在从JSON文件加载外部答案表...")
	byteValue, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "无法读取答案文件 '%s'", path)
	}
	var raw map[string]string
	if err := json.Unmarshal(byteValue, &raw); err != nil {
		return nil, errors.Wrap(err, "解析答案JSON数据失败")
	}
	for id, answer := range raw {
		key[strings.ToUpper(strings.TrimSpace(id))] = strings.ToUpper(strings.TrimSpace(answer))
	}

	fmt.Printf("外部答案表加载完成，共 %d 条。\n", len(key))
	return key, nil
}
