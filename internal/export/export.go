package export

import (
	"Radiation-Safety-Question-Bank/internal/model"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// columns 表头：编号、题型、题号、题目、五个选项、答案。
var columns = []string{"编号", "题型", "题号", "题目", "A", "B", "C", "D", "E", "答案"}

var typeLabels = map[model.QuestionType]string{
	model.TypeSingle:   "单选题",
	model.TypeMultiple: "多选题",
}

// DetectFormat 按输出文件扩展名推断导出格式，默认 JSON。
func DetectFormat(path, format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "" && format != FormatAuto {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatJSON
	}
}

// Write 以 CSV 或 XLSX 格式导出题库。JSON 由仓库层负责。
func Write(w io.Writer, bank *model.Bank, format string) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, bank)
	case FormatXLSX:
		return WriteXLSX(w, bank)
	default:
		return errors.Wrapf(model.ErrUnsupportedFormat, "导出格式 '%s'", format)
	}
}

func questionToRow(q *model.Question) []string {
	row := make([]string, 0, len(columns))
	row = append(row, q.ID, typeLabels[q.Type], strconv.Itoa(q.Number), q.Question)
	for _, letter := range model.OptionLetters {
		text, _ := q.Options.Get(string(letter))
		row = append(row, text)
	}
	return append(row, q.Answer)
}
