package export

import (
	"Radiation-Safety-Question-Bank/internal/model"
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

// BOM 便于 Windows 上的 Excel 正确识别 UTF-8。
var BOM = []byte{0xEF, 0xBB, 0xBF}

func WriteCSV(w io.Writer, bank *model.Bank) error {
	if _, err := w.Write(BOM); err != nil {
		return errors.Wrap(err, "写入 BOM 失败")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return errors.Wrap(err, "写入表头失败")
	}
	for i := range bank.Questions {
		if err := cw.Write(questionToRow(&bank.Questions[i])); err != nil {
			return errors.Wrapf(err, "写入题目 %s 失败", bank.Questions[i].ID)
		}
	}
	cw.Flush()
	return cw.Error()
}
