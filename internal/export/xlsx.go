package export

import (
	"Radiation-Safety-Question-Bank/internal/model"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const SheetName = "题库"

func WriteXLSX(w io.Writer, bank *model.Bank) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.Wrap(err, "重命名工作表失败")
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "写入表头失败")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "创建表头样式失败")
	}
	last, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return errors.Wrap(err, "设置表头样式失败")
	}

	for i := range bank.Questions {
		q := &bank.Questions[i]
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := questionToRow(q)
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}
		// 题号按数字写入，便于排序
		row[2] = q.Number
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return errors.Wrapf(err, "写入题目 %s 失败", q.ID)
		}
	}
	if err := f.SetColWidth(SheetName, "D", "I", 40); err != nil {
		return errors.Wrap(err, "设置列宽失败")
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "写出 xlsx 失败")
	}
	return nil
}
