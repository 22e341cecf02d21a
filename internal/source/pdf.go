package source

import (
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// loadPDF 按行提取 PDF 文本，每个文本行输出为一行，页与页之间空一行。
func loadPDF(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "无法打开 PDF 文件 '%s'", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", errors.Wrapf(err, "无法读取 PDF 文件信息 '%s'", path)
	}

	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return "", errors.Wrapf(err, "解析 PDF 文件失败 '%s'", path)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", errors.Wrapf(err, "提取第 %d 页文本失败", i)
		}
		writeRows(&b, rows)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// writeRows 把同一行的文字片段直接拼接，片段之间不补空格。
func writeRows(b *strings.Builder, rows pdf.Rows) {
	for _, row := range rows {
		for _, word := range row.Content {
			b.WriteString(word.S)
		}
		b.WriteByte('\n')
	}
}
