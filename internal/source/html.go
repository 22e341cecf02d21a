package source

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, td, pre"

// loadHTML 把网页形式的题库展开为逐行文本：每个块级元素一行，<br> 视为换行。
func loadHTML(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "无法打开 HTML 文件 '%s'", path)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", errors.Wrapf(err, "解析 HTML 文件失败 '%s'", path)
	}
	doc.Find("br").ReplaceWithHtml("\n")

	var lines []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// 只取最内层的块，避免嵌套元素的文本重复
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		lines = append(lines, strings.Split(s.Text(), "\n")...)
	})
	if len(lines) == 0 {
		lines = strings.Split(doc.Find("body").Text(), "\n")
	}
	return strings.Join(lines, "\n"), nil
}
