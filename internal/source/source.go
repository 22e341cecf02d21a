package source

import (
	"Radiation-Safety-Question-Bank/internal/model"
	"bytes"
	"log"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/simplifiedchinese"
)

const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatPDF  = "pdf"
	FormatHTML = "html"

	EncodingUTF8    = "utf-8"
	EncodingGBK     = "gbk"
	EncodingGB18030 = "gb18030"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Config struct {
	Format   string
	Encoding string
}

// DetectFormat 按扩展名推断输入格式，format 非 auto 时原样返回。
func DetectFormat(path, format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "" && format != FormatAuto {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatText
	}
}

// Load 一次性读入整个输入文件并返回其文本内容。
func Load(fs afero.Fs, path string, cfg Config) (string, error) {
	format := DetectFormat(path, cfg.Format)
	log.Printf("[Source] 正在读取 '%s' (格式: %s)", path, format)

	switch format {
	case FormatText:
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return "", errors.Wrapf(err, "无法读取输入文件 '%s'", path)
		}
		return decodeText(data, cfg.Encoding)
	case FormatPDF:
		return loadPDF(fs, path)
	case FormatHTML:
		return loadHTML(fs, path)
	default:
		return "", errors.Wrapf(model.ErrUnsupportedFormat, "输入格式 '%s'", format)
	}
}

func decodeText(data []byte, encoding string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", EncodingUTF8, "utf8":
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return "", errors.New("输入文件不是有效的 UTF-8 文本")
		}
		return string(data), nil
	case EncodingGBK:
		out, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
		if err != nil {
			return "", errors.Wrap(err, "GBK 解码失败")
		}
		return string(out), nil
	case EncodingGB18030:
		out, err := simplifiedchinese.GB18030.NewDecoder().Bytes(data)
		if err != nil {
			return "", errors.Wrap(err, "GB18030 解码失败")
		}
		return string(out), nil
	default:
		return "", errors.Wrapf(model.ErrUnsupportedEncoding, "编码 '%s'", encoding)
	}
}
