package service

import (
	"Radiation-Safety-Question-Bank/internal/export"
	"Radiation-Safety-Question-Bank/internal/model"
	"Radiation-Safety-Question-Bank/internal/parser"
	"Radiation-Safety-Question-Bank/internal/repository"
	"Radiation-Safety-Question-Bank/internal/source"
	"bytes"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type ConvertConfig struct {
	InputPath     string
	InputFormat   string
	InputEncoding string
	OutputPath    string
	OutputFormat  string
	AnswersPath   string
	Title         string
}

type BankService struct {
	fs   afero.Fs
	cfg  ConvertConfig
	repo *repository.BankRepository
	mu   sync.Mutex
}

func NewBankService(fs afero.Fs, cfg ConvertConfig, repo *repository.BankRepository) *BankService {
	return &BankService{fs: fs, cfg: cfg, repo: repo}
}

func (s *BankService) InputPath() string {
	return s.cfg.InputPath
}

func (s *BankService) OutputPath() string {
	return s.cfg.OutputPath
}

// Convert 读取输入、解析并整体写出结果。任一步失败都不会留下输出文件。
func (s *BankService) Convert() (*model.Bank, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	startTime := time.Now()
	log.Printf("[Convert] 开始转换: '%s' -> '%s'", s.cfg.InputPath, s.cfg.OutputPath)

	content, err := source.Load(s.fs, s.cfg.InputPath, source.Config{
		Format:   s.cfg.InputFormat,
		Encoding: s.cfg.InputEncoding,
	})
	if err != nil {
		return nil, err
	}

	extra, err := repository.LoadAnswerKey(s.fs, s.cfg.AnswersPath)
	if err != nil {
		return nil, err
	}

	bank, err := parser.Parse(content, parser.Options{Title: s.cfg.Title, ExtraAnswers: extra})
	if err != nil {
		return nil, errors.Wrapf(err, "解析题库 '%s' 失败", s.cfg.InputPath)
	}

	if err := s.write(bank); err != nil {
		return nil, err
	}
	log.Printf("[Convert] 转换完成，耗时 %.2f 秒。", time.Since(startTime).Seconds())
	return bank, nil
}

func (s *BankService) write(bank *model.Bank) error {
	format := export.DetectFormat(s.cfg.OutputPath, s.cfg.OutputFormat)
	if format == export.FormatJSON {
		return s.repo.Save(bank)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, bank, format); err != nil {
		return err
	}
	if err := repository.WriteFile(s.fs, s.cfg.OutputPath, buf.Bytes()); err != nil {
		return err
	}
	s.repo.Replace(bank)
	log.Printf("[Convert] 已导出 %s: %d 道题写入 '%s'。", format, bank.Total, s.cfg.OutputPath)
	return nil
}

func PrintSummary(w io.Writer, bank *model.Bank, outputPath string) {
	fmt.Fprintf(w, "解析完成！共 %d 道题\n", bank.Total)
	fmt.Fprintf(w, "单选题: %d 道\n", bank.SingleCount)
	fmt.Fprintf(w, "多选题: %d 道\n", bank.MultipleCount)
	fmt.Fprintf(w, "已保存到: %s\n", outputPath)
}
