package repository

import (
	"Radiation-Safety-Question-Bank/internal/model"
	"bytes"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type BankRepository struct {
	fs       afero.Fs
	filePath string
	mu       sync.RWMutex
	bank     *model.Bank
	index    map[string]int
}

func NewBankRepository(fs afero.Fs, filePath string) *BankRepository {
	repo := &BankRepository{fs: fs, filePath: filePath}
	repo.replace(model.NewBank("", nil))
	log.Printf("[BankRepo] 仓库已初始化，文件路径: '%s'", filePath)
	return repo
}

func (r *BankRepository) FilePath() string {
	return r.filePath
}

// Load 从 JSON 文件读取已转换的题库。
func (r *BankRepository) Load() error {
	byteValue, err := afero.ReadFile(r.fs, r.filePath)
	if err != nil {
		return errors.Wrapf(err, "无法读取题库文件 '%s'", r.filePath)
	}

	var bank model.Bank
	if err := json.Unmarshal(byteValue, &bank); err != nil {
		log.Printf("[BankRepo] 加载失败: 解析JSON错误: %v", err)
		return errors.Wrap(err, "解析题库JSON失败")
	}
	bank.Recount()

	r.mu.Lock()
	r.replace(&bank)
	r.mu.Unlock()
	log.Printf("[BankRepo] 加载完成: 成功解析 %d 道题。", bank.Total)
	return nil
}

// Save 替换内存中的题库并整体重写 JSON 文件。
func (r *BankRepository) Save(bank *model.Bank) error {
	byteValue, err := Marshal(bank)
	if err != nil {
		log.Printf("[BankRepo] 持久化失败: 序列化JSON错误: %v", err)
		return err
	}
	if err := WriteFile(r.fs, r.filePath, byteValue); err != nil {
		log.Printf("[BankRepo] 持久化失败: 写入文件错误: %v", err)
		return err
	}

	r.mu.Lock()
	r.replace(bank)
	r.mu.Unlock()
	log.Printf("[BankRepo] 持久化成功: %d 道题已写入 '%s'。", bank.Total, r.filePath)
	return nil
}

// Replace 只更新内存中的题库，不写文件。
func (r *BankRepository) Replace(bank *model.Bank) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replace(bank)
}

func (r *BankRepository) replace(bank *model.Bank) {
	index := make(map[string]int, len(bank.Questions))
	for i, q := range bank.Questions {
		index[q.ID] = i
	}
	r.bank = bank
	r.index = index
}

func (r *BankRepository) Bank() *model.Bank {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bank
}

func (r *BankRepository) Summary() model.Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bank.Summary()
}

func (r *BankRepository) Query(id string) (model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, found := r.index[id]
	if !found {
		return model.Question{}, errors.Wrapf(model.ErrQuestionNotFound, "题号 '%s'", id)
	}
	return r.bank.Questions[i], nil
}

// List 按题型筛选题目，t 为空时返回全部。
func (r *BankRepository) List(t model.QuestionType) []model.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Question, 0, len(r.bank.Questions))
	for _, q := range r.bank.Questions {
		if t == "" || q.Type == t {
			out = append(out, q)
		}
	}
	return out
}

// Marshal 输出两空格缩进、不转义非 ASCII 与 HTML 字符的 JSON。
func Marshal(bank *model.Bank) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(bank); err != nil {
		return nil, errors.Wrap(err, "序列化题库失败")
	}
	return buf.Bytes(), nil
}

// WriteFile 先写同目录临时文件再改名，失败时不留下半截输出。
func WriteFile(fs afero.Fs, path string, data []byte) error {
	tmp, err := afero.TempFile(fs, filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "无法创建临时文件")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fs.Remove(tmpName)
		return errors.Wrapf(err, "写入临时文件失败 '%s'", tmpName)
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmpName)
		return errors.Wrapf(err, "关闭临时文件失败 '%s'", tmpName)
	}
	if err := fs.Chmod(tmpName, 0644); err != nil && !os.IsNotExist(err) {
		log.Printf("[BankRepo] 设置文件权限失败: %v", err)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		fs.Remove(tmpName)
		return errors.Wrapf(err, "无法写入输出文件 '%s'", path)
	}
	return nil
}
