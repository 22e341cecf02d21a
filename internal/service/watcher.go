package service

import (
	"context"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

const DefaultDebounce = 500 * time.Millisecond

// Watcher 监视输入文件，文件被写入或重新创建后重新转换题库。
type Watcher struct {
	service  *BankService
	debounce time.Duration
	onReload func(error)
}

func NewWatcher(service *BankService, debounce time.Duration, onReload func(error)) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{service: service, debounce: debounce, onReload: onReload}
}

// Run 阻塞直到 ctx 被取消。监视的是输入文件所在目录，以便覆盖"写临时文件再改名"式的保存。
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "创建文件监视器失败")
	}
	defer fw.Close()

	input := filepath.Clean(w.service.InputPath())
	if err := fw.Add(filepath.Dir(input)); err != nil {
		return errors.Wrapf(err, "无法监视目录 '%s'", filepath.Dir(input))
	}
	log.Printf("[Watcher] 正在监视输入文件 '%s'", input)

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Println("[Watcher] 已停止。")
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != input || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.reload)
			mu.Unlock()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("[Watcher] 监视出错: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	log.Printf("[Watcher] 检测到输入文件变化，重新转换...")
	_, err := w.service.Convert()
	if err != nil {
		log.Printf("!!! 错误 (自动重载): %v", err)
	}
	if w.onReload != nil {
		w.onReload(err)
	}
}
