package main

import (
	"Radiation-Safety-Question-Bank/internal/api"
	"Radiation-Safety-Question-Bank/internal/config"
	"Radiation-Safety-Question-Bank/internal/repository"
	"Radiation-Safety-Question-Bank/internal/router"
	"Radiation-Safety-Question-Bank/internal/service"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("运行失败: %+v", err)
	}
}

func run(args []string) error {
	flags := config.NewFlagSet(os.Args[0])
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	bankRepo := repository.NewBankRepository(fs, cfg.Output.Path)
	bankService := service.NewBankService(fs, service.ConvertConfig{
		InputPath:     cfg.Input.Path,
		InputFormat:   cfg.Input.Format,
		InputEncoding: cfg.Input.Encoding,
		OutputPath:    cfg.Output.Path,
		OutputFormat:  cfg.Output.Format,
		AnswersPath:   cfg.Answers.Path,
		Title:         cfg.Bank.Title,
	}, bankRepo)

	bank, err := bankService.Convert()
	if err != nil {
		return err
	}
	service.PrintSummary(os.Stdout, bank, cfg.Output.Path)

	if !cfg.Server.Enabled {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.Watch {
		watcher := service.NewWatcher(bankService, service.DefaultDebounce, func(err error) {
			if err == nil {
				service.PrintSummary(os.Stdout, bankRepo.Bank(), cfg.Output.Path)
			}
		})
		go func() {
			if err := watcher.Run(ctx); err != nil {
				log.Printf("!!! 错误：文件监视器退出: %v", err)
			}
		}()
	}

	bankHandler := api.NewBankHandler(bankService, bankRepo)
	gin.SetMode(gin.ReleaseMode)
	r := router.SetupRouter(bankHandler, cfg.CORS.AllowedOrigins)

	fmt.Printf("服务启动于 http://localhost%s\n", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return errors.Wrap(err, "服务启动失败")
	}
	return nil
}
