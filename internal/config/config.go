package config

import (
	"Radiation-Safety-Question-Bank/internal/parser"
	"log"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "QBANK"

type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Answers AnswersConfig `mapstructure:"answers"`
	Bank    BankConfig    `mapstructure:"bank"`
	Server  ServerConfig  `mapstructure:"server"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type InputConfig struct {
	Path     string `mapstructure:"path"`
	Format   string `mapstructure:"format"`
	Encoding string `mapstructure:"encoding"`
}

type OutputConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

// AnswersConfig 外部答案表，可在题库文本缺少答案区时补全答案。
type AnswersConfig struct {
	Path string `mapstructure:"path"`
}

type BankConfig struct {
	Title string `mapstructure:"title"`
}

type ServerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    string `mapstructure:"port"`
	Watch   bool   `mapstructure:"watch"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// flagKeys 命令行参数与配置键的对应关系。
var flagKeys = map[string]string{
	"input":    "input.path",
	"format":   "input.format",
	"encoding": "input.encoding",
	"output":   "output.path",
	"export":   "output.format",
	"answers":  "answers.path",
	"title":    "bank.title",
	"serve":    "server.enabled",
	"port":     "server.port",
	"watch":    "server.watch",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.path", "temu.txt")
	v.SetDefault("input.format", "auto")
	v.SetDefault("input.encoding", "utf-8")
	v.SetDefault("output.path", "questions.json")
	v.SetDefault("output.format", "auto")
	v.SetDefault("answers.path", "")
	v.SetDefault("bank.title", parser.DefaultTitle)
	v.SetDefault("server.enabled", false)
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.watch", false)
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// NewFlagSet 定义命令行参数，未显式给出的参数不会覆盖配置文件和环境变量。
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "配置文件路径 (默认查找 ./config/config.yaml 和 ./config.yaml)")
	fs.StringP("input", "i", "", "题库文本路径")
	fs.String("format", "", "输入格式: auto|text|pdf|html")
	fs.String("encoding", "", "文本编码: utf-8|gbk|gb18030")
	fs.StringP("output", "o", "", "输出文件路径")
	fs.String("export", "", "输出格式: auto|json|csv|xlsx")
	fs.String("answers", "", "外部答案表 JSON 路径")
	fs.String("title", "", "题库标题")
	fs.Bool("serve", false, "转换后启动 HTTP 服务")
	fs.String("port", "", "HTTP 监听地址，例如 :8080")
	fs.Bool("watch", false, "服务模式下监视输入文件并自动重新转换")
	return fs
}

// Load 按 默认值 < 配置文件 < 环境变量 < 命令行参数 的优先级合并配置。
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	configFile := ""
	if flags != nil {
		configFile, _ = flags.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && configFile == "" {
			log.Println("警告：未找到 config.yaml 文件，将使用默认值、环境变量和命令行参数。")
		} else {
			return nil, errors.Wrap(err, "读取配置文件失败")
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "绑定参数 --%s 失败", name)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "解析配置失败")
	}
	return &cfg, nil
}
