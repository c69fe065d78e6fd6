package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config 结构体定义了应用程序的所有配置项
// 它与 config.yaml 文件的结构完全对应
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

// ServerConfig 定义了服务器相关的配置
type ServerConfig struct {
	Mode string     `mapstructure:"mode"`
	Port string     `mapstructure:"port"`
	Cors CorsConfig `mapstructure:"cors"`
}

// CorsConfig 定义了CORS相关的配置
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig 定义了数据库和缓存相关的配置
type DatabaseConfig struct {
	Redis  RedisConfig  `mapstructure:"redis"`
	Sqlite SqliteConfig `mapstructure:"sqlite"`
}

// RedisConfig 定义了Redis的配置
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SqliteConfig 定义了SQLite的配置
type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// SeedConfig 定义了题库种子数据相关的配置
type SeedConfig struct {
	// QuestionsFile 是题库种子JSON文件的路径
	QuestionsFile string `mapstructure:"questionsFile"`
	// ResetDatabase 为true时，启动阶段会清空并重新灌入题库
	ResetDatabase bool `mapstructure:"resetDatabase"`
}

// Addr 返回HTTP服务器的监听地址，例如":8080"
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// LoadConfig 函数负责查找、加载和解析配置
// 配置文件是可选的；环境变量（如 PORT、RESET_DATABASE）始终可以覆盖文件中的值
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 1. 设置配置文件名和类型
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 2. 添加配置文件搜索路径
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// 3. 所有配置项的默认值，保证没有配置文件也能启动
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.cors.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("database.sqlite.path", "quiz.db")
	v.SetDefault("database.redis.address", "localhost:6379")
	v.SetDefault("database.redis.password", "")
	v.SetDefault("database.redis.db", 0)
	v.SetDefault("seed.questionsFile", "assets/questions.json")
	v.SetDefault("seed.resetDatabase", false)

	// 4. 设置环境变量支持
	// 允许通过环境变量覆盖配置，例如 PORT=9000 或 DATABASE_REDIS_ADDRESS=...
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 原版通过 PORT 和 RESET_DATABASE 环境变量配置，保留同名绑定
	v.BindEnv("server.port", "PORT")
	v.BindEnv("seed.resetDatabase", "RESET_DATABASE")

	// 5. 读取配置文件；文件不存在不是错误
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// 6. 将配置反序列化到结构体中
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
