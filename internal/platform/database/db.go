package database

import (
	"fmt"
	"log"
	"os"

	"github.com/SlpAus/quiz-game-backend/internal/platform/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB 打开SQLite数据库并返回连接句柄。
// 句柄由调用方通过构造函数注入到各个服务中，而不是作为包级单例。
func OpenDB(cfg config.SqliteConfig) (*gorm.DB, error) {
	// GORM日志配置
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 0,
			LogLevel:      logger.Silent, // 在生产环境中可以设为Silent
			Colorful:      true,
		},
	)

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	fmt.Println("数据库连接成功！")
	return db, nil
}
