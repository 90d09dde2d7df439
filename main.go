// @title Lingua 辅导后端 API
// @version 1.0
// @description 自适应法语辅导平台的后端服务器。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"github.com/WaseemSyawish/lingua/internal/app"
	"github.com/WaseemSyawish/lingua/internal/config"
	"github.com/WaseemSyawish/lingua/pkg/configwatcher"
	"github.com/WaseemSyawish/lingua/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	// 监听配置文件变更，支持运行时切换AI模型
	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadAIConfig)

	application.Run()
}
