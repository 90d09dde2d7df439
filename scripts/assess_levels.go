// 手动触发全量学习者等级评估脚本
//
// 等级评估通常在学习者请求 /progress/assess-level 时按需执行，
// 管理员也可以通过 /admin/assess-levels 批量触发。
// 此脚本用于没有管理端入口的环境，例如调整晋级阈值或批量导入历史数据后。
//
// 用法: go run scripts/assess_levels.go

package main

import (
	"log"

	"github.com/WaseemSyawish/lingua/internal/config"
	"github.com/WaseemSyawish/lingua/internal/repository"
	"github.com/WaseemSyawish/lingua/internal/service"
	"github.com/WaseemSyawish/lingua/pkg/database"
	"github.com/WaseemSyawish/lingua/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, false)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	progressService := service.NewProgressService(
		repository.NewProfileRepository(db),
		repository.NewMasteryRepository(db),
		repository.NewSessionRepository(db),
	)

	result, err := progressService.AssessAllLevels()
	if err != nil {
		log.Fatalf("批量评估失败: %v", err)
	}

	for _, change := range result.Changes {
		log.Printf("用户 %d: %s -> %s (%s)", change.UserID,
			change.Decision.FromLevel, change.Decision.ToLevel, change.Decision.Reason)
	}
	log.Printf("评估完成: %d 个学习者，%d 个等级变更，%d 个失败",
		result.Assessed, result.Changed, result.Failed)
}
