// 手动触发全量课表重建脚本
//
// 正常情况下课表在科目/时间配置变化时自动重建。
// 此脚本仅用于手动触发，例如首次部署或批量导入科目数据后。
//
// 用法: go run scripts/regenerate_all/main.go

package main

import (
	"log"

	"study_planner_backend/internal/config"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/scheduler"
	"study_planner_backend/internal/service"
	"study_planner_backend/pkg/database"
	"study_planner_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	users := repository.NewUserRepository(db)
	schedule := service.NewScheduleService(
		repository.NewSubjectRepository(db),
		repository.NewWeekConfigRepository(db),
		repository.NewScheduleBlockRepository(db),
	)

	all, err := users.FindAll()
	if err != nil {
		log.Fatalf("读取用户列表失败: %v", err)
	}

	log.Printf("手动触发 %d 个用户的课表重建...", len(all))
	regenerated := 0
	for _, user := range all {
		result := schedule.Regenerate(user.ID, scheduler.EventManualGenerate)
		if result.Performed {
			regenerated++
		}
	}
	log.Printf("完成！重建 %d 个，跳过 %d 个", regenerated, len(all)-regenerated)
}
