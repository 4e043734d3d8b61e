// 开发用 JWT 签发脚本
//
// 本服务不提供注册/登录接口，用户由外部系统管理。
// 本地联调时用此脚本给种子用户签发一个 Bearer token。
//
// 用法: go run scripts/issue_token/main.go [-email demo@studyplanner.local]

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"study_planner_backend/internal/config"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/util"
	"study_planner_backend/pkg/database"
	"study_planner_backend/pkg/logger"
)

func main() {
	email := flag.String("email", "demo@studyplanner.local", "用户邮箱")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	user, err := repository.NewUserRepository(db).FindByEmail(*email)
	if err != nil {
		log.Fatalf("用户 %s 不存在: %v", *email, err)
	}

	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	if err != nil {
		log.Fatalf("签发失败: %v", err)
	}

	fmt.Printf("有效期至: %s\n", time.Now().Add(cfg.JWT.ExpireTime).Format(util.TimeFormat))
	fmt.Printf("Bearer %s\n", token)
}
