package database

import (
	"fmt"
	"log"

	"study_planner_backend/internal/config"
	"study_planner_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.WeekConfig{},
		&model.FreeTimeBlock{},
		&model.ScheduleBlock{},
		&model.StudyMaterial{},
		&model.ProgressEntry{},
		&model.Streak{},
		&model.AIModel{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 空库时种一个演示账号，方便前端联调
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
		if err == nil {
			db.Create(&model.User{
				Name:     "Demo Student",
				Email:    "demo@studyplanner.local",
				Password: string(hashed),
				Role:     model.Student,
			})
		}
	}

	return db, nil
}
