package service

import (
	"errors"
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/util"

	"gorm.io/gorm"
)

type StreakService struct {
	StreakRepo *repository.StreakRepository
}

func NewStreakService(streakRepo *repository.StreakRepository) *StreakService {
	return &StreakService{StreakRepo: streakRepo}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysApart(a, b time.Time) int {
	diff := startOfDay(b).Sub(startOfDay(a))
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}

// 算法五：连击更新
// 同一天不变，隔一天 +1，断档重置为 1

// RecordStudyDay 记录一次学习并更新连击
func (s *StreakService) RecordStudyDay(userID uint, studyTimeMinutes float64) (*model.Streak, error) {
	if studyTimeMinutes < 1 {
		return nil, util.ErrStudyTimeTooShort
	}

	now := time.Now()
	streak, err := s.StreakRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		streak = &model.Streak{
			UserID:         userID,
			CurrentStreak:  1,
			LongestStreak:  1,
			LastStudyDate:  &now,
			TotalStudyDays: 1,
		}
		if err := s.StreakRepo.Save(streak); err != nil {
			return nil, err
		}
		return streak, nil
	}
	if err != nil {
		return nil, err
	}

	if streak.LastStudyDate == nil {
		streak.CurrentStreak = 1
		streak.TotalStudyDays++
	} else {
		switch daysApart(*streak.LastStudyDate, now) {
		case 0:
			// 同一天再学不加连击
		case 1:
			streak.CurrentStreak++
			if streak.CurrentStreak > streak.LongestStreak {
				streak.LongestStreak = streak.CurrentStreak
			}
			streak.TotalStudyDays++
		default:
			streak.CurrentStreak = 1
			streak.TotalStudyDays++
		}
	}
	streak.LastStudyDate = &now

	if err := s.StreakRepo.Save(streak); err != nil {
		return nil, err
	}
	return streak, nil
}

// GetStreak 读取连击，超过一天没学在读取侧清零
func (s *StreakService) GetStreak(userID uint) (*model.Streak, error) {
	streak, err := s.StreakRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.Streak{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}

	if streak.LastStudyDate != nil && daysApart(*streak.LastStudyDate, time.Now()) > 1 && streak.CurrentStreak != 0 {
		streak.CurrentStreak = 0
		if err := s.StreakRepo.Save(streak); err != nil {
			return nil, err
		}
	}
	return streak, nil
}
