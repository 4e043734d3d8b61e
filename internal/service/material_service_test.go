package service

import (
	"testing"

	"study_planner_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		name     string
		material model.StudyMaterial
		want     float64
	}{
		{"halfway study", model.StudyMaterial{Tag: model.TagStudy, TargetHours: 2, TimeSpent: 60}, 50},
		{"revision counts", model.StudyMaterial{Tag: model.TagRevision, TargetHours: 1, TimeSpent: 30}, 50},
		{"notes count", model.StudyMaterial{Tag: model.TagNotes, TargetHours: 1, TimeSpent: 60}, 100},
		{"overshoot clamps", model.StudyMaterial{Tag: model.TagStudy, TargetHours: 1, TimeSpent: 600}, 100},
		{"reference never progresses", model.StudyMaterial{Tag: model.TagReference, TargetHours: 1, TimeSpent: 60}, 0},
		{"assignment never progresses", model.StudyMaterial{Tag: model.TagAssignment, TargetHours: 1, TimeSpent: 60}, 0},
		{"no target means no progress", model.StudyMaterial{Tag: model.TagStudy, TargetHours: 0, TimeSpent: 60}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateProgress(&tt.material), 1e-9)
		})
	}
}
