package traininglog

import "time"

// PerformanceMetrics captures a coach's assessment of one session.
type PerformanceMetrics struct {
	Duration         int      `json:"duration,omitempty"`  // minutes
	Intensity        int      `json:"intensity,omitempty"` // 1-10
	SkillsWorkedOn   []string `json:"skillsWorkedOn,omitempty"`
	ImprovementAreas []string `json:"improvementAreas,omitempty"`
	Rating           int      `json:"rating,omitempty"` // 1-5
}

type TrainingLog struct {
	ID           string              `json:"id"`
	UserID       string              `json:"userId"`
	CoachID      string              `json:"coachId"`
	ActivityType string              `json:"activityType"`
	Notes        string              `json:"notes,omitempty"`
	Metrics      *PerformanceMetrics `json:"performanceMetrics,omitempty"`
	SessionDate  time.Time           `json:"sessionDate"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}
