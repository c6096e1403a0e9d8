package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/career-compass/career-compass-backend/internal/plans/domain"
)

func TestBuild_ContainsRequestValues(t *testing.T) {
	req := domain.PlanRequest{
		Goal:       "Become a backend engineer",
		SkillLevel: "Intermediate",
		Skills:     domain.SkillList{"Go", "SQL", "Docker"},
		Hours:      10,
	}

	got := Build(req)

	assert.Contains(t, got, `"Become a backend engineer"`)
	assert.Contains(t, got, "Skill Level: Intermediate")
	assert.Contains(t, got, "Skills: Go, SQL, Docker")
	assert.Contains(t, got, "Time Commitment: 10 hours/week")
}

func TestBuild_RequestsLearningPlanShape(t *testing.T) {
	got := Build(domain.PlanRequest{})

	assert.Contains(t, got, `"learning_plan"`)
	assert.Contains(t, got, "array of 8 objects")
	assert.Contains(t, got, `"week"`)
	assert.Contains(t, got, `"topic"`)
	assert.Contains(t, got, `"details"`)
	assert.Contains(t, got, `"resources"`)
	assert.Contains(t, got, "ONLY a valid JSON object")
}

func TestBuild_FractionalHours(t *testing.T) {
	got := Build(domain.PlanRequest{Hours: 7.5})

	assert.Contains(t, got, "Time Commitment: 7.5 hours/week")
}
