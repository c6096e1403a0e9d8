package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PlanRequest carries the user-submitted parameters used to build the
// generation prompt. Fields are passed through to the prompt as-is.
type PlanRequest struct {
	Goal       string    `json:"goal"`
	SkillLevel string    `json:"skillLevel"`
	Skills     SkillList `json:"skills"`
	Hours      float64   `json:"hours"`
}

// SkillList accepts either a JSON array of strings or a single string.
type SkillList []string

func (s *SkillList) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var one string
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*s = SkillList{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

func (s SkillList) String() string {
	return strings.Join(s, ", ")
}

// LearningPlan is the curriculum returned by Gemini: one entry per week
// under the root key "learning_plan".
type LearningPlan struct {
	Weeks []Week `json:"learning_plan"`
}

type Week struct {
	Week      string   `json:"week"`
	Topic     string   `json:"topic"`
	Details   []string `json:"details"`
	Resources []string `json:"resources"`
}

// Validate checks the plan against the shape the prompt asks for: the root
// key must be present and every week must carry details and resources.
// The 8-week count is a hint to the model, not enforced here.
func (p *LearningPlan) Validate() error {
	if p == nil || p.Weeks == nil {
		return fmt.Errorf("%w: missing learning_plan key", ErrMalformedPlan)
	}

	for i, w := range p.Weeks {
		if strings.TrimSpace(w.Week) == "" {
			return fmt.Errorf("%w: entry %d missing week", ErrMalformedPlan, i+1)
		}
		if strings.TrimSpace(w.Topic) == "" {
			return fmt.Errorf("%w: entry %d missing topic", ErrMalformedPlan, i+1)
		}
		if w.Details == nil {
			return fmt.Errorf("%w: entry %d missing details", ErrMalformedPlan, i+1)
		}
		if w.Resources == nil {
			return fmt.Errorf("%w: entry %d missing resources", ErrMalformedPlan, i+1)
		}
	}

	return nil
}
