package prompt

import (
	"fmt"

	"github.com/career-compass/career-compass-backend/internal/plans/domain"
)

const template = `You are an expert career coach. Your task is to generate ONLY a valid JSON object. Do not include markdown formatting like ` + "```json" + ` or any text before or after the JSON object.

The JSON must have one root key: "learning_plan". This key will contain an array of 8 objects, one for each week.
Each weekly object must have these keys: "week", "topic", "details" (a list of strings), and "resources" (a list of strings).

Create this 8-week plan for a user with these details:
- Goal: "%s"
- Skill Level: %s
- Skills: %s
- Time Commitment: %v hours/week`

// Build formats the plan request into the fixed instruction string sent to
// the model. Values are interpolated verbatim.
func Build(req domain.PlanRequest) string {
	return fmt.Sprintf(template, req.Goal, req.SkillLevel, req.Skills, req.Hours)
}
