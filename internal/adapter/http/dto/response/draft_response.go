package response

import (
	"time"

	"carmarket/internal/domain/wizard"
)

// DraftResponse is the wire shape of a wizard draft. Advisory names the
// recommended-but-missing fields of the step just left, when an advance
// produced any.
type DraftResponse struct {
	ID          string            `json:"id"`
	Flow        string            `json:"flow"`
	CurrentStep int               `json:"current_step"`
	TotalSteps  int               `json:"total_steps"`
	StepTitle   string            `json:"step_title"`
	Fields      map[string]string `json:"fields"`
	Photos      []string          `json:"photos,omitempty"`
	Features    []string          `json:"features,omitempty"`
	Done        bool              `json:"done"`
	Advisory    []string          `json:"advisory,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func FromDraft(d wizard.Draft, advisory []string) DraftResponse {
	m := d.Machine
	return DraftResponse{
		ID:          d.ID,
		Flow:        d.Flow,
		CurrentStep: m.Current,
		TotalSteps:  len(m.Steps),
		StepTitle:   m.StepDef().Title,
		Fields:      m.Fields,
		Photos:      m.List("photos"),
		Features:    m.List("features"),
		Done:        m.Done,
		Advisory:    advisory,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
