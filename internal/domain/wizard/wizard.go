// Package wizard implements the linear multi-step form flows behind the
// sell-a-car and valuation surfaces: a forward/backward state machine over a
// fixed step sequence with per-step required-field gates.
package wizard

import (
	"fmt"
	"strings"
	"time"
)

// Step describes one stage of a flow. Required lists the field names that
// gate advancement past the step. Advisory steps surface missing fields as a
// recommendation but never block.
type Step struct {
	Number   int      `json:"number"`
	Title    string   `json:"title"`
	Required []string `json:"required,omitempty"`
	Advisory bool     `json:"advisory,omitempty"`
}

// ValidationError reports the required fields missing from a step. The
// machine stays on the step and keeps every field value when it is returned.
type ValidationError struct {
	Step    int
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d missing required fields: %s", e.Step, strings.Join(e.Missing, ", "))
}

// Machine is a linear state machine over steps 1..N.
//
// Field values accumulate across steps in a flat map and survive failed
// validation as well as back/forward navigation; nothing is ever cleared
// implicitly. Writes are not validated, gating happens only on Next and on
// submit-time checks.
type Machine struct {
	Steps   []Step              `json:"steps"`
	Current int                 `json:"current"`
	Fields  map[string]string   `json:"fields"`
	Lists   map[string][]string `json:"lists,omitempty"`
	Done    bool                `json:"done"`
}

// New returns a machine positioned on the first step with empty fields.
func New(steps []Step) *Machine {
	return &Machine{
		Steps:   steps,
		Current: 1,
		Fields:  make(map[string]string),
		Lists:   make(map[string][]string),
	}
}

// SetField merges a single field edit.
func (m *Machine) SetField(name, value string) {
	m.Fields[name] = value
}

// Field returns the current value of a field, "" when unset.
func (m *Machine) Field(name string) string {
	return m.Fields[name]
}

// SetList replaces the named list field (features, photos).
func (m *Machine) SetList(name string, values []string) {
	m.Lists[name] = append([]string(nil), values...)
}

// AppendList adds one value to the named list field.
func (m *Machine) AppendList(name, value string) {
	m.Lists[name] = append(m.Lists[name], value)
}

// RemoveListItem drops index i from the named list field. Out-of-range
// indexes are a no-op.
func (m *Machine) RemoveListItem(name string, i int) {
	list := m.Lists[name]
	if i < 0 || i >= len(list) {
		return
	}
	m.Lists[name] = append(list[:i], list[i+1:]...)
}

// List returns the named list field.
func (m *Machine) List(name string) []string {
	return m.Lists[name]
}

// StepDef returns the definition of the current step.
func (m *Machine) StepDef() Step {
	return m.Steps[m.Current-1]
}

// Missing returns the required field names of the current step that have no
// value, in declaration order. A name counts as present when either the
// scalar field or the list field under that name is non-empty.
func (m *Machine) Missing() []string {
	var missing []string
	for _, name := range m.StepDef().Required {
		if strings.TrimSpace(m.Fields[name]) == "" && len(m.Lists[name]) == 0 {
			missing = append(missing, name)
		}
	}
	return missing
}

// Next advances to the following step when the current step's required
// fields are all present. On a failed gate the machine stays put and the
// returned ValidationError names the missing fields. Advisory steps advance
// regardless. The final step is terminal: Next caps there.
func (m *Machine) Next() error {
	def := m.StepDef()
	if missing := m.Missing(); len(missing) > 0 && !def.Advisory {
		return &ValidationError{Step: m.Current, Missing: missing}
	}
	if m.Current < len(m.Steps) {
		m.Current++
	}
	return nil
}

// Back moves one step backwards without any validation, flooring at the
// first step. Field data from the step being left is kept.
func (m *Machine) Back() {
	if m.Current > 1 {
		m.Current--
	}
}

// AtStep reports whether the machine sits on step n.
func (m *Machine) AtStep(n int) bool {
	return m.Current == n
}

// Terminal reports whether the machine sits on its final step.
func (m *Machine) Terminal() bool {
	return m.Current == len(m.Steps)
}

// RequireAll is the submit-time gate: it checks the given fields
// irrespective of the current step's own Required list.
func (m *Machine) RequireAll(fields ...string) error {
	var missing []string
	for _, name := range fields {
		if strings.TrimSpace(m.Fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Step: m.Current, Missing: missing}
	}
	return nil
}

// Complete marks the flow finished. Completed machines accept no further
// transitions at the use-case layer.
func (m *Machine) Complete() {
	m.Done = true
}

// Draft is a wizard in progress, addressable by ID while the flow runs and
// discarded on submission.
type Draft struct {
	ID        string    `json:"id"`
	Flow      string    `json:"flow"`
	Machine   *Machine  `json:"machine"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
