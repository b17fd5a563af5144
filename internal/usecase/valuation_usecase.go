package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"carmarket/internal/domain/entities"
	"carmarket/internal/domain/wizard"
	"carmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrValuationNotFound  = errors.New("valuation not found")
	ErrInvalidValuationID = errors.New("invalid valuation id")
	ErrSubmitRequired     = errors.New("result step is reached by submit")
)

const valuationFlow = "valuation"

// valuationSteps is the valuation flow definition. Step 4 is the terminal
// result state; submission happens from step 3 once contact details are in.
func valuationSteps() []wizard.Step {
	return []wizard.Step{
		{Number: 1, Title: "Vehicle Information", Required: []string{"make", "model", "year"}},
		{Number: 2, Title: "Condition & History", Required: []string{"mileage", "condition"}},
		{Number: 3, Title: "Contact Details", Required: []string{"contactName", "contactEmail", "contactPhone"}},
		{Number: 4, Title: "Estimated Value"},
	}
}

// IValuationUseCase drives the valuation wizard and its computed results.
type IValuationUseCase interface {
	StartDraft(ctx context.Context) (wizard.Draft, error)
	GetDraft(ctx context.Context, id string) (wizard.Draft, error)
	SetFields(ctx context.Context, id string, fields map[string]string, features []string) (wizard.Draft, error)
	Advance(ctx context.Context, id string) (wizard.Draft, error)
	Back(ctx context.Context, id string) (wizard.Draft, error)
	Submit(ctx context.Context, id string) (wizard.Draft, entities.Valuation, error)
	GetValuation(ctx context.Context, id string) (entities.Valuation, error)
}

type ValuationUseCase struct {
	drafts     interfaces.IDraftRepository
	valuations interfaces.IValuationRepository
	estimator  *Estimator
	delay      time.Duration
}

var _ IValuationUseCase = (*ValuationUseCase)(nil)

// NewValuationUseCase wires the valuation flow. delay is the artificial
// "calculating" pause before the estimate lands; 0 disables it.
func NewValuationUseCase(drafts interfaces.IDraftRepository, valuations interfaces.IValuationRepository, estimator *Estimator, delay time.Duration) *ValuationUseCase {
	return &ValuationUseCase{drafts: drafts, valuations: valuations, estimator: estimator, delay: delay}
}

func (u *ValuationUseCase) StartDraft(ctx context.Context) (wizard.Draft, error) {
	now := time.Now().UTC()
	d := wizard.Draft{
		ID:        uuid.NewString(),
		Flow:      valuationFlow,
		Machine:   wizard.New(valuationSteps()),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.drafts.Save(ctx, d); err != nil {
		return wizard.Draft{}, err
	}
	return d, nil
}

func (u *ValuationUseCase) GetDraft(ctx context.Context, id string) (wizard.Draft, error) {
	return u.loadDraft(ctx, id)
}

func (u *ValuationUseCase) SetFields(ctx context.Context, id string, fields map[string]string, features []string) (wizard.Draft, error) {
	d, err := u.loadDraft(ctx, id)
	if err != nil {
		return wizard.Draft{}, err
	}
	if d.Machine.Done {
		return wizard.Draft{}, ErrDraftCompleted
	}

	for name, value := range fields {
		d.Machine.SetField(name, value)
	}
	if features != nil {
		d.Machine.SetList("features", features)
	}
	return u.saveDraft(ctx, d)
}

func (u *ValuationUseCase) Advance(ctx context.Context, id string) (wizard.Draft, error) {
	d, err := u.loadDraft(ctx, id)
	if err != nil {
		return wizard.Draft{}, err
	}
	if d.Machine.Done {
		return wizard.Draft{}, ErrDraftCompleted
	}

	// The result step is reached through Submit, never by plain Next.
	if d.Machine.AtStep(len(valuationSteps()) - 1) {
		return wizard.Draft{}, ErrSubmitRequired
	}
	if err := d.Machine.Next(); err != nil {
		return wizard.Draft{}, err
	}
	return u.saveDraft(ctx, d)
}

func (u *ValuationUseCase) Back(ctx context.Context, id string) (wizard.Draft, error) {
	d, err := u.loadDraft(ctx, id)
	if err != nil {
		return wizard.Draft{}, err
	}
	if d.Machine.Done {
		return wizard.Draft{}, ErrDraftCompleted
	}

	d.Machine.Back()
	return u.saveDraft(ctx, d)
}

// Submit validates the contact step, simulates the calculation delay and
// moves the draft to the terminal result step carrying the valuation.
//
// The delay honors context cancellation, so a caller that navigates away
// leaves no half-written result behind.
func (u *ValuationUseCase) Submit(ctx context.Context, id string) (wizard.Draft, entities.Valuation, error) {
	d, err := u.loadDraft(ctx, id)
	if err != nil {
		return wizard.Draft{}, entities.Valuation{}, err
	}
	if d.Machine.Done {
		return wizard.Draft{}, entities.Valuation{}, ErrDraftCompleted
	}
	if !d.Machine.AtStep(len(valuationSteps()) - 1) {
		return wizard.Draft{}, entities.Valuation{}, ErrDraftNotAtReview
	}
	if err := d.Machine.RequireAll("contactName", "contactEmail", "contactPhone"); err != nil {
		return wizard.Draft{}, entities.Valuation{}, err
	}

	if u.delay > 0 {
		select {
		case <-time.After(u.delay):
		case <-ctx.Done():
			return wizard.Draft{}, entities.Valuation{}, ctx.Err()
		}
	}

	m := d.Machine
	year := atoiLenient(m.Field("year"))
	mileage := atoiLenient(m.Field("mileage"))
	condition := entities.Condition(m.Field("condition"))

	valuation := entities.Valuation{
		ID:             uuid.NewString(),
		Make:           m.Field("make"),
		Model:          m.Field("model"),
		Year:           year,
		Mileage:        mileage,
		Condition:      condition,
		Features:       m.List("features"),
		Location:       m.Field("location"),
		ContactName:    m.Field("contactName"),
		ContactEmail:   m.Field("contactEmail"),
		ContactPhone:   m.Field("contactPhone"),
		EstimatedValue: u.estimator.Estimate(year, mileage, condition),
		CreatedAt:      time.Now().UTC(),
	}

	created, err := u.valuations.Create(ctx, valuation)
	if err != nil {
		return wizard.Draft{}, entities.Valuation{}, err
	}

	if err := m.Next(); err != nil {
		return wizard.Draft{}, entities.Valuation{}, err
	}
	m.SetField("valuationId", created.ID)
	m.Complete()
	d, err = u.saveDraft(ctx, d)
	if err != nil {
		return wizard.Draft{}, entities.Valuation{}, err
	}
	log.Printf("[valuation][usecase] estimate computed valuation_id=%s value=%d", created.ID, created.EstimatedValue)
	return d, created, nil
}

func (u *ValuationUseCase) GetValuation(ctx context.Context, id string) (entities.Valuation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Valuation{}, ErrInvalidValuationID
	}

	v, err := u.valuations.GetByID(ctx, id)
	if err != nil {
		return entities.Valuation{}, err
	}
	if v.ID == "" {
		return entities.Valuation{}, ErrValuationNotFound
	}
	return v, nil
}

func (u *ValuationUseCase) loadDraft(ctx context.Context, id string) (wizard.Draft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return wizard.Draft{}, ErrInvalidDraftID
	}

	d, err := u.drafts.GetByID(ctx, id)
	if err != nil {
		return wizard.Draft{}, err
	}
	if d.ID == "" {
		return wizard.Draft{}, ErrDraftNotFound
	}
	return d, nil
}

func (u *ValuationUseCase) saveDraft(ctx context.Context, d wizard.Draft) (wizard.Draft, error) {
	d.UpdatedAt = time.Now().UTC()
	if err := u.drafts.Save(ctx, d); err != nil {
		return wizard.Draft{}, err
	}
	return d, nil
}
