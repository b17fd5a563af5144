package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"carmarket/internal/domain/entities"
	"carmarket/internal/domain/wizard"
	"carmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound    = errors.New("draft not found")
	ErrInvalidDraftID   = errors.New("invalid draft id")
	ErrDraftCompleted   = errors.New("draft already completed")
	ErrDraftNotAtReview = errors.New("draft not at the review step")
	ErrListingNotFound  = errors.New("listing not found")
	ErrInvalidListingID = errors.New("invalid listing id")
	ErrInvalidPhotoURL  = errors.New("invalid photo url")
)

const sellFlow = "sell"

// sellSteps is the sell-a-car flow definition. Step 3 is advisory: photos
// are recommended but never block advancement.
func sellSteps() []wizard.Step {
	return []wizard.Step{
		{Number: 1, Title: "Basic Info", Required: []string{"make", "model", "year"}},
		{Number: 2, Title: "Vehicle Details", Required: []string{"mileage", "fuelType", "transmission"}},
		{Number: 3, Title: "Photos", Required: []string{"photos"}, Advisory: true},
		{Number: 4, Title: "Pricing & Description", Required: []string{"price", "description"}},
		{Number: 5, Title: "Contact & Review"},
	}
}

// IListingUseCase drives the sell-a-car wizard and the listings it produces.
//
// Advance returns the advisory field names of the step just left (photos on
// step 3) so callers can surface a recommendation without blocking.
type IListingUseCase interface {
	StartDraft(ctx context.Context) (wizard.Draft, error)
	GetDraft(ctx context.Context, id string) (wizard.Draft, error)
	SetFields(ctx context.Context, id string, fields map[string]string) (wizard.Draft, error)
	Advance(ctx context.Context, id string) (wizard.Draft, []string, error)
	Back(ctx context.Context, id string) (wizard.Draft, error)
	AddPhoto(ctx context.Context, id, url string) (wizard.Draft, error)
	RemovePhoto(ctx context.Context, id string, index int) (wizard.Draft, error)
	Submit(ctx context.Context, id string) (entities.Listing, error)
	GetListing(ctx context.Context, id string) (entities.Listing, error)
	Listings(ctx context.Context) ([]entities.Listing, error)
}

type ListingUseCase struct {
	drafts   interfaces.IDraftRepository
	listings interfaces.IListingRepository
}

var _ IListingUseCase = (*ListingUseCase)(nil)

func NewListingUseCase(drafts interfaces.IDraftRepository, listings interfaces.IListingRepository) *ListingUseCase {
	return &ListingUseCase{drafts: drafts, listings: listings}
}

func (u *ListingUseCase) StartDraft(ctx context.Context) (wizard.Draft, error) {
	now := time.Now().UTC()
	d := wizard.Draft{
		ID:        uuid.NewString(),
		Flow:      sellFlow,
		Machine:   wizard.New(sellSteps()),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.drafts.Save(ctx, d); err != nil {
		return wizard.Draft{}, err
	}
	return d, nil
}

func (u *ListingUseCase) GetDraft(ctx context.Context, id string) (wizard.Draft, error) {
	return u.loadDraft(ctx, id)
}

func (u *ListingUseCase) SetFields(ctx context.Context, id string, fields map[string]string) (wizard.Draft, error) {
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
	return u.saveDraft(ctx, d)
}

func (u *ListingUseCase) Advance(ctx context.Context, id string) (wizard.Draft, []string, error) {
	d, err := u.loadDraft(ctx, id)
	if err != nil {
		return wizard.Draft{}, nil, err
	}
	if d.Machine.Done {
		return wizard.Draft{}, nil, ErrDraftCompleted
	}

	var advisory []string
	if d.Machine.StepDef().Advisory {
		advisory = d.Machine.Missing()
	}
	if err := d.Machine.Next(); err != nil {
		return wizard.Draft{}, nil, err
	}
	d, err = u.saveDraft(ctx, d)
	if err != nil {
		return wizard.Draft{}, nil, err
	}
	return d, advisory, nil
}

func (u *ListingUseCase) Back(ctx context.Context, id string) (wizard.Draft, error) {
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

func (u *ListingUseCase) AddPhoto(ctx context.Context, id, url string) (wizard.Draft, error) {
	d, err := u.loadDraft(ctx, id)
	if err != nil {
		return wizard.Draft{}, err
	}
	if d.Machine.Done {
		return wizard.Draft{}, ErrDraftCompleted
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return wizard.Draft{}, ErrInvalidPhotoURL
	}
	d.Machine.AppendList("photos", url)
	return u.saveDraft(ctx, d)
}

func (u *ListingUseCase) RemovePhoto(ctx context.Context, id string, index int) (wizard.Draft, error) {
	d, err := u.loadDraft(ctx, id)
	if err != nil {
		return wizard.Draft{}, err
	}
	if d.Machine.Done {
		return wizard.Draft{}, ErrDraftCompleted
	}

	d.Machine.RemoveListItem("photos", index)
	return u.saveDraft(ctx, d)
}

// Submit turns a review-step draft into a pending listing and discards the
// draft. A failed contact validation keeps the draft untouched.
func (u *ListingUseCase) Submit(ctx context.Context, id string) (entities.Listing, error) {
	d, err := u.loadDraft(ctx, id)
	if err != nil {
		return entities.Listing{}, err
	}
	if d.Machine.Done {
		return entities.Listing{}, ErrDraftCompleted
	}
	if !d.Machine.Terminal() {
		return entities.Listing{}, ErrDraftNotAtReview
	}
	if err := d.Machine.RequireAll("name", "email", "phone"); err != nil {
		return entities.Listing{}, err
	}

	m := d.Machine
	now := time.Now().UTC()
	listing := entities.Listing{
		ID:            uuid.NewString(),
		Title:         listingTitle(m),
		Make:          m.Field("make"),
		Model:         m.Field("model"),
		Year:          atoiLenient(m.Field("year")),
		Trim:          m.Field("trim"),
		BodyType:      m.Field("bodyType"),
		Mileage:       atoiLenient(m.Field("mileage")),
		VIN:           m.Field("vin"),
		ExteriorColor: m.Field("exteriorColor"),
		InteriorColor: m.Field("interiorColor"),
		FuelType:      entities.FuelType(m.Field("fuelType")),
		Transmission:  entities.Transmission(m.Field("transmission")),
		Drivetrain:    m.Field("drivetrain"),
		Photos:        m.List("photos"),
		Price:         parseFloatLenient(m.Field("price")),
		Description:   m.Field("description"),
		SellerName:    m.Field("name"),
		SellerEmail:   m.Field("email"),
		SellerPhone:   m.Field("phone"),
		SellerCity:    m.Field("location"),
		Status:        entities.ListingStatusPendingReview,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.listings.Create(ctx, listing)
	if err != nil {
		return entities.Listing{}, err
	}
	if err := u.drafts.Delete(ctx, d.ID); err != nil {
		return entities.Listing{}, err
	}
	log.Printf("[listing][usecase] listing submitted listing_id=%s make=%s model=%s", created.ID, created.Make, created.Model)
	return created, nil
}

func (u *ListingUseCase) GetListing(ctx context.Context, id string) (entities.Listing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Listing{}, ErrInvalidListingID
	}

	l, err := u.listings.GetByID(ctx, id)
	if err != nil {
		return entities.Listing{}, err
	}
	if l.ID == "" {
		return entities.Listing{}, ErrListingNotFound
	}
	return l, nil
}

// Listings returns every submitted listing in submission order.
func (u *ListingUseCase) Listings(ctx context.Context) ([]entities.Listing, error) {
	return u.listings.List(ctx)
}

func (u *ListingUseCase) loadDraft(ctx context.Context, id string) (wizard.Draft, error) {
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

func (u *ListingUseCase) saveDraft(ctx context.Context, d wizard.Draft) (wizard.Draft, error) {
	d.UpdatedAt = time.Now().UTC()
	if err := u.drafts.Save(ctx, d); err != nil {
		return wizard.Draft{}, err
	}
	return d, nil
}

func listingTitle(m *wizard.Machine) string {
	if t := strings.TrimSpace(m.Field("listingTitle")); t != "" {
		return t
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", m.Field("year"), m.Field("make"), m.Field("model")))
}

// The forms validate presence only, so numeric parsing is deliberately
// lenient: unparseable input becomes zero rather than an error.
func atoiLenient(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func parseFloatLenient(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
