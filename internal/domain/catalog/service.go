package catalog

import (
	"strings"
	"time"

	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errs.NewNotFound("service not found")
	ErrInvalidName     = errs.NewInvalid("service name is required")
	ErrInvalidPrice    = errs.NewInvalid("service price cannot be negative")
	ErrInvalidDuration = errs.NewInvalid("service duration must be between 1 and 720 minutes")
)

const maxDurationMinutes = 720

// Service is a bookable treatment. Its duration is copied into an appointment's
// slot at booking time.
type Service struct {
	id              uuid.UUID
	name            string
	description     string
	priceCents      int
	durationMinutes int
	imageURL        string
	active          bool
}

type Attributes struct {
	Name            string
	Description     string
	PriceCents      int
	DurationMinutes int
	ImageURL        string
	Active          bool
}

func (a Attributes) validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrInvalidName
	}
	if a.PriceCents < 0 {
		return ErrInvalidPrice
	}
	if a.DurationMinutes < 1 || a.DurationMinutes > maxDurationMinutes {
		return ErrInvalidDuration
	}
	return nil
}

func NewService(attrs Attributes) (*Service, error) {
	if err := attrs.validate(); err != nil {
		return nil, err
	}
	s := &Service{id: uuid.New()}
	s.apply(attrs)
	return s, nil
}

func Reconstruct(id uuid.UUID, attrs Attributes) *Service {
	s := &Service{id: id}
	s.apply(attrs)
	return s
}

// Update replaces every attribute after validation.
func (s *Service) Update(attrs Attributes) error {
	if err := attrs.validate(); err != nil {
		return err
	}
	s.apply(attrs)
	return nil
}

func (s *Service) apply(a Attributes) {
	s.name = strings.TrimSpace(a.Name)
	s.description = a.Description
	s.priceCents = a.PriceCents
	s.durationMinutes = a.DurationMinutes
	s.imageURL = a.ImageURL
	s.active = a.Active
}

func (s *Service) Attributes() Attributes {
	return Attributes{
		Name:            s.name,
		Description:     s.description,
		PriceCents:      s.priceCents,
		DurationMinutes: s.durationMinutes,
		ImageURL:        s.imageURL,
		Active:          s.active,
	}
}

func (s *Service) ID() uuid.UUID           { return s.id }
func (s *Service) Name() string            { return s.name }
func (s *Service) Description() string     { return s.description }
func (s *Service) PriceCents() int         { return s.priceCents }
func (s *Service) DurationMinutes() int    { return s.durationMinutes }
func (s *Service) Duration() time.Duration { return time.Duration(s.durationMinutes) * time.Minute }
func (s *Service) ImageURL() string        { return s.imageURL }
func (s *Service) IsActive() bool          { return s.active }
