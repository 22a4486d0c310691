// Package wizard drives the three-step booking intake flow: trip details,
// schedule and car, then contact info. The flow is strictly linear; Next is
// guarded by per-step validation, Back never is. Submitting persists the
// booking best-effort and always produces the WhatsApp handoff, because the
// handoff is the path the business actually depends on.
package wizard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aradhya-travels/booking-api/internal/handoff"
	"github.com/aradhya-travels/booking-api/internal/models"
)

type Step int

const (
	StepTrip Step = iota + 1
	StepSchedule
	StepContact
)

var ErrNotAtFinalStep = errors.New("submit is only available on the contact step")

// Submitter is the slice of the booking service the wizard needs.
type Submitter interface {
	CreateBooking(ctx context.Context, input *models.BookingInput) (*models.Booking, error)
}

type Wizard struct {
	svc            Submitter
	logger         *slog.Logger
	businessNumber string
	nowFn          func() time.Time

	step Step
	form models.BookingInput
}

func New(svc Submitter, logger *slog.Logger, businessNumber string) *Wizard {
	w := &Wizard{
		svc:            svc,
		logger:         logger,
		businessNumber: businessNumber,
		nowFn:          time.Now,
	}
	w.Reset()
	return w
}

// Result carries the two independent outcomes of a submit: best-effort
// persistence (Booking or SaveErr, never both) and the handoff, which is
// produced unconditionally.
type Result struct {
	Booking    *models.Booking
	SaveErr    error
	Message    string
	HandoffURL string
}

func (w *Wizard) Step() Step {
	return w.step
}

// Form exposes the in-progress input for field entry.
func (w *Wizard) Form() *models.BookingInput {
	return &w.form
}

// Next advances one step when the current step's fields validate.
func (w *Wizard) Next() error {
	if w.step >= StepContact {
		return ErrNotAtFinalStep
	}
	if err := w.validateStep(w.step); err != nil {
		return err
	}
	w.step++
	return nil
}

// Back moves one step back, unguarded.
func (w *Wizard) Back() {
	if w.step > StepTrip {
		w.step--
	}
}

// ApplyQuickTime recomputes the time field from a shortcut offset without
// touching the date.
func (w *Wizard) ApplyQuickTime(offsetMinutes int) {
	w.form.Time = QuickTime(w.nowFn(), offsetMinutes)
}

// Submit finishes the flow. Contact-step validation must pass; after that
// the booking is persisted best-effort and the handoff is always built. A
// persistence failure is logged and carried in the result, never surfaced
// to the customer. The wizard resets for the next booking either way.
func (w *Wizard) Submit(ctx context.Context) (*Result, error) {
	if w.step != StepContact {
		return nil, ErrNotAtFinalStep
	}
	if err := w.validateStep(StepContact); err != nil {
		return nil, err
	}

	input := w.form
	input.Normalize()

	message := handoff.ComposeMessage(&input)
	result := &Result{
		Message:    message,
		HandoffURL: handoff.WhatsAppURL(w.businessNumber, message),
	}

	booking, err := w.svc.CreateBooking(ctx, &input)
	if err != nil {
		w.logger.Error("Booking save failed, proceeding to WhatsApp handoff", "error", err)
		result.SaveErr = err
	} else {
		result.Booking = booking
	}

	w.Reset()
	return result, nil
}

// Reset returns to the first step with date and time re-defaulted and every
// other field cleared.
func (w *Wizard) Reset() {
	now := w.nowFn()
	w.form = models.BookingInput{
		TripType:   models.TripOneWay,
		CarType:    models.CarEconomy,
		Passengers: 1,
		Date:       DefaultDate(now),
		Time:       DefaultTime(now),
	}
	w.step = StepTrip
}

// validateStep enforces the staged intake rules: step one needs the route,
// step two has defaults for everything, step three needs the contact. The
// store re-validates the full record regardless of this gating.
func (w *Wizard) validateStep(step Step) error {
	form := w.form
	form.Normalize()
	ve := &models.ValidationError{Fields: map[string]string{}}

	switch step {
	case StepTrip:
		if form.Pickup == "" {
			ve.Fields["pickup"] = "Pickup location is required"
		}
		if form.Drop == "" {
			ve.Fields["drop"] = "Drop location is required"
		}
	case StepSchedule:
		// Date and time are pre-populated; nothing to check.
	case StepContact:
		if form.Name == "" {
			ve.Fields["name"] = "Name is required"
		}
		if form.ContactNumber == "" {
			ve.Fields["contactNumber"] = "Contact number is required"
		} else if !models.ValidMobileNumber(form.ContactNumber) {
			ve.Fields["contactNumber"] = "Invalid phone number"
		}
	}

	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}
