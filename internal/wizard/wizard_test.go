package wizard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aradhya-travels/booking-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubmitter struct {
	input *models.BookingInput
	err   error
}

func (s *stubSubmitter) CreateBooking(ctx context.Context, input *models.BookingInput) (*models.Booking, error) {
	s.input = input
	if s.err != nil {
		return nil, s.err
	}
	b := input.ToBooking(time.Now())
	b.ID = "stub-id"
	return b, nil
}

func testWizard(sub *stubSubmitter) *Wizard {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := New(sub, logger, "7675847434")
	w.nowFn = func() time.Time {
		return time.Date(2025, 1, 10, 13, 47, 0, 0, time.Local)
	}
	w.Reset()
	return w
}

func fillTrip(w *Wizard) {
	w.Form().Pickup = "Hitech City"
	w.Form().Drop = "Airport"
}

func fillContact(w *Wizard) {
	w.Form().Name = "Asha"
	w.Form().ContactNumber = "9876543210"
}

func TestWizardInitialState(t *testing.T) {
	w := testWizard(&stubSubmitter{})

	assert.Equal(t, StepTrip, w.Step())
	assert.Equal(t, models.TripOneWay, w.Form().TripType)
	assert.Equal(t, models.CarEconomy, w.Form().CarType)
	assert.Equal(t, 1, w.Form().Passengers)
	assert.Equal(t, "2025-01-10", w.Form().Date)
	assert.Equal(t, "15:00", w.Form().Time)
}

func TestWizardNextGuardedByStepValidation(t *testing.T) {
	w := testWizard(&stubSubmitter{})

	err := w.Next()
	require.Error(t, err)
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "pickup")
	assert.Contains(t, ve.Fields, "drop")
	assert.Equal(t, StepTrip, w.Step())

	fillTrip(w)
	require.NoError(t, w.Next())
	assert.Equal(t, StepSchedule, w.Step())

	// Step two has defaults for everything, so Next is always allowed
	require.NoError(t, w.Next())
	assert.Equal(t, StepContact, w.Step())

	assert.ErrorIs(t, w.Next(), ErrNotAtFinalStep)
}

func TestWizardBackIsUnguarded(t *testing.T) {
	w := testWizard(&stubSubmitter{})
	fillTrip(w)
	require.NoError(t, w.Next())

	w.Back()
	assert.Equal(t, StepTrip, w.Step())

	// Back at the first step is a no-op
	w.Back()
	assert.Equal(t, StepTrip, w.Step())
}

func TestWizardSubmitOnlyOnContactStep(t *testing.T) {
	w := testWizard(&stubSubmitter{})

	_, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotAtFinalStep)
}

func TestWizardSubmitRequiresContactValidation(t *testing.T) {
	w := testWizard(&stubSubmitter{})
	fillTrip(w)
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	w.Form().Name = "Asha"
	w.Form().ContactNumber = "12345"

	_, err := w.Submit(context.Background())
	require.Error(t, err)
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid phone number", ve.Fields["contactNumber"])

	// Failed validation keeps the wizard in place for corrections
	assert.Equal(t, StepContact, w.Step())
	assert.Equal(t, "Asha", w.Form().Name)
}

func TestWizardSubmitSuccess(t *testing.T) {
	sub := &stubSubmitter{}
	w := testWizard(sub)
	fillTrip(w)
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	fillContact(w)

	res, err := w.Submit(context.Background())
	require.NoError(t, err)

	require.NotNil(t, res.Booking)
	assert.NoError(t, res.SaveErr)
	assert.Equal(t, "stub-id", res.Booking.ID)

	assert.Contains(t, res.Message, "Asha")
	assert.Contains(t, res.Message, "9876543210")
	assert.Contains(t, res.Message, "Hitech City")
	assert.Contains(t, res.Message, "Fri, 10 Jan 2025")
	assert.True(t, strings.HasPrefix(res.HandoffURL, "https://wa.me/7675847434?text="))

	// Wizard is ready for the next customer
	assert.Equal(t, StepTrip, w.Step())
	assert.Empty(t, w.Form().Name)
	assert.Empty(t, w.Form().Pickup)
	assert.Equal(t, "2025-01-10", w.Form().Date)
	assert.Equal(t, "15:00", w.Form().Time)
}

func TestWizardSubmitSwallowsSaveError(t *testing.T) {
	sub := &stubSubmitter{err: errors.New("store is down")}
	w := testWizard(sub)
	fillTrip(w)
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	fillContact(w)

	res, err := w.Submit(context.Background())
	require.NoError(t, err) // persistence failure is not a submit failure

	assert.Nil(t, res.Booking)
	assert.Error(t, res.SaveErr)
	// The handoff still goes out: it is the critical path
	assert.NotEmpty(t, res.Message)
	assert.True(t, strings.HasPrefix(res.HandoffURL, "https://wa.me/"))
	assert.Equal(t, StepTrip, w.Step())
}

func TestWizardApplyQuickTime(t *testing.T) {
	w := testWizard(&stubSubmitter{})
	date := w.Form().Date

	w.ApplyQuickTime(QuickInOneHour)
	assert.Equal(t, "14:47", w.Form().Time)
	assert.Equal(t, date, w.Form().Date)

	w.ApplyQuickTime(QuickNow)
	assert.Equal(t, "13:47", w.Form().Time)
}
