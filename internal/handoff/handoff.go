// Package handoff composes the WhatsApp message for a booking request and
// the deep link that opens it against the business contact. The handoff is
// fire-and-forget: nothing in the system observes whether the customer
// actually sends the message.
package handoff

import (
	"fmt"
	"net/url"
	"time"

	"github.com/aradhya-travels/booking-api/internal/models"
)

const messageTemplate = `*🚖 New Booking Request - Aradhya Travels*

*👤 Customer Details*
Name: *%s*
Mobile: *%s*

*📍 Trip Details*
Type: *%s*
From: *%s*
To:   *%s*

*📅 Schedule*
Date: *%s*
Time: *%s*

*🚗 Vehicle Preference*
Car:  *%s*
Pax:  *%d*

_Please confirm availability and fare._`

// ComposeMessage renders the plain-text booking summary sent to the
// business contact.
func ComposeMessage(input *models.BookingInput) string {
	return fmt.Sprintf(messageTemplate,
		input.Name,
		input.ContactNumber,
		input.TripType,
		input.Pickup,
		input.Drop,
		FormatDisplayDate(input.Date),
		input.Time,
		input.CarType,
		input.Passengers,
	)
}

// WhatsAppURL builds the wa.me deep link with the message URL-encoded.
func WhatsAppURL(businessNumber, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", businessNumber, url.QueryEscape(message))
}

// FormatDisplayDate turns a 2006-01-02 form date into a friendlier
// "Fri, 10 Jan 2025". Unparseable input is passed through unchanged so the
// handoff never blocks on a cosmetic step.
func FormatDisplayDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("Mon, 2 Jan 2006")
}
