package models

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	TripOneWay    = "One Way"
	TripRoundTrip = "Round Trip"
	TripLocal     = "Local"
	TripAirport   = "Airport"
)

const (
	CarEconomy = "Economy"
	CarSedan   = "Sedan"
	CarSUV     = "SUV"
	CarTempo   = "Tempo"
)

const (
	MinPassengers = 1
	MaxPassengers = 20
)

// Indian mobile numbers: 10 digits, first digit 6-9.
var mobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking is the persisted record for one customer's ride request.
// The id is assigned by the store at creation and is opaque to callers.
type Booking struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	ContactNumber string    `bson:"contact_number" json:"contactNumber"`
	TripType      string    `bson:"trip_type" json:"tripType"`
	Pickup        string    `bson:"pickup" json:"pickup"`
	Drop          string    `bson:"drop" json:"drop"`
	Date          string    `bson:"date" json:"date"`
	Time          string    `bson:"time" json:"time"`
	CarType       string    `bson:"car_type" json:"carType"`
	Passengers    int       `bson:"passengers" json:"passengers"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// BookingInput holds the client-supplied fields of a booking. Id, createdAt
// and status are system-assigned and never accepted from the client.
type BookingInput struct {
	Name          string `json:"name" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required,mobilenumber"`
	TripType      string `json:"tripType" validate:"omitempty,oneof='One Way' 'Round Trip' 'Local' 'Airport'"`
	Pickup        string `json:"pickup" validate:"required"`
	Drop          string `json:"drop" validate:"required"`
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time" validate:"required"`
	CarType       string `json:"carType" validate:"omitempty,oneof=Economy Sedan SUV Tempo"`
	Passengers    int    `json:"passengers" validate:"min=1,max=20"`
}

// Normalize trims free-text fields, strips whitespace from the contact
// number, applies enum defaults and clamps passengers into [1,20].
func (in *BookingInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.ContactNumber = strings.Join(strings.Fields(in.ContactNumber), "")
	in.Pickup = strings.TrimSpace(in.Pickup)
	in.Drop = strings.TrimSpace(in.Drop)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)

	if in.TripType == "" {
		in.TripType = TripOneWay
	}
	if in.CarType == "" {
		in.CarType = CarEconomy
	}
	if in.Passengers < MinPassengers {
		in.Passengers = MinPassengers
	}
	if in.Passengers > MaxPassengers {
		in.Passengers = MaxPassengers
	}
}

// Validate checks the normalized input and reports every violated field at
// once. A malformed contact number is reported distinctly from a missing one.
func (in *BookingInput) Validate() error {
	err := Validate.Struct(in)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	ve := &ValidationError{Fields: map[string]string{}}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			ve.Fields["name"] = "Name is required"
		case "ContactNumber":
			if fe.Tag() == "required" {
				ve.Fields["contactNumber"] = "Contact number is required"
			} else {
				ve.Fields["contactNumber"] = "Invalid phone number"
			}
		case "TripType":
			ve.Fields["tripType"] = "Unknown trip type"
		case "Pickup":
			ve.Fields["pickup"] = "Pickup location is required"
		case "Drop":
			ve.Fields["drop"] = "Drop location is required"
		case "Date":
			ve.Fields["date"] = "Date is required"
		case "Time":
			ve.Fields["time"] = "Time is required"
		case "CarType":
			ve.Fields["carType"] = "Unknown car type"
		case "Passengers":
			ve.Fields["passengers"] = "Passengers must be between 1 and 20"
		}
	}
	return ve
}

// ToBooking builds the record that will be handed to the store. Status and
// createdAt are assigned here; the id is minted by the store itself.
func (in *BookingInput) ToBooking(now time.Time) *Booking {
	return &Booking{
		Name:          in.Name,
		ContactNumber: in.ContactNumber,
		TripType:      in.TripType,
		Pickup:        in.Pickup,
		Drop:          in.Drop,
		Date:          in.Date,
		Time:          in.Time,
		CarType:       in.CarType,
		Passengers:    in.Passengers,
		Status:        StatusPending,
		CreatedAt:     now,
	}
}

// ValidationError carries one message per violated field.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, msg := range e.Fields {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

// ValidMobileNumber reports whether s is a 10-digit local mobile number
// after whitespace removal.
func ValidMobileNumber(s string) bool {
	return mobileRegex.MatchString(strings.Join(strings.Fields(s), ""))
}

func validMobileNumber(fl validator.FieldLevel) bool {
	return mobileRegex.MatchString(fl.Field().String())
}
