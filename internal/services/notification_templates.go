package services

import (
	"fmt"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
)

// NotificationEvent tags a booking-lifecycle change for dispatch.
type NotificationEvent string

const (
	EventBookingCreated    NotificationEvent = "booking_created"
	EventBookingConfirmed  NotificationEvent = "booking_confirmed"
	EventBookingInProgress NotificationEvent = "booking_in_progress"
	EventBookingCompleted  NotificationEvent = "booking_completed"
	EventBookingCancelled  NotificationEvent = "booking_cancelled"
)

// EventForStatus derives the dispatch tag from the status a booking just
// entered.
func EventForStatus(status db_models.BookingStatus) NotificationEvent {
	return NotificationEvent("booking_" + string(status))
}

type messageContent struct {
	Title   string
	Message string
}

type templatePair struct {
	Customer messageContent
	Worker   messageContent
}

// templatesFor selects the customer/worker message pair for an event. The
// default arm handles every unrecognized tag with the booking-created pair,
// so an unknown event is an explicit decision here rather than a silent
// map miss.
func templatesFor(event NotificationEvent, booking *db_models.Booking) templatePair {
	serviceName := booking.Service.Name

	switch event {
	case EventBookingConfirmed:
		return templatePair{
			Customer: messageContent{
				Title:   "Booking Confirmed",
				Message: fmt.Sprintf("Your booking for %s has been confirmed by the worker.", serviceName),
			},
			Worker: messageContent{
				Title:   "Booking Confirmed",
				Message: fmt.Sprintf("You confirmed the booking for %s.", serviceName),
			},
		}
	case EventBookingInProgress:
		return templatePair{
			Customer: messageContent{
				Title:   "Service Started",
				Message: fmt.Sprintf("Your %s service is now in progress.", serviceName),
			},
			Worker: messageContent{
				Title:   "Service Started",
				Message: fmt.Sprintf("You started the %s service.", serviceName),
			},
		}
	case EventBookingCompleted:
		return templatePair{
			Customer: messageContent{
				Title:   "Service Completed",
				Message: fmt.Sprintf("Your %s service has been completed. Please rate your experience.", serviceName),
			},
			Worker: messageContent{
				Title:   "Service Completed",
				Message: fmt.Sprintf("You completed the %s service.", serviceName),
			},
		}
	case EventBookingCancelled:
		return templatePair{
			Customer: messageContent{
				Title:   "Booking Cancelled",
				Message: fmt.Sprintf("Your booking for %s has been cancelled.", serviceName),
			},
			Worker: messageContent{
				Title:   "Booking Cancelled",
				Message: fmt.Sprintf("The booking for %s has been cancelled.", serviceName),
			},
		}
	case EventBookingCreated:
		fallthrough
	default:
		return templatePair{
			Customer: messageContent{
				Title:   "Booking Created",
				Message: fmt.Sprintf("Your booking for %s has been created and is pending worker confirmation.", serviceName),
			},
			Worker: messageContent{
				Title:   "New Booking Request",
				Message: fmt.Sprintf("You have a new booking request for %s.", serviceName),
			},
		}
	}
}
