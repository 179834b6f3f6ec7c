package service

import (
	"fmt"
	"log"
	"time"

	"campuspark/internal/db"
	"campuspark/internal/entities"
)

// NotifyService sends booking confirmation and cancellation messages via
// SendGrid and Twilio. Delivery runs in the background and failures are
// logged, never surfaced to the booking flow.
type NotifyService struct{}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

func (s *NotifyService) BookingConfirmed(user db.User, booking db.Booking, spot db.ParkingSpot, slot db.TimeSlot) {
	s.send(user, booking, spot, slot, "confirmed")
}

func (s *NotifyService) BookingCancelled(user db.User, booking db.Booking, spot db.ParkingSpot, slot db.TimeSlot) {
	s.send(user, booking, spot, slot, "cancelled")
}

func (s *NotifyService) send(user db.User, booking db.Booking, spot db.ParkingSpot, slot db.TimeSlot, status string) {
	data := entities.BookingEmailData{
		UserName:    user.Name,
		BookingID:   booking.ID,
		SpotNumber:  spot.SpotNumber,
		Location:    spot.Location,
		Date:        booking.Date,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		Status:      status,
		CurrentYear: time.Now().Year(),
	}

	subject := fmt.Sprintf("Your campus parking booking is %s - #%s", data.Status, data.BookingID)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour parking booking has been %s.\n\n"+
			"Booking Details:\n"+
			"Booking ID: %s\n"+
			"Spot: %s (%s)\n"+
			"Date: %s\n"+
			"Time: %s - %s\n\n"+
			"Thank you for using Campus Parking.\n\n"+
			"Campus Parking, %d.",
		data.UserName, data.Status, data.BookingID, data.SpotNumber, data.Location,
		data.Date, data.StartTime, data.EndTime, data.CurrentYear,
	)

	go func() {
		if err := SendEmailWithSendGrid(user.Email, user.Name, subject, body); err != nil {
			log.Printf("WARN: booking %s: email to %s not sent: %v", booking.ID, user.Email, err)
		}
	}()

	if user.Phone == "" {
		return
	}
	sms := fmt.Sprintf("Campus Parking: booking #%s for spot %s on %s (%s-%s) is %s.",
		data.BookingID, data.SpotNumber, data.Date, data.StartTime, data.EndTime, data.Status)
	go func() {
		if err := SendSMS(user.Phone, sms); err != nil {
			log.Printf("WARN: booking %s: SMS to %s not sent: %v", booking.ID, user.Phone, err)
		}
	}()
}
