// File: models/booking.go
package models

import "time"

// BookingStatus is the booking lifecycle tag. Nothing in the catalog drives
// transitions between states; they are set by whichever system owns the
// booking workflow downstream.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking records a tourist's reservation against an experience. TotalPrice is
// computed once at creation (price per person times head count) and frozen;
// later price edits on the experience do not touch existing bookings.
type Booking struct {
	ID             string        `json:"id"`
	ExperienceID   string        `json:"experienceId"`
	TouristID      string        `json:"touristId"`
	Date           time.Time     `json:"date"`
	Status         BookingStatus `json:"status"`
	NumberOfPeople int           `json:"numberOfPeople"`
	TotalPrice     float64       `json:"totalPrice"`
	ReviewID       string        `json:"reviewId,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
}
