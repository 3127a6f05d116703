package models

import "time"

const (
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusPending   = "pending"
	ReservationStatusCancelled = "cancelled"
)

type Reservation struct {
	ID          int       `json:"id"`
	CustomerID  int       `json:"customerId,omitempty"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	PartySize   int       `json:"partySize"`
	TableNumber string    `json:"tableNumber,omitempty"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
}

type InsertReservation struct {
	CustomerID  int       `json:"customerId"`
	Date        time.Time `json:"date" binding:"required"`
	Time        string    `json:"time" binding:"required"`
	PartySize   int       `json:"partySize" binding:"required,min=1"`
	TableNumber string    `json:"tableNumber"`
	Status      string    `json:"status"` // defaults to confirmed
	Notes       string    `json:"notes"`
}

type ReservationPatch struct {
	CustomerID  *int       `json:"customerId"`
	Date        *time.Time `json:"date"`
	Time        *string    `json:"time"`
	PartySize   *int       `json:"partySize"`
	TableNumber *string    `json:"tableNumber"`
	Status      *string    `json:"status"`
	Notes       *string    `json:"notes"`
}
