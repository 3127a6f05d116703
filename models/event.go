package models

import "time"

const (
	EventStatusUpcoming  = "upcoming"
	EventStatusCancelled = "cancelled"
)

type Event struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime,omitempty"`
	Performer   string    `json:"performer,omitempty"`
	EventType   string    `json:"eventType,omitempty"`
	RSVPCount   int       `json:"rsvpCount"`
	Status      string    `json:"status"`
}

type InsertEvent struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	StartTime   string    `json:"startTime" binding:"required"`
	EndTime     string    `json:"endTime"`
	Performer   string    `json:"performer"`
	EventType   string    `json:"eventType"`
	RSVPCount   int       `json:"rsvpCount"`
	Status      string    `json:"status"` // defaults to upcoming
}

type EventPatch struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	StartTime   *string    `json:"startTime"`
	EndTime     *string    `json:"endTime"`
	Performer   *string    `json:"performer"`
	EventType   *string    `json:"eventType"`
	RSVPCount   *int       `json:"rsvpCount"`
	Status      *string    `json:"status"`
}
