package models

import "time"

const (
	VIPStatusRegular = "regular"
	VIPStatusVIP     = "vip"
)

type Customer struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	DOB           *time.Time `json:"dob,omitempty"`
	VIPStatus     string     `json:"vipStatus"`
	LoyaltyPoints int        `json:"loyaltyPoints"`
	LastVisit     *time.Time `json:"lastVisit,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

type InsertCustomer struct {
	Name          string     `json:"name" binding:"required"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	DOB           *time.Time `json:"dob"`
	VIPStatus     string     `json:"vipStatus"` // defaults to regular
	LoyaltyPoints int        `json:"loyaltyPoints"`
	LastVisit     *time.Time `json:"lastVisit"`
	Notes         string     `json:"notes"`
}

type CustomerPatch struct {
	Name          *string    `json:"name"`
	Email         *string    `json:"email"`
	Phone         *string    `json:"phone"`
	DOB           *time.Time `json:"dob"`
	VIPStatus     *string    `json:"vipStatus"`
	LoyaltyPoints *int       `json:"loyaltyPoints"`
	LastVisit     *time.Time `json:"lastVisit"`
	Notes         *string    `json:"notes"`
}
