package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StaffStatusActive = "active"
	StaffStatusOff    = "off"
)

type Staff struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Role             string          `json:"role"`
	Status           string          `json:"status"`
	Email            string          `json:"email,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	EmergencyContact string          `json:"emergencyContact,omitempty"`
	StartDate        time.Time       `json:"startDate"`
	EmployeeID       string          `json:"employeeId,omitempty"`
	HourlyRate       decimal.Decimal `json:"hourlyRate"`
}

type InsertStaff struct {
	Name             string          `json:"name" binding:"required"`
	Role             string          `json:"role" binding:"required"`
	Status           string          `json:"status"` // defaults to active
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	EmergencyContact string          `json:"emergencyContact"`
	StartDate        *time.Time      `json:"startDate"` // defaults to now
	EmployeeID       string          `json:"employeeId"`
	HourlyRate       decimal.Decimal `json:"hourlyRate"`
}

type StaffPatch struct {
	Name             *string          `json:"name"`
	Role             *string          `json:"role"`
	Status           *string          `json:"status"`
	Email            *string          `json:"email"`
	Phone            *string          `json:"phone"`
	EmergencyContact *string          `json:"emergencyContact"`
	StartDate        *time.Time       `json:"startDate"`
	EmployeeID       *string          `json:"employeeId"`
	HourlyRate       *decimal.Decimal `json:"hourlyRate"`
}

type StaffShift struct {
	ID      int        `json:"id"`
	StaffID int        `json:"staffId"`
	Day     string     `json:"day"`
	Shift   string     `json:"shift"`
	WeekOf  *time.Time `json:"weekOf,omitempty"`
}

type InsertStaffShift struct {
	StaffID int        `json:"staffId" binding:"required"`
	Day     string     `json:"day" binding:"required"`
	Shift   string     `json:"shift" binding:"required"`
	WeekOf  *time.Time `json:"weekOf"`
}

type StaffShiftPatch struct {
	StaffID *int       `json:"staffId"`
	Day     *string    `json:"day"`
	Shift   *string    `json:"shift"`
	WeekOf  *time.Time `json:"weekOf"`
}

type StaffPerformance struct {
	ID             int             `json:"id"`
	StaffID        int             `json:"staffId"`
	Date           time.Time       `json:"date"`
	SalesAmount    decimal.Decimal `json:"salesAmount"`
	TipsEarned     decimal.Decimal `json:"tipsEarned"`
	CustomerRating float64         `json:"customerRating"`
	Incidents      int             `json:"incidents"`
	HoursWorked    float64         `json:"hoursWorked"`
}

type InsertStaffPerformance struct {
	StaffID        int             `json:"staffId" binding:"required"`
	Date           *time.Time      `json:"date"` // defaults to now
	SalesAmount    decimal.Decimal `json:"salesAmount"`
	TipsEarned     decimal.Decimal `json:"tipsEarned"`
	CustomerRating float64         `json:"customerRating" binding:"min=0,max=5"`
	Incidents      int             `json:"incidents"`
	HoursWorked    float64         `json:"hoursWorked"`
}

// TopPerformer is the leaderboard projection of a staff member joined with
// their latest performance snapshot.
type TopPerformer struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	SalesAmount    decimal.Decimal `json:"salesAmount"`
	CustomerRating float64         `json:"customerRating"`
	Incidents      int             `json:"incidents"`
}
