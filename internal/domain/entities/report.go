package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Count is one group of a grouped count.
type Count struct {
	Key   string
	Count int
}

// EventHeadline is the short form of an event used in listings.
type EventHeadline struct {
	ID        int64
	Name      string
	StartDate time.Time
}

type EventSummary struct {
	Total    int
	Upcoming int
	ByStatus []Count
	Next     []EventHeadline
}

type ParticipantSummary struct {
	Total           int
	ByType          []Count
	TopInstitutions []Count
}

type RegistrationSummary struct {
	Total           int
	Confirmed       int
	ByStatus        []Count
	ByPaymentStatus []Count
}

// EventRevenue is the revenue line of one event.
type EventRevenue struct {
	EventID   int64
	EventName string
	Fee       decimal.Decimal
	Confirmed int64
	Paid      int64
	Potential decimal.Decimal // Fee × Confirmed
	Collected decimal.Decimal // Fee × Paid
}

type RevenueReport struct {
	TotalPotential decimal.Decimal
	TotalPaid      decimal.Decimal
	Events         []EventRevenue
}

// EventCapacity compares confirmed registrations with the configured maximum.
type EventCapacity struct {
	EventID         int64
	EventName       string
	MaxParticipants int
	Confirmed       int64
	Remaining       int64 // negative when over capacity
}
