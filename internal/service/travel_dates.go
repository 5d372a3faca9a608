package service

import (
	"math/rand"
	"time"
)

// DateStrategy assigns the departure and arrival dates of a ticket at
// purchase time.  The production strategy is random; tests swap in
// FixedDates so assertions stay deterministic.
type DateStrategy interface {
	TravelDates(now time.Time) (departure, arrival time.Time)
}

// RandomDates picks a departure 2–12 days from now and an arrival
// 13–28 days from now, so the arrival always lands after the departure.
type RandomDates struct{}

func (RandomDates) TravelDates(now time.Time) (time.Time, time.Time) {
	departure := now.AddDate(0, 0, 2+rand.Intn(11))
	arrival := now.AddDate(0, 0, 13+rand.Intn(16))
	return departure, arrival
}

// FixedDates always returns the configured offsets from now.
type FixedDates struct {
	DepartureDays int
	ArrivalDays   int
}

func (f FixedDates) TravelDates(now time.Time) (time.Time, time.Time) {
	return now.AddDate(0, 0, f.DepartureDays), now.AddDate(0, 0, f.ArrivalDays)
}
