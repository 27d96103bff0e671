// Package report summarizes an event's registrations for its manager.
package report

import (
	"sort"

	"volunteerHub/internal/models"
)

type Stats struct {
	Total     int
	Pending   int
	Approved  int
	Rejected  int
	Completed int
	Cancelled int
}

// Active counts registrations still holding a place.
func (s Stats) Active() int {
	return s.Pending + s.Approved + s.Completed
}

type Report struct {
	Stats     Stats
	Completed []models.Registration
}

func Summarize(regs []models.Registration) Report {
	var rep Report

	for _, reg := range regs {
		rep.Stats.Total++

		switch reg.Status {
		case models.RegistrationPending:
			rep.Stats.Pending++
		case models.RegistrationApproved:
			rep.Stats.Approved++
		case models.RegistrationRejected:
			rep.Stats.Rejected++
		case models.RegistrationCompleted:
			rep.Stats.Completed++
			rep.Completed = append(rep.Completed, reg)
		case models.RegistrationCancelled:
			rep.Stats.Cancelled++
		}
	}

	sort.SliceStable(rep.Completed, func(i, j int) bool {
		return rep.Completed[i].FullName < rep.Completed[j].FullName
	})

	return rep
}
