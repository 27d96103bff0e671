package models

// Badge is the label and visual variant a status renders with.
type Badge struct {
	Label   string
	Variant string
}

var eventBadges = map[EventStatus]Badge{
	EventStatusPending:   {Label: "Pending", Variant: "outline"},
	EventStatusApproved:  {Label: "Approved", Variant: "default"},
	EventStatusOngoing:   {Label: "Ongoing", Variant: "default"},
	EventStatusCompleted: {Label: "Completed", Variant: "secondary"},
	EventStatusCancelled: {Label: "Cancelled", Variant: "destructive"},
	EventStatusRejected:  {Label: "Rejected", Variant: "destructive"},
}

var registrationBadges = map[RegistrationStatus]Badge{
	RegistrationPending:   {Label: "Pending", Variant: "outline"},
	RegistrationApproved:  {Label: "Approved", Variant: "default"},
	RegistrationRejected:  {Label: "Rejected", Variant: "destructive"},
	RegistrationCompleted: {Label: "Completed", Variant: "secondary"},
	RegistrationCancelled: {Label: "Cancelled", Variant: "destructive"},
}

// Badge falls back to the raw status string for statuses the backend adds later.
func (s EventStatus) Badge() Badge {
	if b, ok := eventBadges[s]; ok {
		return b
	}

	return Badge{Label: string(s), Variant: "outline"}
}

func (s RegistrationStatus) Badge() Badge {
	if b, ok := registrationBadges[s]; ok {
		return b
	}

	return Badge{Label: string(s), Variant: "outline"}
}
