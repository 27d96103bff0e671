package models

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "PENDING"
	RegistrationApproved  RegistrationStatus = "APPROVED"
	RegistrationRejected  RegistrationStatus = "REJECTED"
	RegistrationCompleted RegistrationStatus = "COMPLETED"
	RegistrationCancelled RegistrationStatus = "CANCELLED"
)

type Registration struct {
	ID               int64              `json:"registrationId"`
	EventName        string             `json:"eventName"`
	UserID           int64              `json:"userId"`
	FullName         string             `json:"fullName"`
	Email            string             `json:"email"`
	Status           RegistrationStatus `json:"status"`
	RegistrationDate Timestamp          `json:"registrationDate"`
	CancelAt         Timestamp          `json:"cancelAt"`
}

type RegistrationAction string

const (
	RegistrationApprove  RegistrationAction = "APPROVE"
	RegistrationReject   RegistrationAction = "REJECT"
	RegistrationComplete RegistrationAction = "COMPLETE"
)

func ParseRegistrationAction(s string) (RegistrationAction, bool) {
	switch a := RegistrationAction(s); a {
	case RegistrationApprove, RegistrationReject, RegistrationComplete:
		return a, true
	}

	return "", false
}

func ParseCloseAction(s string) (CloseAction, bool) {
	switch a := CloseAction(s); a {
	case CloseComplete, CloseCancel:
		return a, true
	}

	return "", false
}

func ParseEventReviewAction(s string) (EventReviewAction, bool) {
	switch a := EventReviewAction(s); a {
	case EventApprove, EventReject:
		return a, true
	}

	return "", false
}
