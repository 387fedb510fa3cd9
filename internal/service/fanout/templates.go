package fanout

import "fmt"

// NotificationType maps a response status to the stored notification type.
func NotificationType(status string) string {
	switch status {
	case "accepted":
		return "appointment_accepted"
	case "rejected":
		return "appointment_rejected"
	case "cancelled":
		return "appointment_cancelled"
	default:
		return "appointment_updated"
	}
}

// Title is the short heading shown in the notification list and push event.
func Title(status string) string {
	switch status {
	case "accepted":
		return "Appointment Accepted"
	case "rejected":
		return "Appointment Rejected"
	case "cancelled":
		return "Appointment Cancelled"
	default:
		return "Appointment Updated"
	}
}

// Message renders the one-line body shared by the notification record and
// the push payload.
func Message(ev ResponseEvent) string {
	msg := fmt.Sprintf("Your appointment with Dr. %s for %s has been %s by %s.",
		ev.DoctorName, ev.PetName, ev.Status, ev.ActedBy)
	if ev.Status == "rejected" && ev.RejectionReason != "" {
		msg += " Reason: " + ev.RejectionReason
	}
	return msg
}
