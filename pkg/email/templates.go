package email

import (
	"fmt"
	"time"
)

// AppointmentEmailData carries the fields rendered into appointment
// status emails.
type AppointmentEmailData struct {
	OwnerName       string
	OwnerEmail      string
	DoctorName      string
	PetName         string
	Status          string // accepted | rejected | cancelled
	AppointmentDate time.Time
	ActedBy         string
	RejectionReason string
}

func statusColor(status string) string {
	switch status {
	case "accepted":
		return "#16a34a"
	case "rejected":
		return "#dc2626"
	default:
		return "#6b7280"
	}
}

// BuildAppointmentStatusEmail creates the email sent to the pet owner when
// a doctor or admin responds to their appointment request.
func BuildAppointmentStatusEmail(data AppointmentEmailData) Message {
	ownerName := data.OwnerName
	if ownerName == "" {
		ownerName = "there"
	}

	subject := fmt.Sprintf("Your appointment has been %s", data.Status)
	when := data.AppointmentDate.Format("Monday, 2 January 2006 at 15:04")

	reasonText := ""
	reasonHTML := ""
	if data.Status == "rejected" && data.RejectionReason != "" {
		reasonText = fmt.Sprintf("\nReason: %s\n", data.RejectionReason)
		reasonHTML = fmt.Sprintf(`<p style="background-color: #fef2f2; padding: 10px 15px; border-radius: 4px; color: #991b1b;">Reason: %s</p>`, data.RejectionReason)
	}

	textBody := fmt.Sprintf(`Hi %s,

Your appointment with Dr. %s for %s on %s has been %s by %s.
%s
Thanks,
The PetsCare Team`,
		ownerName, data.DoctorName, data.PetName, when, data.Status, data.ActedBy, reasonText)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: %s;">Appointment %s</h2>
    <p>Hi %s,</p>
    <p>Your appointment with <strong>Dr. %s</strong> for <strong>%s</strong> on %s has been
    <strong style="color: %s;">%s</strong> by %s.</p>
    %s
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The PetsCare Team</p>
</body>
</html>`,
		statusColor(data.Status), data.Status,
		ownerName, data.DoctorName, data.PetName, when,
		statusColor(data.Status), data.Status, data.ActedBy, reasonHTML)

	return Message{
		To:       []string{data.OwnerEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAdminMessageEmail creates a free-form email an administrator sends to
// a pet owner about a specific appointment.
func BuildAdminMessageEmail(to, ownerName, subject, body string) Message {
	if ownerName == "" {
		ownerName = "there"
	}

	textBody := fmt.Sprintf(`Hi %s,

%s

Thanks,
The PetsCare Team`, ownerName, body)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>%s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The PetsCare Team</p>
</body>
</html>`, ownerName, body)

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
