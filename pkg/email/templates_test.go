package email

import (
	"strings"
	"testing"
	"time"
)

func TestBuildAppointmentStatusEmail(t *testing.T) {
	date := time.Date(2025, 6, 2, 18, 30, 0, 0, time.UTC)

	t.Run("accepted", func(t *testing.T) {
		m := BuildAppointmentStatusEmail(AppointmentEmailData{
			OwnerName:       "Jamie",
			OwnerEmail:      "jamie@example.com",
			DoctorName:      "Dana",
			PetName:         "Max",
			Status:          "accepted",
			AppointmentDate: date,
			ActedBy:         "Dana",
		})

		if len(m.To) != 1 || m.To[0] != "jamie@example.com" {
			t.Errorf("To = %v", m.To)
		}
		if m.Subject != "Your appointment has been accepted" {
			t.Errorf("Subject = %q", m.Subject)
		}
		if !strings.Contains(m.TextBody, "Dr. Dana for Max") {
			t.Errorf("text body missing doctor/pet: %q", m.TextBody)
		}
		if !strings.Contains(m.HTMLBody, "#16a34a") {
			t.Error("accepted email should use the green accent")
		}
		if strings.Contains(m.TextBody, "Reason:") {
			t.Error("accepted email should not carry a reason line")
		}
	})

	t.Run("rejected with reason", func(t *testing.T) {
		m := BuildAppointmentStatusEmail(AppointmentEmailData{
			OwnerName:       "Jamie",
			OwnerEmail:      "jamie@example.com",
			DoctorName:      "Dana",
			PetName:         "Max",
			Status:          "rejected",
			AppointmentDate: date,
			ActedBy:         "Admin",
			RejectionReason: "fully booked",
		})

		if !strings.Contains(m.TextBody, "Reason: fully booked") {
			t.Errorf("text body missing reason: %q", m.TextBody)
		}
		if !strings.Contains(m.HTMLBody, "#dc2626") {
			t.Error("rejected email should use the red accent")
		}
	})
}

func TestBuildMessageValidation(t *testing.T) {
	if _, err := buildMessage("", Message{To: []string{"a@b.c"}, Subject: "s", TextBody: "t"}); err == nil {
		t.Error("empty from should be rejected")
	}
	if _, err := buildMessage("noreply@petscare.app", Message{To: []string{"a@b.c"}, TextBody: "t"}); err == nil {
		t.Error("empty subject should be rejected")
	}
	if _, err := buildMessage("noreply@petscare.app", Message{To: []string{"a@b.c"}, Subject: "s"}); err == nil {
		t.Error("empty body should be rejected")
	}
}

func TestSendDisabled(t *testing.T) {
	c, err := New(Config{Enabled: false})
	if err != nil {
		t.Fatal(err)
	}
	err = c.Send(t.Context(), Message{To: []string{"a@b.c"}, Subject: "s", TextBody: "t"})
	if _, ok := err.(ErrDisabled); !ok {
		t.Errorf("err = %v, want ErrDisabled", err)
	}
}
