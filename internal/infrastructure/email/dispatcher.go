package email

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Result is the outcome of a best-effort send. It is only used to set
// emailSent flags and for logging; callers never fail on it.
type Result struct {
	Success   bool
	Skipped   bool
	MessageID string
	Err       error
}

// ContactData feeds the contact templates.
type ContactData struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Subject string
	Message string
}

// CareerData feeds the career templates.
type CareerData struct {
	Name     string
	Email    string
	Position string
}

// Dispatcher renders templates and hands them to a Sender.
type Dispatcher struct {
	sender       Sender
	companyEmail string
	replyTo      string
}

func NewDispatcher(sender Sender, companyEmail, replyTo string) *Dispatcher {
	return &Dispatcher{sender: sender, companyEmail: companyEmail, replyTo: replyTo}
}

func (d *Dispatcher) ContactConfirmation(ctx context.Context, data ContactData) Result {
	return d.send(ctx, "contact_confirmation", Message{
		FromName: "BEPL",
		To:       data.Email,
		Subject:  "Thank you for contacting BEPL",
	}, "Thank You for Contacting BEPL", "#f97316", data)
}

func (d *Dispatcher) ContactNotification(ctx context.Context, data ContactData) Result {
	return d.send(ctx, "contact_notification", Message{
		FromName: "BEPL Contact Form",
		To:       d.companyEmail,
		ReplyTo:  data.Email,
		Subject:  "New Contact Form Submission: " + data.Subject,
	}, "New Contact Form Submission", "#1e40af", data)
}

func (d *Dispatcher) CareerConfirmation(ctx context.Context, data CareerData) Result {
	return d.send(ctx, "career_confirmation", Message{
		FromName: "BEPL Careers",
		To:       data.Email,
		ReplyTo:  d.replyTo,
		Subject:  "Application Received - BEPL Careers",
		Headers: map[string]string{
			"X-Priority": "3",
			"Importance": "normal",
		},
	}, "Application Received", "#f97316", data)
}

// CareerStatus notifies the applicant about shortlisted/rejected.
// Any other status is skipped without contacting the transport.
func (d *Dispatcher) CareerStatus(ctx context.Context, data CareerData, status string) Result {
	switch status {
	case "shortlisted":
		return d.send(ctx, "career_shortlisted", Message{
			FromName: "BEPL Careers",
			To:       data.Email,
			ReplyTo:  d.replyTo,
			Subject:  "Congratulations! Your Application Has Been Shortlisted",
		}, "Application Shortlisted", "#10b981", data)
	case "rejected":
		return d.send(ctx, "career_rejected", Message{
			FromName: "BEPL Careers",
			To:       data.Email,
			ReplyTo:  d.replyTo,
			Subject:  "Update on Your Application - BEPL Careers",
		}, "Application Status Update", "#ef4444", data)
	default:
		return Result{Skipped: true}
	}
}

func (d *Dispatcher) send(ctx context.Context, tmpl string, msg Message, title, color string, data any) Result {
	html, err := render(tmpl, title, color, data)
	if err != nil {
		return d.fail(tmpl, msg.To, err)
	}
	msg.HTML = html

	id, err := d.sender.Send(ctx, msg)
	if err != nil {
		return d.fail(tmpl, msg.To, err)
	}

	log.Info().Str("template", tmpl).Str("to", msg.To).Str("message_id", id).Msg("Email sent")
	return Result{Success: true, MessageID: id}
}

func (d *Dispatcher) fail(tmpl, to string, err error) Result {
	log.Warn().Err(err).Str("template", tmpl).Str("to", to).Msg("Email not sent")
	return Result{Err: err}
}
