package email

import (
	"bytes"
	"fmt"
	"html/template"
)

const layout = `{{define "layout"}}<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: {{.Color}}; color: white; padding: 20px; text-align: center; }
.content { padding: 20px; background: #f9f9f9; }
.info-box { background: white; padding: 15px; margin: 15px 0; border-left: 4px solid {{.Color}}; }
.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>{{.Title}}</h1></div>
<div class="content">{{template "body" .}}</div>
<div class="footer">
<p>Babu Erectors Pvt. Ltd.<br>A-201 Capital Corner, Adajan, Surat-395009, Gujarat, India<br>Phone: +91 944 700 9417</p>
</div>
</div>
</body>
</html>{{end}}`

const contactConfirmationBody = `{{define "body"}}
<p>Dear {{.Data.Name}},</p>
<p>Thank you for reaching out to Babu Erectors Pvt. Ltd. We have received your inquiry and our team will get back to you within 24 hours.</p>
<div class="info-box">
<p><strong>Subject:</strong> {{.Data.Subject}}</p>
<p><strong>Message:</strong> {{.Data.Message}}</p>
</div>
<p>If you have any urgent queries, please feel free to call us at <strong>+91 944 700 9417</strong>.</p>
<p>Best regards,<br>BEPL Team</p>
{{end}}`

const contactNotificationBody = `{{define "body"}}
<div class="info-box">
<p><strong>Name:</strong> {{.Data.Name}}</p>
<p><strong>Email:</strong> <a href="mailto:{{.Data.Email}}">{{.Data.Email}}</a></p>
{{if .Data.Phone}}<p><strong>Phone:</strong> <a href="tel:{{.Data.Phone}}">{{.Data.Phone}}</a></p>{{end}}
{{if .Data.Company}}<p><strong>Company:</strong> {{.Data.Company}}</p>{{end}}
</div>
<div class="info-box">
<p><strong>Subject:</strong> {{.Data.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Data.Message}}</p>
</div>
{{end}}`

const careerConfirmationBody = `{{define "body"}}
<p>Dear {{.Data.Name}},</p>
<p>Thank you for applying for the <strong>{{.Data.Position}}</strong> position at Babu Erectors Pvt. Ltd. We have received your application and our HR team will review it carefully.</p>
<div class="info-box">
<p><strong>What happens next?</strong></p>
<p>If your profile matches our requirements, we will contact you to schedule an interview. You can expect to hear from us within 7 to 10 business days.</p>
</div>
<p>Best regards,<br>BEPL HR Team</p>
{{end}}`

const careerShortlistedBody = `{{define "body"}}
<p>Dear {{.Data.Name}},</p>
<p>We are pleased to inform you that your application for the <strong>{{.Data.Position}}</strong> position has been shortlisted. Our team will contact you shortly to schedule the next steps in our hiring process.</p>
<div class="info-box"><p>Please keep your phone reachable and check your email regularly.</p></div>
<p>Best regards,<br>BEPL HR Team</p>
{{end}}`

const careerRejectedBody = `{{define "body"}}
<p>Dear {{.Data.Name}},</p>
<p>Thank you for your interest in the <strong>{{.Data.Position}}</strong> position at BEPL. After careful consideration, we have decided to move forward with other candidates at this time. We encourage you to apply for future opportunities that match your skills and experience.</p>
<p>Best regards,<br>BEPL HR Team</p>
{{end}}`

type templateData struct {
	Title string
	Color string
	Data  any
}

var templates = map[string]*template.Template{
	"contact_confirmation": mustParse("contact_confirmation", contactConfirmationBody),
	"contact_notification": mustParse("contact_notification", contactNotificationBody),
	"career_confirmation":  mustParse("career_confirmation", careerConfirmationBody),
	"career_shortlisted":   mustParse("career_shortlisted", careerShortlistedBody),
	"career_rejected":      mustParse("career_rejected", careerRejectedBody),
}

func mustParse(name, body string) *template.Template {
	t := template.Must(template.New(name).Parse(layout))
	return template.Must(t.Parse(body))
}

func render(name, title, color string, data any) (string, error) {
	t, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", templateData{Title: title, Color: color, Data: data}); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
