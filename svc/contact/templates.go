package contact

import (
	"html/template"

	"github.com/a-h/templ"

	"github.com/fezwebco/getintouch/pkg/email/templates"
)

const baseCSS = `*{margin:0;padding:0;box-sizing:border-box}` +
	`body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;line-height:1.6;color:#333333;background-color:#f8f9fa}` +
	`.container{max-width:600px;margin:0 auto;background-color:#ffffff;box-shadow:0 2px 10px rgba(0,0,0,0.1)}` +
	`.header{color:white;padding:40px 30px;text-align:center}` +
	`.header h1{font-size:24px;font-weight:600;margin:0;letter-spacing:-0.5px}` +
	`.header p{font-size:16px;margin-top:8px;opacity:0.9}` +
	`.content{padding:40px 30px}` +
	`.divider{height:1px;background:linear-gradient(to right,transparent,#e9ecef,transparent);margin:40px 0}` +
	`.footer{background-color:#f8f9fa;padding:30px;text-align:center;border-top:1px solid #e9ecef}` +
	`.footer p{font-size:14px;color:#666666;margin:0}` +
	`.timestamp{font-size:12px;color:#888888;margin-top:10px}` +
	`@media (max-width:600px){.container{margin:0;box-shadow:none}.header,.content,.footer{padding:30px 20px}.header h1{font-size:22px}}`

const ownerCSS = baseCSS +
	`.header{background:linear-gradient(135deg,#667eea 0%,#764ba2 100%)}` +
	`.field-group{margin-bottom:30px}` +
	`.field-label{display:block;font-size:14px;font-weight:600;color:#555555;margin-bottom:8px;text-transform:uppercase;letter-spacing:0.5px}` +
	`.field-value{font-size:16px;color:#333333;background-color:#f8f9fa;padding:16px 20px;border-radius:8px;border:1px solid #e9ecef;margin:0}` +
	`.message-field{background-color:#f8f9fa;padding:20px;border-radius:8px;border:1px solid #e9ecef;border-left:4px solid #667eea;font-size:16px;line-height:1.7;white-space:pre-wrap;word-wrap:break-word}` +
	`.reply-hint{font-size:14px;color:#666666;text-align:center;margin:0}`

const thankYouCSS = baseCSS +
	`.header{background:linear-gradient(135deg,#28a745 0%,#20c997 100%)}` +
	`.greeting{font-size:18px;color:#333333;margin-bottom:20px}` +
	`.message-text{font-size:16px;color:#555555;line-height:1.7;margin-bottom:25px}` +
	`.highlight-box{background-color:#f8f9fa;padding:20px;border-radius:8px;border-left:4px solid #28a745;margin:30px 0}` +
	`.highlight-box p{font-size:16px;color:#333333;margin:0;font-weight:500}` +
	`.signature{font-size:16px;color:#333333;margin-top:30px}` +
	`.signature-name{font-weight:600;color:#28a745}` +
	`.signature-title{font-size:14px;color:#666666}`

type ownerNotificationData struct {
	Name       string
	Email      string
	Message    string
	ReceivedAt string
}

type thankYouData struct {
	Name           string
	SignatureName  string
	SignatureTitle string
	SentAt         string
}

// Bodies are html/template so every action is escaped for its context.
var (
	ownerNotificationBody = template.Must(template.New("owner_notification").Parse(
		`<div class="container"><div class="header"><h1>New Contact Request</h1>` +
			`<p>You have received a new message from your portfolio</p></div>` +
			`<div class="content">` +
			`<div class="field-group"><span class="field-label">Name</span><p class="field-value">{{.Name}}</p></div>` +
			`<div class="field-group"><span class="field-label">Email Address</span><p class="field-value">{{.Email}}</p></div>` +
			`<div class="field-group"><span class="field-label">Message</span><div class="message-field">{{.Message}}</div></div>` +
			`<div class="divider"></div>` +
			`<p class="reply-hint">Reply directly to this email to respond to <strong>{{.Name}}</strong></p>` +
			`</div>` +
			`<div class="footer"><p>This message was sent from your portfolio contact form</p>` +
			`<p class="timestamp">Received on {{.ReceivedAt}}</p></div></div>`))

	thankYouBody = template.Must(template.New("thank_you").Parse(
		`<div class="container"><div class="header"><h1>Thank You for Reaching Out!</h1>` +
			`<p>Your message has been received</p></div>` +
			`<div class="content"><p class="greeting">Hello {{.Name}},</p>` +
			`<p class="message-text">Thank you for taking the time to reach out through my portfolio contact form. ` +
			`I really appreciate your interest and I'm excited to connect with you.</p>` +
			`<div class="highlight-box"><p>I'll review your message and get back to you within 24 hours.</p></div>` +
			`<p class="message-text">In the meantime, feel free to explore more of my work on my portfolio. ` +
			`If you have any urgent questions, please don't hesitate to reach out directly.</p>` +
			`<div class="divider"></div>` +
			`<p class="signature">Best regards,<br><span class="signature-name">{{.SignatureName}}</span>` +
			`{{with .SignatureTitle}}<br><span class="signature-title">{{.}}</span>{{end}}</p></div>` +
			`<div class="footer"><p>This is an automated response to confirm receipt of your message.</p>` +
			`<p class="timestamp">Sent on {{.SentAt}}</p></div></div>`))
)

func ownerNotificationEmail(d ownerNotificationData) templ.Component {
	return templates.Document("New Contact Request", ownerCSS, templ.FromGoHTML(ownerNotificationBody, d))
}

func thankYouEmail(d thankYouData) templ.Component {
	return templates.Document("Thank You for Your Message", thankYouCSS, templ.FromGoHTML(thankYouBody, d))
}
