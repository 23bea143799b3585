package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"studio-ops-backend/internal/database/models"
	"studio-ops-backend/internal/logger"

	"github.com/badoux/checkmail"
	"gopkg.in/gomail.v2"
)

// Sender delivers composed messages; *gomail.Dialer satisfies it
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

const assignmentTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        .details td { padding: 4px 12px 4px 0; }
        .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>New assignment: {{.EventName}}</h2>
    </div>
    <p>Hello {{.MemberName}},</p>
    <p>You have been assigned to this event as <strong>{{.Role}}</strong>. Please accept or decline the assignment in the team portal.</p>
    <table class="details">
        <tr><td>Date</td><td>{{.Date}}</td></tr>
        {{if .Time}}<tr><td>Time</td><td>{{.Time}}</td></tr>{{end}}
        {{if .Location}}<tr><td>Location</td><td>{{.Location}}</td></tr>{{end}}
    </table>
    <div class="footer">
        <p>This message was sent by the studio scheduling system.</p>
    </div>
</body>
</html>`

var assignmentTmpl = template.Must(template.New("assignment").Parse(assignmentTemplate))

type assignmentData struct {
	Subject    string
	EventName  string
	MemberName string
	Role       string
	Date       string
	Time       string
	Location   string
}

// EmailNotifier informs team members about new assignments by e-mail
type EmailNotifier struct {
	sender Sender
	from   string
}

// NewEmailNotifier creates a notifier that sends through an SMTP dialer
func NewEmailNotifier(host string, port int, user, password, from string) *EmailNotifier {
	return &EmailNotifier{
		sender: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

// NewEmailNotifierWithSender creates a notifier with a custom sender
func NewEmailNotifierWithSender(sender Sender, from string) *EmailNotifier {
	return &EmailNotifier{sender: sender, from: from}
}

// NotifyAssignment e-mails the member the event details
func (n *EmailNotifier) NotifyAssignment(ctx context.Context, member models.TeamMember, event models.ScheduledEvent) error {
	if member.Email == "" {
		return fmt.Errorf("team member %s has no e-mail address", member.ID)
	}
	if err := checkmail.ValidateFormat(member.Email); err != nil {
		return fmt.Errorf("invalid e-mail address %q: %w", member.Email, err)
	}

	subject := fmt.Sprintf("You have been assigned to %s", event.Name)
	data := assignmentData{
		Subject:    subject,
		EventName:  event.Name,
		MemberName: member.Name,
		Role:       string(member.Role),
		Date:       event.Date,
		Location:   event.Location,
	}
	if event.StartTime != "" {
		data.Time = event.StartTime
		if event.EndTime != "" {
			data.Time += " - " + event.EndTime
		}
	}

	var body bytes.Buffer
	if err := assignmentTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("error executing template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", member.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":       event.ID,
		"team_member_id": member.ID,
	}).Debug("Assignment e-mail sent")
	return nil
}

// LogNotifier only records assignments in the log; used when SMTP is not configured
type LogNotifier struct{}

// NewLogNotifier creates a log-only notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// NotifyAssignment logs the assignment
func (n *LogNotifier) NotifyAssignment(ctx context.Context, member models.TeamMember, event models.ScheduledEvent) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":       event.ID,
		"event_name":     event.Name,
		"team_member_id": member.ID,
		"role":           member.Role,
	}).Info("Team member assigned (e-mail delivery disabled)")
	return nil
}
