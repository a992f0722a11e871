package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService notifies employees about the outcome of their requests.
type EmailService interface {
	SendAdjustmentResolved(to, employeeName, fichajeDate, requestedTime, status, rejectionReason string) error
	SendLeaveResolved(to, employeeName, leaveLabel, startDate, endDate, status string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type adjustmentResolvedData struct {
	EmployeeName    string
	FichajeDate     string
	RequestedTime   string
	Approved        bool
	RejectionReason string
}

// SendAdjustmentResolved tells the employee whether their fichaje correction
// was approved or rejected.
func (s *emailServiceImpl) SendAdjustmentResolved(to, employeeName, fichajeDate, requestedTime, status, rejectionReason string) error {
	data := adjustmentResolvedData{
		EmployeeName:    employeeName,
		FichajeDate:     fichajeDate,
		RequestedTime:   requestedTime,
		Approved:        status == "APPROVED",
		RejectionReason: rejectionReason,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "adjustment_resolved.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := "Solicitud de ajuste rechazada"
	if data.Approved {
		subject = "Solicitud de ajuste aprobada"
	}
	return s.sendHTML(to, subject, body.String())
}

type leaveResolvedData struct {
	EmployeeName string
	LeaveLabel   string
	StartDate    string
	EndDate      string
	Approved     bool
}

func (s *emailServiceImpl) SendLeaveResolved(to, employeeName, leaveLabel, startDate, endDate, status string) error {
	data := leaveResolvedData{
		EmployeeName: employeeName,
		LeaveLabel:   leaveLabel,
		StartDate:    startDate,
		EndDate:      endDate,
		Approved:     status == "approved",
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_resolved.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := "Solicitud de ausencia rechazada"
	if data.Approved {
		subject = "Solicitud de ausencia aprobada"
	}
	return s.sendHTML(to, subject, body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
