package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"strings"

	"church_giving/internal/domain/entities"
	"church_giving/internal/infrastructure/config"
	"church_giving/internal/usecase/interfaces"

	"gopkg.in/gomail.v2"
)

var noticeTemplate = template.Must(template.New("notice").Parse(`<p>Dear {{.Name}},</p>
{{if .Completed}}<p>Thank you for your {{.Category}} of KES {{.Amount}}.</p>
<p>M-Pesa receipt: <strong>{{.Receipt}}</strong></p>
{{else}}<p>Your M-Pesa {{.Category}} of KES {{.Amount}} was not completed.</p>
<p>Reason: {{.Reason}}</p>
<p>No money was taken. You can try again from the giving page.</p>
{{end}}<p>Reference: {{.TransactionID}}</p>
<p>God bless you.</p>`))

type noticeData struct {
	Name          string
	Category      string
	Amount        string
	Receipt       string
	Reason        string
	TransactionID string
	Completed     bool
}

// SMTPMailer sends payment confirmations and failure notices by email.
type SMTPMailer struct {
	dialer *gomail.Dialer
	sender string
	send   func(*gomail.Message) error
}

var _ interfaces.IPaymentMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	log.Printf("[notification][email] smtp mailer initialized host=%s port=%d", cfg.Host, cfg.Port)
	return &SMTPMailer{
		dialer: d,
		sender: cfg.Sender,
		send:   func(m *gomail.Message) error { return d.DialAndSend(m) },
	}
}

func (m *SMTPMailer) SendPaymentNotice(ctx context.Context, p entities.PaymentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.Email == "" {
		return nil
	}

	subject, body, err := BuildPaymentNotice(p)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", p.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.send(msg); err != nil {
		return fmt.Errorf("send payment notice %s: %w", p.TransactionID, err)
	}
	log.Printf("[notification][email] sent transaction_id=%s to=%s status=%s", p.TransactionID, maskEmail(p.Email), p.Status)
	return nil
}

// BuildPaymentNotice renders the subject and HTML body for a settled payment.
func BuildPaymentNotice(p entities.PaymentRecord) (string, string, error) {
	data := noticeData{
		Name:          p.FullName,
		Category:      categoryLabel(p),
		Amount:        fmt.Sprintf("%.2f", p.Amount),
		Receipt:       p.ReceiptNumber,
		Reason:        p.ResultDesc,
		TransactionID: p.TransactionID,
		Completed:     p.Status == entities.PaymentStatusCompleted,
	}
	if data.Name == "" {
		data.Name = "Friend"
	}

	subject := "Your M-Pesa payment was not completed"
	if data.Completed {
		subject = "Thank you for your " + data.Category
	}

	var buf bytes.Buffer
	if err := noticeTemplate.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}

func categoryLabel(p entities.PaymentRecord) string {
	switch p.Category {
	case entities.PaymentCategoryTithe:
		return "tithe"
	case entities.PaymentCategoryOffering:
		return "offering"
	case entities.PaymentCategoryCampaign:
		if p.CampaignName != "" {
			return "contribution to " + p.CampaignName
		}
		return "campaign contribution"
	default:
		return "donation"
	}
}

// maskEmail keeps log lines free of full addresses.
func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
