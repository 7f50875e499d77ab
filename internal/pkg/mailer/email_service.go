package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendInvoice(toEmail, invoiceNumber string, amount float64, currency string, description string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendInvoice(toEmail, invoiceNumber string, amount float64, currency string, description string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Invoice %s", invoiceNumber))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Invoice %s</h2>
			<p>Amount due:</p>
			<h1 style="color: #007BFF;">%.2f %s</h1>
			<p>%s</p>
			<p>If you have any questions about this invoice, just reply to this email.</p>
		</div>
	`, invoiceNumber, amount, currency, description)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send invoice %s to %s: %v\n", invoiceNumber, toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Invoice %s sent to %s\n", invoiceNumber, toEmail)
	return nil
}
