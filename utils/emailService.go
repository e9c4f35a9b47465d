package utils

import (
	"fmt"
	"net/smtp"
	"strings"
	"wildcamp/config"
	"wildcamp/models"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: WildCamp <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #7C3AED; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1F2937; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			.info-box { background: #F5F3FF; padding: 15px; border-radius: 4px; border-left: 4px solid #7C3AED; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>WildCamp</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">WildCamp, the remote campsite marketplace. This is an automated message.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendBookingConfirmation emails the booking summary to the guest.
// Callers run it in a goroutine; a failed send is logged and never surfaced.
func SendBookingConfirmation(booking models.Booking, campsite models.Campsite) error {
	if config.AppConfig.EmailSender == "" || booking.UserEmail == "" {
		return nil
	}

	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Your booking request has been received.</p>
		<div class="info-box">
			<p><strong>Reference:</strong> %s</p>
			<p><strong>Campsite:</strong> %s</p>
			<p><strong>Address:</strong> %s</p>
			<p><strong>Check-in:</strong> %s</p>
			<p><strong>Check-out:</strong> %s</p>
			<p><strong>Guests:</strong> %d</p>
			<p><strong>Total:</strong> %.0f KRW</p>
		</div>
		<p>Payment and host confirmation are handled separately.</p>`,
		booking.UserName, booking.Reference, campsite.Name, campsite.Address,
		booking.CheckInDate, booking.CheckOutDate, booking.Guests, booking.TotalPrice)

	return SendEmail(
		[]string{booking.UserEmail},
		fmt.Sprintf("Booking received: %s", campsite.Name),
		getEmailTemplate("Booking received", body),
	)
}
