package service

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"parkgate/internal/entities"
)

// SenderService delivers reservation confirmations. Both channels are
// fire-and-forget; callers invoke them from goroutines.
type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendReservationEmail(data entities.ReservationEmailData) {
	subject := fmt.Sprintf("Your parking reservation is %s - spot %s", data.Status, data.SpotID)
	plainBody := fmt.Sprintf(
		"Hello,\n\nYour parking reservation is %s.\n\n"+
			"Spot: %s\n"+
			"Date: %s\n"+
			"Time: %s - %s\n"+
			"Plate: %s\n\n"+
			"Thank you for parking with us.",
		data.Status, data.SpotID, data.Date, data.StartTime, data.EndTime, data.LicensePlate,
	)

	if err := sendEmailWithSendGrid(data.UserEmail, subject, plainBody); err != nil {
		log.Printf("Failed to send reservation email to %s: %v", data.UserEmail, err)
	}
}

func (s *SenderService) SendReservationSMS(data entities.ReservationEmailData) {
	message := fmt.Sprintf("Parking: reservation for spot %s on %s (%s - %s) is %s.",
		data.SpotID, data.Date, data.StartTime, data.EndTime, data.Status)

	if err := sendSMS(data.UserPhone, message); err != nil {
		log.Printf("Failed to send reservation SMS to %s: %v", data.UserPhone, err)
	}
}

func sendEmailWithSendGrid(toEmail, subject, plainBody string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if apiKey == "" || fromEmail == "" {
		return fmt.Errorf("SendGrid is not configured")
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Parkgate"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainBody, "")

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email via SendGrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

func sendSMS(toNumber, body string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_FROM_NUMBER")
	if accountSid == "" || authToken == "" || fromNumber == "" {
		return fmt.Errorf("Twilio is not configured")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(body)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("sending SMS via Twilio: %w", err)
	}
	return nil
}
