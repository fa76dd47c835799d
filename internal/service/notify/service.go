package notify

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/othmanalikhan-apps/project-aardvark/internal/config"
	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service отправляет клиентам подтверждения брони по email и SMS
// Отправка выполняется в фоне и не влияет на результат бронирования
type Service struct {
	cfg         config.NotificationsConfig
	sendgridKey string
	twilioSID   string
	twilioToken string
	logger      Logger
}

// NewService создает сервис подтверждений
// Ключи API читаются из окружения, все остальное - из конфигурации
func NewService(cfg config.NotificationsConfig, logger Logger) *Service {
	return &Service{
		cfg:         cfg,
		sendgridKey: os.Getenv("SENDGRID_API_KEY"),
		twilioSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		twilioToken: os.Getenv("TWILIO_AUTH_TOKEN"),
		logger:      logger,
	}
}

// SendBookingConfirmation отправляет подтверждение брони в отдельной горутине
func (s *Service) SendBookingConfirmation(booking *domain.Booking) {
	b := *booking
	go s.send(&b)
}

func (s *Service) send(booking *domain.Booking) {
	if s.cfg.EmailEnabled {
		if err := s.sendEmail(booking); err != nil {
			s.logger.Error("notify: email for booking %s failed: %v", booking.Reference, err)
		} else {
			s.logger.Info("notify: email for booking %s sent to %s", booking.Reference, booking.CustomerEmail)
		}
	}

	if s.cfg.SMSEnabled {
		if err := s.sendSMS(booking); err != nil {
			s.logger.Error("notify: SMS for booking %s failed: %v", booking.Reference, err)
		} else {
			s.logger.Info("notify: SMS for booking %s sent to %s", booking.Reference, booking.CustomerPhone)
		}
	}
}

func (s *Service) sendEmail(booking *domain.Booking) error {
	if s.sendgridKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not set")
	}

	from := sgmail.NewEmail(s.cfg.FromName, s.cfg.FromEmail)
	to := sgmail.NewEmail(booking.CustomerName, booking.CustomerEmail)
	subject := fmt.Sprintf("Booking confirmation %s", booking.Reference)
	body := confirmationText(booking)

	message := sgmail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(s.sendgridKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func (s *Service) sendSMS(booking *domain.Booking) error {
	if s.twilioSID == "" || s.twilioToken == "" {
		return fmt.Errorf("twilio credentials are not set")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: s.twilioSID,
		Password: s.twilioToken,
	})

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(booking.CustomerPhone)
	params.SetFrom(s.cfg.FromPhone)
	params.SetBody(confirmationText(booking))

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}
	return nil
}

func confirmationText(booking *domain.Booking) string {
	return fmt.Sprintf(
		"Dear %s, your table %d is booked for %s at %s. Your booking reference is %s.",
		booking.CustomerName,
		booking.TableNumber,
		booking.BookingDate.Format(domain.DateFormat),
		booking.StartTime,
		booking.Reference,
	)
}
