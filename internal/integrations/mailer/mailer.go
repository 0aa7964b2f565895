package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer отправитель уведомлений по SMTP
// Ошибки отправки не критичны для бизнес-операций: вызывающий код их логирует и продолжает
type Mailer struct {
	enabled  bool
	host     string
	port     int
	username string
	password string
	from     string
	log      Logger
}

// NewMailer создает новый отправитель уведомлений
// При enabled=false все отправки превращаются в no-op с записью в лог
func NewMailer(enabled bool, host string, port int, username, password, from string, log Logger) *Mailer {
	return &Mailer{
		enabled:  enabled,
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		log:      log,
	}
}

// SendReservationConfirmed отправляет гостю подтверждение брони
func (m *Mailer) SendReservationConfirmed(to, name, date, timeSlot string, partySize int) error {
	subject := "Votre réservation est confirmée"
	body := fmt.Sprintf(
		"Bonjour %s,\n\nVotre réservation pour %d personne(s) le %s à %s est confirmée.\n\nÀ bientôt !",
		name, partySize, date, timeSlot,
	)
	return m.send(to, subject, body)
}

// SendReservationCancelled отправляет гостю уведомление об отмене брони
func (m *Mailer) SendReservationCancelled(to, name, date, timeSlot string) error {
	subject := "Votre réservation a été annulée"
	body := fmt.Sprintf(
		"Bonjour %s,\n\nVotre réservation du %s à %s a été annulée.\n\nN'hésitez pas à réserver un autre créneau.",
		name, date, timeSlot,
	)
	return m.send(to, subject, body)
}

// SendOrderPaid отправляет подтверждение оплаты заказа
func (m *Mailer) SendOrderPaid(to, reference string, total float64) error {
	subject := fmt.Sprintf("Commande %s confirmée", reference)
	body := fmt.Sprintf(
		"Merci pour votre commande !\n\nRéférence : %s\nTotal payé : %.2f €\n\nVotre commande est en préparation.",
		reference, total,
	)
	return m.send(to, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	if !m.enabled {
		m.log.Info("Mailer disabled, skipping email to=%s subject=%q", to, subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: failed to send email to %s: %w", to, err)
	}

	m.log.Info("Email sent to=%s subject=%q", to, subject)
	return nil
}
