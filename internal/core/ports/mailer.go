package ports

// Mailer sends a plain-text transactional email.
type Mailer interface {
	Send(to, subject, body string) error
}
