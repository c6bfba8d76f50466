package ports

// MailJob is a queued outbound email handed to the mail dispatcher.
type MailJob struct {
	To      string
	Subject string
	Body    string
}
