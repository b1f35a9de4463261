package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Subject and Text are rendered by the publisher; the worker only delivers.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}
