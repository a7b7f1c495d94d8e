package email

// Provider abstracts outbound mail. Handlers and services only see this
// interface; actual delivery is an external collaborator.
type Provider interface {
	SendPasswordReset(to, resetURL string) error
}

type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
