package email

import "fmt"

// Provider names accepted in EMAIL_PROVIDER.
const (
	ProviderSendGrid = "sendgrid"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

// Config selects and configures the email provider.
// Only the credentials of the selected provider are required.
type Config struct {
	Provider             string `env:"EMAIL_PROVIDER" envDefault:"dev" validate:"oneof=sendgrid postmark dev"`
	SendGridAPIKey       string `env:"SENDGRID_API_KEY" validate:"required_if=Provider sendgrid"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN" validate:"required_if=Provider postmark"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// New builds the Sender for cfg.Provider. The credential is handed to the
// provider client here and nowhere else.
func New(cfg Config) (Sender, error) {
	switch cfg.Provider {
	case ProviderSendGrid:
		return NewSendGridClient(cfg.SendGridAPIKey)
	case ProviderPostmark:
		return NewPostmarkClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	case ProviderDev, "":
		if cfg.DevDir == "" {
			return nil, fmt.Errorf("%w: EMAIL_DEV_DIR is required for the dev provider", ErrInvalidConfig)
		}
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
