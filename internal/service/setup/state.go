package setup

// Settings collects everything the wizard asks for. The env tags drive the
// final .env serialization; zero values are omitted.
type Settings struct {
	MongoURI        string `env:"MONGODB_URI"`
	ServerlessURL   string `env:"SERVERLESS_URL"`
	GoogleAPIKey    string `env:"GOOGLE_API_KEY"`
	EnableTelegram  bool   `env:"PDFCHAT_ENABLE_TELEGRAM"`
	TelegramToken   string `env:"PDFCHAT_TELEGRAM_TOKEN"`
	TelegramOwnerID string `env:"PDFCHAT_TELEGRAM_OWNER_ID"`
}

func NewSettings() *Settings {
	return &Settings{}
}
