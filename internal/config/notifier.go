package config

// Notifier sends completed assessments to the career advisors chat. When
// AdvisorIDs is set the same bot also answers advisor commands.
type Notifier struct {
	Enabled    bool    `env:"NOTIFIER_ENABLED" envDefault:"false"`
	BotToken   string  `env:"NOTIFIER_BOT_TOKEN" json:"-"`
	ChatID     int64   `env:"NOTIFIER_CHAT_ID"`
	AdvisorIDs []int64 `env:"NOTIFIER_ADVISOR_IDS" envSeparator:","`
}

// CommandsEnabled reports whether the advisor command bot should run.
func (n Notifier) CommandsEnabled() bool {
	return n.Enabled && len(n.AdvisorIDs) > 0
}
