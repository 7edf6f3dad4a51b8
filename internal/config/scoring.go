package config

import "time"

// Scoring points at the remote personality scoring API. An empty base URL
// disables it and every assessment is scored locally.
type Scoring struct {
	BaseURL  string        `env:"SCORING_BASE_URL"`
	Token    string        `env:"SCORING_TOKEN" json:"-"`
	Timeout  time.Duration `env:"SCORING_TIMEOUT" envDefault:"3s"`
	CacheTTL time.Duration `env:"SCORING_CACHE_TTL" envDefault:"10m"`
}

func (s Scoring) Enabled() bool {
	return s.BaseURL != ""
}
