package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/relaybot/pkg/log"
)

var ErrInvalidToken = errors.New("telegram token should be numeric or start with the bot prefix")

type TelegramConfig struct {
	Token string `env:"TELEGRAM_BOT_TOKEN,required,notEmpty"`
	// Empty means every user may talk to the bot.
	AllowedUsers []int64 `env:"TELEGRAM_ALLOWED_USERS"`
}

func LoadTelegramConfig() (*TelegramConfig, error) {
	c, err := env.ParseAs[TelegramConfig]()
	if err != nil {
		return nil, fmt.Errorf("parse telegram config: %w", err)
	}
	if err := ValidateToken(c.Token); err != nil {
		return nil, err
	}
	return &c, nil
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c, err := LoadTelegramConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}

func ValidateToken(token string) error {
	if token == "" {
		return ErrInvalidToken
	}
	if strings.HasPrefix(token, "bot") || (token[0] >= '1' && token[0] <= '9') {
		return nil
	}
	return ErrInvalidToken
}

func (c TelegramConfig) IsAllowed(userID int64) bool {
	if len(c.AllowedUsers) == 0 {
		return true
	}
	for _, id := range c.AllowedUsers {
		if id == userID {
			return true
		}
	}
	return false
}
