package internal

import (
	"chat-export/domain"
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	BadgerFilepath     string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	OutputPath         string        `env:"OUTPUT_PATH,required=true" validate:"required"`
	GuildID            string        `env:"GUILD_ID"`
	GuildName          string        `env:"GUILD_NAME,default=Direct Messages"`
	GuildIconURL       string        `env:"GUILD_ICON_URL" validate:"omitempty,url"`
	ChannelID          string        `env:"CHANNEL_ID,required=true" validate:"required"`
	ChannelName        string        `env:"CHANNEL_NAME,default=general"`
	ChannelCategory    string        `env:"CHANNEL_CATEGORY"`
	ChannelTopic       string        `env:"CHANNEL_TOPIC"`
	ExportFormat       string        `env:"EXPORT_FORMAT,default=HtmlDark" validate:"oneof=HtmlDark HtmlLight"`
	JoinThreshold      time.Duration `env:"JOIN_THRESHOLD,default=7m" validate:"gte=0"`
	DateFormat         string        `env:"DATE_FORMAT"`
	After              string        `env:"AFTER" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Before             string        `env:"BEFORE" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	CensoredWords      string        `env:"CENSORED_WORDS"`
	RedactionCharacter string        `env:"REDACTION_CHARACTER,default=█"`
	LogLevel           string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, err
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// ExportRequest builds the request described by the configuration.
func (c Config) ExportRequest() (domain.ExportRequest, error) {
	format, err := domain.ParseExportFormat(c.ExportFormat)
	if err != nil {
		return domain.ExportRequest{}, err
	}
	after, err := parseBound("AFTER", c.After)
	if err != nil {
		return domain.ExportRequest{}, err
	}
	before, err := parseBound("BEFORE", c.Before)
	if err != nil {
		return domain.ExportRequest{}, err
	}
	if after != nil && before != nil && !after.Before(*before) {
		return domain.ExportRequest{}, fmt.Errorf("AFTER (%s) must precede BEFORE (%s)", c.After, c.Before)
	}
	return domain.ExportRequest{
		Guild: domain.Guild{ID: c.GuildID, Name: c.GuildName, IconURL: c.GuildIconURL},
		Channel: domain.Channel{
			ID:       c.ChannelID,
			Name:     c.ChannelName,
			Category: c.ChannelCategory,
			Topic:    c.ChannelTopic,
		},
		Range:      domain.Range{After: after, Before: before},
		Format:     format,
		DateFormat: c.DateFormat,
	}, nil
}

// CensoredWordList splits CENSORED_WORDS on commas, dropping blanks.
func (c Config) CensoredWordList() []string {
	var words []string
	for _, w := range strings.Split(c.CensoredWords, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func parseBound(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("%s must be RFC3339: %w", name, err)
	}
	return &t, nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"REDACTION_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
