package internal

import (
	"chat-export/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("OUTPUT_PATH", "out/general.html")
	t.Setenv("CHANNEL_ID", "7")
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	setRequired(t)

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal("HtmlDark", config.ExportFormat)
	req.Equal(domain.DefaultJoinThreshold, config.JoinThreshold)
	req.Equal("general", config.ChannelName)
	req.Equal("INFO", config.LogLevel)
	req.Equal("█", config.RedactionCharacter)
}

func TestLoadConfig_ZeroJoinThreshold(t *testing.T) {
	req := require.New(t)
	setRequired(t)
	t.Setenv("JOIN_THRESHOLD", "0s")

	config, err := LoadConfig()
	req.NoError(err)
	req.Zero(config.JoinThreshold)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("OUTPUT_PATH", "")
	t.Setenv("CHANNEL_ID", "")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		description string
		key, value  string
	}{
		{"Should reject an unknown format", "EXPORT_FORMAT", "PlainText"},
		{"Should reject a non RFC3339 bound", "AFTER", "yesterday"},
		{"Should reject an unknown log level", "LOG_LEVEL", "VERBOSE"},
		{"Should reject an invalid icon url", "GUILD_ICON_URL", "not a url"},
		{"Should reject a negative join threshold", "JOIN_THRESHOLD", "-1m"},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestConfig_ExportRequest(t *testing.T) {
	req := require.New(t)
	config := Config{
		GuildName:     "Chat Lab",
		ChannelID:     "7",
		ChannelName:   "general",
		ExportFormat:  "HtmlLight",
		After:         "2024-03-01T12:00:00Z",
		Before:        "2024-03-02T12:00:00Z",
		CensoredWords: " badger, ,snake ,",
	}

	request, err := config.ExportRequest()
	req.NoError(err)
	req.Equal(domain.HTMLLight, request.Format)
	req.Equal("7", request.Channel.ID)
	req.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), request.Range.After.UTC())
	req.Equal([]string{"badger", "snake"}, config.CensoredWordList())

	config.After, config.Before = config.Before, config.After
	_, err = config.ExportRequest()
	req.Error(err)
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("█")
	req.NoError(err)
	req.Equal('█', r)

	_, err = CharacterRune("**")
	req.Error(err)
}
