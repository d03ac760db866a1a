package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const (
	LedgerBackendSheetDB = "sheetdb"
	LedgerBackendSheets  = "gsheets"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Bot
	Discord     DiscordConfig
	GoogleDrive GoogleDriveConfig
	Ledger      LedgerConfig
	Bot         BotConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DiscordConfig struct {
	Token                 string
	AdminIDs              []string
	NotificationChannelID string
	TaskChannelID         string
}

type GoogleDriveConfig struct {
	CredentialsPath   string
	TokenPath         string
	RefreshToken      string
	MembersFolderName string
	TaskFolderName    string
}

type LedgerConfig struct {
	Backend     string
	SnapshotTTL time.Duration

	// sheetdb
	SheetDBURL string

	// gsheets
	SpreadsheetID string
	SheetName     string
	SheetID       int64
}

type BotConfig struct {
	RateLimitPerMin  int
	CommandTimeout   time.Duration
	SelectionTimeout time.Duration
	AddTaskAdminOnly bool
	LegacyAllMessage string
	TempDir          string
	Timezone         string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Discord
	cfg.Discord.Token = viper.GetString("discord.token")
	if token := viper.GetString("bot_token"); token != "" {
		cfg.Discord.Token = token
	}
	cfg.Discord.AdminIDs = splitList(viper.GetStringSlice("discord.admin_ids"))
	cfg.Discord.NotificationChannelID = viper.GetString("discord.notification_channel_id")
	cfg.Discord.TaskChannelID = viper.GetString("discord.task_channel_id")

	// Google Drive
	cfg.GoogleDrive.CredentialsPath = viper.GetString("google_drive.credentials_path")
	cfg.GoogleDrive.TokenPath = viper.GetString("google_drive.token_path")
	cfg.GoogleDrive.RefreshToken = viper.GetString("google_drive.refresh_token")
	if refresh := viper.GetString("refresh_token"); refresh != "" {
		cfg.GoogleDrive.RefreshToken = refresh
	}
	cfg.GoogleDrive.MembersFolderName = viper.GetString("google_drive.members_folder_name")
	cfg.GoogleDrive.TaskFolderName = viper.GetString("google_drive.task_folder_name")

	// Ledger
	cfg.Ledger.Backend = viper.GetString("ledger.backend")
	cfg.Ledger.SnapshotTTL = viper.GetDuration("ledger.snapshot_ttl")
	cfg.Ledger.SheetDBURL = viper.GetString("ledger.sheetdb_url")
	if sheetdbURL := viper.GetString("sheetdb_api_url"); sheetdbURL != "" {
		cfg.Ledger.SheetDBURL = sheetdbURL
	}
	cfg.Ledger.SpreadsheetID = viper.GetString("ledger.spreadsheet_id")
	cfg.Ledger.SheetName = viper.GetString("ledger.sheet_name")
	cfg.Ledger.SheetID = viper.GetInt64("ledger.sheet_id")

	// Bot behaviour
	cfg.Bot.RateLimitPerMin = viper.GetInt("bot.rate_limit_per_min")
	cfg.Bot.CommandTimeout = viper.GetDuration("bot.command_timeout")
	cfg.Bot.SelectionTimeout = viper.GetDuration("bot.selection_timeout")
	cfg.Bot.AddTaskAdminOnly = viper.GetBool("bot.addtask_admin_only")
	cfg.Bot.LegacyAllMessage = viper.GetString("bot.legacy_all_message")
	cfg.Bot.TempDir = viper.GetString("bot.temp_dir")
	cfg.Bot.Timezone = viper.GetString("bot.timezone")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 3000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("google_drive.credentials_path", "credentials.json")
	viper.SetDefault("google_drive.token_path", "token.json")
	viper.SetDefault("google_drive.members_folder_name", "Tasks")
	viper.SetDefault("google_drive.task_folder_name", "Task")

	viper.SetDefault("ledger.backend", LedgerBackendSheetDB)
	viper.SetDefault("ledger.snapshot_ttl", "10m")
	viper.SetDefault("ledger.sheet_name", "Sheet1")

	viper.SetDefault("bot.rate_limit_per_min", 30)
	viper.SetDefault("bot.command_timeout", "5m")
	viper.SetDefault("bot.selection_timeout", "60s")
	viper.SetDefault("bot.addtask_admin_only", true)
	viper.SetDefault("bot.timezone", "Local")
}

// Validate checks the settings the bot cannot start without.
func (c Config) Validate() error {
	if err := validation.ValidateStruct(&c.Discord,
		validation.Field(&c.Discord.Token, validation.Required.Error("discord.token (BOT_TOKEN) is required")),
	); err != nil {
		return err
	}

	if err := validation.ValidateStruct(&c.Ledger,
		validation.Field(&c.Ledger.Backend, validation.Required, validation.In(LedgerBackendSheetDB, LedgerBackendSheets)),
		validation.Field(&c.Ledger.SheetDBURL,
			validation.When(c.Ledger.Backend == LedgerBackendSheetDB, validation.Required.Error("ledger.sheetdb_url (SHEETDB_API_URL) is required"))),
		validation.Field(&c.Ledger.SpreadsheetID,
			validation.When(c.Ledger.Backend == LedgerBackendSheets, validation.Required)),
	); err != nil {
		return err
	}

	if c.Bot.SelectionTimeout <= 0 || c.Bot.CommandTimeout <= 0 {
		return errors.New("bot.selection_timeout and bot.command_timeout must be positive")
	}
	if c.Bot.CommandTimeout < c.Bot.SelectionTimeout {
		return fmt.Errorf("bot.command_timeout (%s) must not be shorter than bot.selection_timeout (%s)",
			c.Bot.CommandTimeout, c.Bot.SelectionTimeout)
	}
	return nil
}

// Location resolves bot.timezone, falling back to the host zone.
func (c BotConfig) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
