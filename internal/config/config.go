package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ars/internal/aws"
	"ars/internal/complete"

	"github.com/spf13/viper"
)

const (
	KeyCredentialsPath = "credentials_path"
	KeyLogLevel        = "log_level"
	KeyIgnoreCase      = "match.ignore_case"
	KeyMatchMiddle     = "match.match_middle"
	KeyToken           = "match.token"
	KeyFuzzy           = "match.fuzzy"
	KeyPatterns        = "highlight.patterns"
	KeyMenuHeight      = "prompt.menu_height"
)

// Settings is the resolved application configuration.
type Settings struct {
	CredentialsPath string
	LogLevel        string
	Engine          complete.Engine
	Fuzzy           bool
	MenuHeight      int
}

// InitConfig initializes Viper to read the ars configuration file.
// It should be called once when the application starts. The file is
// optional; environment variables prefixed with ARS_ override it.
func InitConfig() error {
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyIgnoreCase, false)
	viper.SetDefault(KeyMatchMiddle, true)
	viper.SetDefault(KeyToken, string(complete.TokenSentence))
	viper.SetDefault(KeyFuzzy, false)
	viper.SetDefault(KeyPatterns, complete.DefaultPatterns)
	viper.SetDefault(KeyMenuHeight, 10)

	viper.SetEnvPrefix("ars")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	// The credentials path keeps its historical variable name.
	if err := viper.BindEnv(KeyCredentialsPath, aws.PathEnvVar); err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// Without a home directory only the environment and defaults apply.
		return nil
	}

	// Set the path for the config file: ~/.config/ars/
	viper.AddConfigPath(filepath.Join(home, ".config", "ars"))
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Current resolves the settings from Viper.
func Current() (Settings, error) {
	token, err := complete.ParseToken(viper.GetString(KeyToken))
	if err != nil {
		return Settings{}, err
	}

	path, err := CredentialsPath()
	if err != nil {
		return Settings{}, err
	}

	height := viper.GetInt(KeyMenuHeight)
	if height < 1 {
		height = 1
	}

	return Settings{
		CredentialsPath: path,
		LogLevel:        viper.GetString(KeyLogLevel),
		Engine: complete.Engine{
			IgnoreCase:  viper.GetBool(KeyIgnoreCase),
			MatchMiddle: viper.GetBool(KeyMatchMiddle),
			Token:       token,
			Policy:      complete.Policy{Patterns: viper.GetStringSlice(KeyPatterns)},
		},
		Fuzzy:      viper.GetBool(KeyFuzzy),
		MenuHeight: height,
	}, nil
}

// CredentialsPath returns the credentials file location: the
// AWS_PROFILE_SWITCHER_PATH variable, then credentials_path from the config
// file, then ~/.aws/credentials.
func CredentialsPath() (string, error) {
	path := viper.GetString(KeyCredentialsPath)
	if path == "" {
		return aws.GetCredentialsPath()
	}
	return expandHome(path)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
