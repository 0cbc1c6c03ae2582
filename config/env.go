package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	defaultAppEnv          = "local"
	defaultNotifyDriver    = "log"
	defaultOrderDateLayout = "02/01/2006"
	defaultMailHost        = "smtp.mailtrap.io"
	defaultMailPort        = "587"
	defaultMailFrom        = "orders@acme.example"
	defaultMailFromName    = "Acme, Inc"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load merges config/app.json and .env into the defaults. It runs once per
// process; later calls return the first result.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

// LoadFrom replaces the current values with defaults merged with the given
// files. Missing files are ignored.
func LoadFrom(configPath, envPath string) error {
	loadOnce.Do(func() {})
	return loadFromFiles(configPath, envPath)
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_ENV":           defaultAppEnv,
		"NOTIFY_DRIVER":     defaultNotifyDriver,
		"ORDER_DATE_LAYOUT": defaultOrderDateLayout,
		"MAIL_HOST":         defaultMailHost,
		"MAIL_PORT":         defaultMailPort,
		"MAIL_USERNAME":     "",
		"MAIL_PASSWORD":     "",
		"MAIL_FROM":         defaultMailFrom,
		"MAIL_FROM_NAME":    defaultMailFromName,
	}
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// NotifyDriver selects the notification sender: "log" or "mail".
func NotifyDriver() string {
	_ = Load()

	driver := strings.ToLower(get("NOTIFY_DRIVER", defaultNotifyDriver))
	switch driver {
	case "log", "mail":
		return driver
	default:
		return defaultNotifyDriver
	}
}

// OrderDateLayout is the time layout used for the "Deliver By" line.
func OrderDateLayout() string {
	_ = Load()
	return get("ORDER_DATE_LAYOUT", defaultOrderDateLayout)
}

// ── Mail ─────────────────────────────────────────────────────────────────────

func MailHost() string     { _ = Load(); return get("MAIL_HOST", defaultMailHost) }
func MailPort() string     { _ = Load(); return get("MAIL_PORT", defaultMailPort) }
func MailUsername() string { _ = Load(); return get("MAIL_USERNAME", "") }
func MailPassword() string { _ = Load(); return get("MAIL_PASSWORD", "") }
func MailFrom() string     { _ = Load(); return get("MAIL_FROM", defaultMailFrom) }
func MailFromName() string { _ = Load(); return get("MAIL_FROM_NAME", defaultMailFromName) }

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

// get prefers a process environment variable over file values.
func get(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}

	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
