package commands

import (
	"encoding/json"
	"flag"
	"io"
	"strconv"

	"Lumme/internal/cli/bootstrap"
	"Lumme/internal/config"
)

// withSession открывает хранилище и клиент на время выполнения fn.
func withSession(cfg *config.Config, fn func(s *bootstrap.Session) error) error {
	s, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// newFlagSet возвращает набор флагов команды; ошибки разбора превращаются в ErrUsage.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

// compositionJSON принимает JSON (например, список цветов) как есть, иначе кодирует строку.
func compositionJSON(v string) json.RawMessage {
	if json.Valid([]byte(v)) {
		return json.RawMessage(v)
	}
	b, _ := json.Marshal(v)
	return b
}

// compositionText печатает состав: строку без кавычек, остальное как JSON.
func compositionText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
