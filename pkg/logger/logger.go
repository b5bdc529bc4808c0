package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	With(keysAndValues ...interface{}) Logger
}

// Options configura a criação do logger
type Options struct {
	Level  string // debug, info, warn, error
	JSON   bool   // saída em JSON (produção)
	Output io.Writer
}

// SlogLogger é a implementação de Logger sobre log/slog
type SlogLogger struct {
	l *slog.Logger
}

// NewLogger cria uma nova instância de Logger com saída em texto no stdout
func NewLogger() Logger {
	return New(Options{Level: "info"})
}

// New cria um Logger a partir das opções informadas
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	return &SlogLogger{l: slog.New(handler)}
}

// Discard retorna um Logger que descarta todas as mensagens (útil em testes)
func Discard() Logger {
	return New(Options{Output: io.Discard})
}

// Info registra uma mensagem de informação
func (s *SlogLogger) Info(msg string, keysAndValues ...interface{}) {
	s.l.Info(msg, keysAndValues...)
}

// Error registra uma mensagem de erro
func (s *SlogLogger) Error(msg string, keysAndValues ...interface{}) {
	s.l.Error(msg, keysAndValues...)
}

// Debug registra uma mensagem de debug
func (s *SlogLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.l.Debug(msg, keysAndValues...)
}

// Warn registra uma mensagem de aviso
func (s *SlogLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.l.Warn(msg, keysAndValues...)
}

// With retorna um logger filho que sempre inclui os pares chave/valor informados
func (s *SlogLogger) With(keysAndValues ...interface{}) Logger {
	return &SlogLogger{l: s.l.With(keysAndValues...)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
