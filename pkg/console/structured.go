package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// StructuredLogger implementa types.Logger com linhas JSON do zerolog.
// É usado no runtime da função, onde a saída vai para o CloudWatch Logs.
type StructuredLogger struct {
	log zerolog.Logger
}

// NewStructuredLogger cria um logger JSON com timestamp no nível informado.
// Níveis inválidos ou vazios caem para info.
func NewStructuredLogger(w io.Writer, level string) *StructuredLogger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return &StructuredLogger{
		log: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}
}

// Zerolog expõe o logger subjacente para campos adicionais.
func (l *StructuredLogger) Zerolog() *zerolog.Logger {
	return &l.log
}

func (l *StructuredLogger) LogInfo(format string, a ...interface{}) {
	l.log.Info().Msg(fmt.Sprintf(format, a...))
}

func (l *StructuredLogger) LogWarning(format string, a ...interface{}) {
	l.log.Warn().Msg(fmt.Sprintf(format, a...))
}

func (l *StructuredLogger) LogError(format string, a ...interface{}) {
	l.log.Error().Msg(fmt.Sprintf(format, a...))
}

// LogSuccess não tem nível próprio no zerolog; registra como info com outcome=success.
func (l *StructuredLogger) LogSuccess(format string, a ...interface{}) {
	l.log.Info().Str("outcome", "success").Msg(fmt.Sprintf(format, a...))
}
