package resolver

import (
	"context"
	"errors"
	"fmt"
)

// Kind - причина неудачи, по ней вызывающая сторона выбирает реакцию
type Kind uint8

const (
	// Unsupported - ссылка не относится ни к одной известной площадке, повтор бессмыслен
	Unsupported Kind = iota + 1
	// NetworkError - сеть, таймаут или не-2xx ответ, можно повторить сразу
	NetworkError
	// RegionBlocked - площадка ответила 403, повтор после смены сети (VPN)
	RegionBlocked
	// ParseError - ответ не удалось разобрать, без обновления резолвера не исправить
	ParseError
)

func (k Kind) String() string {
	switch k {
	case Unsupported:
		return "unsupported"
	case NetworkError:
		return "network_error"
	case RegionBlocked:
		return "region_blocked"
	case ParseError:
		return "parse_error"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Failure - единственный вид ошибки, который выходит за границу Resolve
type Failure struct {
	Kind   Kind
	Detail string
}

func (f *Failure) Error() string {
	if f.Detail == "" {
		return f.Kind.String()
	}

	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

// Is позволяет сравнивать по виду: errors.Is(err, &Failure{Kind: RegionBlocked})
func (f *Failure) Is(target error) bool {
	var t *Failure
	if !errors.As(target, &t) {
		return false
	}

	return t.Kind == f.Kind && (t.Detail == "" || t.Detail == f.Detail)
}

// Retryable - есть ли смысл предлагать пользователю повтор
func (f *Failure) Retryable() bool {
	return f.Kind == RegionBlocked || f.Kind == NetworkError
}

func NewFailure(kind Kind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// AsFailure приводит любую ошибку к Failure. Неизвестные ошибки считаются сетевыми.
func AsFailure(err error) *Failure {
	if err == nil {
		return nil
	}

	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &Failure{Kind: NetworkError, Detail: "timeout: " + err.Error()}
	case errors.Is(err, context.Canceled):
		return &Failure{Kind: NetworkError, Detail: "cancelled: " + err.Error()}
	default:
		return &Failure{Kind: NetworkError, Detail: err.Error()}
	}
}

// KindOf - вид ошибки или 0, если err == nil
func KindOf(err error) Kind {
	if f := AsFailure(err); f != nil {
		return f.Kind
	}

	return 0
}
