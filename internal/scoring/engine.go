package scoring

import "fmt"

// Engine применяет правила подсчета с заданной конфигурацией
type Engine struct {
	cfg Config
}

// NewEngine проверяет конфигурацию и создает движок
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scoring: invalid config: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Config возвращает активную конфигурацию
func (e *Engine) Config() Config {
	return e.cfg
}
