package models

import (
	"errors"
	"fmt"
)

// Базовые ошибки. Конкретные типы ниже разворачиваются в них через errors.Is.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrInconsistentState = errors.New("inconsistent state")
	ErrForbidden         = errors.New("forbidden")
)

// InvalidInputError - некорректные входные данные одной операции
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// NotFoundError - сущность не найдена в хранилище
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InconsistentStateError - вычисление дало значение, невозможное при валидных входных данных
type InconsistentStateError struct {
	Quantity string
	Value    float64
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("inconsistent state: %s computed as %v", e.Quantity, e.Value)
}

func (e *InconsistentStateError) Unwrap() error { return ErrInconsistentState }
