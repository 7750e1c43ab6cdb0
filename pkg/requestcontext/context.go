// Package requestcontext хранит значения, привязанные к запросу: участника и время оценки.
// Сервисы читают их из context.Context вместо глобального состояния.
package requestcontext

import (
	"context"
	"time"

	"github.com/shenikar/safety_scoring_system/internal/models"
)

type (
	actorKey       struct{}
	requestTimeKey struct{}
)

// WithActor добавляет участника запроса в контекст
func WithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// Actor возвращает участника запроса. ok ложно, если участник не задан.
func Actor(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(models.Actor)
	return actor, ok && actor.ID != ""
}

// WithTime фиксирует время оценки запроса (используется в тестах и при пересчете)
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}

// Now возвращает время из контекста или текущее время UTC
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now().UTC()
}
