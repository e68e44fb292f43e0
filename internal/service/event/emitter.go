package event

import (
	"context"
	"encoding/json"

	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/repository"
	"github.com/hamyaran/admin-api/pkg/logger"
)

// Emitter records entity mutations in the outbox table. Publication to the
// broker happens asynchronously in the worker, so a broker outage never
// blocks an admin request.
type Emitter struct {
	repo   repository.OutboxRepository
	logger *logger.Logger
}

func NewEmitter(repo repository.OutboxRepository, logger *logger.Logger) *Emitter {
	return &Emitter{repo: repo, logger: logger}
}

// Emit writes an outbox event such as "patient.created". Failures are
// logged and swallowed: event delivery is best effort.
func (e *Emitter) Emit(ctx context.Context, entity, action string, payload any) {
	if e == nil || e.repo == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		e.logger.Error(err, "failed to marshal event payload", "entity", entity, "action", action)
		return
	}
	evt := &model.OutboxEvent{
		EventType: entity + "." + action,
		Payload:   body,
	}
	if err := e.repo.Create(ctx, evt); err != nil {
		e.logger.Error(err, "failed to record outbox event", "event_type", evt.EventType)
	}
}
