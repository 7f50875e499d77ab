package contract

import (
	"context"
	"encoding/json"
)

type SystemLogRepository interface {
	Append(ctx context.Context, eventType string, details json.RawMessage) error
}
