package eventbus

import (
	"context"
	"fmt"
)

// PublishScoped publishes payload on {baseTopic}.{scopeID}, so consumers can
// follow one entity ("team.member.joined.12") or all of them with a wildcard
// subscription ("team.member.joined.*").
func PublishScoped(ctx context.Context, bus EventBus, baseTopic string, scopeID int64, payload any) error {
	if scopeID <= 0 {
		return fmt.Errorf("scope id must be positive for scoped publish to %s", baseTopic)
	}
	return bus.Publish(ctx, ScopedTopic(baseTopic, scopeID), payload)
}

// ScopedTopic formats a topic with an entity id suffix without publishing.
func ScopedTopic(baseTopic string, scopeID int64) string {
	return fmt.Sprintf("%s.%d", baseTopic, scopeID)
}
