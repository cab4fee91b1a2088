package notescmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	warmNodeCacheMessageType       = "notes.cache.warm_node"
	invalidateNodeCacheMessageType = "notes.cache.invalidate_node"
)

// WarmNodeCacheCommand parses a leaf node so later renders hit the cache.
type WarmNodeCacheCommand struct {
	NodeID uuid.UUID `json:"node_id"`
}

// Type implements command.Message.
func (WarmNodeCacheCommand) Type() string { return warmNodeCacheMessageType }

// Validate implements command.Message.
func (m WarmNodeCacheCommand) Validate() error {
	return validateNodeID(m.NodeID, warmNodeCacheMessageType)
}

// InvalidateNodeCacheCommand drops the cached parse of a leaf node's
// current content.
type InvalidateNodeCacheCommand struct {
	NodeID uuid.UUID `json:"node_id"`
}

// Type implements command.Message.
func (InvalidateNodeCacheCommand) Type() string { return invalidateNodeCacheMessageType }

// Validate implements command.Message.
func (m InvalidateNodeCacheCommand) Validate() error {
	return validateNodeID(m.NodeID, invalidateNodeCacheMessageType)
}

func validateNodeID(id uuid.UUID, messageType string) error {
	if id == uuid.Nil {
		return validation.Errors{
			"node_id": validation.NewError(messageType+".node_id_required", "node_id is required"),
		}
	}
	return nil
}
