package collab

import "encoding/json"

type Message struct {
	Type     string          `json:"type"`
	DesignID string          `json:"designId,omitempty"`
	ClientID string          `json:"clientId,omitempty"`
	UserID   string          `json:"userId,omitempty"`
	Seq      int64           `json:"seq,omitempty"`
	Payload  json.RawMessage `json:"payload"`
}

// CursorPos is a plan-view position in room millimeters.
type CursorPos struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

type PresencePayload struct {
	Cursor         *CursorPos `json:"cursor,omitempty"`
	Selection      []string   `json:"selection,omitempty"`
	DraggingItemID string     `json:"draggingItemId,omitempty"`
	DisplayName    string     `json:"displayName,omitempty"`
}

type PresenceStatePayload struct {
	Presences map[string]*PresencePayload `json:"presences"`
}

type PresenceJoinPayload struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

type PresenceLeavePayload struct {
	UserID string `json:"userId"`
}

const (
	TypePresenceUpdate = "presence.update"
	TypePresenceState  = "presence.state"
	TypePresenceJoin   = "presence.join"
	TypePresenceLeave  = "presence.leave"
	TypeError          = "error"

	// Connection
	TypeWelcome = "welcome"

	// Document sync
	TypeDocSync = "doc.sync"

	// Operation message types
	TypeOpSubmit    = "op.submit"
	TypeOpAck       = "op.ack"
	TypeOpNack      = "op.nack"
	TypeOpBroadcast = "op.broadcast"
)

// Operation names follow "<entity>.<verb>".
const (
	OpItemAdd       = "item.add"
	OpItemMove      = "item.move"
	OpItemRotate    = "item.rotate"
	OpItemDuplicate = "item.duplicate"
	OpItemRemove    = "item.remove"
	OpRoomUpdate    = "room.update"
	OpGlobalsUpdate = "globals.update"
	OpDesignRename  = "design.rename"
)

// Operation is one document mutation submitted by a client. item.move
// carries the raw drag position; the server computes the authoritative pose
// through the placement engine and echoes it back in the Snap field of the
// ack and broadcast.
type Operation struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	ClientSeq int64  `json:"clientSeq"`
	ItemID    string `json:"itemId,omitempty"`

	// For item.add
	Item json.RawMessage `json:"item,omitempty"`

	// For item.move: raw cursor position plus the client's wall-snap
	// hysteresis flag
	X           *float64 `json:"x,omitempty"`
	Z           *float64 `json:"z,omitempty"`
	WallSnapped bool     `json:"wallSnapped,omitempty"`

	// For item.rotate
	Rotation *float64 `json:"rotation,omitempty"`

	// For item.duplicate
	NewInstanceID string `json:"newInstanceId,omitempty"`

	// For room.update / globals.update
	Changes json.RawMessage `json:"changes,omitempty"`

	// For design.rename
	Name         string `json:"name,omitempty"`
	PreviousName string `json:"previousName,omitempty"`

	// Set by the server: the snap result for item.move and item.duplicate
	Snap json.RawMessage `json:"snap,omitempty"`
}

// OperationSubmitPayload is the payload for op.submit messages
type OperationSubmitPayload struct {
	Operation Operation `json:"operation"`
}

// OperationAckPayload is the payload for op.ack messages
type OperationAckPayload struct {
	OperationID     string          `json:"operationId"`
	ServerSeq       int64           `json:"serverSeq"`
	ServerTimestamp int64           `json:"serverTimestamp"`
	Snap            json.RawMessage `json:"snap,omitempty"`
}

// OperationNackPayload is the payload for op.nack messages
type OperationNackPayload struct {
	OperationID string `json:"operationId"`
	Reason      string `json:"reason"`
}

// OperationBroadcastPayload is the payload for op.broadcast messages
type OperationBroadcastPayload struct {
	Operation Operation `json:"operation"`
	UserID    string    `json:"userId"`
	ServerSeq int64     `json:"serverSeq"`
}
