package collab

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/planora/planora/backend-go/internal/scene"
)

// DesignLoader fetches the latest persisted design for a design id.
type DesignLoader func(designID string) (*scene.Design, error)

// DesignSaver persists a new snapshot of the design.
type DesignSaver func(designID string, design *scene.Design) error

type Room struct {
	designID string
	clients  map[string]*Client // clientID -> client
	presence *PresenceManager
	state    *DesignState
}

func NewRoom(designID string, state *DesignState) *Room {
	return &Room{
		designID: designID,
		clients:  make(map[string]*Client),
		presence: NewPresenceManager(),
		state:    state,
	}
}

type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*Room // designID -> room
	register   chan *Client
	unregister chan *Client
	stop       chan struct{}
	stopped    chan struct{}

	loader   DesignLoader
	saver    DesignSaver
	newState func(*scene.Design) *DesignState
}

func NewHub(loader DesignLoader, saver DesignSaver, newState func(*scene.Design) *DesignState) *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
		stopped:    make(chan struct{}),
		loader:     loader,
		saver:      saver,
		newState:   newState,
	}
}

func (h *Hub) Run() {
	defer close(h.stopped)
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.stop:
			h.saveAll()
			return
		}
	}
}

// Stop flushes every dirty document and shuts the hub down.
func (h *Hub) Stop() {
	close(h.stop)
	<-h.stopped
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.DesignID]
	if !ok {
		design, err := h.loader(client.DesignID)
		if err != nil {
			h.mu.Unlock()
			slog.Error("load design", "design", client.DesignID, "error", err)
			client.SendError("design not available")
			close(client.send)
			return
		}
		room = NewRoom(client.DesignID, h.newState(design))
		h.rooms[client.DesignID] = room
	}
	room.clients[client.ClientID] = client
	h.mu.Unlock()

	// Welcome with the full document so the client can render immediately
	docJSON, err := json.Marshal(room.state.GetDesign())
	if err != nil {
		slog.Error("marshal design", "design", client.DesignID, "error", err)
	} else {
		client.Send(&Message{Type: TypeWelcome, DesignID: client.DesignID, Payload: docJSON})
	}

	// Send current presence state to new client
	stateMsg := room.presence.StateMessage()
	if stateMsg != nil {
		client.Send(stateMsg)
	}

	// Broadcast join to other clients
	joinPayload, _ := json.Marshal(PresenceJoinPayload{
		UserID:      client.UserID,
		DisplayName: client.DisplayName,
	})
	joinMsg := &Message{
		Type:    TypePresenceJoin,
		UserID:  client.UserID,
		Payload: joinPayload,
	}
	h.broadcastToRoom(client.DesignID, joinMsg, client.ClientID)

	slog.Info("client joined", "user", client.UserID, "design", client.DesignID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.DesignID]
	if !ok {
		h.mu.Unlock()
		return
	}

	delete(room.clients, client.ClientID)
	close(client.send)
	room.presence.Remove(client.UserID)

	empty := len(room.clients) == 0
	if empty {
		delete(h.rooms, client.DesignID)
	}
	h.mu.Unlock()

	if empty {
		h.saveRoom(room)
	}

	// Broadcast leave to remaining clients
	leavePayload, _ := json.Marshal(PresenceLeavePayload{
		UserID: client.UserID,
	})
	leaveMsg := &Message{
		Type:    TypePresenceLeave,
		UserID:  client.UserID,
		Payload: leavePayload,
	}
	h.broadcastToRoom(client.DesignID, leaveMsg, "")

	slog.Info("client left", "user", client.UserID, "design", client.DesignID)
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	switch msg.Type {
	case TypePresenceUpdate:
		h.handlePresenceUpdate(sender, msg)
	case TypeOpSubmit:
		h.handleOpSubmit(sender, msg)
	case TypeDocSync:
		h.handleDocSync(sender)
	default:
		slog.Warn("unknown message type", "type", msg.Type, "user", sender.UserID)
	}
}

func (h *Hub) handleOpSubmit(sender *Client, msg *Message) {
	room := h.roomFor(sender.DesignID)
	if room == nil {
		return
	}

	var payload OperationSubmitPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		slog.Warn("invalid op payload", "error", err, "user", sender.UserID)
		return
	}
	op := payload.Operation

	serverSeq, err := room.state.ApplyOperation(&op)
	if err != nil {
		nackPayload, _ := json.Marshal(OperationNackPayload{
			OperationID: op.ID,
			Reason:      err.Error(),
		})
		sender.Send(&Message{Type: TypeOpNack, Payload: nackPayload})
		return
	}

	ackPayload, _ := json.Marshal(OperationAckPayload{
		OperationID:     op.ID,
		ServerSeq:       serverSeq,
		ServerTimestamp: GetServerTimestamp(),
		Snap:            op.Snap,
	})
	sender.Send(&Message{Type: TypeOpAck, Seq: serverSeq, Payload: ackPayload})

	broadcastPayload, _ := json.Marshal(OperationBroadcastPayload{
		Operation: op,
		UserID:    sender.UserID,
		ServerSeq: serverSeq,
	})
	h.broadcastToRoom(sender.DesignID, &Message{
		Type:    TypeOpBroadcast,
		UserID:  sender.UserID,
		Seq:     serverSeq,
		Payload: broadcastPayload,
	}, sender.ClientID)
}

func (h *Hub) handleDocSync(sender *Client) {
	room := h.roomFor(sender.DesignID)
	if room == nil {
		return
	}

	docJSON, err := json.Marshal(room.state.GetDesign())
	if err != nil {
		slog.Error("marshal design", "design", sender.DesignID, "error", err)
		return
	}
	sender.Send(&Message{Type: TypeDocSync, DesignID: sender.DesignID, Payload: docJSON})
}

func (h *Hub) handlePresenceUpdate(sender *Client, msg *Message) {
	var presence PresencePayload
	if err := json.Unmarshal(msg.Payload, &presence); err != nil {
		slog.Warn("invalid presence payload", "error", err)
		return
	}

	presence.DisplayName = sender.DisplayName

	room := h.roomFor(sender.DesignID)
	if room == nil {
		return
	}

	room.presence.Update(sender.UserID, &presence)

	// Broadcast to other clients in room
	outPayload, _ := json.Marshal(presence)
	outMsg := &Message{
		Type:    TypePresenceUpdate,
		UserID:  sender.UserID,
		Payload: outPayload,
	}
	h.broadcastToRoom(sender.DesignID, outMsg, sender.ClientID)
}

func (h *Hub) roomFor(designID string) *Room {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.rooms[designID]
}

func (h *Hub) broadcastToRoom(designID string, msg *Message, excludeClientID string) {
	h.mu.RLock()
	room, ok := h.rooms[designID]
	if !ok {
		h.mu.RUnlock()
		return
	}

	clients := make([]*Client, 0, len(room.clients))
	for _, c := range room.clients {
		if c.ClientID != excludeClientID {
			clients = append(clients, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.Send(msg)
	}
}

func (h *Hub) saveRoom(room *Room) {
	if !room.state.Dirty() {
		return
	}
	if err := h.saver(room.designID, room.state.GetDesign()); err != nil {
		slog.Error("save design", "design", room.designID, "error", err)
		return
	}
	room.state.MarkSaved()
	slog.Info("design saved", "design", room.designID)
}

func (h *Hub) saveAll() {
	h.mu.RLock()
	rooms := make([]*Room, 0, len(h.rooms))
	for _, room := range h.rooms {
		rooms = append(rooms, room)
	}
	h.mu.RUnlock()

	for _, room := range rooms {
		h.saveRoom(room)
	}
}
