package stream

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Hub fans interaction events (new likes, new comments) out to everyone
// watching a post, locally and across instances via Redis pub/sub.
type Hub struct {
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	PostID string
	Send   chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(postID string) *Client {
	client := &Client{
		PostID: postID,
		Send:   make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[postID] == nil {
		h.clients[postID] = map[*Client]struct{}{}
	}
	h.clients[postID][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if postClients, ok := h.clients[client.PostID]; ok {
		delete(postClients, client)
		if len(postClients) == 0 {
			delete(h.clients, client.PostID)
		}
	}
	close(client.Send)
}

func (h *Hub) Broadcast(postID string, payload []byte) {
	// with Redis the event comes back through the subscription, which also
	// covers local watchers; fanning out here as well would duplicate it
	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel(postID), payload).Err()
		if err == nil {
			return
		}
		log.Printf("redis publish error: %v", err)
	}

	h.deliver(postID, payload)
}

// deliver fans payload out to local watchers of postID. The lock is held
// across the sends so Unregister cannot close a channel mid-broadcast; sends
// never block.
func (h *Hub) deliver(postID string, payload []byte) {
	h.mu.RLock()
	for client := range h.clients[postID] {
		select {
		case client.Send <- payload:
		default:
		}
	}
	h.mu.RUnlock()
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "post:*:events")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.deliver(postIDFromChannel(msg.Channel), []byte(msg.Payload))
	}
}

func redisChannel(postID string) string {
	return "post:" + postID + ":events"
}

func postIDFromChannel(ch string) string {
	// post:{id}:events
	const prefix = "post:"
	const suffix = ":events"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
