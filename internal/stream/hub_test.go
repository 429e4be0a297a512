package stream

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(nil)
	client := hub.Register("post-1")
	defer hub.Unregister(client)

	payload := []byte(`{"type":"comment"}`)
	hub.Broadcast("post-1", payload)

	select {
	case msg := <-client.Send:
		if string(msg) != `{"type":"comment"}` {
			t.Fatalf("unexpected message")
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("timeout waiting for message")
	}
}

func TestHubHelpers(t *testing.T) {
	ch := redisChannel("abc")
	if ch == "" {
		t.Fatalf("expected channel")
	}
	if postIDFromChannel(ch) != "abc" {
		t.Fatalf("unexpected post id")
	}
	if postIDFromChannel("bad") != "" {
		t.Fatalf("expected empty post id")
	}
}

func TestUnregisterCloses(t *testing.T) {
	hub := NewHub(nil)
	client := hub.Register("post-2")
	hub.Unregister(client)
	_, ok := <-client.Send
	if ok {
		t.Fatalf("expected channel closed")
	}
}

func TestHubRedisBroadcastAndSubscribe(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	hub := NewHub(client)
	ws := hub.Register("post-redis")
	defer hub.Unregister(ws)

	// give subscribeRedis a moment to establish the subscription
	time.Sleep(20 * time.Millisecond)
	hub.Broadcast("post-redis", []byte("ping"))

	select {
	case msg := <-ws.Send:
		if string(msg) != "ping" {
			t.Fatalf("unexpected message")
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("timeout waiting for broadcast")
	}

	// a publish from another instance reaches local watchers of that post
	otherClient := hub.Register("post-remote")
	defer hub.Unregister(otherClient)

	time.Sleep(20 * time.Millisecond)
	if err := client.Publish(context.Background(), "post:post-remote:events", "pong").Err(); err != nil {
		t.Fatalf("publish error: %v", err)
	}

	select {
	case msg := <-otherClient.Send:
		if string(msg) != "pong" {
			t.Fatalf("unexpected message from redis")
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("timeout waiting for redis message")
	}
}

func TestHubRedisPublishError(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	server.Close()
	defer client.Close()

	hub := NewHub(client)
	clientNode := hub.Register("post-bad")
	defer hub.Unregister(clientNode)

	hub.Broadcast("post-bad", []byte("ping"))
}
