package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

	clients = make(map[uint]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

type availabilityEvent struct {
	HotelId   uint   `json:"hotelId"`
	RoomId    uint   `json:"roomId"`
	UpdatedAt string `json:"updatedAt"`
}

// PublishAvailability notifies subscribers of a hotel channel that a room's
// inventory changed. Failures are logged and dropped; the ledger stays the
// source of truth.
func PublishAvailability(hotelId, roomId uint) {
	event := availabilityEvent{
		HotelId:   hotelId,
		RoomId:    roomId,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := redisClient.Publish(context.Background(), fmt.Sprintf("hotel:%d", hotelId), payload).Err(); err != nil {
		log.Printf("publish availability hotel=%d: %v", hotelId, err)
	}
}

// AvailabilityFeed streams availability change events of one hotel to a
// websocket client, fanned out through the Redis channel.
func AvailabilityFeed(c *websocket.Conn) {
	id64, _ := strconv.ParseUint(c.Params("id"), 10, 64)
	hotelId := uint(id64)

	defer func() {
		mu.Lock()
		if clients[hotelId] != nil {
			delete(clients[hotelId], c)
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if clients[hotelId] == nil {
		clients[hotelId] = make(map[*websocket.Conn]bool)
	}
	clients[hotelId][c] = true
	mu.Unlock()

	pubsub := redisClient.Subscribe(context.Background(), fmt.Sprintf("hotel:%d", hotelId))
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[hotelId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[hotelId], conn)
			}
		}
		mu.Unlock()
	}
}
