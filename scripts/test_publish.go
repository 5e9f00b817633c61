//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type URLCheckEvent struct {
	EventID uuid.UUID `json:"event_id"`
	URL     string    `json:"url"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	url := flag.String("url", "https://www.openstreetmap.org/", "URL to check")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие
	event := URLCheckEvent{
		EventID: uuid.New(),
		URL:     *url,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:urlcheck:request",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Published url check event %s as message %s\n", event.EventID, id)
}
