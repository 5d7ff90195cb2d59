// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type projectEvent struct {
	Type      string `json:"type"`
	ProjectID int64  `json:"project_id"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	projectID := flag.Int64("project", 1, "Project ID to publish the event for")
	eventType := flag.String("type", "project.updated", "Event type (project.created, project.updated, project.deleted)")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := projectEvent{
		Type:      *eventType,
		ProjectID: *projectID,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "restoration:project-events",
		Values: map[string]interface{}{"data": string(payload)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Published %s for project %d (message %s)\n", *eventType, *projectID, id)

	// Give the worker a moment before reporting pending entries
	time.Sleep(500 * time.Millisecond)

	pending, err := client.XPending(ctx, "restoration:project-events", "species-warm-workers").Result()
	if err != nil {
		fmt.Printf("No consumer group info available: %v\n", err)
		return
	}
	fmt.Printf("Pending messages in group: %d\n", pending.Count)
}
