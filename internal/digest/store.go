// Copyright (c) 2026 Our Philly. All rights reserved.

package digest

import (
	"context"
	"time"
)

// Subscriber is one newsletter signup.
type Subscriber struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type SubscriberRepository interface {
	ListAll(context context.Context) ([]*Subscriber, error)
	Subscribe(context context.Context, email string) error
	Unsubscribe(context context.Context, email string) error
}
