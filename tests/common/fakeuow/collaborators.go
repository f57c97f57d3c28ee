//go:build unit

package fakeuow

import (
	"context"
	"strings"
	"sync"
	"time"

	"cellar-market/internal/pkg/errs"
)

// OnceStore is an in-memory shared.OnceStore. Expiry is not modelled.
type OnceStore struct {
	mu   sync.Mutex
	keys map[string]time.Duration
	Err  error
}

func NewOnceStore() *OnceStore {
	return &OnceStore{keys: map[string]time.Duration{}}
}

func (o *OnceStore) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.Err != nil {
		return false, o.Err
	}
	if _, ok := o.keys[key]; ok {
		return false, nil
	}
	o.keys[key] = ttl
	return true, nil
}

func (o *OnceStore) Release(_ context.Context, key string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.keys, key)
	return nil
}

func (o *OnceStore) Held(key string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.keys[key]
	return ok
}

type Notification struct {
	Email   string
	Subject string
	Body    string
}

// Notifier records winner notifications. Addresses without an "@" are
// rejected the way the outbox rejects them.
type Notifier struct {
	mu   sync.Mutex
	Sent []Notification
}

func (n *Notifier) NotifyWinner(_ context.Context, email, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !strings.Contains(email, "@") {
		return errs.ErrInvalidRecipient
	}
	n.Sent = append(n.Sent, Notification{Email: email, Subject: subject, Body: body})
	return nil
}
