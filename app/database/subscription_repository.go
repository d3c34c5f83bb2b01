package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Subscription is one row of the subscription log.
type Subscription struct {
	Email        string
	Name         string
	Source       string
	Page         string
	SubscribedAt time.Time
	LastSentAt   *time.Time
}

// SubscriptionRepository is the durable counterpart of the in-memory
// idempotency map: it records accepted subscriptions and suppresses
// duplicate welcome sends across process restarts and instances.
type SubscriptionRepository struct {
	db     *DB
	window time.Duration
}

func NewSubscriptionRepository(db *DB, window time.Duration) *SubscriptionRepository {
	return &SubscriptionRepository{db: db, window: window}
}

// Record upserts a subscription row without touching last_sent_at.
func (r *SubscriptionRepository) Record(email, name, source, page string) error {
	_, err := r.db.Exec(`
		INSERT INTO subscriptions (email, name, source, page, subscribed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET name = excluded.name, source = excluded.source, page = excluded.page
	`, normalizeEmail(email), name, source, page, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record subscription: %w", err)
	}
	return nil
}

// Seen reports whether a welcome was sent to the address within the window.
// Storage errors are logged and treated as unseen: a duplicate welcome is
// cheaper than a lost subscription.
func (r *SubscriptionRepository) Seen(email string) bool {
	var lastSent sql.NullTime
	err := r.db.QueryRow(`
		SELECT last_sent_at FROM subscriptions WHERE email = ?
	`, normalizeEmail(email)).Scan(&lastSent)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		slog.Error("Failed to check idempotency window", "error", err)
		return false
	}
	if !lastSent.Valid {
		return false
	}
	return time.Since(lastSent.Time) <= r.window
}

// Mark stamps the welcome send time, creating the row if Record was skipped.
func (r *SubscriptionRepository) Mark(email string) {
	now := time.Now().UTC()
	_, err := r.db.Exec(`
		INSERT INTO subscriptions (email, subscribed_at, last_sent_at)
		VALUES (?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET last_sent_at = excluded.last_sent_at
	`, normalizeEmail(email), now, now)
	if err != nil {
		slog.Error("Failed to mark welcome send", "error", err)
	}
}

// Count returns the number of recorded subscriptions.
func (r *SubscriptionRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM subscriptions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return count, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
