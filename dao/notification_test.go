package dao

import (
	"context"
	"testing"

	"Immob/models"
)

func TestNotificationMarkAllRead(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	notifications := NewNotificationDAO(db)

	for i := 0; i < 3; i++ {
		n := &models.Notification{UserID: 1, Title: "maj", Type: models.NotificationTypeSystem}
		if err := notifications.Create(ctx, n); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	other := &models.Notification{UserID: 2, Title: "autre", Type: models.NotificationTypeSystem}
	if err := notifications.Create(ctx, other); err != nil {
		t.Fatalf("create: %v", err)
	}

	count, err := notifications.MarkAllRead(ctx, 1)
	if err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if count != 3 {
		t.Fatalf("marked %d, want 3", count)
	}

	// Second pass flips nothing: reads are one-way and already counted.
	count, err = notifications.MarkAllRead(ctx, 1)
	if err != nil {
		t.Fatalf("mark all read again: %v", err)
	}
	if count != 0 {
		t.Fatalf("marked %d on second pass, want 0", count)
	}

	unread, err := notifications.UnreadCount(ctx, 2)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if unread != 1 {
		t.Fatalf("user 2 unread = %d, want 1", unread)
	}
}

func TestNotificationMarkReadByIdsScopedToUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	notifications := NewNotificationDAO(db)

	mine := &models.Notification{UserID: 1, Title: "pour moi", Type: models.NotificationTypeSystem}
	theirs := &models.Notification{UserID: 2, Title: "pour eux", Type: models.NotificationTypeSystem}
	if err := notifications.Create(ctx, mine); err != nil {
		t.Fatal(err)
	}
	if err := notifications.Create(ctx, theirs); err != nil {
		t.Fatal(err)
	}

	count, err := notifications.MarkReadByIds(ctx, 1, []uint64{mine.ID, theirs.ID})
	if err != nil {
		t.Fatalf("mark by ids: %v", err)
	}
	if count != 1 {
		t.Fatalf("marked %d, want 1 (other user's row must not flip)", count)
	}

	kept, err := notifications.FindOwned(ctx, theirs.ID, 2)
	if err != nil {
		t.Fatalf("find owned: %v", err)
	}
	if kept.IsRead {
		t.Fatal("another user's notification was marked read")
	}
}

func TestNotificationMarkReadSetsReadAt(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	notifications := NewNotificationDAO(db)

	n := &models.Notification{UserID: 1, Title: "lue", Type: models.NotificationTypeSystem}
	if err := notifications.Create(ctx, n); err != nil {
		t.Fatal(err)
	}

	if err := notifications.MarkRead(ctx, n.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	got, _ := notifications.FindOwned(ctx, n.ID, 1)
	if !got.IsRead || got.ReadAt == nil {
		t.Fatalf("expected read with timestamp, got %+v", got)
	}

	// Marking again must not move read_at.
	first := *got.ReadAt
	if err := notifications.MarkRead(ctx, n.ID); err != nil {
		t.Fatalf("mark read again: %v", err)
	}
	got, _ = notifications.FindOwned(ctx, n.ID, 1)
	if !got.ReadAt.Equal(first) {
		t.Fatal("read_at changed on a second mark")
	}
}

func TestNotificationLatestUnread(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	notifications := NewNotificationDAO(db)

	for i := 0; i < 7; i++ {
		n := &models.Notification{UserID: 1, Title: "n", Type: models.NotificationTypeSystem}
		if err := notifications.Create(ctx, n); err != nil {
			t.Fatal(err)
		}
	}

	latest, err := notifications.LatestUnread(ctx, 1, 5)
	if err != nil {
		t.Fatalf("latest unread: %v", err)
	}
	if len(latest) != 5 {
		t.Fatalf("got %d, want 5", len(latest))
	}
}
