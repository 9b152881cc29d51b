package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"Immob/dao"
	"Immob/pkg/response"
	"Immob/types"
)

func newNotificationService(t *testing.T) (*NotificationService, context.Context) {
	t.Helper()
	db := newTestDB(t)
	return &NotificationService{NotificationRepo: dao.NewNotificationDAO(db)}, context.Background()
}

func TestNotificationGetMarksRead(t *testing.T) {
	svc, ctx := newNotificationService(t)

	created, err := svc.Create(ctx, 1, &types.CreateNotificationRequest{
		Title:   "Nouvelle visite",
		Message: "Votre annonce a été consultée",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.IsRead {
		t.Fatal("fresh notification must start unread")
	}

	got, err := svc.Get(ctx, 1, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.IsRead || got.ReadAt == nil {
		t.Fatal("retrieval should mark the notification read")
	}

	// A later retrieval keeps it read and keeps the original timestamp.
	again, err := svc.Get(ctx, 1, created.ID)
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if !again.ReadAt.Equal(*got.ReadAt) {
		t.Fatal("read_at moved on a second retrieval")
	}
}

func TestNotificationGetScopedToOwner(t *testing.T) {
	svc, ctx := newNotificationService(t)

	created, err := svc.Create(ctx, 1, &types.CreateNotificationRequest{
		Title:   "Privé",
		Message: "Pour l'utilisateur 1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Get(ctx, 2, created.ID)
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign notification, got %v", err)
	}
}

func TestNotificationMarkReadEmptyMarksOnlyLatest(t *testing.T) {
	svc, ctx := newNotificationService(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(ctx, 1, &types.CreateNotificationRequest{
			Title:   "n",
			Message: "m",
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	resp, err := svc.MarkRead(ctx, 1, nil)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("marked %d, want only the single most recent unread", resp.Count)
	}

	unread, err := svc.UnreadCount(ctx, 1)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if unread.Count != 2 {
		t.Fatalf("unread = %d, want 2", unread.Count)
	}
	if len(unread.UnreadNotifications) != 2 {
		t.Fatalf("preview = %d entries, want 2", len(unread.UnreadNotifications))
	}

	// With no unread left the fallback reports zero.
	if _, err := svc.MarkRead(ctx, 1, nil); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if _, err := svc.MarkRead(ctx, 1, nil); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	resp, err = svc.MarkRead(ctx, 1, nil)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if resp.Count != 0 {
		t.Fatalf("marked %d with nothing unread, want 0", resp.Count)
	}
}

func TestNotificationMarkReadIdempotentCount(t *testing.T) {
	svc, ctx := newNotificationService(t)

	created, err := svc.Create(ctx, 1, &types.CreateNotificationRequest{
		Title:   "une",
		Message: "seule",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	resp, err := svc.MarkRead(ctx, 1, []uint64{created.ID})
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("first mark count = %d, want 1", resp.Count)
	}

	resp, err = svc.MarkRead(ctx, 1, []uint64{created.ID})
	if err != nil {
		t.Fatalf("mark read again: %v", err)
	}
	if resp.Count != 0 {
		t.Fatalf("second mark count = %d, want 0", resp.Count)
	}
}
