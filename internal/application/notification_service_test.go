package application

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/mahendrairawan/sociable/internal/domain/entity"
)

func TestNotificationListMarksRead(t *testing.T) {
	notifs := newFakeNotifRepo()
	svc := NewNotificationService(notifs)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		n := &entity.Notification{ID: uuid.NewString(), FromID: "from", ToID: "me", Kind: entity.NotificationLike}
		if err := notifs.Create(ctx, n); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if err := notifs.Create(ctx, &entity.Notification{ID: uuid.NewString(), FromID: "from", ToID: "other", Kind: entity.NotificationFollow}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.List(ctx, "me")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("listed %d, want 3", len(got))
	}

	// everything is read after the fetch
	after, _ := notifs.ListForUser(ctx, "me")
	for _, n := range after {
		if !n.Read {
			t.Fatal("notification still unread after List")
		}
	}

	// the other user's inbox is untouched
	other, _ := notifs.ListForUser(ctx, "other")
	if len(other) != 1 || other[0].Read {
		t.Fatalf("other inbox affected: %+v", other)
	}
}

func TestNotificationClear(t *testing.T) {
	notifs := newFakeNotifRepo()
	svc := NewNotificationService(notifs)
	ctx := context.Background()

	_ = notifs.Create(ctx, &entity.Notification{ID: uuid.NewString(), FromID: "a", ToID: "me", Kind: entity.NotificationFollow})
	_ = notifs.Create(ctx, &entity.Notification{ID: uuid.NewString(), FromID: "a", ToID: "other", Kind: entity.NotificationFollow})

	if err := svc.Clear(ctx, "me"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	mine, _ := notifs.ListForUser(ctx, "me")
	if len(mine) != 0 {
		t.Fatalf("inbox not cleared: %+v", mine)
	}
	other, _ := notifs.ListForUser(ctx, "other")
	if len(other) != 1 {
		t.Fatal("clear removed another user's notifications")
	}
}
