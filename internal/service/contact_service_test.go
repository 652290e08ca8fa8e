package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/maison-next/internal/constants"
	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/queue"
	"github.com/maison-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newContactTestService(t *testing.T) *ContactService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.ContactMessage{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	return NewContactService(repository.NewContactMessageRepository(db), queueClient)
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	svc := newContactTestService(t)

	cases := []ContactInput{
		{Email: "", Message: "hello"},
		{Email: "not-an-email", Message: "hello"},
		{Email: "thandi@example.com", Message: "   "},
	}
	for _, input := range cases {
		if _, err := svc.Submit(input); !errors.Is(err, ErrInvalidContact) {
			t.Fatalf("input %+v want ErrInvalidContact got %v", input, err)
		}
	}
}

func TestSubmitCreatesMessageWithNewStatus(t *testing.T) {
	svc := newContactTestService(t)

	message, err := svc.Submit(ContactInput{
		Email:    "  thandi@example.com ",
		Message:  "Do you ship internationally?",
		PageSlug: "home",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if message.Status != constants.ContactStatusNew {
		t.Fatalf("status want new got %s", message.Status)
	}
	if message.Email != "thandi@example.com" {
		t.Fatalf("email should be trimmed, got %q", message.Email)
	}
}

func TestMarkNotifiedOnlyTransitionsFromNew(t *testing.T) {
	svc := newContactTestService(t)

	message, err := svc.Submit(ContactInput{Email: "thandi@example.com", Message: "hi"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := svc.MarkNotified(message.ID); err != nil {
		t.Fatalf("mark notified failed: %v", err)
	}
	notified, err := svc.GetByID(message.ID)
	if err != nil {
		t.Fatalf("get message failed: %v", err)
	}
	if notified.Status != constants.ContactStatusNotified || notified.NotifiedAt == nil {
		t.Fatalf("message should be notified with timestamp, got %+v", notified)
	}

	firstNotifiedAt := *notified.NotifiedAt
	// 再次调用不改状态也不刷新时间戳
	if err := svc.MarkNotified(message.ID); err != nil {
		t.Fatalf("repeat mark notified failed: %v", err)
	}
	again, err := svc.GetByID(message.ID)
	if err != nil {
		t.Fatalf("get message failed: %v", err)
	}
	if !again.NotifiedAt.Equal(firstNotifiedAt) {
		t.Fatalf("notified_at should be stable on repeat calls")
	}

	if err := svc.MarkNotified(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing message want ErrNotFound got %v", err)
	}
}

func TestCloseAndDeleteMessage(t *testing.T) {
	svc := newContactTestService(t)

	message, err := svc.Submit(ContactInput{Email: "thandi@example.com", Message: "hi"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	closed, err := svc.Close(message.ID)
	if err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if closed.Status != constants.ContactStatusClosed {
		t.Fatalf("status want closed got %s", closed.Status)
	}

	if err := svc.Delete(message.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(message.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted message want ErrNotFound got %v", err)
	}
}
