package worker

import (
	"testing"

	"github.com/maison-next/internal/models"

	"github.com/shopspring/decimal"
)

func TestBuildContactNotifySummaryNilMessage(t *testing.T) {
	if got := buildContactNotifySummary(nil); got != "" {
		t.Fatalf("expected empty summary for nil message, got %q", got)
	}
}

func TestBuildContactNotifySummaryTruncatesBody(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "lorem ipsum "
	}
	message := &models.ContactMessage{
		Email:    "thandi@example.com",
		Message:  long,
		PageSlug: "home",
	}

	got := buildContactNotifySummary(message)
	if len(got) > 170 {
		t.Fatalf("summary not truncated, len=%d", len(got))
	}
	if got[:len("thandi@example.com (from home): ")] != "thandi@example.com (from home): " {
		t.Fatalf("unexpected summary prefix: %q", got)
	}
}

func TestBuildContactNotifySummaryUnknownSource(t *testing.T) {
	message := &models.ContactMessage{
		Email:   "thandi@example.com",
		Message: "first line\nsecond line",
	}

	got := buildContactNotifySummary(message)
	want := "thandi@example.com (from unknown): first line second line"
	if got != want {
		t.Fatalf("summary want %q got %q", want, got)
	}
}

func TestBuildOrderPlacedSummary(t *testing.T) {
	order := &models.Order{
		OrderNo:     "MN20240601ABCDEF12",
		Currency:    "ZAR",
		TotalAmount: models.NewMoneyFromDecimal(decimal.RequireFromString("250")),
		CustomerJSON: models.JSON{
			"email": " thandi@example.com ",
		},
		ItemsJSON: models.JSON{
			"lines": []interface{}{
				map[string]interface{}{"product_id": 1},
				map[string]interface{}{"product_id": 2},
			},
		},
	}

	got := buildOrderPlacedSummary(order)
	want := "MN20240601ABCDEF12 250.00 ZAR, 2 lines, thandi@example.com"
	if got != want {
		t.Fatalf("summary want %q got %q", want, got)
	}

	if buildOrderPlacedSummary(nil) != "" {
		t.Fatalf("expected empty summary for nil order")
	}
}
