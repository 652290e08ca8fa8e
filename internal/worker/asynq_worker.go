package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/maison-next/internal/logger"
	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/provider"
	"github.com/maison-next/internal/queue"
	"github.com/maison-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskContactNotify, c.handleContactNotify)
	mux.HandleFunc(queue.TaskOrderPlaced, c.handleOrderPlaced)
}

func (c *Consumer) handleContactNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_contact_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ContactNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_contact_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.MessageID == 0 {
		logger.Debugw("worker_contact_notify_skip_invalid_payload", "message_id", payload.MessageID)
		return nil
	}

	message, err := c.ContactRepo.GetByID(payload.MessageID)
	if err != nil {
		logger.Warnw("worker_contact_notify_fetch_failed", "message_id", payload.MessageID, "error", err)
		return err
	}
	if message == nil {
		logger.Debugw("worker_contact_notify_skip_not_found", "message_id", payload.MessageID)
		return nil
	}

	logger.Infow("worker_contact_notify_dispatched",
		"message_id", message.ID,
		"summary", buildContactNotifySummary(message),
	)

	if err := c.ContactService.MarkNotified(message.ID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			logger.Debugw("worker_contact_notify_skip_gone", "message_id", message.ID)
			return nil
		}
		logger.Warnw("worker_contact_notify_mark_failed", "message_id", message.ID, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handleOrderPlaced(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_placed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderPlacedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_placed_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_placed_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_placed_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_placed_skip_not_found", "order_id", payload.OrderID)
		return nil
	}

	logger.Infow("worker_order_placed_dispatched",
		"order_no", order.OrderNo,
		"summary", buildOrderPlacedSummary(order),
	)
	return nil
}

// buildContactNotifySummary 生成留言通知摘要，正文截断到单行可读长度
func buildContactNotifySummary(message *models.ContactMessage) string {
	if message == nil {
		return ""
	}
	body := strings.TrimSpace(message.Message)
	body = strings.ReplaceAll(body, "\n", " ")
	if len(body) > 120 {
		body = body[:120] + "..."
	}
	source := strings.TrimSpace(message.PageSlug)
	if source == "" {
		source = "unknown"
	}
	return fmt.Sprintf("%s (from %s): %s", message.Email, source, body)
}

// buildOrderPlacedSummary 生成下单通知摘要
func buildOrderPlacedSummary(order *models.Order) string {
	if order == nil {
		return ""
	}
	lineCount := 0
	if raw, ok := order.ItemsJSON["lines"].([]interface{}); ok {
		lineCount = len(raw)
	}
	customer := ""
	if raw, ok := order.CustomerJSON["email"].(string); ok {
		customer = strings.TrimSpace(raw)
	}
	return fmt.Sprintf("%s %s %s, %d lines, %s",
		order.OrderNo, order.TotalAmount.String(), order.Currency, lineCount, customer)
}
