package queue

import (
	"encoding/json"

	"github.com/maison-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskContactNotify 留言通知任务
	TaskContactNotify = constants.TaskContactNotify
	// TaskOrderPlaced 下单后处理任务
	TaskOrderPlaced = constants.TaskOrderPlaced
)

// ContactNotifyPayload 留言通知任务载荷
type ContactNotifyPayload struct {
	MessageID uint `json:"message_id"`
}

// OrderPlacedPayload 下单后处理任务载荷
type OrderPlacedPayload struct {
	OrderID uint `json:"order_id"`
}

// NewContactNotifyTask 创建留言通知任务
func NewContactNotifyTask(payload ContactNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContactNotify, body), nil
}

// NewOrderPlacedTask 创建下单后处理任务
func NewOrderPlacedTask(payload OrderPlacedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPlaced, body), nil
}
