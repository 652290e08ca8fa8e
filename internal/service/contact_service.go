package service

import (
	"strings"
	"time"

	"github.com/maison-next/internal/constants"
	"github.com/maison-next/internal/logger"
	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/queue"
	"github.com/maison-next/internal/repository"
)

// ContactService 留言业务服务
type ContactService struct {
	repo        repository.ContactMessageRepository
	queueClient *queue.Client
}

// NewContactService 创建留言服务
func NewContactService(repo repository.ContactMessageRepository, queueClient *queue.Client) *ContactService {
	return &ContactService{repo: repo, queueClient: queueClient}
}

// ContactInput 留言提交输入
type ContactInput struct {
	Email    string
	Message  string
	PageSlug string
}

// Submit 提交留言并推送异步通知任务
func (s *ContactService) Submit(input ContactInput) (*models.ContactMessage, error) {
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)
	if !looksLikeEmail(email) || message == "" {
		return nil, ErrInvalidContact
	}

	entity := &models.ContactMessage{
		Email:    email,
		Message:  message,
		PageSlug: strings.TrimSpace(input.PageSlug),
		Status:   constants.ContactStatusNew,
	}
	if err := s.repo.Create(entity); err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueContactNotify(queue.ContactNotifyPayload{MessageID: entity.ID}); err != nil {
		logger.Warnw("contact_notify_enqueue_failed", "message_id", entity.ID, "error", err)
	}
	logger.Infow("contact_message_submitted", "message_id", entity.ID, "page_slug", entity.PageSlug)
	return entity, nil
}

// List 后台留言列表
func (s *ContactService) List(status, pageSlug, search string, page, pageSize int) ([]models.ContactMessage, int64, error) {
	filter := repository.ContactMessageListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(status),
		PageSlug: strings.TrimSpace(pageSlug),
		Search:   strings.TrimSpace(search),
	}
	return s.repo.List(filter)
}

// GetByID 根据 ID 获取留言
func (s *ContactService) GetByID(id uint) (*models.ContactMessage, error) {
	message, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrNotFound
	}
	return message, nil
}

// MarkNotified 标记留言已通知（由队列消费侧调用）
func (s *ContactService) MarkNotified(id uint) error {
	message, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if message == nil {
		return ErrNotFound
	}
	if message.Status != constants.ContactStatusNew {
		return nil
	}
	now := time.Now()
	message.Status = constants.ContactStatusNotified
	message.NotifiedAt = &now
	return s.repo.Update(message)
}

// Close 关闭留言
func (s *ContactService) Close(id uint) (*models.ContactMessage, error) {
	message, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrNotFound
	}
	message.Status = constants.ContactStatusClosed
	if err := s.repo.Update(message); err != nil {
		return nil, err
	}
	return message, nil
}

// Delete 删除留言
func (s *ContactService) Delete(id uint) error {
	message, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if message == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
