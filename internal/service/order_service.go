package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maison-next/internal/constants"
	"github.com/maison-next/internal/logger"
	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/queue"
	"github.com/maison-next/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService 订单业务服务
type OrderService struct {
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	cartService    *CartService
	settingService *SettingService
	queueClient    *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	cartService *CartService,
	settingService *SettingService,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		cartService:    cartService,
		settingService: settingService,
		queueClient:    queueClient,
	}
}

// CheckoutInput 结算输入
type CheckoutInput struct {
	Name       string
	Email      string
	Address    string
	City       string
	PostalCode string
	ClientIP   string
}

// CreateFromCart 用购物车当前内容创建订单。
// 行数据（标题/单价）取下单时的购物车快照，总额由行推导；
// 下架商品拦截下单，成功后清空购物车并推送异步任务
func (s *OrderService) CreateFromCart(ctx context.Context, token string, input CheckoutInput) (*models.Order, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || !looksLikeEmail(email) {
		return nil, ErrInvalidOrder
	}

	lines := s.cartService.Lines(ctx, token)
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	available, err := s.productRepo.GetActiveByIDs(ids)
	if err != nil {
		return nil, err
	}
	activeSet := make(map[uint]bool, len(available))
	for _, product := range available {
		activeSet[product.ID] = true
	}

	total := decimal.Zero
	items := make([]interface{}, 0, len(lines))
	for _, line := range lines {
		if !activeSet[line.ProductID] {
			return nil, ErrProductNotAvailable
		}
		lineTotal := line.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(lineTotal)
		items = append(items, map[string]interface{}{
			"product_id": line.ProductID,
			"title":      line.Title,
			"unit_price": line.UnitPrice.String(),
			"color":      line.Color,
			"size":       line.Size,
			"quantity":   line.Quantity,
		})
	}

	order := &models.Order{
		OrderNo:     newOrderNo(),
		Status:      constants.OrderStatusPending,
		Currency:    s.settingService.GetCurrency(),
		TotalAmount: models.NewMoneyFromDecimal(total),
		CustomerJSON: models.JSON{
			"name":        name,
			"email":       email,
			"address":     strings.TrimSpace(input.Address),
			"city":        strings.TrimSpace(input.City),
			"postal_code": strings.TrimSpace(input.PostalCode),
		},
		ItemsJSON: models.JSON{"lines": items},
		ClientIP:  strings.TrimSpace(input.ClientIP),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	if err := s.cartService.Clear(ctx, token); err != nil {
		logger.Warnw("cart_clear_after_checkout_failed", "order_no", order.OrderNo, "error", err)
	}
	if err := s.queueClient.EnqueueOrderPlaced(queue.OrderPlacedPayload{OrderID: order.ID}); err != nil {
		logger.Warnw("order_placed_enqueue_failed", "order_no", order.OrderNo, "error", err)
	}

	logger.Infow("order_created",
		"order_no", order.OrderNo,
		"total", order.TotalAmount.String(),
		"items", len(lines),
	)
	return order, nil
}

// List 后台订单列表
func (s *OrderService) List(status, orderNo string, page, pageSize int) ([]models.Order, int64, error) {
	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(status),
		OrderNo:  strings.TrimSpace(orderNo),
	}
	return s.orderRepo.List(filter)
}

// GetByID 根据 ID 获取订单
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// GetByOrderNo 根据订单号获取订单
func (s *OrderService) GetByOrderNo(orderNo string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(strings.TrimSpace(orderNo))
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// UpdateStatus 后台更新订单状态，只允许沿流转方向推进
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	status = strings.ToLower(strings.TrimSpace(status))
	if !validOrderTransition(order.Status, status) {
		return nil, ErrOrderStatusInvalid
	}

	order.Status = status
	if status == constants.OrderStatusCanceled {
		now := time.Now()
		order.CanceledAt = &now
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	logger.Infow("order_status_updated", "order_no", order.OrderNo, "status", status)
	return order, nil
}

// CancelStalePending 批量取消超时未处理的订单，返回取消数量
func (s *OrderService) CancelStalePending(expireMinutes, limit int) (int, error) {
	if expireMinutes <= 0 {
		return 0, nil
	}
	before := time.Now().Add(-time.Duration(expireMinutes) * time.Minute)
	stale, err := s.orderRepo.ListStalePending(before, limit)
	if err != nil {
		return 0, err
	}

	canceled := 0
	for index := range stale {
		order := &stale[index]
		now := time.Now()
		order.Status = constants.OrderStatusCanceled
		order.CanceledAt = &now
		if err := s.orderRepo.Update(order); err != nil {
			logger.Warnw("stale_order_cancel_failed", "order_no", order.OrderNo, "error", err)
			continue
		}
		canceled++
	}
	if canceled > 0 {
		logger.Infow("stale_orders_canceled", "count", canceled)
	}
	return canceled, nil
}

func validOrderTransition(from, to string) bool {
	switch from {
	case constants.OrderStatusPending:
		return to == constants.OrderStatusProcessing || to == constants.OrderStatusCanceled
	case constants.OrderStatusProcessing:
		return to == constants.OrderStatusCompleted || to == constants.OrderStatusCanceled
	default:
		return false
	}
}

func newOrderNo() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("MN%s%s", time.Now().Format("20060102150405"), strings.ToUpper(raw[:8]))
}

func looksLikeEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t\n")
}
