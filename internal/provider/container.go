package provider

import (
	"github.com/maison-next/internal/cache"
	"github.com/maison-next/internal/config"
	"github.com/maison-next/internal/logger"
	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/queue"
	"github.com/maison-next/internal/repository"
	"github.com/maison-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	PageRepo      repository.PageRepository
	ComponentRepo repository.PageComponentRepository
	ProductRepo   repository.ProductRepository
	OrderRepo     repository.OrderRepository
	ContactRepo   repository.ContactMessageRepository
	SettingRepo   repository.SettingRepository

	// Services
	PageService      *service.PageService
	ComponentService *service.ComponentService
	ProductService   *service.ProductService
	CartService      *service.CartService
	OrderService     *service.OrderService
	ContactService   *service.ContactService
	SettingService   *service.SettingService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.PageRepo = repository.NewPageRepository(db)
	c.ComponentRepo = repository.NewPageComponentRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ContactRepo = repository.NewContactMessageRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
}

func (c *Container) initServices() {
	// 购物车落 Redis；未启用时退回进程内存储，仅适合本地单实例
	var cartStore service.CartStore
	if cache.Enabled() {
		cartStore = service.NewRedisCartStore(c.Config.Cart.TTLHours)
	} else {
		logger.Warnw("provider_cart_store_fallback_memory", "reason", "redis_disabled")
		cartStore = service.NewMemoryCartStore()
	}

	c.SettingService = service.NewSettingService(c.SettingRepo)
	c.PageService = service.NewPageService(c.PageRepo, c.ComponentRepo)
	c.ComponentService = service.NewComponentService(c.ComponentRepo, c.PageRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(cartStore, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.CartService, c.SettingService, c.QueueClient)
	c.ContactService = service.NewContactService(c.ContactRepo, c.QueueClient)
}
