package constants

// 页面组件类型常量
const (
	ComponentTypeNavigation  = "navigation"
	ComponentTypeHero        = "hero"
	ComponentTypeProductGrid = "product_grid"
	ComponentTypeContactForm = "contact_form"
	ComponentTypeCart        = "cart"
	ComponentTypeFooter      = "footer"
)

// 组件配置保留字段
const (
	ComponentConfigFieldVariant = "variant"
	ComponentVariantDefault     = "default"
)

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCanceled   = "canceled"
)

// 留言状态常量
const (
	ContactStatusNew      = "new"
	ContactStatusNotified = "notified"
	ContactStatusClosed   = "closed"
)

// 站点设置 key 常量
const (
	SettingKeySiteConfig       = "site_config"
	SettingFieldSiteName       = "site_name"
	SettingFieldSiteCurrency   = "currency"
	SiteCurrencyDefault        = "ZAR"
	SettingFieldDefaultLocale  = "default_locale"
	SettingDefaultLocaleValue  = "en-US"
	SettingFieldContactChannel = "contact"
)

// 支持的语言
var SupportedLocales = []string{"en-US", "zh-CN"}

// 队列名称常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 队列任务类型常量
const (
	TaskContactNotify = "contact:notify"
	TaskOrderPlaced   = "order:placed"
)

// 购物车常量
const (
	CartTokenHeader    = "X-Cart-Token"
	CartTokenCookie    = "cart_token"
	CartKeyPrefix      = "cart"
	CartDefaultTTLHour = 72
)
