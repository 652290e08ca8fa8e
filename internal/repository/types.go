package repository

import "time"

// PageListFilter 查询页面列表的过滤条件
type PageListFilter struct {
	Page     int
	PageSize int
	Search   string
	OrderBy  string
}

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page       int
	PageSize   int
	Category   string
	Search     string
	OnlyActive bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// ContactMessageListFilter 查询留言列表的过滤条件
type ContactMessageListFilter struct {
	Page     int
	PageSize int
	Status   string
	PageSlug string
	Search   string
}
