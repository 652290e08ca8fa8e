package service

import (
	"regexp"
	"strings"

	"github.com/maison-next/internal/logger"
	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/repository"
)

// PageService 页面业务服务
type PageService struct {
	pageRepo      repository.PageRepository
	componentRepo repository.PageComponentRepository
}

// NewPageService 创建页面服务
func NewPageService(pageRepo repository.PageRepository, componentRepo repository.PageComponentRepository) *PageService {
	return &PageService{pageRepo: pageRepo, componentRepo: componentRepo}
}

// PageInput 创建/更新页面输入
type PageInput struct {
	Title  string
	Slug   string
	IsHome *bool
}

var slugStripPattern = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveSlug 从标题派生 slug：小写，非字母数字段折叠为单个连字符，去掉首尾连字符
func DeriveSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStripPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// List 页面列表
func (s *PageService) List(search string, page, pageSize int) ([]models.Page, int64, error) {
	filter := repository.PageListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(search),
	}
	return s.pageRepo.List(filter)
}

// GetByID 根据 ID 获取页面
func (s *PageService) GetByID(id uint) (*models.Page, error) {
	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrNotFound
	}
	return page, nil
}

// GetBySlug 根据 slug 获取页面
func (s *PageService) GetBySlug(slug string) (*models.Page, error) {
	page, err := s.pageRepo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrNotFound
	}
	return page, nil
}

// GetHome 获取首页；没有标记首页时回退到最早创建的页面
func (s *PageService) GetHome() (*models.Page, error) {
	page, err := s.pageRepo.GetHome()
	if err != nil {
		return nil, err
	}
	if page != nil {
		return page, nil
	}

	pages, _, err := s.pageRepo.List(repository.PageListFilter{PageSize: 1, Page: 1})
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, ErrNotFound
	}
	return &pages[0], nil
}

// Create 创建页面；slug 未提供时从标题派生
func (s *PageService) Create(input PageInput) (*models.Page, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidPage
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = DeriveSlug(title)
	} else {
		slug = DeriveSlug(slug)
	}
	if slug == "" {
		return nil, ErrInvalidPage
	}

	existing, err := s.pageRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPageSlugTaken
	}

	page := &models.Page{
		Title: title,
		Slug:  slug,
	}
	if input.IsHome != nil {
		page.IsHome = *input.IsHome
	}
	if err := s.pageRepo.Create(page); err != nil {
		return nil, err
	}
	return page, nil
}

// Update 更新页面
func (s *PageService) Update(id uint, input PageInput) (*models.Page, error) {
	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrNotFound
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		page.Title = title
	}
	if rawSlug := strings.TrimSpace(input.Slug); rawSlug != "" {
		slug := DeriveSlug(rawSlug)
		if slug == "" {
			return nil, ErrInvalidPage
		}
		if slug != page.Slug {
			existing, err := s.pageRepo.GetBySlug(slug)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != page.ID {
				return nil, ErrPageSlugTaken
			}
			page.Slug = slug
		}
	}
	if input.IsHome != nil {
		page.IsHome = *input.IsHome
	}

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}
	return page, nil
}

// Delete 删除页面及其组件，并返回建议选中的后继页面：
// 优先另一张首页标记页，其次剩余列表的第一张，没有剩余则为 nil
func (s *PageService) Delete(id uint) (*models.Page, error) {
	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrNotFound
	}

	if err := s.componentRepo.DeleteByPage(id); err != nil {
		return nil, err
	}
	if err := s.pageRepo.Delete(id); err != nil {
		return nil, err
	}
	logger.Infow("page_deleted", "page_id", id, "slug", page.Slug)

	return s.pickFallback()
}

func (s *PageService) pickFallback() (*models.Page, error) {
	remaining, _, err := s.pageRepo.List(repository.PageListFilter{})
	if err != nil {
		return nil, err
	}
	if len(remaining) == 0 {
		return nil, nil
	}
	for index := range remaining {
		if remaining[index].IsHome {
			return &remaining[index], nil
		}
	}
	return &remaining[0], nil
}
