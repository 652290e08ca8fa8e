package service

import (
	"github.com/maison-next/internal/blocks"
	"github.com/maison-next/internal/constants"
	"github.com/maison-next/internal/logger"
	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/repository"
)

// ComponentService 页面组件业务服务
type ComponentService struct {
	componentRepo repository.PageComponentRepository
	pageRepo      repository.PageRepository
}

// NewComponentService 创建页面组件服务
func NewComponentService(componentRepo repository.PageComponentRepository, pageRepo repository.PageRepository) *ComponentService {
	return &ComponentService{componentRepo: componentRepo, pageRepo: pageRepo}
}

// AddComponentInput 新增组件输入
type AddComponentInput struct {
	PageID    uint
	Type      string
	Variant   string
	Overrides map[string]interface{}
}

// ReorderInput 组件重排输入（下标基于当前排序后的组件序列）
type ReorderInput struct {
	PageID    uint
	FromIndex int
	ToIndex   int
}

// ListForPage 获取页面组件，按 position 正序，配置已合并类型默认值
func (s *ComponentService) ListForPage(pageID uint, onlyActive bool) ([]models.PageComponent, error) {
	components, err := s.componentRepo.ListByPage(pageID, onlyActive)
	if err != nil {
		return nil, err
	}
	for index := range components {
		components[index].ConfigJSON = blocks.MergeConfig(components[index].Type, components[index].ConfigJSON)
	}
	return components, nil
}

// Add 在页面末尾追加组件。排序位在插入前即时查询当前最大值：
// 有组件取 max+1，空页面取 0，删除留下的空洞不回收
func (s *ComponentService) Add(input AddComponentInput) (*models.PageComponent, error) {
	if !blocks.IsValidType(input.Type) {
		return nil, ErrInvalidComponent
	}
	page, err := s.pageRepo.GetByID(input.PageID)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrNotFound
	}

	max, exists, err := s.componentRepo.MaxPosition(input.PageID)
	if err != nil {
		return nil, err
	}
	position := 0
	if exists {
		position = max + 1
	}

	component := &models.PageComponent{
		PageID:     input.PageID,
		Type:       input.Type,
		ConfigJSON: blocks.InstanceConfig(input.Type, input.Variant, input.Overrides),
		Position:   position,
		IsActive:   true,
	}
	if err := s.componentRepo.Create(component); err != nil {
		return nil, err
	}
	logger.Infow("component_added", "page_id", input.PageID, "type", input.Type, "position", position)
	return component, nil
}

// UpdateConfig 更新组件配置。入参按类型已知字段过滤，variant 缺省时沿用原值；
// 落库的是过滤后的完整配置，读取时仍会与类型默认值合并
func (s *ComponentService) UpdateConfig(id uint, config map[string]interface{}) (*models.PageComponent, error) {
	component, err := s.componentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, ErrNotFound
	}

	recognized := blocks.RecognizedKeys(component.Type)
	filtered := models.JSON{}
	for key, value := range config {
		if recognized[key] {
			filtered[key] = value
		}
	}
	if _, ok := filtered[constants.ComponentConfigFieldVariant]; !ok {
		if variant, ok := component.ConfigJSON[constants.ComponentConfigFieldVariant]; ok {
			filtered[constants.ComponentConfigFieldVariant] = variant
		} else {
			filtered[constants.ComponentConfigFieldVariant] = constants.ComponentVariantDefault
		}
	}

	if err := s.componentRepo.UpdateConfig(id, filtered); err != nil {
		return nil, err
	}
	component.ConfigJSON = blocks.MergeConfig(component.Type, filtered)
	return component, nil
}

// SetActive 切换组件显示状态
func (s *ComponentService) SetActive(id uint, isActive bool) (*models.PageComponent, error) {
	component, err := s.componentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, ErrNotFound
	}
	component.IsActive = isActive
	if err := s.componentRepo.Update(component); err != nil {
		return nil, err
	}
	return component, nil
}

// Remove 删除组件。剩余组件的排序位不回收，空洞留待下次重排消除
func (s *ComponentService) Remove(id uint) error {
	component, err := s.componentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if component == nil {
		return ErrNotFound
	}
	return s.componentRepo.Delete(id)
}

// Reorder 把页面内 from 下标的组件移动到 to 下标并重写全部排序位。
// 逐条落库，不加事务也不加页面级锁：并发重排属于后台单人操作场景，
// 最后写入者胜。任一条写失败时重新读取数据库作为权威状态返回，
// 调用方据此整体刷新，而不是按差量回滚
func (s *ComponentService) Reorder(input ReorderInput) ([]models.PageComponent, error) {
	components, err := s.componentRepo.ListByPage(input.PageID, false)
	if err != nil {
		return nil, err
	}
	if len(components) == 0 {
		return nil, ErrNotFound
	}

	reordered, changed := blocks.Reorder(components, input.FromIndex, input.ToIndex)
	if !changed {
		if input.FromIndex != input.ToIndex {
			return nil, ErrInvalidComponent
		}
		return s.mergeAll(components), nil
	}

	for _, component := range reordered {
		if err := s.componentRepo.UpdatePosition(component.ID, component.Position); err != nil {
			logger.Warnw("component_reorder_persist_failed",
				"page_id", input.PageID,
				"component_id", component.ID,
				"error", err,
			)
			authoritative, reloadErr := s.componentRepo.ListByPage(input.PageID, false)
			if reloadErr != nil {
				return nil, reloadErr
			}
			return s.mergeAll(authoritative), err
		}
	}

	logger.Infow("components_reordered",
		"page_id", input.PageID,
		"from", input.FromIndex,
		"to", input.ToIndex,
	)
	return s.mergeAll(reordered), nil
}

func (s *ComponentService) mergeAll(components []models.PageComponent) []models.PageComponent {
	for index := range components {
		components[index].ConfigJSON = blocks.MergeConfig(components[index].Type, components[index].ConfigJSON)
	}
	return components
}
