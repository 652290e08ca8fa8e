package blocks

import "github.com/maison-next/internal/models"

// Reorder 将 from 位置的组件移动到 to 位置，并把所有 position 重写为
// 下标（结果总是连续的 0..N-1，此前的空洞一并消除）。
// 返回的 changed 为 false 时（同位拖拽或下标越界）调用方不应落库。
// 纯函数：不修改入参切片。
func Reorder(components []models.PageComponent, fromIndex, toIndex int) (result []models.PageComponent, changed bool) {
	length := len(components)
	if fromIndex < 0 || fromIndex >= length || toIndex < 0 || toIndex >= length {
		return components, false
	}
	if fromIndex == toIndex {
		return components, false
	}

	result = make([]models.PageComponent, 0, length)
	result = append(result, components[:fromIndex]...)
	result = append(result, components[fromIndex+1:]...)

	moved := components[fromIndex]
	result = append(result, models.PageComponent{})
	copy(result[toIndex+1:], result[toIndex:])
	result[toIndex] = moved

	for index := range result {
		result[index].Position = index
	}
	return result, true
}
