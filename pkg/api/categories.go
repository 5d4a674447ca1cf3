package api

import (
	"context"
	"fmt"
	"net/http"

	"navsite-web/pkg/models"
)

// ListCategories 查询全部分类
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	envelope, err := c.do(ctx, http.MethodGet, "/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := decode(envelope, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListCategoriesWithCount 查询分类及各分类下网站数量
func (c *Client) ListCategoriesWithCount(ctx context.Context) ([]models.Category, error) {
	envelope, err := c.do(ctx, http.MethodGet, "/categories/with-count", nil, nil)
	if err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := decode(envelope, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory 按ID查询分类
func (c *Client) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	envelope, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/categories/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	var category models.Category
	if err := decode(envelope, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory 新增分类
func (c *Client) CreateCategory(ctx context.Context, input models.CategoryInput) (*models.Category, error) {
	envelope, err := c.do(ctx, http.MethodPost, "/categories", nil, input)
	if err != nil {
		return nil, err
	}
	var category models.Category
	if err := decode(envelope, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory 更新分类
func (c *Client) UpdateCategory(ctx context.Context, id int, input models.CategoryInput) (*models.Category, error) {
	envelope, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), nil, input)
	if err != nil {
		return nil, err
	}
	var category models.Category
	if err := decode(envelope, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory 删除分类，分类下还有网站时上游会拒绝
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	envelope, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
	if err != nil {
		return err
	}
	var result models.DeleteResult
	return decode(envelope, &result)
}
