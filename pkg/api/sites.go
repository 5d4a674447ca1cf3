package api

import (
	"context"
	"fmt"
	"net/http"

	"navsite-web/pkg/models"
)

// ListSites 分页查询网站列表，filters会整体转成query参数
func (c *Client) ListSites(ctx context.Context, filters models.SearchFilters) ([]models.Site, *models.PaginationInfo, error) {
	envelope, err := c.do(ctx, http.MethodGet, "/sites", filters.QueryValues(), nil)
	if err != nil {
		return nil, nil, err
	}
	var sites []models.Site
	if err := decode(envelope, &sites); err != nil {
		return nil, nil, err
	}
	return sites, envelope.Pagination, nil
}

// GetSite 按ID查询网站
func (c *Client) GetSite(ctx context.Context, id int) (*models.Site, error) {
	envelope, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/sites/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	var site models.Site
	if err := decode(envelope, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// CreateSite 新增网站
func (c *Client) CreateSite(ctx context.Context, input models.CreateSiteInput) (*models.Site, error) {
	envelope, err := c.do(ctx, http.MethodPost, "/sites", nil, input)
	if err != nil {
		return nil, err
	}
	var site models.Site
	if err := decode(envelope, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// UpdateSite 更新网站
func (c *Client) UpdateSite(ctx context.Context, id int, input models.UpdateSiteInput) (*models.Site, error) {
	envelope, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/sites/%d", id), nil, input)
	if err != nil {
		return nil, err
	}
	var site models.Site
	if err := decode(envelope, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// DeleteSite 删除网站
func (c *Client) DeleteSite(ctx context.Context, id int) error {
	envelope, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/sites/%d", id), nil, nil)
	if err != nil {
		return err
	}
	var result models.DeleteResult
	return decode(envelope, &result)
}

// IncrementClick 点击计数+1
func (c *Client) IncrementClick(ctx context.Context, id int) error {
	envelope, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/sites/%d/click", id), nil, nil)
	if err != nil {
		return err
	}
	var result models.IncrementResult
	return decode(envelope, &result)
}

// PopularSites 查询热门网站，上游按点击量排好序
func (c *Client) PopularSites(ctx context.Context) ([]models.Site, error) {
	envelope, err := c.do(ctx, http.MethodGet, "/sites/popular", nil, nil)
	if err != nil {
		return nil, err
	}
	var sites []models.Site
	if err := decode(envelope, &sites); err != nil {
		return nil, err
	}
	return sites, nil
}
