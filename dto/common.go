package dto

import "tuthien/response"

// PaginatedResponse là struct chung cho các response có phân trang
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// DashboardStats là số liệu tổng hợp cho trang quản trị
type DashboardStats struct {
	Campaigns    CampaignStats    `json:"campaigns"`
	Applications ApplicationStats `json:"applications"`
	Users        UserStats        `json:"users"`
}

type CampaignStats struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

type ApplicationStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type UserStats struct {
	Total       int64 `json:"total"`
	Admins      int64 `json:"admins"`
	Superadmins int64 `json:"superadmins"`
}
