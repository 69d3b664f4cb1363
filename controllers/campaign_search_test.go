package controllers

import (
	"net/http/httptest"
	"testing"

	"tuthien/models"

	"github.com/gin-gonic/gin"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Mùa Đông Ấm  ", "mua dong am"},
		{"Viện Phí", "vien phi"},
		{"abc", "abc"},
	}
	for _, tt := range tests {
		if got := normalizeInput(tt.in); got != tt.want {
			t.Errorf("normalizeInput(%q) = %q, muốn %q", tt.in, got, tt.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if s := calculateSimilarity("abc", "abc"); s != 1.0 {
		t.Errorf("chuỗi giống hệt: similarity = %f, muốn 1.0", s)
	}
	if s := calculateSimilarity("", ""); s != 1.0 {
		t.Errorf("hai chuỗi rỗng: similarity = %f, muốn 1.0", s)
	}
	if s := calculateSimilarity("abc", "xyz"); s > 0.01 {
		t.Errorf("chuỗi khác hẳn: similarity = %f, muốn ~0", s)
	}
}

func TestFilterAndScoreCampaigns(t *testing.T) {
	campaigns := []models.Campaign{
		{ID: 1, Title: "Mùa đông ấm cho trẻ vùng cao", Description: "Quyên góp áo ấm"},
		{ID: 2, Title: "Hỗ trợ viện phí", Description: "Giúp bệnh nhân nghèo"},
		{ID: 3, Title: "Xây trường học", Description: "Trường mới cho bản xa"},
	}
	cmTitle := createMatcher(prepareTitleList(campaigns))

	scored := filterAndScoreCampaigns("mùa đông ấm", campaigns, cmTitle)
	if len(scored) == 0 {
		t.Fatal("không tìm thấy kết quả nào")
	}
	if scored[0].Campaign.ID != 1 {
		t.Errorf("kết quả đầu tiên là chiến dịch %d, muốn 1", scored[0].Campaign.ID)
	}
	for i := 1; i < len(scored); i++ {
		if scored[i].Score > scored[i-1].Score {
			t.Error("kết quả phải được sắp theo điểm giảm dần")
		}
	}

	// Tìm không dấu vẫn khớp
	scored = filterAndScoreCampaigns("vien phi", campaigns, cmTitle)
	if len(scored) == 0 || scored[0].Campaign.ID != 2 {
		t.Error("tìm kiếm không dấu phải khớp tiêu đề có dấu")
	}
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 10},
		{"?page=3&limit=20", 3, 20},
		{"?page=0&limit=-5", 1, 10},
		{"?page=abc&limit=xyz", 1, 10},
		{"?limit=1000", 1, 10},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/"+tt.query, nil)
		page, limit := parsePagination(c)
		if page != tt.wantPage || limit != tt.wantLimit {
			t.Errorf("parsePagination(%q) = (%d, %d), muốn (%d, %d)", tt.query, page, limit, tt.wantPage, tt.wantLimit)
		}
	}
}
