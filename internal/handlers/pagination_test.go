package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBuildPaginationMeta(t *testing.T) {
	cases := []struct {
		page, limit, total int
		wantTotalPages     int
	}{
		{1, 10, 0, 0},
		{1, 10, 1, 1},
		{1, 10, 10, 1},
		{1, 10, 11, 2},
		{3, 25, 120, 5},
	}
	for _, tc := range cases {
		meta := buildPaginationMeta(tc.page, tc.limit, tc.total)
		if meta.TotalPages != tc.wantTotalPages {
			t.Errorf("total %d limit %d: expected %d pages, got %d",
				tc.total, tc.limit, tc.wantTotalPages, meta.TotalPages)
		}
		if meta.Page != tc.page || meta.Limit != tc.limit || meta.Total != tc.total {
			t.Errorf("meta fields not carried through: %+v", meta)
		}
	}
}

func TestParsePageLimit(t *testing.T) {
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		page, limit := parsePageLimit(c)
		return c.JSON(fiber.Map{"page": page, "limit": limit})
	})

	cases := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, defaultPageLimit},
		{"?page=3&limit=20", 3, 20},
		{"?page=0&limit=-5", 1, defaultPageLimit},
		{"?page=abc&limit=xyz", 1, defaultPageLimit},
		{"?limit=500", 1, maxPageLimit},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", "/items"+tc.query, nil))
		if err != nil {
			t.Fatalf("app.Test(%q): %v", tc.query, err)
		}
		body, _ := io.ReadAll(resp.Body)
		var got struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
		}
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("unmarshal %q: %v", body, err)
		}
		if got.Page != tc.wantPage || got.Limit != tc.wantLimit {
			t.Errorf("query %q: expected (%d, %d), got (%d, %d)",
				tc.query, tc.wantPage, tc.wantLimit, got.Page, got.Limit)
		}
	}
}
