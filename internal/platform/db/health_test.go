package db

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestPoolStats_JSONShape(t *testing.T) {
	stats := PoolStats{
		TotalConns:    10,
		IdleConns:     5,
		AcquiredConns: 5,
		MaxConns:      20,
		AcquireCount:  100,
		Healthy:       true,
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		t.Fatal(err)
	}
	body := string(raw)
	for _, field := range []string{
		`"total_conns":10`,
		`"idle_conns":5`,
		`"acquired_conns":5`,
		`"max_conns":20`,
		`"acquire_count":100`,
		`"healthy":true`,
	} {
		if !strings.Contains(body, field) {
			t.Errorf("expected %s in %s", field, body)
		}
	}
}

func TestPoolStats_UnhealthyWhenNoConns(t *testing.T) {
	stats := PoolStats{MaxConns: 20, Healthy: false}
	if stats.Healthy {
		t.Error("zero connections must not report healthy")
	}
}
