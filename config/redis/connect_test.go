package redis

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"auth-srv/config"
)

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = Disconnect() })

	cfg := config.RedisConfig{Host: mr.Host(), Port: port}
	first, err := Connect(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	second, err := Connect(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("Connect should return the same instance")
	}
}

func TestConnect_Unreachable(t *testing.T) {
	t.Cleanup(func() { _ = Disconnect() })

	if _, err := Connect(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: 1}); err == nil {
		t.Fatal("expected an error for an unreachable server")
	}
}
