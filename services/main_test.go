package services

import (
	"os"
	"testing"

	"SmartTaskGo/config"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}
