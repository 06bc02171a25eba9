package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/junsooki/imview/internal/config"
	"github.com/junsooki/imview/internal/display"
)

func TestDisplayOptions(t *testing.T) {
	require.Equal(t, display.Options{}, displayOptions(&config.Config{
		Window: config.WindowAutoSize,
		Close:  config.CloseOnce,
	}))
	require.Equal(t, display.Options{Resizable: true, Close: display.CloseOnKey}, displayOptions(&config.Config{
		Window: config.WindowNormal,
		Close:  config.CloseWait,
	}))
}
