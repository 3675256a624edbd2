package tui

import "github.com/Veraticus/pocketwatch/internal/dashboard"

// loadedMsg delivers the outcome of one dashboard load.
type loadedMsg struct {
	result dashboard.Result
}
