package constants

import "time"

// Greeting Layout
const (
	// GreetingMessage is the exact string drawn on screen, padding spaces included
	GreetingMessage = " Hello, world! "

	// GreetingRow is the screen row of the base greeting
	GreetingRow = 6

	// GreetingCol is the screen column of the base greeting and every variant row
	GreetingCol = 32

	// ColorVariantCount is the number of colored repeats drawn below the base row
	ColorVariantCount = 13

	// MinColorCombinations is the minimum number of representable fg/bg
	// combinations required before any variant row is drawn
	MinColorCombinations = 13
)

// Display Timing
const (
	// DefaultHoldDuration is how long the greeting stays on screen before teardown
	DefaultHoldDuration = 3 * time.Second
)
