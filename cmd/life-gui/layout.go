package main

import "time"

// canvasSize returns the pixel size of a board drawn with square cells plus a
// one pixel border for the closing grid line.
func canvasSize(width, height, cellSize int) (int, int) {
	return 1 + width*cellSize, 1 + height*cellSize
}

// ticksPerSecond converts the delay between generations into an update rate
func ticksPerSecond(delay time.Duration) int {
	if delay <= 0 {
		return 60
	}
	return max(1, int(time.Second/delay))
}

// reachedLimit reports whether generation has hit a positive generation limit
func reachedLimit(generation uint64, limit int) bool {
	return limit > 0 && generation >= uint64(limit)
}
