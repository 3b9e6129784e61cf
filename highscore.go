package main

import (
	"os"
	"strconv"
	"strings"
)

const highScoreFile = "highscore.txt"

// LoadHighScore reads the saved best score. Missing or garbled files count
// as zero.
func LoadHighScore() int {
	data, err := os.ReadFile(highScoreFile)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SaveHighScore persists the best score.
func SaveHighScore(score int) error {
	return os.WriteFile(highScoreFile, []byte(strconv.Itoa(score)+"\n"), 0o644)
}
