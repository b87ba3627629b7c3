package models

import "strings"

type Winner struct {
	Username   string `json:"username"`
	PrizeLevel string `json:"prizeLevel"`
}

type DrawResult struct {
	WinningNumbers string   `json:"winningNumbers"`
	Winners        []Winner `json:"winners"`
}

type DrawResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	DrawResult
}

// Numbers splits the comma separated winning numbers, keeping their order.
func (d DrawResult) Numbers() []string {
	if strings.TrimSpace(d.WinningNumbers) == "" {
		return nil
	}
	parts := strings.Split(d.WinningNumbers, ",")
	numbers := make([]string, 0, len(parts))
	for _, p := range parts {
		numbers = append(numbers, strings.TrimSpace(p))
	}
	return numbers
}
