package models

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	NumbersPerTicket = 7
	MinNumber        = 1
	MaxNumber        = 36
	MinBetCount      = 1
	MaxBetCount      = 100
)

func GenerateNotificationID() string {
	return fmt.Sprintf("note_%s_%d",
		time.Now().Format("20060102"),
		uuid.New().ID())
}

// GenerateRandomNumbers picks NumbersPerTicket distinct numbers in
// [MinNumber, MaxNumber] and returns them in ascending order.
func GenerateRandomNumbers() ([]int, error) {
	span := big.NewInt(MaxNumber - MinNumber + 1)
	seen := make(map[int]bool, NumbersPerTicket)
	numbers := make([]int, 0, NumbersPerTicket)

	for len(numbers) < NumbersPerTicket {
		n, err := rand.Int(rand.Reader, span)
		if err != nil {
			return nil, fmt.Errorf("failed to generate ticket numbers: %w", err)
		}
		num := int(n.Int64()) + MinNumber
		if seen[num] {
			continue
		}
		seen[num] = true
		numbers = append(numbers, num)
	}

	slices.Sort(numbers)
	return numbers, nil
}

func FormatNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func ParseNumbers(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	numbers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", p, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func FormatCurrency(balance float64) string {
	return fmt.Sprintf("¥%.2f", balance)
}
