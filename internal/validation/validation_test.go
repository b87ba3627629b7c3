package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottery-miniapp-client/internal/messages"
	"lottery-miniapp-client/internal/models"
)

func ruleOf(t *testing.T, err error) string {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %v", err)
	return verr.Rule
}

func joinInts(nums ...int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ",")
}

func TestValidateTicketNumbers(t *testing.T) {
	tests := []struct {
		description string
		raw         string
		rule        string
	}{
		{"seven distinct numbers", "1,2,3,4,5,6,7", ""},
		{"whitespace around tokens", " 36, 1 ,18,2,9, 10,11", ""},
		{"empty input", "   ", messages.TicketNumbersRequired},
		{"six numbers", "1,2,3,4,5,6", messages.TicketNumbersCount},
		{"eight numbers", "1,2,3,4,5,6,7,8", messages.TicketNumbersCount},
		{"zero is out of range", "0,2,3,4,5,6,7", messages.TicketNumberRange},
		{"37 is out of range", "1,2,3,4,5,6,37", messages.TicketNumberRange},
		{"non integer token", "1,2,3,a,5,6,7", messages.TicketNumberRange},
		{"empty token", "1,2,,4,5,6,7", messages.TicketNumberRange},
		{"duplicate", "1,2,3,4,5,6,6", messages.TicketNumbersRepeat},
		{"count checked before range", "0,99", messages.TicketNumbersCount},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			err := ValidateTicketNumbers(test.raw)
			if test.rule == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, test.rule, ruleOf(t, err))
		})
	}
}

func TestValidateTicketNumbersLengthProperty(t *testing.T) {
	for n := 0; n <= 20; n++ {
		if n == models.NumbersPerTicket {
			continue
		}
		nums := make([]int, n)
		for i := range nums {
			nums[i] = i + 1
		}
		assert.Error(t, ValidateTicketNumbers(joinInts(nums...)), "length %d", n)
	}
}

func TestValidateTicketNumbersDistinctProperty(t *testing.T) {
	for start := 1; start+6 <= models.MaxNumber; start++ {
		nums := []int{start, start + 1, start + 2, start + 3, start + 4, start + 5, start + 6}
		assert.NoError(t, ValidateTicketNumbers(joinInts(nums...)))

		for i := 1; i < len(nums); i++ {
			dup := append([]int(nil), nums...)
			dup[i] = dup[0]
			assert.Equal(t, messages.TicketNumbersRepeat, ruleOf(t, ValidateTicketNumbers(joinInts(dup...))))
		}
	}
}

func TestValidateBetCount(t *testing.T) {
	for n := -50; n <= 150; n++ {
		err := ValidateBetCount(fmt.Sprint(n))
		if n >= 1 && n <= 100 {
			assert.NoError(t, err, "bet count %d", n)
		} else {
			assert.Equal(t, messages.BetCountRange, ruleOf(t, err), "bet count %d", n)
		}
	}

	assert.Error(t, ValidateBetCount(""))
	assert.Error(t, ValidateBetCount("2.5"))
	assert.Error(t, ValidateBetCount("ten"))
}

func TestValidateTicket(t *testing.T) {
	random := models.TicketForm{TicketType: "random", Numbers: "garbage", BetCount: "3"}
	assert.NoError(t, ValidateTicket(random), "numbers are ignored for random tickets")

	manual := models.TicketForm{TicketType: "manual", Numbers: "1,2,3,4,5,6", BetCount: "0"}
	assert.Equal(t, messages.TicketNumbersCount, ruleOf(t, ValidateTicket(manual)), "numbers are checked first")

	manual.Numbers = "1,2,3,4,5,6,7"
	assert.Equal(t, messages.BetCountRange, ruleOf(t, ValidateTicket(manual)))
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"13000000000", "13912345678", "15800001111", "19999999999"}
	invalid := []string{
		"", "1380013800", "138001380000", "12800138000", "11800138000",
		"23800138000", "1380013800a", "+8613800138000",
	}

	for _, phone := range valid {
		req := &models.RegisterRequest{Username: "alice", Password: "secret1", Phone: phone}
		assert.NoError(t, ValidateRegistration(req), phone)
	}
	for _, phone := range invalid {
		req := &models.RegisterRequest{Username: "alice", Password: "secret1", Phone: phone}
		assert.Equal(t, messages.PhoneInvalid, ruleOf(t, ValidateRegistration(req)), phone)
	}
}

func TestValidateRegistrationOrder(t *testing.T) {
	tests := []struct {
		description string
		request     models.RegisterRequest
		rule        string
	}{
		{"everything wrong reports username", models.RegisterRequest{Username: "ab", Password: "1", Phone: "1"}, messages.UsernameLength},
		{"username too long", models.RegisterRequest{Username: strings.Repeat("a", 21), Password: "secret1", Phone: "13800138000"}, messages.UsernameLength},
		{"short password before phone", models.RegisterRequest{Username: "alice", Password: "12345", Phone: "1"}, messages.PasswordLength},
		{"boundary values accepted", models.RegisterRequest{Username: "abc", Password: "123456", Phone: "13800138000"}, ""},
		{"twenty characters accepted", models.RegisterRequest{Username: strings.Repeat("b", 20), Password: "123456", Phone: "13800138000"}, ""},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			err := ValidateRegistration(&test.request)
			if test.rule == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, test.rule, ruleOf(t, err))
		})
	}
}

func TestValidateRechargeAmount(t *testing.T) {
	amount, err := ValidateRechargeAmount(" 50.5 ")
	require.NoError(t, err)
	assert.Equal(t, 50.5, amount)

	for _, raw := range []string{"", "0", "-3", "abc", "NaN", "Inf"} {
		_, err := ValidateRechargeAmount(raw)
		assert.Equal(t, messages.RechargeAmount, ruleOf(t, err), raw)
	}
}

func TestSanitizeNumberInput(t *testing.T) {
	tests := []struct {
		raw     string
		value   string
		flagged bool
	}{
		{"12", "12", false},
		{"1a2", "12", false},
		{"abc", "", false},
		{"", "", false},
		{"37", "37", true},
		{"0", "0", true},
		{"-5", "5", false},
		{"99999999999999999999999", "99999999999999999999999", true},
	}

	for _, test := range tests {
		value, flagged := SanitizeNumberInput(test.raw)
		assert.Equal(t, test.value, value, test.raw)
		assert.Equal(t, test.flagged, flagged, test.raw)
	}
}
