package sms

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/durgas/budgetai/internal/model"
	"github.com/google/uuid"
)

// ErrNoTransactionData indicates a message body carries no recognizable
// transaction.
var ErrNoTransactionData = errors.New("no transaction data in message")

var (
	amountPattern = regexp.MustCompile(`(?i)(?:INR|USD|EUR|Rs\.?|\$)\s*([0-9]+(?:,[0-9]{3})*(?:\.[0-9]{1,2})?)`)
	debitPattern  = regexp.MustCompile(`(?i)\b(debited|spent|paid|purchase[d]?|withdrawn|charged)\b`)
	creditPattern = regexp.MustCompile(`(?i)\b(credited|received|deposited|refund(?:ed)?)\b`)
	payeePattern  = regexp.MustCompile(`(?i)\b(?:at|to|from)\s+([A-Za-z0-9&'. -]{2,40}?)(?:\s+on\b|\s+via\b|[.,]|$)`)
)

// defaultDetector classifies expense messages. The defaults are exercised
// in tests, so a compile failure here is a programming error.
var defaultDetector = mustCategoryDetector(DefaultCategoryPatterns())

// ParseMessage extracts a transaction from a single message body. Only
// inbox messages are considered; everything else, and any body without an
// amount and a debit/credit keyword, fails with ErrNoTransactionData.
func ParseMessage(msg Message, now time.Time) (*model.Transaction, error) {
	if msg.Type != TypeInbox {
		return nil, ErrNoTransactionData
	}

	amountMatch := amountPattern.FindStringSubmatch(msg.Body)
	if amountMatch == nil {
		return nil, ErrNoTransactionData
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(amountMatch[1], ",", ""), 64)
	if err != nil {
		return nil, ErrNoTransactionData
	}

	var kind model.TransactionKind
	switch {
	case debitPattern.MatchString(msg.Body):
		kind = model.KindExpense
	case creditPattern.MatchString(msg.Body):
		kind = model.KindIncome
	default:
		return nil, ErrNoTransactionData
	}

	description := "SMS transaction"
	if payee := payeePattern.FindStringSubmatch(msg.Body); payee != nil {
		description = strings.TrimSpace(payee[1])
	}

	occurred := msg.Date
	if occurred.IsZero() {
		occurred = now
	}

	return &model.Transaction{
		ID:          uuid.NewString(),
		Amount:      amount,
		Kind:        kind,
		Category:    categorize(msg.Body, kind),
		Description: description,
		OccurredAt:  occurred,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ExtractTransactions runs ParseMessage over a batch. Messages without
// transaction data are counted and skipped; one bad message never fails the
// batch.
func ExtractTransactions(messages []Message, now time.Time) ([]model.Transaction, int) {
	var (
		transactions []model.Transaction
		skipped      int
	)
	for _, msg := range messages {
		txn, err := ParseMessage(msg, now)
		if err != nil {
			skipped++
			continue
		}
		transactions = append(transactions, *txn)
	}
	return transactions, skipped
}

func categorize(body string, kind model.TransactionKind) model.Category {
	lower := strings.ToLower(body)

	if kind == model.KindIncome {
		if strings.Contains(lower, "salary") {
			return model.CategorySalary
		}
		return model.CategoryOtherIncome
	}

	if category, ok := defaultDetector.Detect(body); ok {
		return category
	}
	return model.CategoryOtherExpense
}
