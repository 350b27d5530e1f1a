package sms

import (
	"testing"
	"time"

	"github.com/durgas/budgetai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var parseNow = time.Date(2024, time.June, 15, 8, 0, 0, 0, time.UTC)

func TestParseMessage(t *testing.T) {
	msgDate := time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		msg          Message
		wantErr      bool
		wantAmount   float64
		wantKind     model.TransactionKind
		wantCategory model.Category
		wantDesc     string
	}{
		{
			name:         "debit with merchant and category keyword",
			msg:          Message{Body: "Rs 450.00 debited from A/c XX1234 at SWIGGY on 10-06-2024", Date: msgDate, Type: TypeInbox},
			wantAmount:   450,
			wantKind:     model.KindExpense,
			wantCategory: model.CategoryFood,
			wantDesc:     "SWIGGY",
		},
		{
			name:         "credit with comma grouped amount",
			msg:          Message{Body: "INR 50,000 salary credited to your account", Date: msgDate, Type: TypeInbox},
			wantAmount:   50000,
			wantKind:     model.KindIncome,
			wantCategory: model.CategorySalary,
		},
		{
			name:         "dollar purchase falls back to other_expense",
			msg:          Message{Body: "You spent $9.99 via card ending 4242", Date: msgDate, Type: TypeInbox},
			wantAmount:   9.99,
			wantKind:     model.KindExpense,
			wantCategory: model.CategoryOtherExpense,
		},
		{
			name:         "refund is income",
			msg:          Message{Body: "Refund of Rs 300 received from AMAZON", Date: msgDate, Type: TypeInbox},
			wantAmount:   300,
			wantKind:     model.KindIncome,
			wantCategory: model.CategoryOtherIncome,
		},
		{
			name:    "no amount",
			msg:     Message{Body: "Your OTP is 482910", Date: msgDate, Type: TypeInbox},
			wantErr: true,
		},
		{
			name:    "amount without transaction keyword",
			msg:     Message{Body: "Get a loan of Rs 50000 today!", Date: msgDate, Type: TypeInbox},
			wantErr: true,
		},
		{
			name:    "sent messages are ignored",
			msg:     Message{Body: "I paid Rs 200 at the cafe", Date: msgDate, Type: TypeSent},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := ParseMessage(tt.msg, parseNow)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoTransactionData)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, txn.ID)
			assert.InDelta(t, tt.wantAmount, txn.Amount, 0.001)
			assert.Equal(t, tt.wantKind, txn.Kind)
			assert.Equal(t, tt.wantCategory, txn.Category)
			if tt.wantDesc != "" {
				assert.Equal(t, tt.wantDesc, txn.Description)
			}
			assert.Equal(t, msgDate, txn.OccurredAt)
			assert.Equal(t, parseNow, txn.CreatedAt)
			assert.NoError(t, txn.Validate())
		})
	}
}

func TestParseMessage_ZeroDateFallsBackToNow(t *testing.T) {
	txn, err := ParseMessage(Message{Body: "Rs 100 debited at store", Type: TypeInbox}, parseNow)
	require.NoError(t, err)
	assert.Equal(t, parseNow, txn.OccurredAt)
}

func TestExtractTransactions(t *testing.T) {
	messages := testMessages()
	transactions, skipped := ExtractTransactions(messages, parseNow)

	// The sent message and nothing else gets skipped.
	assert.Equal(t, 1, skipped)
	require.Len(t, transactions, 3)

	var expenses, incomes int
	for _, txn := range transactions {
		switch txn.Kind {
		case model.KindExpense:
			expenses++
		case model.KindIncome:
			incomes++
		}
	}
	assert.Equal(t, 2, expenses)
	assert.Equal(t, 1, incomes)
}
