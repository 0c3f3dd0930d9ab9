package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/entity"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// TransactionOutput is the use-case level view of a transaction.
type TransactionOutput struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Type        entity.TransactionType
	Amount      int64
	Currency    money.Code
	Description string
	Category    string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toTransactionOutput(tx *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:          tx.ID,
		CompanyID:   tx.CompanyID,
		Type:        tx.Type,
		Amount:      tx.Amount,
		Currency:    tx.Currency,
		Description: tx.Description,
		Category:    tx.Category,
		Date:        tx.Date,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

func toTransactionOutputs(txs []*entity.Transaction) []*TransactionOutput {
	outputs := make([]*TransactionOutput, 0, len(txs))
	for _, tx := range txs {
		outputs = append(outputs, toTransactionOutput(tx))
	}
	return outputs
}
