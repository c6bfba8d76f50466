package ports

import (
	"context"

	"github.com/emon00007/easysubstech/internal/core/domain"
)

// PaymentRepository defines persistence operations for payment records.
type PaymentRepository interface {
	Insert(ctx context.Context, p *domain.Payment) error
	FindAll(ctx context.Context) ([]*domain.Payment, error)
	FindByEmail(ctx context.Context, email string) ([]*domain.Payment, error)
}
