package memory

import (
	"context"
	"time"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/ports"
)

// DemoOrders returns the two sample orders of the portal demo, both owned by client "2".
func DemoOrders() ([]*order.Order, error) {
	report, err := order.NewSpecifications("Brochures", "Standard", 500, "Premium", true)
	if err != nil {
		return nil, err
	}
	cards, err := order.NewSpecifications("Business Cards", "Standard", 1000, "Matte", true)
	if err != nil {
		return nil, err
	}

	annual, err := order.RestoreOrder("1001", "2", order.Completed, "Annual Report 2024", report,
		time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 5, 16, 0, 0, 0, time.UTC),
		[]string{"1Z999AA1234567890"},
		"Client requested rush delivery",
	)
	if err != nil {
		return nil, err
	}
	marketing, err := order.RestoreOrder("1002", "2", order.Printing, "Business Cards - Marketing Team", cards,
		time.Date(2024, 3, 10, 10, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 12, 15, 0, 0, 0, time.UTC),
		nil,
		"",
	)
	if err != nil {
		return nil, err
	}

	return []*order.Order{annual, marketing}, nil
}

// SeedDemoOrders adds DemoOrders in one transaction, oldest first, so the
// store lists them most recent first and new identifiers continue after 1002.
func SeedDemoOrders(ctx context.Context, factory ports.UnitOfWorkFactory) error {
	orders, err := DemoOrders()
	if err != nil {
		return err
	}

	uow := factory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	for _, o := range orders {
		if err = repo.Add(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
