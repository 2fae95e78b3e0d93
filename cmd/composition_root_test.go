package cmd_test

import (
	"bytes"
	"log/slog"
	"testing"

	"printflow/cmd"
	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_EndToEnd(t *testing.T) {
	ctx := t.Context()
	app, err := cmd.NewCompositionRoot(cmd.DefaultConfig(), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	require.NoError(t, err)
	require.NoError(t, app.SeedDemoOrders(ctx))

	adminSession := app.NewSession()
	admin, err := adminSession.Login(ctx, "admin@printflow.com", "admin123")
	require.NoError(t, err)

	clientSession := app.NewSession()
	client, err := clientSession.Login(ctx, "client@example.com", "client123")
	require.NoError(t, err)

	_, err = app.NewSession().Login(ctx, "admin@printflow.com", "wrong")
	require.ErrorIs(t, err, errs.ErrAuthentication)

	createCmd, err := commands.NewCreateOrderCommand(admin, order.NewOrderPayload{
		ProjectName: "Flyers Q1",
		Specifications: order.SpecificationsInput{
			Type: "Flyers", Size: "Standard", Quantity: 250, PaperType: "Glossy", Color: true,
		},
		ClientID: "2",
	})
	require.NoError(t, err)
	create := app.CreateCreateOrderCommandHandler()
	created, err := create.Handle(ctx, createCmd)
	require.NoError(t, err)
	assert.Equal(t, "1003", created.ID())

	printing := order.Printing
	updateCmd, err := commands.NewUpdateOrderCommand(admin, created.ID(), order.Patch{Status: &printing})
	require.NoError(t, err)
	update := app.CreateUpdateOrderCommandHandler()
	updated, err := update.Handle(ctx, updateCmd)
	require.NoError(t, err)
	assert.Equal(t, order.Printing, updated.Status())

	trackCmd, err := commands.NewAddTrackingNumberCommand(admin, created.ID(), "1Z999AA1234567891")
	require.NoError(t, err)
	track := app.CreateAddTrackingNumberCommandHandler()
	_, err = track.Handle(ctx, trackCmd)
	require.NoError(t, err)

	untrackCmd, err := commands.NewRemoveTrackingNumberCommand(admin, created.ID(), 0)
	require.NoError(t, err)
	untrack := app.CreateRemoveTrackingNumberCommandHandler()
	untracked, err := untrack.Handle(ctx, untrackCmd)
	require.NoError(t, err)
	assert.Empty(t, untracked.TrackingNumbers())

	listQuery, err := queries.NewListOrdersQuery(client)
	require.NoError(t, err)
	listed, err := app.CreateListOrdersQueryHandler().Handle(ctx, listQuery)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "1003", listed[0].ID())

	getQuery, err := queries.NewGetOrderQuery(client, "1003")
	require.NoError(t, err)
	got, err := app.CreateGetOrderQueryHandler().Handle(ctx, getQuery)
	require.NoError(t, err)
	assert.Equal(t, order.Printing, got.Status())

	summaryQuery, err := queries.NewGetStatusSummaryQuery(admin)
	require.NoError(t, err)
	summary, err := app.CreateGetStatusSummaryQueryHandler().Handle(ctx, summaryQuery)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Count(order.Printing))

	jobManager, err := app.CreateJobManager()
	require.NoError(t, err)
	require.NoError(t, jobManager.StartAll())
	jobManager.StopAll()

	count, err := testutil.GatherAndCount(app.MetricsGatherer(), "printflow_orders_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
