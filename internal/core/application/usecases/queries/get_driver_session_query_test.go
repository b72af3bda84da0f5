package queries_test

import (
	"testing"
	"time"

	"stockyard/internal/core/application/usecases/queries"
	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/core/domain/model/flow"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/session"
	"stockyard/internal/core/domain/services"
	"stockyard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDriverSessionQuery(t *testing.T) {
	_, err := queries.NewGetDriverSessionQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	assert.ErrorIs(t, queries.GetDriverSessionQuery{}.Validate(), queries.ErrGetDriverSessionQueryIsNotConstructed)
}

func TestGetDriverSessionQueryHandler_Handle(t *testing.T) {
	start := time.Date(2026, 10, 15, 7, 0, 0, 0, time.UTC)
	reg := registry{"AB-123-CD": "Acme Corp"}
	issuer := services.NewDocumentIssuer()

	t.Run("should show welcome step without document", func(t *testing.T) {
		ctx := t.Context()
		s, err := session.NewSession(kernel.NewUUID(), reg, start)
		require.NoError(t, err)
		sessions := new(MockSessionRepository)
		sessions.On("Get", ctx, s.ID()).Return(s, nil).Once()

		h := queries.NewGetDriverSessionQueryHandler(sessions, issuer)
		query, _ := queries.NewGetDriverSessionQuery(s.ID())
		resp, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, flow.Welcome, resp.Step)
		assert.Equal(t, flow.TriggerChooseAction, resp.Triggers.Forward)
		assert.False(t, resp.Triggers.Previous)
		assert.Nil(t, resp.Document)
		assert.Equal(t, start, resp.StartedAt)
	})

	t.Run("should issue the delivery note at the end", func(t *testing.T) {
		ctx := t.Context()
		s, err := session.NewSession(kernel.NewUUID(), reg, start)
		require.NoError(t, err)
		gravel, err := catalog.NewProduct(catalog.ProductParams{
			ID: "1", Name: "Premium Gravel", Description: "gravel", StockyardArea: "Stockyard Area A", Availability: catalog.Available,
		})
		require.NoError(t, err)

		at := start
		for _, e := range []flow.Event{
			flow.ChooseAction{Action: flow.Pickup},
			flow.ConfirmIdentity{NumberPlate: "AB-123-CD", CustomerName: "Acme Corp", GrossWeight: kernel.MustNewWeight(1650)},
			flow.ChooseAddress{Address: flow.NoAddress()},
			flow.ChooseProducts{Products: []catalog.Product{gravel}},
			flow.SetQuantities{Quantities: map[string]float64{"1": 20}},
			flow.ConfirmPreload{OrderID: kernel.NewUUID()},
			flow.ConfirmWeighIn{LoadedWeight: kernel.MustNewWeight(2850)},
		} {
			at = at.Add(time.Second)
			_, err := s.Fire(e, nil, at)
			require.NoError(t, err)
		}

		sessions := new(MockSessionRepository)
		sessions.On("Get", ctx, s.ID()).Return(s, nil).Twice()

		h := queries.NewGetDriverSessionQueryHandler(sessions, issuer)
		query, _ := queries.NewGetDriverSessionQuery(s.ID())
		first, err := h.Handle(ctx, query)
		require.NoError(t, err)
		second, err := h.Handle(ctx, query)
		require.NoError(t, err)

		assert.Equal(t, flow.DeliveryNote, first.Step)
		require.NotNil(t, first.Document)
		assert.Equal(t, services.DeliveryNoteDocument, first.Document.Kind)
		assert.Equal(t, first.Document.Number, second.Document.Number)
		assert.InDelta(t, 1200.0, first.Document.NetWeight.Kilograms(), 0)
	})

	t.Run("should report unknown session", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		sessions := new(MockSessionRepository)
		sessions.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("session", id)).Once()

		h := queries.NewGetDriverSessionQueryHandler(sessions, issuer)
		query, _ := queries.NewGetDriverSessionQuery(id)
		_, err := h.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
