package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/amrhamedpage/shams-web-platform/internal/domain/cart"
	"github.com/amrhamedpage/shams-web-platform/internal/domain/payment"
	"github.com/amrhamedpage/shams-web-platform/internal/domain/product"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) InitiatePayment(ctx context.Context, req *payment.InitiateRequest) (*payment.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Session), args.Error(1)
}

func (m *mockGateway) ProcessPayment(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

func (m *mockGateway) GetSession(ctx context.Context, sessionID string) (*payment.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Session), args.Error(1)
}

func newTestService(t *testing.T) (*Service, *cart.Service, *mockGateway, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &config.Config{
		Cart: config.CartConfig{
			SessionTTL:    time.Hour,
			EnforceStock:  true,
			UpdateRetries: 3,
		},
	}

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	products := product.NewService(nil, cfg, logger)
	cartService := cart.NewService(client, products, cfg, logger)
	gateway := &mockGateway{}

	return NewService(client, cartService, gateway, cfg, logger), cartService, gateway, client
}

func pendingSession(id string, amount int64, method payment.Method) *payment.Session {
	now := time.Now().UTC()
	return &payment.Session{
		SessionID: id,
		Status:    payment.StatusPending,
		Amount:    amount,
		Currency:  "SAR",
		Method:    method,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestGetState_FreshSessionStartsAtMethodSelection(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	state, err := svc.GetState(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Equal(t, StateMethodSelection, state.State)
	assert.Empty(t, state.PaymentSessionID)
}

func TestSubmitPayment_EmptyCart(t *testing.T) {
	svc, _, gateway, _ := newTestService(t)

	_, err := svc.SubmitPayment(context.Background(), "sess-1", payment.MethodMada)

	assert.ErrorIs(t, err, ErrEmptyCart)
	gateway.AssertNotCalled(t, "InitiatePayment", mock.Anything, mock.Anything)
}

func TestSubmitPayment_InvalidMethod(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.SubmitPayment(context.Background(), "sess-1", payment.Method("cheque"))

	assert.ErrorIs(t, err, payment.ErrInvalidMethod)
}

func TestSubmitPayment_SuccessPath(t *testing.T) {
	svc, cartService, gateway, _ := newTestService(t)
	ctx := context.Background()

	// 2x 12.50 + 1x 85.00 = 110.00 SAR
	_, err := cartService.AddItem(ctx, "sess-1", &cart.AddItemRequest{ProductID: "1", Quantity: 2})
	require.NoError(t, err)
	_, err = cartService.AddItem(ctx, "sess-1", &cart.AddItemRequest{ProductID: "2"})
	require.NoError(t, err)

	session := pendingSession("pay_abc", 11000, payment.MethodMada)
	resolved := *session
	resolved.Status = payment.StatusSuccess

	gateway.On("InitiatePayment", mock.Anything, mock.MatchedBy(func(req *payment.InitiateRequest) bool {
		return req.Amount == 11000 && req.Method == payment.MethodMada && req.IdempotencyKey != ""
	})).Return(session, nil)
	gateway.On("ProcessPayment", mock.Anything, "pay_abc").Return(true, nil)
	gateway.On("GetSession", mock.Anything, "pay_abc").Return(&resolved, nil)

	result, err := svc.SubmitPayment(ctx, "sess-1", payment.MethodMada)
	require.NoError(t, err)

	assert.Equal(t, StateSuccess, result.State)
	assert.True(t, result.Succeeded)
	require.NotNil(t, result.PaymentSession)
	assert.Equal(t, payment.StatusSuccess, result.PaymentSession.Status)
	assert.Equal(t, int64(11000), result.PaymentSession.Amount)

	// State persists as success and the cart is emptied
	state, err := svc.GetState(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StateSuccess, state.State)

	cleared, err := cartService.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, cleared.Items)

	gateway.AssertExpectations(t)
}

func TestSubmitPayment_DeclinedReturnsToMethodSelection(t *testing.T) {
	svc, cartService, gateway, _ := newTestService(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, "sess-1", &cart.AddItemRequest{ProductID: "1"})
	require.NoError(t, err)

	session := pendingSession("pay_declined", 1250, payment.MethodCard)
	gateway.On("InitiatePayment", mock.Anything, mock.Anything).Return(session, nil)
	gateway.On("ProcessPayment", mock.Anything, "pay_declined").Return(false, nil)

	result, err := svc.SubmitPayment(ctx, "sess-1", payment.MethodCard)
	require.NoError(t, err)

	assert.Equal(t, StateMethodSelection, result.State)
	assert.False(t, result.Succeeded)
	assert.NotEmpty(t, result.FailureMessage)
	assert.Nil(t, result.PaymentSession)

	// Failure is non-terminal: the flow is back at method_selection with the
	// cart intact, ready for a retry
	state, err := svc.GetState(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StateMethodSelection, state.State)
	assert.NotEmpty(t, state.FailureMessage)

	kept, err := cartService.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, kept.Items, 1)

	// Success state was never produced for this attempt
	gateway.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)
}

func TestSubmitPayment_InitiationFailure(t *testing.T) {
	svc, cartService, gateway, _ := newTestService(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, "sess-1", &cart.AddItemRequest{ProductID: "1"})
	require.NoError(t, err)

	gateway.On("InitiatePayment", mock.Anything, mock.Anything).Return(nil, errors.New("provider unreachable"))

	_, err = svc.SubmitPayment(ctx, "sess-1", payment.MethodMada)
	require.Error(t, err)

	// No payment session means ProcessPayment can never have been issued
	gateway.AssertNotCalled(t, "ProcessPayment", mock.Anything, mock.Anything)

	state, err := svc.GetState(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StateMethodSelection, state.State)
}

func TestSubmitPayment_ConcurrentAttemptsOpenOneSession(t *testing.T) {
	svc, cartService, gateway, _ := newTestService(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, "sess-1", &cart.AddItemRequest{ProductID: "1"})
	require.NoError(t, err)

	session := pendingSession("pay_slow", 1250, payment.MethodMada)
	resolved := *session
	resolved.Status = payment.StatusSuccess

	// Park the first attempt inside the gateway so the second attempt arrives
	// while the first still holds the processing slot
	entered := make(chan struct{})
	release := make(chan struct{})
	gateway.On("InitiatePayment", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		close(entered)
		<-release
	}).Return(session, nil).Once()
	gateway.On("ProcessPayment", mock.Anything, "pay_slow").Return(true, nil)
	gateway.On("GetSession", mock.Anything, "pay_slow").Return(&resolved, nil)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.SubmitPayment(ctx, "sess-1", payment.MethodMada)
		firstDone <- err
	}()

	<-entered
	_, err = svc.SubmitPayment(ctx, "sess-1", payment.MethodMada)
	assert.ErrorIs(t, err, ErrPaymentInFlight)

	close(release)
	require.NoError(t, <-firstDone)

	gateway.AssertNumberOfCalls(t, "InitiatePayment", 1)
}

func TestSubmitPayment_RejectsWhileProcessing(t *testing.T) {
	svc, cartService, gateway, _ := newTestService(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, "sess-1", &cart.AddItemRequest{ProductID: "1"})
	require.NoError(t, err)

	require.NoError(t, svc.saveState(ctx, &Checkout{
		SessionID:        "sess-1",
		State:            StateProcessing,
		PaymentSessionID: "pay_inflight",
	}))

	_, err = svc.SubmitPayment(ctx, "sess-1", payment.MethodMada)

	assert.ErrorIs(t, err, ErrPaymentInFlight)
	gateway.AssertNotCalled(t, "InitiatePayment", mock.Anything, mock.Anything)
}

func TestSubmitPayment_PriceChangedRejectsAttempt(t *testing.T) {
	svc, cartService, gateway, client := newTestService(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, "sess-1", &cart.AddItemRequest{ProductID: "1"})
	require.NoError(t, err)

	// Age the snapshot so revalidation trips
	require.NoError(t, stalePrice(ctx, client, "sess-1", "1", 999))

	_, err = svc.SubmitPayment(ctx, "sess-1", payment.MethodMada)

	var priceErr *PriceChangedError
	require.ErrorAs(t, err, &priceErr)
	require.Len(t, priceErr.Mismatches, 1)
	assert.Equal(t, int64(999), priceErr.Mismatches[0].CartPrice)
	assert.Equal(t, int64(1250), priceErr.Mismatches[0].CatalogPrice)

	// No money is moved on a price change
	gateway.AssertNotCalled(t, "InitiatePayment", mock.Anything, mock.Anything)

	// The refresh happened, so the next attempt uses live prices
	session := pendingSession("pay_retry", 1250, payment.MethodMada)
	resolved := *session
	resolved.Status = payment.StatusSuccess
	gateway.On("InitiatePayment", mock.Anything, mock.MatchedBy(func(req *payment.InitiateRequest) bool {
		return req.Amount == 1250
	})).Return(session, nil)
	gateway.On("ProcessPayment", mock.Anything, "pay_retry").Return(true, nil)
	gateway.On("GetSession", mock.Anything, "pay_retry").Return(&resolved, nil)

	result, err := svc.SubmitPayment(ctx, "sess-1", payment.MethodMada)
	require.NoError(t, err)
	assert.True(t, result.Succeeded)
}

func TestSubmitPayment_RetryAfterDeclineSucceeds(t *testing.T) {
	svc, cartService, gateway, _ := newTestService(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, "sess-1", &cart.AddItemRequest{ProductID: "2"})
	require.NoError(t, err)

	first := pendingSession("pay_1", 8500, payment.MethodMada)
	second := pendingSession("pay_2", 8500, payment.MethodApplePay)
	resolved := *second
	resolved.Status = payment.StatusSuccess

	gateway.On("InitiatePayment", mock.Anything, mock.MatchedBy(func(req *payment.InitiateRequest) bool {
		return req.Method == payment.MethodMada
	})).Return(first, nil).Once()
	gateway.On("ProcessPayment", mock.Anything, "pay_1").Return(false, nil).Once()
	gateway.On("InitiatePayment", mock.Anything, mock.MatchedBy(func(req *payment.InitiateRequest) bool {
		return req.Method == payment.MethodApplePay
	})).Return(second, nil).Once()
	gateway.On("ProcessPayment", mock.Anything, "pay_2").Return(true, nil).Once()
	gateway.On("GetSession", mock.Anything, "pay_2").Return(&resolved, nil)

	declined, err := svc.SubmitPayment(ctx, "sess-1", payment.MethodMada)
	require.NoError(t, err)
	require.False(t, declined.Succeeded)

	// The shopper picks a different method and retries
	succeeded, err := svc.SubmitPayment(ctx, "sess-1", payment.MethodApplePay)
	require.NoError(t, err)
	assert.True(t, succeeded.Succeeded)
	assert.Equal(t, StateSuccess, succeeded.State)

	gateway.AssertExpectations(t)
}

// stalePrice rewrites a stored line's snapshot price directly in Redis
func stalePrice(ctx context.Context, client *redis.Client, sessionID, productID string, price int64) error {
	key := "cart:session:" + sessionID
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	var stored cart.SessionCart
	if err := json.Unmarshal(data, &stored); err != nil {
		return err
	}
	for i := range stored.Items {
		if stored.Items[i].ProductID == productID {
			stored.Items[i].UnitPrice = price
		}
	}
	out, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, out, time.Hour).Err()
}
