package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"platform-stats/internal/shared/svcerrors"
	streammocks "platform-stats/internal/streams/mocks"
)

func TestBatchEventsHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProducer := streammocks.NewMockStatEventProducer(ctrl)
	handler := NewBatchEventsHandler(mockProducer)

	body := []byte(`[
		{"type":"message_sent","dimensions":{"governorate":"CAI"}},
		{"type":"complaint_submitted","dimensions":{"governorate":"GIZ"}}
	]`)
	req := httptest.NewRequest(http.MethodPost, "/events/batch", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	mockProducer.EXPECT().
		ProduceBatch(gomock.Any(), gomock.Len(2)).
		Return(2, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.JSONEq(t, `{"accepted":2}`, rr.Body.String())
}

func TestBatchEventsHandler_Handle_EmptyBatch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProducer := streammocks.NewMockStatEventProducer(ctrl)
	handler := NewBatchEventsHandler(mockProducer)

	req := httptest.NewRequest(http.MethodPost, "/events/batch", bytes.NewReader([]byte(`[]`)))
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "API_1000", svcErr.Code)
}

func TestBatchEventsHandler_Handle_InvalidJSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProducer := streammocks.NewMockStatEventProducer(ctrl)
	handler := NewBatchEventsHandler(mockProducer)

	req := httptest.NewRequest(http.MethodPost, "/events/batch", bytes.NewReader([]byte(`{"not":"an array"}`)))
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "API_1000", svcErr.Code)
}
