package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/outbox"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type writerMock struct {
	mock.Mock
}

func (m *writerMock) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *writerMock) Close() error {
	args := m.Called()
	return args.Error(0)
}

type EventPublisherSuite struct {
	suite.Suite
	wm *writerMock
	p  *EventPublisher
}

func (s *EventPublisherSuite) SetupTest() {
	s.wm = &writerMock{}
	s.p = newEventPublisherWithWriter(s.wm, "orders.changed")
}

func (s *EventPublisherSuite) TestNewEventPublisher_NotNil() {
	s.Require().NotNil(NewEventPublisher([]string{"localhost:0"}, "t"))
}

func (s *EventPublisherSuite) TestNewWriter_FlushesWithoutWaitingForBatch() {
	w := newWriter([]string{"localhost:0"})
	defer func() { _ = w.Close() }()

	s.Equal(publishBatchTimeout, w.BatchTimeout)
	s.Less(w.BatchTimeout, 100*time.Millisecond)
	s.IsType(&kafka.Hash{}, w.Balancer)
}

func (s *EventPublisherSuite) TestPublish_KeyedByOrder() {
	msg := outbox.Message{
		ID:          kernel.NewUUID(),
		AggregateID: kernel.NewUUID(),
		EventType:   "order.finalized",
		Payload:     []byte(`{"type":"order.finalized"}`),
		OccurredAt:  time.Now().UTC(),
	}

	s.wm.
		On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
			if len(msgs) != 1 {
				return false
			}
			m := msgs[0]
			return m.Topic == "orders.changed" &&
				string(m.Key) == msg.AggregateID.String() &&
				string(m.Value) == string(msg.Payload) &&
				len(m.Headers) == 2 &&
				string(m.Headers[1].Value) == "order.finalized"
		})).
		Return(nil).
		Once()

	s.Require().NoError(s.p.Publish(context.Background(), msg))
	s.wm.AssertExpectations(s.T())
}

func (s *EventPublisherSuite) TestPublish_NothingToSend() {
	s.Require().NoError(s.p.Publish(context.Background()))
	s.wm.AssertNotCalled(s.T(), "WriteMessages", mock.Anything, mock.Anything)
}

func (s *EventPublisherSuite) TestPublish_ErrorWrapped() {
	want := errors.New("boom")
	s.wm.On("WriteMessages", mock.Anything, mock.Anything).Return(want).Once()

	err := s.p.Publish(context.Background(), outbox.Message{ID: kernel.NewUUID(), AggregateID: kernel.NewUUID()})
	s.Require().Error(err)
	s.Require().ErrorIs(err, want)
	s.Require().Contains(err.Error(), "kafka publish")
}

func (s *EventPublisherSuite) TestClose() {
	s.wm.On("Close").Return(nil).Once()

	s.Require().NoError(s.p.Close())
	s.wm.AssertExpectations(s.T())
}

func TestEventPublisherSuite(t *testing.T) {
	suite.Run(t, new(EventPublisherSuite))
}
