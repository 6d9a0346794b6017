//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"credlens/internal/audit"
	auditkafka "credlens/internal/audit/kafka"
	id "credlens/pkg/domain"
	"credlens/pkg/testutil/containers"
)

type KafkaPublisherSuite struct {
	suite.Suite
	redpanda  *containers.RedpandaContainer
	publisher *auditkafka.Publisher
	topic     string
}

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redpanda = mgr.GetRedpanda(s.T())
	s.topic = "credlens.audit.test"

	publisher, err := auditkafka.NewPublisher(context.Background(), s.redpanda.Brokers, s.topic)
	s.Require().NoError(err)
	s.publisher = publisher
}

func (s *KafkaPublisherSuite) TearDownSuite() {
	if s.publisher != nil {
		s.publisher.Close()
	}
}

func (s *KafkaPublisherSuite) TestPublishRoundTrip() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userID := id.NewUserID()
	event := audit.Event{
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
		UserID:    userID,
		Action:    audit.ActionScoreCalculated,
		Subject:   "*******4455",
		Decision:  "clear",
		RequestID: "req-integration",
	}
	s.Require().NoError(s.publisher.Publish(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.redpanda.Brokers...),
		kgo.ConsumeTopics(s.topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().NoError(fetches.Err())

	records := fetches.Records()
	s.Require().NotEmpty(records)

	var consumed audit.Event
	s.Require().NoError(json.Unmarshal(records[0].Value, &consumed))
	s.Equal(event.Action, consumed.Action)
	s.Equal(event.Subject, consumed.Subject)
	s.Equal(userID.String(), string(records[0].Key), "events are keyed by user id")
}

func (s *KafkaPublisherSuite) TestPublisherIsIdempotentOnExistingTopic() {
	// A second publisher against the same topic must not fail topic creation.
	second, err := auditkafka.NewPublisher(context.Background(), s.redpanda.Brokers, s.topic)
	s.Require().NoError(err)
	second.Close()
}
