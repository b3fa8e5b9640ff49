package rabbitmq

import (
	"errors"
	"testing"

	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
)

type recordingAcknowledger struct {
	acked   []uint64
	nacked  []uint64
	requeue []bool
}

func (r *recordingAcknowledger) Ack(tag uint64, multiple bool) error {
	r.acked = append(r.acked, tag)
	return nil
}

func (r *recordingAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	r.nacked = append(r.nacked, tag)
	r.requeue = append(r.requeue, requeue)
	return nil
}

func (r *recordingAcknowledger) Reject(tag uint64, requeue bool) error {
	return nil
}

func TestDispatchAcksHandledDeliveries(t *testing.T) {
	ack := &recordingAcknowledger{}
	msgs := make(chan amqp.Delivery, 2)
	msgs <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Type: "product.created"}
	msgs <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Type: "product.deleted"}
	close(msgs)

	var seen []string
	dispatch(msgs, func(msg amqp.Delivery) error {
		seen = append(seen, msg.Type)
		return nil
	})

	assert.Equal(t, []string{"product.created", "product.deleted"}, seen)
	assert.Equal(t, []uint64{1, 2}, ack.acked)
	assert.Empty(t, ack.nacked)
}

func TestDispatchRequeuesFailedDeliveries(t *testing.T) {
	ack := &recordingAcknowledger{}
	msgs := make(chan amqp.Delivery, 2)
	msgs <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Type: "product.updated"}
	msgs <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Type: "product.created"}
	close(msgs)

	dispatch(msgs, func(msg amqp.Delivery) error {
		if msg.DeliveryTag == 1 {
			return errors.New("handler failed")
		}
		return nil
	})

	assert.Equal(t, []uint64{1}, ack.nacked)
	assert.Equal(t, []bool{true}, ack.requeue)
	assert.Equal(t, []uint64{2}, ack.acked)
}
