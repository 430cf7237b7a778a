package client

import "context"

type QueueMessage struct {
	Body    string
	Receipt string
}

// QueueClient is a single-queue message client. Receipts identify a received
// message for acknowledgement.
type QueueClient interface {
	SendMessage(ctx context.Context, messageBody string) error
	ReceiveMessages() (<-chan QueueMessage, error)
	DeleteMessage(receipt string) error
	Ping() error
	Stop() error
	GetQueueName() string
}

func NewQueueClient(url, user, password, queueName string) (QueueClient, error) {
	return NewRabbitMqClient(url, user, password, queueName)
}
