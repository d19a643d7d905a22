// Package rabbitmq содержит вспомогательные функции для работы с брокером сообщений:
// подключение с ретраями, объявление обменника и очередей, публикацию и потребление сообщений.
package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// RegistrationExchange — обменник для событий регистрации пользователей.
const RegistrationExchange = "registration.events"

// Connect устанавливает соединение с RabbitMQ, повторяя попытки при неудаче.
func Connect(url string, maxRetries int, retryDelay time.Duration) (*amqp.Connection, error) {
	const op = "rabbitmq.Connect"
	var conn *amqp.Connection
	var err error
	for range maxRetries {
		conn, err = amqp.Dial(url)
		if err == nil {
			return conn, nil
		}
		time.Sleep(retryDelay)
	}
	return nil, fmt.Errorf("%s: %w", op, err)
}

// SetupChannel открывает канал, объявляет обменник и очереди из конфигурации
// и привязывает их по ключам маршрутизации.
func SetupChannel(conn *amqp.Connection, queues []QueueConfig) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = ch.ExchangeDeclare(RegistrationExchange, "direct", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, q := range queues {
		if _, err = ch.QueueDeclare(q.QueueName, true, false, false, false, nil); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = ch.QueueBind(q.QueueName, q.RoutingKey, RegistrationExchange, false, nil); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return ch, nil
}

// ConsumerMessage запускает потребителя очереди и передает тело каждого сообщения
// в handler. Сообщение подтверждается только после успешной обработки.
func ConsumerMessage(ctx context.Context, ch *amqp.Channel, queueName string, handler func([]byte) error) error {
	const op = "rabbitmq.ConsumerMessage"
	msgs, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if err := handler(msg.Body); err != nil {
					_ = msg.Nack(false, true)
					continue
				}
				_ = msg.Ack(false)
			}
		}
	}()
	return nil
}
