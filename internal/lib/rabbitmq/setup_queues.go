package rabbitmq

// QueueConfig описывает очередь и ключ маршрутизации для ее привязки.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetRegistrationQueues возвращает очереди обработки событий регистрации.
func GetRegistrationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "registration.welcome", RoutingKey: "registered"},
		// при необходимости дополнительные очереди для других воркеров
	}
}
