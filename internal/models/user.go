// Package models содержит доменную модель пользователя системы,
// включающую анкетные данные, хэш пароля и дату создания записи.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           string    // Идентификатор, производный от времени создания
	FirstName    string    // Имя
	LastName     string    // Фамилия
	Email        string    // Электронная почта в нижнем регистре (уникальная)
	PhoneNumber  *string   // Телефон в формате 01XXXXXXXXX, опционально
	Gender       string    // Пол, свободная форма
	Birthdate    *string   // Дата рождения в формате ISO, опционально
	District     *string   // Район проживания, опционально
	BloodGroup   *string   // Группа крови, опционально
	PasswordHash string    // Хэш пароля пользователя
	Photo        *string   // Фотография как data URI, опционально
	CreatedAt    time.Time // Время создания записи
}

// SignupEvent — событие успешной регистрации, публикуемое в брокер сообщений
// для асинхронной отправки приветственного письма.
type SignupEvent struct {
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	CreatedAt time.Time `json:"created_at"`
}
