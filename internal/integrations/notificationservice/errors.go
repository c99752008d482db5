package notificationservice

import "errors"

var (
	// ErrNoRecipients возвращается при попытке отправить уведомление без получателей
	ErrNoRecipients = errors.New("notificationservice client: no recipients")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notificationservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("notificationservice client: invalid response")
)
