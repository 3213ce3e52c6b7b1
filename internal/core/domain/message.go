package domain

// IncomingMessage - входящее сообщение из транспорта диалога
type IncomingMessage struct {
	ChatID   int64
	Username string
	Text     string
}

// CaptchaPuzzle - сгенерированная капча: ожидаемый ответ и PNG-картинка.
// Живет только внутри CaptchaState владеющего диалога.
type CaptchaPuzzle struct {
	Answer string
	Image  []byte
}
