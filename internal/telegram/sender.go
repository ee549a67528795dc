package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Sender sends plain text messages to a chat. It is the transport half the
// notification dispatcher needs (satisfies notify.Sender).
type Sender struct {
	bot *tgbotapi.BotAPI
}

func NewSender(bot *tgbotapi.BotAPI) *Sender {
	return &Sender{bot: bot}
}

func (s *Sender) SendMessage(chatID int64, text string) error {
	_, err := s.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
