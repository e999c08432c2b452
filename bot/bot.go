// Package bot exposes the answer service as a Telegram bot.
package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/voyage-finance/ask-server/service"
	"golang.org/x/exp/slices"
)

const (
	HelpText = `Commands:
	/ask <question>: ask anything
	/help: show this message
In a private chat you can also just send the question.`
	UnknownCommandText = "I don't know that command"
)

var helpCommands = []string{"help", "start"}

type Bot struct {
	API *tgbotapi.BotAPI
	S   *service.Service
}

func New(token string, s *service.Service) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connecting to telegram: %w", err)
	}
	return &Bot{API: api, S: s}, nil
}

// Start polls for updates and answers them one at a time until ctx is done.
func (b *Bot) Start(ctx context.Context) {
	b.S.Logger.Info("bot authorized", "account", b.API.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.API.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.API.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil { // ignore non-Message updates
				continue
			}
			command, args, ok := Parse(update.Message)
			if !ok {
				continue
			}
			msg := tgbotapi.NewMessage(update.Message.Chat.ID, Reply(ctx, b.S, command, args))
			msg.ReplyToMessageID = update.Message.MessageID
			if _, err := b.API.Send(msg); err != nil {
				b.S.Logger.Error("sending bot message", "chat", update.Message.Chat.ID, "error", err)
			}
		}
	}
}

// Parse extracts the command and its arguments. Plain text in a private
// chat is treated as /ask; plain text elsewhere is ignored.
func Parse(m *tgbotapi.Message) (string, string, bool) {
	if m.IsCommand() {
		return m.Command(), m.CommandArguments(), true
	}
	if m.Chat != nil && m.Chat.IsPrivate() && strings.TrimSpace(m.Text) != "" {
		return "ask", m.Text, true
	}
	return "", "", false
}

// Reply produces the text sent back for a command.
func Reply(ctx context.Context, s *service.Service, command, args string) string {
	switch {
	case slices.Contains(helpCommands, command):
		return HelpText
	case command == "ask":
		answer, err := s.Ask(ctx, args)
		if err == nil {
			return answer
		}
		if service.KindOf(err) == service.KindValidation {
			return service.QuestionRequiredMessage
		}
		return service.GenericErrorMessage
	default:
		return UnknownCommandText
	}
}
