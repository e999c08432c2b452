package bot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/voyage-finance/ask-server/service"
	"gotest.tools/v3/assert"
)

type fakeCompleter struct {
	content string
	err     error
	calls   int
}

func (f *fakeCompleter) Complete(context.Context, string) (string, error) {
	f.calls++
	return f.content, f.err
}

func newService(t *testing.T, c service.Completer) *service.Service {
	t.Helper()
	s, err := service.New(c, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NilError(t, err)
	return s
}

func TestReply(t *testing.T) {
	tests := []struct {
		name      string
		completer *fakeCompleter
		command   string
		args      string
		want      string
		wantCalls int
	}{
		{name: "help", completer: &fakeCompleter{}, command: "help", want: HelpText},
		{name: "start", completer: &fakeCompleter{}, command: "start", want: HelpText},
		{name: "unknown", completer: &fakeCompleter{}, command: "balance", want: UnknownCommandText},
		{name: "answer", completer: &fakeCompleter{content: "Paris"}, command: "ask", args: "Capital of France?", want: "Paris", wantCalls: 1},
		{name: "fallback", completer: &fakeCompleter{}, command: "ask", args: "?", want: service.FallbackAnswer, wantCalls: 1},
		{name: "blank", completer: &fakeCompleter{content: "unused"}, command: "ask", args: "  ", want: "Question is required"},
		{
			name:      "upstream failure",
			completer: &fakeCompleter{err: &service.UpstreamStatusError{StatusCode: 401, Message: "Incorrect API key"}},
			command:   "ask",
			args:      "?",
			want:      "Sorry, I'm having trouble processing your request right now.",
			wantCalls: 1,
		},
		{
			name:      "transport failure",
			completer: &fakeCompleter{err: errors.New("connection refused")},
			command:   "ask",
			args:      "?",
			want:      "Sorry, I'm having trouble processing your request right now.",
			wantCalls: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reply(context.Background(), newService(t, tt.completer), tt.command, tt.args)
			assert.Equal(t, got, tt.want)
			assert.Equal(t, tt.completer.calls, tt.wantCalls)
		})
	}
}

func command(text string, chatType string) *tgbotapi.Message {
	m := &tgbotapi.Message{Text: text, Chat: &tgbotapi.Chat{ID: 1, Type: chatType}}
	if len(text) > 0 && text[0] == '/' {
		end := len(text)
		for i, r := range text {
			if r == ' ' {
				end = i
				break
			}
		}
		m.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: end}}
	}
	return m
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		msg      *tgbotapi.Message
		wantCmd  string
		wantArgs string
		wantOK   bool
	}{
		{name: "command with args", msg: command("/ask Why is the sky blue?", "group"), wantCmd: "ask", wantArgs: "Why is the sky blue?", wantOK: true},
		{name: "command alone", msg: command("/help", "group"), wantCmd: "help", wantOK: true},
		{name: "private text", msg: command("Why is the sky blue?", "private"), wantCmd: "ask", wantArgs: "Why is the sky blue?", wantOK: true},
		{name: "group text", msg: command("Why is the sky blue?", "group"), wantOK: false},
		{name: "private blank", msg: command("   ", "private"), wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, ok := Parse(tt.msg)
			assert.Equal(t, ok, tt.wantOK)
			assert.Equal(t, cmd, tt.wantCmd)
			assert.Equal(t, args, tt.wantArgs)
		})
	}
}
