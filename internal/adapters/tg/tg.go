package tg

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/larriantoniy/tg_invest_bot/internal/domain"
	"github.com/zelenin/go-tdlib/client"
)

// TelegramClient реализует ports.TelegramClient через TDLib (бот-токен)
type TelegramClient struct {
	client *client.Client
	logger *slog.Logger
	selfId int64
}

func NewBotClient(
	apiID int32,
	apiHash string,
	botToken string,
	baseDir string,
	log *slog.Logger,
) (*TelegramClient, error) {
	dbDir := filepath.Join(baseDir, "database")
	filesDir := filepath.Join(baseDir, "files")

	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := os.MkdirAll(filesDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir files dir: %w", err)
	}

	if _, err := client.SetLogVerbosityLevel(&client.SetLogVerbosityLevelRequest{
		NewVerbosityLevel: 1,
	}); err != nil {
		log.Error("TDLib SetLogVerbosityLevel", "error", err)
	}

	tdParams := &client.SetTdlibParametersRequest{
		DatabaseDirectory:  dbDir,
		FilesDirectory:     filesDir,
		UseMessageDatabase: false,
		UseSecretChats:     false,
		ApiId:              apiID,
		ApiHash:            apiHash,
		SystemLanguageCode: "en",
		DeviceModel:        "Server",
		SystemVersion:      "1.0",
		ApplicationVersion: "1.0",
	}

	authorizer := client.BotAuthorizer(tdParams, botToken)

	tdCli, err := client.NewClient(authorizer)
	if err != nil {
		log.Error("TDLib NewClient error", "error", err)
		return nil, err
	}

	me, err := tdCli.GetMe()
	if err != nil {
		log.Error("GetMe failed", "error", err)
		return nil, err
	}

	log.Info("TDLib bot client initialized", "self_id", me.Id)

	return &TelegramClient{
		client: tdCli,
		logger: log,
		selfId: me.Id,
	}, nil
}

// Реализация ports.TelegramClient:

func (t *TelegramClient) Close() {
	t.client.Close()
}

func (t *TelegramClient) SendText(chatID int64, text string) error {
	return t.sendMessage(chatID, text, nil)
}

// SendKeyboard отправляет сообщение с reply-клавиатурой, кнопки в один столбец
func (t *TelegramClient) SendKeyboard(chatID int64, text string, buttons []string) error {
	rows := make([][]*client.KeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, []*client.KeyboardButton{{
			Text: b,
			Type: &client.KeyboardButtonTypeText{},
		}})
	}
	return t.sendMessage(chatID, text, &client.ReplyMarkupShowKeyboard{
		Rows:           rows,
		ResizeKeyboard: true,
	})
}

func (t *TelegramClient) RemoveKeyboard(chatID int64, text string) error {
	return t.sendMessage(chatID, text, &client.ReplyMarkupRemoveKeyboard{})
}

func (t *TelegramClient) sendMessage(chatID int64, text string, markup client.ReplyMarkup) error {
	// TDLib требует, чтобы чат был известен клиенту перед отправкой
	if _, err := t.client.GetChat(&client.GetChatRequest{ChatId: chatID}); err != nil {
		if _, err := t.client.CreatePrivateChat(&client.CreatePrivateChatRequest{UserId: chatID}); err != nil {
			t.logger.Debug("CreatePrivateChat failed", "chat_id", chatID, "error", err)
		}
	}

	_, err := t.client.SendMessage(&client.SendMessageRequest{
		ChatId: chatID,
		InputMessageContent: &client.InputMessageText{
			Text: &client.FormattedText{Text: text},
		},
		ReplyMarkup: markup,
	})
	if err != nil {
		return fmt.Errorf("send message to %d: %w", chatID, err)
	}
	return nil
}

// Listen возвращает канал доменных сообщений из TDLib и запускает обработку обновлений
func (t *TelegramClient) Listen() (<-chan domain.Message, error) {
	out := make(chan domain.Message)

	listener := t.client.GetListener()
	go func() {
		defer close(out)
		for update := range listener.Updates {
			upd, ok := update.(*client.UpdateNewMessage)
			if !ok {
				continue
			}
			msg, ok := t.toDomainMessage(upd)
			if !ok {
				continue
			}
			out <- msg
		}
	}()

	return out, nil
}

func (t *TelegramClient) toDomainMessage(upd *client.UpdateNewMessage) (domain.Message, bool) {
	if upd.Message.IsOutgoing {
		return domain.Message{}, false
	}

	content, ok := upd.Message.Content.(*client.MessageText)
	if !ok {
		t.logger.Debug("skip non-text update", "content_type", upd.Message.Content.MessageContentType())
		return domain.Message{}, false
	}

	senderID := upd.Message.ChatId
	if sender, ok := upd.Message.SenderId.(*client.MessageSenderUser); ok {
		senderID = sender.UserId
	}

	return domain.Message{
		ChatID:   upd.Message.ChatId,
		SenderID: senderID,
		Text:     content.Text.Text,
	}, true
}
