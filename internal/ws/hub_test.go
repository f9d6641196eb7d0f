package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/dto"
	pkgauth "github.com/rojahomes/rentmarket/pkg/auth"
)

type stubSender struct {
	senderID   int
	receiverID int
	content    string
	deliver    func(*domain.Message)
}

func (s *stubSender) Send(_ context.Context, senderID, receiverID int, content string) (*domain.Message, error) {
	s.senderID = senderID
	s.receiverID = receiverID
	s.content = content
	message := &domain.Message{
		ID: 1, SenderID: senderID, ReceiverID: receiverID,
		Content: content, SentAt: time.Now(),
	}
	if s.deliver != nil {
		s.deliver(message)
	}
	return message, nil
}

func dial(t *testing.T, serverURL string, userID int) *websocket.Conn {
	t.Helper()
	token, err := (&pkgauth.JWTService{}).GenerateJWT(userID, domain.UserTypeTenant, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.NoError(t, err)
	return conn
}

func TestHubDeliversIncomingFrames(t *testing.T) {
	hub := NewHub()
	sender := &stubSender{}
	hub.SetSender(sender)
	// the chat service pushes to the receiver once the row is stored
	sender.deliver = func(m *domain.Message) { hub.Push(m.ReceiverID, m) }

	server := httptest.NewServer(hub)
	defer server.Close()

	alice := dial(t, server.URL, 1)
	defer alice.Close()
	bob := dial(t, server.URL, 2)
	defer bob.Close()

	err := alice.WriteJSON(dto.SendMessageRequestDTO{ReceiverID: 2, Content: "viewing at 3pm?"})
	assert.NoError(t, err)

	var received dto.MessageResponseDTO
	bob.SetReadDeadline(time.Now().Add(2 * time.Second))
	assert.NoError(t, bob.ReadJSON(&received))
	assert.Equal(t, 1, received.SenderID)
	assert.Equal(t, 2, received.ReceiverID)
	assert.Equal(t, "viewing at 3pm?", received.Content)

	// the sender's own tabs get an echo of the stored message
	var echo dto.MessageResponseDTO
	alice.SetReadDeadline(time.Now().Add(2 * time.Second))
	assert.NoError(t, alice.ReadJSON(&echo))
	assert.Equal(t, "viewing at 3pm?", echo.Content)

	assert.Equal(t, 1, sender.senderID)
	assert.Equal(t, 2, sender.receiverID)
}

func TestHubDropsMalformedFrames(t *testing.T) {
	hub := NewHub()
	sender := &stubSender{}
	hub.SetSender(sender)

	server := httptest.NewServer(hub)
	defer server.Close()

	alice := dial(t, server.URL, 1)
	defer alice.Close()

	// no receiver: nothing persisted, the connection stays up
	assert.NoError(t, alice.WriteMessage(websocket.TextMessage, []byte(`{"content":"hello"}`)))
	assert.NoError(t, alice.WriteJSON(dto.SendMessageRequestDTO{ReceiverID: 2, Content: "still here"}))

	var echo dto.MessageResponseDTO
	alice.SetReadDeadline(time.Now().Add(2 * time.Second))
	assert.NoError(t, alice.ReadJSON(&echo))
	assert.Equal(t, "still here", echo.Content)
	assert.Equal(t, "still here", sender.content)
}

func TestHubRejectsMissingToken(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(hub)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.Error(t, err)
	if resp != nil {
		assert.Equal(t, 401, resp.StatusCode)
	}
}
