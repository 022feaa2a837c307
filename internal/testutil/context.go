package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// FakeContext is a minimal tele.Context for handler tests.
// Calling a method it does not override panics.
type FakeContext struct {
	tele.Context

	ChatValue     *tele.Chat
	SenderValue   *tele.User
	CallbackValue *tele.Callback

	Sent      []interface{}
	Responded int
}

func (c *FakeContext) Chat() *tele.Chat {
	return c.ChatValue
}

func (c *FakeContext) Sender() *tele.User {
	return c.SenderValue
}

func (c *FakeContext) Callback() *tele.Callback {
	return c.CallbackValue
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.Responded++
	return nil
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, what)
	return nil
}

// LastSent returns the last text sent through the context
func (c *FakeContext) LastSent() string {
	if len(c.Sent) == 0 {
		return ""
	}
	s, _ := c.Sent[len(c.Sent)-1].(string)
	return s
}
