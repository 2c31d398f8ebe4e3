//go:build !production

package testutil

import (
	"github.com/palemoky/terra-societies/internal/protocol"
)

// SimpleClient 简单的 mock 客户端，不使用 testify（用于不需要断言交互的测试）
type SimpleClient struct {
	ID       string
	Messages []*protocol.Message
	Closed   bool
}

func (c *SimpleClient) GetID() string                     { return c.ID }
func (c *SimpleClient) SendMessage(msg *protocol.Message) { c.Messages = append(c.Messages, msg) }
func (c *SimpleClient) Close()                            { c.Closed = true }

// MessagesOfType 返回收到的指定类型消息
func (c *SimpleClient) MessagesOfType(msgType protocol.MessageType) []*protocol.Message {
	var out []*protocol.Message
	for _, m := range c.Messages {
		if m.Type == msgType {
			out = append(out, m)
		}
	}
	return out
}
