package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/terra-societies/internal/network/client"
	"github.com/palemoky/terra-societies/internal/protocol"
	"github.com/palemoky/terra-societies/internal/ui"
)

func main() {
	serverURL := flag.String("server", "ws://localhost:4257/ws", "服务器地址")
	flag.Parse()

	netClient := client.NewClient(*serverURL)
	if err := netClient.Connect(); err != nil {
		log.Fatalf("连接服务器失败: %v", err)
	}

	model := ui.NewModel(netClient)
	program := tea.NewProgram(model, tea.WithAltScreen())

	// 服务端事件转发到 UI
	netClient.OnMessage = func(msg *protocol.Message) {
		program.Send(ui.ServerMessage{Msg: msg})
	}
	netClient.OnError = func(err error) {
		program.Send(ui.ConnectionErrorMsg{Err: err})
	}
	netClient.OnClose = func() {
		program.Send(ui.ConnectionClosedMsg{})
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "客户端退出: %v\n", err)
		os.Exit(1)
	}
}
