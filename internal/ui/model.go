package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/terra-societies/internal/game/world"
	"github.com/palemoky/terra-societies/internal/network/client"
	"github.com/palemoky/terra-societies/internal/protocol"
)

// 建筑放置日志保留条数
const maxFeedLines = 8

// Model 终端客户端的 bubbletea 模型
type Model struct {
	phase Phase
	net   *client.Client

	// 加入表单
	roomInput textinput.Model
	nameInput textinput.Model
	focusName bool

	// 房间状态（来自服务端权威事件）
	playerID string
	room     *world.Room

	// 放置光标
	cursorX, cursorZ int

	// 建筑放置日志
	feed []string

	errText string
	width   int
}

// NewModel 创建模型，netClient 须已连接
func NewModel(netClient *client.Client) *Model {
	roomInput := textinput.New()
	roomInput.Placeholder = "房间号（任意字符串，同时是加入码）"
	roomInput.CharLimit = 32
	roomInput.Focus()

	nameInput := textinput.New()
	nameInput.Placeholder = "昵称"
	nameInput.CharLimit = 24

	return &Model{
		phase:     PhaseJoinForm,
		net:       netClient,
		roomInput: roomInput,
		nameInput: nameInput,
	}
}

// Init 实现 tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update 实现 tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ServerMessage:
		return m.handleServerMessage(msg.Msg)

	case ConnectionErrorMsg:
		m.errText = fmt.Sprintf("连接错误: %v", msg.Err)
		return m, nil

	case ConnectionClosedMsg:
		return m, tea.Quit
	}

	return m, m.updateInputs(msg)
}

// handleKey 处理按键
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.phase == PhaseInRoom || msg.String() == "ctrl+c" {
			m.net.Close()
			return m, tea.Quit
		}
	}

	switch m.phase {
	case PhaseJoinForm:
		return m.handleJoinFormKey(msg)
	case PhaseInRoom:
		return m.handleRoomKey(msg)
	}
	return m, nil
}

// handleJoinFormKey 加入表单按键
func (m *Model) handleJoinFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusName = !m.focusName
		if m.focusName {
			m.roomInput.Blur()
			m.nameInput.Focus()
		} else {
			m.nameInput.Blur()
			m.roomInput.Focus()
		}
		return m, nil

	case "enter":
		roomID := m.roomInput.Value()
		name := m.nameInput.Value()
		if roomID == "" || name == "" {
			m.errText = "房间号和昵称不能为空"
			return m, nil
		}
		m.errText = ""
		if err := m.net.JoinRoom(roomID, name); err != nil {
			m.errText = fmt.Sprintf("发送失败: %v", err)
		}
		return m, nil
	}

	return m, m.updateInputs(msg)
}

// handleRoomKey 房间内按键：方向键移动光标，数字键放置建筑
func (m *Model) handleRoomKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w, d := m.mapSize()

	switch msg.String() {
	case "left", "h":
		if m.cursorX > 0 {
			m.cursorX--
		}
	case "right", "l":
		if m.cursorX < w-1 {
			m.cursorX++
		}
	case "up", "k":
		if m.cursorZ > 0 {
			m.cursorZ--
		}
	case "down", "j":
		if m.cursorZ < d-1 {
			m.cursorZ++
		}
	case "1":
		return m, m.place(world.BuildingHeadQuarters)
	case "2":
		return m, m.place(world.BuildingPowerPlant)
	}
	return m, nil
}

// place 在光标处请求放置建筑，位置 y 取地形高度
func (m *Model) place(buildingType world.BuildingType) tea.Cmd {
	if m.room == nil {
		return nil
	}
	pos := world.Vector3{
		X: float64(m.cursorX),
		Y: m.heightAt(m.cursorX, m.cursorZ),
		Z: float64(m.cursorZ),
	}
	if err := m.net.PlaceBuilding(m.playerID, m.room.RoomID, buildingType, pos); err != nil {
		m.errText = fmt.Sprintf("发送失败: %v", err)
	}
	return nil
}

// handleServerMessage 处理服务端事件
func (m *Model) handleServerMessage(msg *protocol.Message) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case protocol.MsgRoomJoined:
		payload, err := protocol.ParsePayload[protocol.RoomJoinedPayload](msg)
		if err != nil {
			return m, nil
		}
		m.playerID = payload.PlayerID
		m.room = payload.RoomState
		m.phase = PhaseInRoom
		m.errText = ""

	case protocol.MsgRoomJoinError:
		var text string
		if payload, err := protocol.ParsePayload[string](msg); err == nil {
			text = *payload
		}
		m.errText = text

	case protocol.MsgNewPlayerJoinedRoom:
		payload, err := protocol.ParsePayload[protocol.NewPlayerJoinedPayload](msg)
		if err != nil || m.room == nil {
			return m, nil
		}
		m.room.Players = append(m.room.Players, payload.Player)
		m.pushFeed(fmt.Sprintf("👤 %s 加入了房间", payload.Player.DisplayName))

	case protocol.MsgServerAddedBuilding:
		payload, err := protocol.ParsePayload[protocol.BuildingAddedPayload](msg)
		if err != nil || m.room == nil {
			return m, nil
		}
		// 自己的放置同样由权威广播驱动，不做乐观更新
		if player := m.room.FindPlayer(payload.PlayerID); player != nil {
			player.Society.Buildings = append(player.Society.Buildings, payload.BuildingInstance)
			b := payload.BuildingInstance
			m.pushFeed(fmt.Sprintf("🏗️  %s 在 (%.0f, %.0f) 放置了 %s",
				player.DisplayName, b.Position.X, b.Position.Z, b.BuildingType))
		}
	}
	return m, nil
}

// pushFeed 追加一条日志，超出上限时丢弃最旧的
func (m *Model) pushFeed(line string) {
	m.feed = append(m.feed, line)
	if len(m.feed) > maxFeedLines {
		m.feed = m.feed[len(m.feed)-maxFeedLines:]
	}
}

// mapSize 从几何数据推导方形地图边长
func (m *Model) mapSize() (int, int) {
	if m.room == nil || m.room.MapGeometry == nil {
		return 1, 1
	}
	n := int(math.Round(math.Sqrt(float64(len(m.room.MapGeometry.Vertices) / 3))))
	if n < 1 {
		n = 1
	}
	return n, n
}

// heightAt 取网格单元的地形高度
func (m *Model) heightAt(x, z int) float64 {
	w, d := m.mapSize()
	if m.room == nil || m.room.MapGeometry == nil || x < 0 || z < 0 || x >= w || z >= d {
		return 0
	}
	return float64(m.room.MapGeometry.Vertices[(z*w+x)*3+1])
}

// updateInputs 转发消息给文本输入框
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.roomInput, cmd = m.roomInput.Update(msg)
	cmds = append(cmds, cmd)
	m.nameInput, cmd = m.nameInput.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}
