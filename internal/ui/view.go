package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Lipgloss styles
var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
)

// View 实现 tea.Model
func (m *Model) View() string {
	var b strings.Builder

	switch m.phase {
	case PhaseConnecting:
		b.WriteString("正在连接服务器...")

	case PhaseJoinForm:
		b.WriteString(titleStyle.Render("🌍 terra-societies"))
		b.WriteString("\n\n")
		b.WriteString(m.roomInput.View())
		b.WriteString("\n")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("tab 切换输入框 · enter 加入房间 · ctrl+c 退出"))

	case PhaseInRoom:
		b.WriteString(m.viewRoom())
	}

	if m.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errText))
	}

	return docStyle.Render(b.String())
}

// viewRoom 房间视图：花名册、放置光标与事件日志
func (m *Model) viewRoom() string {
	var b strings.Builder

	w, d := m.mapSize()
	b.WriteString(titleStyle.Render(fmt.Sprintf("🌍 房间 %s", m.room.RoomID)))
	b.WriteString(helpStyle.Render(fmt.Sprintf("  地形 %d×%d", w, d)))
	b.WriteString("\n\n")

	// 花名册，每个玩家用其社会颜色渲染
	var roster strings.Builder
	roster.WriteString("玩家\n")
	for _, p := range m.room.Players {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Society.Color))
		marker := "  "
		if p.PlayerID == m.playerID {
			marker = "➤ "
		}
		roster.WriteString(fmt.Sprintf("%s%s (%d 建筑)\n",
			marker, style.Render(p.DisplayName), len(p.Society.Buildings)))
	}
	b.WriteString(boxStyle.Render(strings.TrimRight(roster.String(), "\n")))
	b.WriteString("\n\n")

	b.WriteString(cursorStyle.Render(fmt.Sprintf("光标 (%d, %d) 高度 %.1f",
		m.cursorX, m.cursorZ, m.heightAt(m.cursorX, m.cursorZ))))
	b.WriteString("\n")

	if len(m.feed) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(m.feed, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("方向键移动 · 1 总部 · 2 发电厂 · q 退出"))
	return b.String()
}
