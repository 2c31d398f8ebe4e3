package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/terra-societies/internal/config"
	"github.com/palemoky/terra-societies/internal/game/room"
	"github.com/palemoky/terra-societies/internal/network/server/handlers"
	"github.com/palemoky/terra-societies/internal/network/server/session"
	"github.com/palemoky/terra-societies/internal/network/server/storage"
	"github.com/palemoky/terra-societies/internal/network/server/types"
	"github.com/palemoky/terra-societies/internal/protocol"
)

// Server WebSocket 服务器
type Server struct {
	config      *config.Config
	redis       *redis.Client
	store       *storage.RedisStore
	roomManager *room.Manager
	sessions    *session.Manager
	handler     *handlers.Handler

	originChecker *OriginChecker
	upgrader      websocket.Upgrader

	clients   map[string]*Client
	clientsMu sync.RWMutex

	httpServer *http.Server
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config) (*Server, error) {
	s := &Server{
		config:        cfg,
		roomManager:   room.NewManager(cfg.Terrain),
		sessions:      session.NewManager(),
		clients:       make(map[string]*Client),
		originChecker: NewOriginChecker(cfg.Server.AllowedOrigins),
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.originChecker.Check,
	}

	// Redis 可选：未配置地址时禁用统计与房间镜像
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis 连接失败: %w", err)
		}

		s.redis = rdb
		s.store = storage.NewRedisStore(rdb)
	} else {
		log.Println("ℹ️  未配置 Redis，统计与房间镜像已禁用")
	}

	// 初始化消息处理器
	s.handler = handlers.NewHandler(s)

	return s, nil
}

// Start 启动服务器
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/", s.handleIndex)

	log.Printf("🚀 服务器启动在 ws://%s/ws", addr)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second, // 防止 Slowloris 攻击
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown 优雅关闭
func (s *Server) Shutdown() {
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
	}

	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clientsMu.Unlock()

	if s.redis != nil {
		_ = s.redis.Close()
	}
}

// handleWebSocket 处理 WebSocket 连接
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket 升级失败: %v", err)
		return
	}

	client := NewClient(s, conn)
	s.registerClient(client)

	client.SendMessage(protocol.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		SessionID: client.ID,
	}))

	log.Printf("✅ 会话 %s 已连接", client.ID)

	// 启动客户端读写协程
	go client.ReadPump()
	go client.WritePump()
}

// handleIndex 状态页
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	addr := fmt.Sprintf("http://%s:%d", s.config.Server.Host, s.config.Server.Port)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `
    <h1 style="text-align: center; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;">
      Server is running at
      <a href="%s">
        %s
      </a>
    </h1>
    <p style="text-align: center;">%d 在线 · %d 房间</p>
    `, addr, addr, s.GetOnlineCount(), s.roomManager.RoomCount())
}

// handleHealth 健康检查接口
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// registerClient 注册客户端
func (s *Server) registerClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client.ID] = client
}

// unregisterClient 注销客户端
func (s *Server) unregisterClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if _, ok := s.clients[client.ID]; ok {
		delete(s.clients, client.ID)
		log.Printf("❌ 会话 %s 已断开", client.ID)
	}
}

// --- types.ServerContext 实现 ---

// GetRoomManager 返回房间注册表
func (s *Server) GetRoomManager() types.RoomManagerInterface {
	return s.roomManager
}

// GetSessions 返回会话绑定表
func (s *Server) GetSessions() types.SessionsInterface {
	return s.sessions
}

// GetStore 返回存储层，未配置 Redis 时为 nil
func (s *Server) GetStore() types.StoreInterface {
	if s.store == nil {
		return nil
	}
	return s.store
}
