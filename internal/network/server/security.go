package server

import (
	"net/http"
	"net/url"
	"strings"
)

// OriginChecker 校验 WebSocket 握手的 Origin 头。
// 允许列表为空时放行所有来源（仅限开发环境）。
type OriginChecker struct {
	allowed map[string]bool
}

// NewOriginChecker 创建来源校验器
func NewOriginChecker(origins []string) *OriginChecker {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[strings.TrimSuffix(o, "/")] = true
	}
	return &OriginChecker{allowed: allowed}
}

// Check 校验请求来源
func (oc *OriginChecker) Check(r *http.Request) bool {
	if len(oc.allowed) == 0 {
		return true
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		// 非浏览器客户端（如终端客户端）不携带 Origin
		return true
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return oc.allowed[u.Scheme+"://"+u.Host]
}
