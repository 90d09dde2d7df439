package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Store 按key限流的显式存储：每个key一个令牌桶加最后活跃时间。
// 时钟通过 WithClock 注入，过期清理由 Sweep 显式驱动，
// 不依赖隐藏的全局状态，可以脱离墙上时钟测试。
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry

	maxRequests int
	window      time.Duration
	ttl         time.Duration
	now         func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type Option func(*Store)

// WithClock 注入时间源，测试用
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithTTL 覆盖条目过期时间，默认窗口的3倍（至少1分钟）
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

func NewStore(maxRequests int, window time.Duration, opts ...Option) *Store {
	ttl := window * 3
	if ttl < time.Minute {
		ttl = time.Minute
	}
	s := &Store{
		entries:     make(map[string]*entry),
		maxRequests: maxRequests,
		window:      window,
		ttl:         ttl,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Allow 判定key在当前窗口内是否还有配额
func (s *Store) Allow(key string) bool {
	now := s.now()

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		e = &entry{
			limiter: rate.NewLimiter(rate.Every(s.window/time.Duration(s.maxRequests)), s.maxRequests),
		}
		s.entries[key] = e
	}
	e.lastSeen = now
	s.mu.Unlock()

	return e.limiter.AllowN(now, 1)
}

// Sweep 清理超过TTL未活跃的条目，返回清理数量
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len 当前存活条目数
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartSweeper 周期清理，收到stop后退出
func (s *Store) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-stop:
				return
			}
		}
	}()
}

// Middleware 按客户端IP限流的gin中间件，keyPrefix区分不同路由组的配额
func Middleware(store *Store, keyPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyPrefix + ":" + c.ClientIP()
		if !store.Allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
