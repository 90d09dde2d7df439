package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/WaseemSyawish/lingua/internal/config"
	"github.com/WaseemSyawish/lingua/pkg/monitoring"
)

// AIService 封装对 OpenAI 兼容接口的调用
// 配置支持热更新，所有读取都经过读锁
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// UpdateConfig 配置热加载入口
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.client.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
}

func (s *AIService) currentConfig() config.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Model 当前对话模型名，普通会话创建时固定到会话上
func (s *AIService) Model() string {
	return s.currentConfig().Model
}

// AnalysisModel 当前分析模型名，定级会话和会话分析使用
func (s *AIService) AnalysisModel() string {
	return s.currentConfig().AnalysisModel
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
	Stream   bool            `json:"stream,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
		Delta   AIChatMessage `json:"delta"` // 流式响应
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ChatStream 发起流式对话，aiModel 是会话创建时固定的模型名，
// 为空时退回当前配置的对话模型；system 为完整系统提示词，history 已按时间排序
// 返回的两个通道都会在流结束后关闭
func (s *AIService) ChatStream(ctx context.Context, aiModel, system string, history []AIChatMessage) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)

	cfg := s.currentConfig()
	if aiModel == "" {
		aiModel = cfg.Model
	}

	messages := make([]AIChatMessage, 0, len(history)+1)
	messages = append(messages, AIChatMessage{Role: "system", Content: system})
	messages = append(messages, history...)

	reqBody := chatCompletionRequest{
		Model:    aiModel,
		Messages: messages,
		Stream:   true,
	}
	jsonData, _ := json.Marshal(reqBody)

	go func() {
		defer close(out)
		defer close(errChan)

		start := time.Now()
		outcome := "success"
		defer func() {
			monitoring.OracleRequestDuration.WithLabelValues("chat_stream", outcome).
				Observe(time.Since(start).Seconds())
		}()

		req, err := http.NewRequestWithContext(ctx, "POST", cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
		if err != nil {
			outcome = "error"
			errChan <- err
			return
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

		resp, err := s.client.Do(req)
		if err != nil {
			outcome = "error"
			errChan <- err
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			outcome = "error"
			errChan <- fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
			return
		}

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err != io.EOF {
					outcome = "error"
					errChan <- err
				}
				break
			}

			line = strings.TrimSpace(line)
			if line == "" || !strings.HasPrefix(line, "data: ") {
				continue
			}

			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				break
			}

			var streamResp chatCompletionResponse
			if err := json.Unmarshal([]byte(data), &streamResp); err != nil {
				continue
			}

			if len(streamResp.Choices) > 0 {
				content := streamResp.Choices[0].Delta.Content
				if content != "" {
					select {
					case out <- content:
					case <-ctx.Done():
						outcome = "canceled"
						errChan <- ctx.Err()
						return
					}
				}
			}
		}
	}()

	return out, errChan
}

// Complete 非流式调用，用于会话分析和定级评估
func (s *AIService) Complete(ctx context.Context, model string, prompt string) (string, error) {
	cfg := s.currentConfig()
	if model == "" {
		model = cfg.AnalysisModel
	}

	start := time.Now()
	outcome := "success"
	defer func() {
		monitoring.OracleRequestDuration.WithLabelValues("complete", outcome).
			Observe(time.Since(start).Seconds())
	}()

	reqBody := chatCompletionRequest{
		Model: model,
		Messages: []AIChatMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		outcome = "error"
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		outcome = "error"
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		outcome = "error"
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		outcome = "error"
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		outcome = "error"
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	outcome = "error"
	return "", fmt.Errorf("AI returned no choices")
}
