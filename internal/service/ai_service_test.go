package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WaseemSyawish/lingua/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStreamServer 模拟 OpenAI 流式接口，记录请求中携带的模型名
func newStreamServer(t *testing.T, gotModel *string, deltas []string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		*gotModel = req.Model

		w.Header().Set("Content-Type", "text/event-stream")
		for _, d := range deltas {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", d)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
}

func newTestAIService(baseURL string) *AIService {
	return NewAIService(config.AIConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Model:          "chat-default",
		AnalysisModel:  "analysis-strong",
		TimeoutSeconds: 5,
	})
}

func collectStream(t *testing.T, deltas <-chan string, errs <-chan error) string {
	t.Helper()
	var full string
	for d := range deltas {
		full += d
	}
	require.NoError(t, <-errs)
	return full
}

// 会话创建时固定的模型名必须原样传给上游，定级会话才会用到分析模型
func TestChatStreamUsesPinnedModel(t *testing.T) {
	var gotModel string
	srv := newStreamServer(t, &gotModel, []string{"Bon", "jour"})
	defer srv.Close()

	svc := newTestAIService(srv.URL)
	deltas, errs := svc.ChatStream(context.Background(), "analysis-strong", "system prompt", nil)

	full := collectStream(t, deltas, errs)
	assert.Equal(t, "analysis-strong", gotModel)
	assert.Equal(t, "Bonjour", full)
}

// 模型名为空时（历史数据）退回配置里的对话模型
func TestChatStreamFallsBackToConfiguredModel(t *testing.T) {
	var gotModel string
	srv := newStreamServer(t, &gotModel, []string{"Salut"})
	defer srv.Close()

	svc := newTestAIService(srv.URL)
	deltas, errs := svc.ChatStream(context.Background(), "", "system prompt", nil)

	collectStream(t, deltas, errs)
	assert.Equal(t, "chat-default", gotModel)
}

func TestModelAccessors(t *testing.T) {
	svc := newTestAIService("http://unused")
	assert.Equal(t, "chat-default", svc.Model())
	assert.Equal(t, "analysis-strong", svc.AnalysisModel())

	svc.UpdateConfig(config.AIConfig{Model: "chat-next", AnalysisModel: "analysis-next", TimeoutSeconds: 5})
	assert.Equal(t, "chat-next", svc.Model())
	assert.Equal(t, "analysis-next", svc.AnalysisModel())
}
